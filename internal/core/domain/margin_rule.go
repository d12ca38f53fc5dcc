package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginRule is a time-versioned profit percentage for a category.
type MarginRule struct {
	RuleID           string
	CategoryID       string
	MarginPercentage decimal.Decimal
	ValidFrom        time.Time
	IsActive         bool
	AuditFields
}

// Version exposes the rule to the generic version selection.
func (r MarginRule) Version() RuleVersion[MarginRule] {
	return RuleVersion[MarginRule]{
		ID:        r.RuleID,
		ValidFrom: r.ValidFrom,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		Value:     r,
	}
}
