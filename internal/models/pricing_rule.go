package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginRule is a row of the margin_rules table.
type MarginRule struct {
	RuleID           string          `db:"rule_id"`
	CategoryID       string          `db:"category_id"`
	MarginPercentage decimal.Decimal `db:"margin_percentage"`
	ValidFrom        time.Time       `db:"valid_from"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}

// FreightRate is a row of the freight_rates table.
type FreightRate struct {
	RateID           string          `db:"rate_id"`
	PortOfOrigin     string          `db:"port_of_origin"`
	ContainerSizeCBM int             `db:"container_size_cbm"`
	FreightCost      decimal.Decimal `db:"freight_cost"`
	ValidFrom        time.Time       `db:"valid_from"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}

// SpecialPrice is a row of the special_prices table.
type SpecialPrice struct {
	CustomerCode string          `db:"customer_code"`
	ItemCode     string          `db:"item_code"`
	Price        decimal.Decimal `db:"price"`
	Currency     string          `db:"currency"`
	AuditFields
}
