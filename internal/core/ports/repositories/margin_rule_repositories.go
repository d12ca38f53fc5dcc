package repositories

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// MarginRuleReader defines read operations for category margin rules.
type MarginRuleReader interface {
	VersionedRuleReader[string, domain.MarginRule]
}

// MarginRuleWriter defines write operations for category margin rules.
type MarginRuleWriter interface {
	SaveMarginRule(ctx context.Context, rule domain.MarginRule) error
	// DeactivateMarginRule marks a rule inactive. Rules are never deleted.
	DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error
}

// MarginRuleRepositoryFacade combines all margin rule repository interfaces.
type MarginRuleRepositoryFacade interface {
	MarginRuleReader
	MarginRuleWriter
}
