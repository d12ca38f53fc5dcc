package repositories

import (
	"context"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// VersionedRuleReader lists the candidate versions of a rule series.
// Implementations return at least every active version with ValidFrom not
// after asOf; version selection happens in the service layer.
type VersionedRuleReader[K comparable, V any] interface {
	ListActiveVersions(ctx context.Context, key K, asOf time.Time) ([]domain.RuleVersion[V], error)
}
