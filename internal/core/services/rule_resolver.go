package services

import (
	"context"
	"fmt"
	"time"

	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
)

// ruleResolver answers "which version of this rule is in effect" for one
// versioned rule series. Margin, freight and currency rates all go through it.
type ruleResolver[K comparable, V any] struct {
	kind   string
	reader portsrepo.VersionedRuleReader[K, V]
}

func newRuleResolver[K comparable, V any](kind string, reader portsrepo.VersionedRuleReader[K, V]) *ruleResolver[K, V] {
	return &ruleResolver[K, V]{kind: kind, reader: reader}
}

// resolveActiveAsOf returns the version in effect for key at asOf, or an
// error wrapping apperrors.ErrNotFound when there is none.
func (r *ruleResolver[K, V]) resolveActiveAsOf(ctx context.Context, key K, asOf time.Time) (domain.RuleVersion[V], error) {
	var zero domain.RuleVersion[V]

	versions, err := r.reader.ListActiveVersions(ctx, key, asOf)
	if err != nil {
		return zero, fmt.Errorf("failed to list %s versions for %v: %w", r.kind, key, err)
	}

	version, ok := domain.SelectActiveVersion(versions, asOf)
	if !ok {
		return zero, fmt.Errorf("%w: no active %s for %v", apperrors.ErrNotFound, r.kind, key)
	}
	return version, nil
}
