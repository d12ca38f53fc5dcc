package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	"github.com/saragoldblat100/br-sales/internal/models"
	"github.com/saragoldblat100/br-sales/internal/utils/mapping"
)

type PgxMarginRuleRepository struct {
	BaseRepository
}

func newPgxMarginRuleRepository(pool *pgxpool.Pool) portsrepo.MarginRuleRepositoryFacade {
	return &PgxMarginRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MarginRuleRepositoryFacade = (*PgxMarginRuleRepository)(nil)

func (r *PgxMarginRuleRepository) SaveMarginRule(ctx context.Context, rule domain.MarginRule) error {
	m := mapping.ToModelMarginRule(rule)
	query := `
		INSERT INTO margin_rules (rule_id, category_id, margin_percentage, valid_from, is_active,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.CategoryID,
		m.MarginPercentage,
		m.ValidFrom,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save margin rule "+m.RuleID)
	}
	return nil
}

// DeactivateMarginRule marks a rule inactive. Deactivating an inactive rule succeeds.
func (r *PgxMarginRuleRepository) DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error {
	query := `
		UPDATE margin_rules
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE rule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, ruleID, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate margin rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListActiveVersions returns the active margin rules of a category effective at asOf.
func (r *PgxMarginRuleRepository) ListActiveVersions(ctx context.Context, categoryID string, asOf time.Time) ([]domain.RuleVersion[domain.MarginRule], error) {
	query := `
		SELECT rule_id, category_id, margin_percentage, valid_from, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM margin_rules
		WHERE category_id = $1 AND is_active AND valid_from <= $2
	` + versionOrder("valid_from", "rule_id")

	rows, err := r.Pool.Query(ctx, query, categoryID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query margin rules for category %s: %w", categoryID, err)
	}
	defer rows.Close()

	versions, err := collectVersions(rows, func(row pgx.CollectableRow) (domain.MarginRule, error) {
		var m models.MarginRule
		err := row.Scan(
			&m.RuleID,
			&m.CategoryID,
			&m.MarginPercentage,
			&m.ValidFrom,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return mapping.ToDomainMarginRule(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan margin rules: %w", err)
	}
	return versions, nil
}
