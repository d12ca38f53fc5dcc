package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	"github.com/saragoldblat100/br-sales/internal/models"
	"github.com/saragoldblat100/br-sales/internal/utils/mapping"
)

type PgxFreightRateRepository struct {
	BaseRepository
}

func newPgxFreightRateRepository(pool *pgxpool.Pool) portsrepo.FreightRateRepositoryFacade {
	return &PgxFreightRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FreightRateRepositoryFacade = (*PgxFreightRateRepository)(nil)

func (r *PgxFreightRateRepository) SaveFreightRate(ctx context.Context, rate domain.FreightRate) error {
	m := mapping.ToModelFreightRate(rate)
	query := `
		INSERT INTO freight_rates (rate_id, port_of_origin, container_size_cbm, freight_cost, valid_from, is_active,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RateID,
		m.PortOfOrigin,
		m.ContainerSizeCBM,
		m.FreightCost,
		m.ValidFrom,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to save freight rate "+m.RateID)
	}
	return nil
}

// ListActiveVersions returns the active freight rates of a port and container size effective at asOf.
func (r *PgxFreightRateRepository) ListActiveVersions(ctx context.Context, key domain.FreightKey, asOf time.Time) ([]domain.RuleVersion[domain.FreightRate], error) {
	query := `
		SELECT rate_id, port_of_origin, container_size_cbm, freight_cost, valid_from, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM freight_rates
		WHERE port_of_origin = $1 AND container_size_cbm = $2 AND is_active AND valid_from <= $3
	` + versionOrder("valid_from", "rate_id")

	rows, err := r.Pool.Query(ctx, query, key.PortOfOrigin, key.ContainerSizeCBM, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query freight rates for %s: %w", key, err)
	}
	defer rows.Close()

	versions, err := collectVersions(rows, func(row pgx.CollectableRow) (domain.FreightRate, error) {
		var m models.FreightRate
		err := row.Scan(
			&m.RateID,
			&m.PortOfOrigin,
			&m.ContainerSizeCBM,
			&m.FreightCost,
			&m.ValidFrom,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return mapping.ToDomainFreightRate(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan freight rates: %w", err)
	}
	return versions, nil
}
