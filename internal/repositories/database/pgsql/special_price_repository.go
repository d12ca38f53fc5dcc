package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	"github.com/saragoldblat100/br-sales/internal/models"
	"github.com/saragoldblat100/br-sales/internal/utils/mapping"
)

type PgxSpecialPriceRepository struct {
	BaseRepository
}

func newPgxSpecialPriceRepository(pool *pgxpool.Pool) portsrepo.SpecialPriceRepositoryFacade {
	return &PgxSpecialPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SpecialPriceRepositoryFacade = (*PgxSpecialPriceRepository)(nil)

func scanSpecialPrice(row pgx.Row) (domain.SpecialPrice, error) {
	var m models.SpecialPrice
	err := row.Scan(
		&m.CustomerCode,
		&m.ItemCode,
		&m.Price,
		&m.Currency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return mapping.ToDomainSpecialPrice(m), err
}

func (r *PgxSpecialPriceRepository) FindSpecialPrice(ctx context.Context, customerCode, itemCode string) (*domain.SpecialPrice, error) {
	query := `
		SELECT customer_code, item_code, price, currency, created_at, created_by, last_updated_at, last_updated_by
		FROM special_prices
		WHERE customer_code = $1 AND item_code = $2;
	`
	price, err := scanSpecialPrice(r.Pool.QueryRow(ctx, query, customerCode, itemCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find special price for %s/%s: %w", customerCode, itemCode, err)
	}
	return &price, nil
}

// UpsertSpecialPrice inserts or replaces the price of a customer and item pair.
// The original creation audit fields are kept on update.
func (r *PgxSpecialPriceRepository) UpsertSpecialPrice(ctx context.Context, price domain.SpecialPrice) (*domain.SpecialPrice, error) {
	m := mapping.ToModelSpecialPrice(price)
	query := `
		INSERT INTO special_prices (customer_code, item_code, price, currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (customer_code, item_code) DO UPDATE SET
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING customer_code, item_code, price, currency, created_at, created_by, last_updated_at, last_updated_by;
	`
	stored, err := scanSpecialPrice(r.Pool.QueryRow(ctx, query,
		m.CustomerCode,
		m.ItemCode,
		m.Price,
		m.Currency,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, mapPgError(err, "failed to upsert special price")
	}
	return &stored, nil
}
