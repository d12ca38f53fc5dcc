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

const currencyRateColumns = `rate_id, base_currency, rate_date, usd_rate, margin_percentage, usd_rate_with_margin,
		       source, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRateRepository struct {
	BaseRepository
}

func newPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepositoryFacade {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.CurrencyRateRepositoryFacade = (*PgxCurrencyRateRepository)(nil)
	_ portsrepo.TransactionManager           = (*PgxCurrencyRateRepository)(nil)
)

func scanCurrencyRate(row pgx.Row) (domain.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(
		&m.RateID,
		&m.BaseCurrency,
		&m.RateDate,
		&m.USDRate,
		&m.MarginPercentage,
		&m.USDRateWithMargin,
		&m.Source,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return mapping.ToDomainCurrencyRate(m), err
}

// ListActiveVersions returns the active rates of a base currency dated on or before asOf.
func (r *PgxCurrencyRateRepository) ListActiveVersions(ctx context.Context, base domain.CurrencyCode, asOf time.Time) ([]domain.RuleVersion[domain.CurrencyRate], error) {
	query := `
		SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE base_currency = $1 AND is_active AND rate_date <= $2
	` + versionOrder("rate_date", "rate_id")

	rows, err := r.Pool.Query(ctx, query, string(base), domain.CalendarDay(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	versions, err := collectVersions(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		return scanCurrencyRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency rates: %w", err)
	}
	return versions, nil
}

// ListRates returns up to limit rates newest first, strictly before the given day when set.
func (r *PgxCurrencyRateRepository) ListRates(ctx context.Context, base domain.CurrencyCode, limit int, before *time.Time) ([]domain.CurrencyRate, error) {
	query := `
		SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE base_currency = $1 AND ($2::date IS NULL OR rate_date < $2::date)
		ORDER BY rate_date DESC
		LIMIT $3;
	`
	var beforeDay *time.Time
	if before != nil {
		day := domain.CalendarDay(*before)
		beforeDay = &day
	}

	rows, err := r.Pool.Query(ctx, query, string(base), beforeDay, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyRate, error) {
		return scanCurrencyRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency rates: %w", err)
	}
	return rates, nil
}

// InsertRateIfAbsent stores the rate unless its day already has one, then
// reads back whichever record owns the day. Concurrent callers all end up
// with the same row.
func (r *PgxCurrencyRateRepository) InsertRateIfAbsent(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, bool, error) {
	m := mapping.ToModelCurrencyRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insert := `
		INSERT INTO currency_rates (` + currencyRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (base_currency, rate_date) DO NOTHING;
	`
	tag, err := tx.Exec(ctx, insert,
		m.RateID,
		m.BaseCurrency,
		m.RateDate,
		m.USDRate,
		m.MarginPercentage,
		m.USDRateWithMargin,
		m.Source,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, false, mapPgError(err, "failed to insert currency rate")
	}
	created := tag.RowsAffected() == 1

	selectDay := `
		SELECT ` + currencyRateColumns + `
		FROM currency_rates
		WHERE base_currency = $1 AND rate_date = $2;
	`
	stored, err := scanCurrencyRate(tx.QueryRow(ctx, selectDay, m.BaseCurrency, m.RateDate))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read back currency rate for %s: %w", m.RateDate.Format(time.DateOnly), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}
