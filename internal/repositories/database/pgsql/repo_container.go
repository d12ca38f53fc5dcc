package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	itemRepo := newPgxItemRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ItemRepo:         itemRepo,
		CategoryRepo:     itemRepo,
		MarginRuleRepo:   newPgxMarginRuleRepository(dbPool),
		FreightRateRepo:  newPgxFreightRateRepository(dbPool),
		CurrencyRateRepo: newPgxCurrencyRateRepository(dbPool),
		SpecialPriceRepo: newPgxSpecialPriceRepository(dbPool),
	}
}
