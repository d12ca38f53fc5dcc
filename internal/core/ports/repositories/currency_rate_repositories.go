package repositories

import (
	"context"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// CurrencyRateReader defines read operations for daily currency rates.
type CurrencyRateReader interface {
	VersionedRuleReader[domain.CurrencyCode, domain.CurrencyRate]

	// ListRates returns up to limit rates of a base currency, newest first,
	// strictly before the given day when before is set.
	ListRates(ctx context.Context, base domain.CurrencyCode, limit int, before *time.Time) ([]domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for daily currency rates.
type CurrencyRateWriter interface {
	// InsertRateIfAbsent stores rate unless a rate already exists for its base
	// currency and day. It returns the stored record for that day, and whether
	// this call created it.
	InsertRateIfAbsent(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, bool, error)
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces.
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
