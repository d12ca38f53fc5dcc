package services

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// CurrencyRateReaderSvc defines read operations for currency rates.
type CurrencyRateReaderSvc interface {
	// CurrentRate resolves the rate to convert with today. It may fetch and
	// store today's rate, and falls back to the most recent stored rate.
	CurrentRate(ctx context.Context) (*domain.CurrencyRate, error)

	// ListRates returns stored rates newest first, with a token for the next page.
	ListRates(ctx context.Context, limit int, nextToken *string) ([]domain.CurrencyRate, *string, error)
}

// CurrencyRateWriterSvc defines write operations for currency rates.
type CurrencyRateWriterSvc interface {
	// RefreshToday fetches today's rate from the bank and stores it if absent.
	RefreshToday(ctx context.Context) (*domain.CurrencyRate, error)
}

// CurrencyRateSvcFacade combines all currency rate service interfaces.
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateWriterSvc
}
