package gateways

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// BankRateSource fetches the published USD to ILS rate from an external bank.
// Calls are network bound and may fail; callers fall back to stored rates.
type BankRateSource interface {
	FetchUSDRate(ctx context.Context) (*domain.BankRateQuote, error)
}
