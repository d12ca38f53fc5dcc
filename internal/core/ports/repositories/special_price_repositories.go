package repositories

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// SpecialPriceReader defines read operations for customer special prices.
type SpecialPriceReader interface {
	// FindSpecialPrice returns apperrors.ErrNotFound when the pair has no special price.
	FindSpecialPrice(ctx context.Context, customerCode, itemCode string) (*domain.SpecialPrice, error)
}

// SpecialPriceWriter defines write operations for customer special prices.
type SpecialPriceWriter interface {
	UpsertSpecialPrice(ctx context.Context, price domain.SpecialPrice) (*domain.SpecialPrice, error)
}

// SpecialPriceRepositoryFacade combines all special price repository interfaces.
type SpecialPriceRepositoryFacade interface {
	SpecialPriceReader
	SpecialPriceWriter
}
