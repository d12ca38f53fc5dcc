package services

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// PricingSvc resolves selling prices for catalog items.
type PricingSvc interface {
	// CalculatePrice returns the price actually charged, applying special
	// prices and the last-sale floor.
	CalculatePrice(ctx context.Context, req domain.PricingRequest) (*domain.PricingResult, error)

	// PreviewPrice returns the pure calculated price under caller overrides,
	// with per-field provenance. The last-sale floor is not applied.
	PreviewPrice(ctx context.Context, req domain.PreviewRequest) (*domain.PricingResult, error)
}
