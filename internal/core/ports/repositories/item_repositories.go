package repositories

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// ItemReader defines read operations for catalog items.
type ItemReader interface {
	// FindItemByID retrieves an item. Returns apperrors.ErrNotFound when absent.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
}

// CategoryReader defines read operations for item categories.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
}
