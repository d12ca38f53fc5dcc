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

// PgxItemRepository reads catalog items and their categories.
type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var (
	_ portsrepo.ItemReader     = (*PgxItemRepository)(nil)
	_ portsrepo.CategoryReader = (*PgxItemRepository)(nil)
)

// FindItemByID retrieves an item together with its cached last sale.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, item_code, description, qty_per_carton, box_cbm, category_id,
		       supplier_price, supplier_currency,
		       last_sales_order_price, last_sales_order_currency, last_sales_order_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE item_id = $1;
	`
	var m models.Item
	err := r.Pool.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID,
		&m.ItemCode,
		&m.Description,
		&m.QtyPerCarton,
		&m.BoxCBM,
		&m.CategoryID,
		&m.SupplierPrice,
		&m.SupplierCurrency,
		&m.LastSalesOrderPrice,
		&m.LastSalesOrderCurrency,
		&m.LastSalesOrderDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find item %s: %w", itemID, err)
	}

	item := mapping.ToDomainItem(m)
	return &item, nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxItemRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT category_id, name FROM categories WHERE category_id = $1;`

	var m models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&m.CategoryID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}
