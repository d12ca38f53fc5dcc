package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a row of the items table. Catalog columns may be NULL for items
// that were imported before their pricing data was filled in.
type Item struct {
	ItemID                 string              `db:"item_id"`
	ItemCode               string              `db:"item_code"`
	Description            string              `db:"description"`
	QtyPerCarton           *int                `db:"qty_per_carton"`
	BoxCBM                 decimal.NullDecimal `db:"box_cbm"`
	CategoryID             *string             `db:"category_id"`
	SupplierPrice          decimal.NullDecimal `db:"supplier_price"`
	SupplierCurrency       *string             `db:"supplier_currency"`
	LastSalesOrderPrice    decimal.NullDecimal `db:"last_sales_order_price"`
	LastSalesOrderCurrency *string             `db:"last_sales_order_currency"`
	LastSalesOrderDate     *time.Time          `db:"last_sales_order_date"`
	AuditFields
}

// Category is a row of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
}
