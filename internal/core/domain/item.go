package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog item as seen by the pricing engine. It is read-only here;
// catalog maintenance owns its lifecycle.
type Item struct {
	ItemID           string
	ItemCode         string
	Description      string
	QtyPerCarton     int
	BoxCBM           decimal.Decimal // cubic meters per carton
	CategoryID       *string
	SupplierPrice    decimal.Decimal // per carton
	SupplierCurrency CurrencyCode
	LastSale         *LastSale
	AuditFields
}

// LastSale is the cached most recent real transaction price of an item, per carton.
type LastSale struct {
	Price    decimal.Decimal
	Currency CurrencyCode
	Date     *time.Time
}

// HasCategory reports whether the item references a category.
func (i Item) HasCategory() bool {
	return i.CategoryID != nil && *i.CategoryID != ""
}

// HasLastSale reports whether the item carries a usable last sale price.
func (i Item) HasLastSale() bool {
	return i.LastSale != nil && i.LastSale.Price.IsPositive()
}
