package domain

import "github.com/shopspring/decimal"

// SpecialPrice is a negotiated final per-carton price for one customer and item.
type SpecialPrice struct {
	CustomerCode string
	ItemCode     string
	Price        decimal.Decimal
	Currency     CurrencyCode
	AuditFields
}
