package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a row of the currency_rates table, one per base currency and day.
type CurrencyRate struct {
	RateID            string          `db:"rate_id"`
	BaseCurrency      string          `db:"base_currency"`
	RateDate          time.Time       `db:"rate_date"`
	USDRate           decimal.Decimal `db:"usd_rate"`
	MarginPercentage  decimal.Decimal `db:"margin_percentage"`
	USDRateWithMargin decimal.Decimal `db:"usd_rate_with_margin"`
	Source            string          `db:"source"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
