package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency rate sources.
const (
	RateSourceBankOfIsrael = "bank_of_israel"
	RateSourceManual       = "manual"
)

// CurrencyRate is the USD to ILS rate for one calendar day.
// USDRateWithMargin is the figure used for every conversion.
type CurrencyRate struct {
	RateID            string
	BaseCurrency      CurrencyCode
	RateDate          time.Time // calendar day, midnight UTC
	USDRate           decimal.Decimal
	MarginPercentage  decimal.Decimal
	USDRateWithMargin decimal.Decimal
	Source            string
	IsActive          bool
	AuditFields
}

// NewCurrencyRate builds an active rate record and precomputes the margin-adjusted rate.
func NewCurrencyRate(rateID string, day time.Time, usdRate, marginPercentage decimal.Decimal, source string) CurrencyRate {
	return CurrencyRate{
		RateID:            rateID,
		BaseCurrency:      CurrencyUSD,
		RateDate:          CalendarDay(day),
		USDRate:           usdRate,
		MarginPercentage:  marginPercentage,
		USDRateWithMargin: ApplyRateMargin(usdRate, marginPercentage),
		Source:            source,
		IsActive:          true,
	}
}

// ApplyRateMargin returns usdRate * (1 + margin/100) rounded to 4 places.
func ApplyRateMargin(usdRate, marginPercentage decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(marginPercentage.Div(decimal.NewFromInt(100)))
	return usdRate.Mul(factor).Round(4)
}

// IsFor reports whether the rate belongs to the calendar day of t.
func (r CurrencyRate) IsFor(day time.Time) bool {
	return r.RateDate.Equal(CalendarDay(day))
}

// Version exposes the rate to the generic version selection. A rate becomes
// valid on its own date.
func (r CurrencyRate) Version() RuleVersion[CurrencyRate] {
	return RuleVersion[CurrencyRate]{
		ID:        r.RateID,
		ValidFrom: r.RateDate,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		Value:     r,
	}
}

// CalendarDay truncates t to its calendar date in t's own location and
// returns that date at midnight UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BankRateQuote is a raw USD rate published by an external bank source.
type BankRateQuote struct {
	Rate        decimal.Decimal
	PublishedAt time.Time
	Source      string
}
