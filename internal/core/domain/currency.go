package domain

import "strings"

// CurrencyCode is one of the two currencies the price list is quoted in.
type CurrencyCode string

const (
	CurrencyILS CurrencyCode = "ILS"
	CurrencyUSD CurrencyCode = "USD"
)

// IsValid reports whether c is a supported currency.
func (c CurrencyCode) IsValid() bool {
	return c == CurrencyILS || c == CurrencyUSD
}

// ParseCurrencyCode normalizes s and reports whether it names a supported currency.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	c := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// OrDefault returns c when it is valid and fallback otherwise.
// Legacy item rows may carry an empty currency tag.
func (c CurrencyCode) OrDefault(fallback CurrencyCode) CurrencyCode {
	if c.IsValid() {
		return c
	}
	return fallback
}
