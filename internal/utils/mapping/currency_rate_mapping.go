package mapping

import (
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		RateID:            d.RateID,
		BaseCurrency:      string(d.BaseCurrency),
		RateDate:          d.RateDate,
		USDRate:           d.USDRate,
		MarginPercentage:  d.MarginPercentage,
		USDRateWithMargin: d.USDRateWithMargin,
		Source:            d.Source,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate.
// The rate date is normalized to midnight UTC.
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		RateID:            m.RateID,
		BaseCurrency:      domain.CurrencyCode(m.BaseCurrency),
		RateDate:          domain.CalendarDay(m.RateDate),
		USDRate:           m.USDRate,
		MarginPercentage:  m.MarginPercentage,
		USDRateWithMargin: m.USDRateWithMargin,
		Source:            m.Source,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencyRateSlice converts a slice of model CurrencyRates to a slice of domain CurrencyRates
func ToDomainCurrencyRateSlice(ms []models.CurrencyRate) []domain.CurrencyRate {
	ds := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyRate(m)
	}
	return ds
}
