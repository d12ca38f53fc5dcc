package dto

import (
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRateResponse defines the API representation of a daily currency rate.
type CurrencyRateResponse struct {
	RateID            string          `json:"rateId"`
	RateDate          string          `json:"rateDate"` // YYYY-MM-DD
	USDRate           decimal.Decimal `json:"usdRate"`
	MarginPercentage  decimal.Decimal `json:"marginPercentage"`
	USDRateWithMargin decimal.Decimal `json:"usdRateWithMargin"`
	Source            string          `json:"source"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListCurrencyRatesParams defines the query parameters for listing rates.
type ListCurrencyRatesParams struct {
	Limit     int     `form:"limit,default=30" binding:"omitempty,min=1,max=365"`
	NextToken *string `form:"nextToken"`
}

// ListCurrencyRatesResponse is a page of currency rates.
type ListCurrencyRatesResponse struct {
	Rates     []CurrencyRateResponse `json:"rates"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to its response DTO.
func ToCurrencyRateResponse(r *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		RateID:            r.RateID,
		RateDate:          r.RateDate.Format(time.DateOnly),
		USDRate:           r.USDRate,
		MarginPercentage:  r.MarginPercentage,
		USDRateWithMargin: r.USDRateWithMargin,
		Source:            r.Source,
		CreatedAt:         r.CreatedAt,
	}
}

// ToListCurrencyRatesResponse converts a page of rates to its response DTO.
func ToListCurrencyRatesResponse(rates []domain.CurrencyRate, nextToken *string) ListCurrencyRatesResponse {
	out := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		out[i] = ToCurrencyRateResponse(&rates[i])
	}
	return ListCurrencyRatesResponse{Rates: out, NextToken: nextToken}
}
