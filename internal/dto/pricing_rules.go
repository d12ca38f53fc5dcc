package dto

import (
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMarginRuleRequest defines the structure for adding a margin rule version.
type CreateMarginRuleRequest struct {
	CategoryID       string          `json:"categoryId" binding:"required"`
	MarginPercentage decimal.Decimal `json:"marginPercentage"`
	ValidFrom        *time.Time      `json:"validFrom,omitempty"` // defaults to now
}

// MarginRuleResponse defines the API representation of a margin rule.
type MarginRuleResponse struct {
	RuleID           string          `json:"ruleId"`
	CategoryID       string          `json:"categoryId"`
	MarginPercentage decimal.Decimal `json:"marginPercentage"`
	ValidFrom        time.Time       `json:"validFrom"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToMarginRuleResponse converts a domain.MarginRule to its response DTO.
func ToMarginRuleResponse(r *domain.MarginRule) MarginRuleResponse {
	return MarginRuleResponse{
		RuleID:           r.RuleID,
		CategoryID:       r.CategoryID,
		MarginPercentage: r.MarginPercentage,
		ValidFrom:        r.ValidFrom,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
}

// CreateFreightRateRequest defines the structure for adding a freight rate version.
type CreateFreightRateRequest struct {
	PortOfOrigin     string          `json:"portOfOrigin" binding:"required"`
	ContainerSizeCBM int             `json:"containerSizeCBM" binding:"required,oneof=33 57 68"`
	FreightCost      decimal.Decimal `json:"freightCost"`
	ValidFrom        *time.Time      `json:"validFrom,omitempty"`
}

// FreightRateResponse defines the API representation of a freight rate.
type FreightRateResponse struct {
	RateID           string          `json:"rateId"`
	PortOfOrigin     string          `json:"portOfOrigin"`
	ContainerSizeCBM int             `json:"containerSizeCBM"`
	FreightCost      decimal.Decimal `json:"freightCost"`
	ValidFrom        time.Time       `json:"validFrom"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToFreightRateResponse converts a domain.FreightRate to its response DTO.
func ToFreightRateResponse(r *domain.FreightRate) FreightRateResponse {
	return FreightRateResponse{
		RateID:           r.RateID,
		PortOfOrigin:     r.PortOfOrigin,
		ContainerSizeCBM: r.ContainerSizeCBM,
		FreightCost:      r.FreightCost,
		ValidFrom:        r.ValidFrom,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
}

// UpsertSpecialPriceRequest defines the structure for setting a customer special price.
type UpsertSpecialPriceRequest struct {
	CustomerCode string          `json:"customerCode" binding:"required"`
	ItemCode     string          `json:"itemCode" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency" binding:"required,currency_code"`
}

// SpecialPriceResponse defines the API representation of a special price.
type SpecialPriceResponse struct {
	CustomerCode  string          `json:"customerCode"`
	ItemCode      string          `json:"itemCode"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToSpecialPriceResponse converts a domain.SpecialPrice to its response DTO.
func ToSpecialPriceResponse(p *domain.SpecialPrice) SpecialPriceResponse {
	return SpecialPriceResponse{
		CustomerCode:  p.CustomerCode,
		ItemCode:      p.ItemCode,
		Price:         p.Price,
		Currency:      string(p.Currency),
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}
