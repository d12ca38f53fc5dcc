package services

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/dto"
)

// PricingRuleSvc maintains the versioned pricing rules and special prices.
type PricingRuleSvc interface {
	CreateMarginRule(ctx context.Context, req dto.CreateMarginRuleRequest, creatorUserID string) (*domain.MarginRule, error)
	DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error
	CreateFreightRate(ctx context.Context, req dto.CreateFreightRateRequest, creatorUserID string) (*domain.FreightRate, error)
	UpsertSpecialPrice(ctx context.Context, req dto.UpsertSpecialPriceRequest, userID string) (*domain.SpecialPrice, error)
}
