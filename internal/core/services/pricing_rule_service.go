package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/dto"
)

// pricingRuleService implements the PricingRuleSvc interface
type pricingRuleService struct {
	BaseService
	categories    portsrepo.CategoryReader
	marginRules   portsrepo.MarginRuleRepositoryFacade
	freightRates  portsrepo.FreightRateRepositoryFacade
	specialPrices portsrepo.SpecialPriceRepositoryFacade
	now           func() time.Time
}

// NewPricingRuleService creates a new pricing rule service with the provided dependencies
func NewPricingRuleService(repos portsrepo.RepositoryProvider) portssvc.PricingRuleSvc {
	return &pricingRuleService{
		categories:    repos.CategoryRepo,
		marginRules:   repos.MarginRuleRepo,
		freightRates:  repos.FreightRateRepo,
		specialPrices: repos.SpecialPriceRepo,
		now:           time.Now,
	}
}

var _ portssvc.PricingRuleSvc = (*pricingRuleService)(nil)

// CreateMarginRule adds a new version of a category's margin.
func (s *pricingRuleService) CreateMarginRule(ctx context.Context, req dto.CreateMarginRuleRequest, creatorUserID string) (*domain.MarginRule, error) {
	if !isPercentage(req.MarginPercentage) {
		return nil, apperrors.NewValidationError("margin percentage must be between 0 and 100")
	}

	categoryID := strings.TrimSpace(req.CategoryID)
	if _, err := s.categories.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown category %q", categoryID))
		}
		s.LogError(ctx, err, "Failed to look up category", slog.String("category_id", categoryID))
		return nil, err
	}

	now := s.now()
	rule := domain.MarginRule{
		RuleID:           uuid.NewString(),
		CategoryID:       categoryID,
		MarginPercentage: req.MarginPercentage,
		ValidFrom:        validFromOrNow(req.ValidFrom, now),
		IsActive:         true,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.marginRules.SaveMarginRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save margin rule", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Margin rule created",
		slog.String("rule_id", rule.RuleID),
		slog.String("category_id", categoryID),
		slog.String("margin_percentage", rule.MarginPercentage.String()),
		slog.Time("valid_from", rule.ValidFrom))
	return &rule, nil
}

func (s *pricingRuleService) DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error {
	if err := s.marginRules.DeactivateMarginRule(ctx, ruleID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate margin rule", slog.String("rule_id", ruleID))
		}
		return err
	}
	s.LogInfo(ctx, "Margin rule deactivated",
		slog.String("rule_id", ruleID),
		slog.String("user_id", userID))
	return nil
}

// CreateFreightRate adds a new version of the freight cost for a port and container size.
func (s *pricingRuleService) CreateFreightRate(ctx context.Context, req dto.CreateFreightRateRequest, creatorUserID string) (*domain.FreightRate, error) {
	port := normalizePort(req.PortOfOrigin)
	if port == "" {
		return nil, apperrors.NewValidationError("port of origin is required")
	}
	if !domain.IsValidContainerSize(req.ContainerSizeCBM) {
		return nil, apperrors.NewValidationError("container size must be 33, 57 or 68 CBM")
	}
	if req.FreightCost.IsNegative() {
		return nil, apperrors.NewValidationError("freight cost must not be negative")
	}

	now := s.now()
	rate := domain.FreightRate{
		RateID:           uuid.NewString(),
		PortOfOrigin:     port,
		ContainerSizeCBM: req.ContainerSizeCBM,
		FreightCost:      req.FreightCost,
		ValidFrom:        validFromOrNow(req.ValidFrom, now),
		IsActive:         true,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.freightRates.SaveFreightRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save freight rate", slog.String("freight_key", rate.Key().String()))
		return nil, err
	}

	s.LogInfo(ctx, "Freight rate created",
		slog.String("rate_id", rate.RateID),
		slog.String("freight_key", rate.Key().String()),
		slog.String("freight_cost", rate.FreightCost.String()))
	return &rate, nil
}

// UpsertSpecialPrice sets the negotiated price of an item for a customer.
func (s *pricingRuleService) UpsertSpecialPrice(ctx context.Context, req dto.UpsertSpecialPriceRequest, userID string) (*domain.SpecialPrice, error) {
	currency, ok := domain.ParseCurrencyCode(req.Currency)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q", req.Currency))
	}
	if !req.Price.IsPositive() {
		return nil, apperrors.NewValidationError("special price must be positive")
	}
	customerCode := strings.TrimSpace(req.CustomerCode)
	itemCode := strings.TrimSpace(req.ItemCode)
	if customerCode == "" || itemCode == "" {
		return nil, apperrors.NewValidationError("customer code and item code are required")
	}

	price := domain.SpecialPrice{
		CustomerCode: customerCode,
		ItemCode:     itemCode,
		Price:        req.Price,
		Currency:     currency,
		AuditFields:  domain.NewAuditFields(userID, s.now()),
	}

	stored, err := s.specialPrices.UpsertSpecialPrice(ctx, price)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert special price",
			slog.String("customer_code", customerCode),
			slog.String("item_code", itemCode))
		return nil, err
	}

	s.LogInfo(ctx, "Special price saved",
		slog.String("customer_code", customerCode),
		slog.String("item_code", itemCode),
		slog.String("price", stored.Price.String()),
		slog.String("currency", string(stored.Currency)))
	return stored, nil
}

func validFromOrNow(validFrom *time.Time, now time.Time) time.Time {
	if validFrom == nil || validFrom.IsZero() {
		return now
	}
	return *validFrom
}
