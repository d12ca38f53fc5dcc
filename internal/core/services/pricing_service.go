package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	pricingutil "github.com/saragoldblat100/br-sales/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// DefaultPortOfOrigin is used when a request names no port.
const DefaultPortOfOrigin = "NINGBO"

// PricingDefaults holds the request defaults and the rounding policy.
type PricingDefaults struct {
	PortOfOrigin     string
	ContainerSizeCBM int
	Rounding         pricingutil.RoundingMode
}

// pricingService resolves selling prices.
type pricingService struct {
	BaseService
	items         portsrepo.ItemReader
	categories    portsrepo.CategoryReader
	specialPrices portsrepo.SpecialPriceReader
	margins       *ruleResolver[string, domain.MarginRule]
	freight       *ruleResolver[domain.FreightKey, domain.FreightRate]
	rates         portssvc.CurrencyRateReaderSvc
	defaults      PricingDefaults
	now           func() time.Time
}

// PricingOption is a functional option for configuring the pricing service
type PricingOption func(*pricingService)

// WithPricingDefaults overrides the default port, container size and rounding.
func WithPricingDefaults(defaults PricingDefaults) PricingOption {
	return func(s *pricingService) {
		if defaults.PortOfOrigin != "" {
			s.defaults.PortOfOrigin = normalizePort(defaults.PortOfOrigin)
		}
		if domain.IsValidContainerSize(defaults.ContainerSizeCBM) {
			s.defaults.ContainerSizeCBM = defaults.ContainerSizeCBM
		}
		if defaults.Rounding != "" {
			s.defaults.Rounding = defaults.Rounding
		}
	}
}

// WithPricingClock replaces the wall clock, for tests.
func WithPricingClock(now func() time.Time) PricingOption {
	return func(s *pricingService) {
		s.now = now
	}
}

// NewPricingService creates a new pricing service with the provided options
func NewPricingService(repos portsrepo.RepositoryProvider, rates portssvc.CurrencyRateReaderSvc, options ...PricingOption) portssvc.PricingSvc {
	svc := &pricingService{
		items:         repos.ItemRepo,
		categories:    repos.CategoryRepo,
		specialPrices: repos.SpecialPriceRepo,
		margins:       newRuleResolver[string, domain.MarginRule]("margin rule", repos.MarginRuleRepo),
		freight:       newRuleResolver[domain.FreightKey, domain.FreightRate]("freight rate", repos.FreightRateRepo),
		rates:         rates,
		defaults: PricingDefaults{
			PortOfOrigin:     DefaultPortOfOrigin,
			ContainerSizeCBM: domain.Container40ftHC,
			Rounding:         pricingutil.RoundPerStage,
		},
		now: time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

// resolvedInputs is the outcome of input resolution for the standard pipeline.
type resolvedInputs struct {
	inputs  domain.CostInputs
	sources domain.FieldSources
	rate    *domain.CurrencyRate // nil when the rate was overridden
}

func (s *pricingService) CalculatePrice(ctx context.Context, req domain.PricingRequest) (*domain.PricingResult, error) {
	item, err := s.loadItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	key, keyErr := s.freightKey(req.PortOfOrigin, req.ContainerSizeCBM)

	basis, err := s.selectBasis(ctx, item, req.CustomerCode, key, keyErr)
	if err != nil {
		return nil, err
	}

	chain, err := pricingutil.Calculate(basis, s.defaults.Rounding)
	if err != nil {
		s.LogError(ctx, err, "Price calculation failed", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to calculate price: %w", err)
	}

	result, err := s.newResult(item, key, chain, item.QtyPerCarton, item.BoxCBM, req.RequestedQuantity)
	if err != nil {
		return nil, err
	}
	if item.HasLastSale() {
		lastSale := *item.LastSale
		result.LastSale = &lastSale
	}

	s.LogInfo(ctx, "Price calculated",
		slog.String("item_id", item.ItemID),
		slog.String("price_source", string(chain.PriceSource)),
		slog.String("selling_price_ils", chain.SellingPricePerCartonILS.String()))
	return result, nil
}

func (s *pricingService) PreviewPrice(ctx context.Context, req domain.PreviewRequest) (*domain.PricingResult, error) {
	item, err := s.loadItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	key, err := s.freightKey(req.PortOfOrigin, req.ContainerSizeCBM)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolveInputs(ctx, item, key, req.Overrides)
	if err != nil {
		return nil, err
	}

	chain, err := pricingutil.Calculate(domain.StandardCostBasis{Inputs: resolved.inputs}, s.defaults.Rounding)
	if err != nil {
		s.LogError(ctx, err, "Preview calculation failed", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to calculate preview price: %w", err)
	}

	result, err := s.newResult(item, key, chain, resolved.inputs.QtyPerCarton, resolved.inputs.BoxCBM, nil)
	if err != nil {
		return nil, err
	}

	details := &domain.PreviewDetails{Sources: resolved.sources}
	if resolved.rate != nil {
		bankRate := resolved.rate.USDRate
		rateMargin := resolved.rate.MarginPercentage
		details.BankRate = &bankRate
		details.RateMarginPercent = &rateMargin
	}
	if item.HasCategory() {
		details.CategoryName = s.categoryName(ctx, *item.CategoryID)
	}
	if item.HasLastSale() {
		lastSale := *item.LastSale
		details.LastSaleInfo = &lastSale
	}
	result.Preview = details

	s.LogInfo(ctx, "Preview price calculated",
		slog.String("item_id", item.ItemID),
		slog.Any("sources", resolved.sources))
	return result, nil
}

// selectBasis picks the special price pipeline when the customer has a
// negotiated price for the item, and the standard cost pipeline otherwise.
// keyErr only matters on the standard pipeline, which is the one reading freight.
func (s *pricingService) selectBasis(ctx context.Context, item *domain.Item, customerCode *string, key domain.FreightKey, keyErr error) (domain.PricingBasis, error) {
	special, err := s.findSpecialPrice(ctx, item, customerCode)
	if err != nil {
		return nil, err
	}

	if special != nil {
		if item.QtyPerCarton <= 0 {
			return nil, apperrors.NewMissingPricingDataError(domain.FieldQtyPerCarton)
		}
		rate, err := s.rates.CurrentRate(ctx)
		if err != nil {
			return nil, err
		}
		return domain.SpecialPriceBasis{
			SpecialPrice: *special,
			QtyPerCarton: item.QtyPerCarton,
			USDToILS:     rate.USDRateWithMargin,
		}, nil
	}

	if keyErr != nil {
		return nil, keyErr
	}
	resolved, err := s.resolveInputs(ctx, item, key, domain.PricingOverrides{})
	if err != nil {
		return nil, err
	}
	return domain.StandardCostBasis{Inputs: resolved.inputs, ApplyFloor: true}, nil
}

func (s *pricingService) findSpecialPrice(ctx context.Context, item *domain.Item, customerCode *string) (*domain.SpecialPrice, error) {
	if customerCode == nil || strings.TrimSpace(*customerCode) == "" {
		return nil, nil
	}
	special, err := s.specialPrices.FindSpecialPrice(ctx, strings.TrimSpace(*customerCode), item.ItemCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up special price",
			slog.String("customer_code", *customerCode),
			slog.String("item_code", item.ItemCode))
		return nil, fmt.Errorf("failed to look up special price: %w", err)
	}
	return special, nil
}

// resolveInputs validates the structural inputs, then takes each overridable
// input either from overrides or from its resolver, never both.
func (s *pricingService) resolveInputs(ctx context.Context, item *domain.Item, key domain.FreightKey, o domain.PricingOverrides) (*resolvedInputs, error) {
	if err := validateOverrides(o); err != nil {
		return nil, err
	}
	if missing := domain.RequiredInputs(*item, o); len(missing) > 0 {
		s.LogInfo(ctx, "Pricing data missing",
			slog.String("item_id", item.ItemID),
			slog.Any("fields", missing))
		return nil, apperrors.NewMissingPricingDataError(missing...)
	}

	now := s.now()
	r := &resolvedInputs{
		inputs: domain.CostInputs{
			SupplierCurrency: item.SupplierCurrency.OrDefault(domain.CurrencyUSD),
			ContainerSizeCBM: key.ContainerSizeCBM,
		},
	}
	if item.HasLastSale() {
		r.inputs.LastSalePrice = item.LastSale.Price
		r.inputs.LastSaleCurrency = item.LastSale.Currency.OrDefault(domain.CurrencyILS)
	}

	r.inputs.SupplierPrice, r.sources.SupplierPrice = pickDecimal(o.SupplierPrice, item.SupplierPrice)
	if o.SupplierPrice != nil {
		r.inputs.SupplierCurrency = domain.CurrencyUSD
	}
	r.inputs.BoxCBM, r.sources.BoxCBM = pickDecimal(o.BoxCBM, item.BoxCBM)
	r.inputs.QtyPerCarton, r.sources.QtyPerCarton = pickInt(o.QtyPerCarton, item.QtyPerCarton)

	if o.MarginPercentage != nil {
		r.inputs.MarginPercentage, r.sources.Margin = *o.MarginPercentage, domain.ValueSourceOverride
	} else {
		rule, err := s.margins.resolveActiveAsOf(ctx, *item.CategoryID, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogInfo(ctx, "No active margin rule", slog.String("category_id", *item.CategoryID))
				return nil, fmt.Errorf("%w: category %s", apperrors.ErrCategoryMarginMissing, *item.CategoryID)
			}
			s.LogError(ctx, err, "Failed to resolve margin rule", slog.String("category_id", *item.CategoryID))
			return nil, err
		}
		r.inputs.MarginPercentage, r.sources.Margin = rule.Value.MarginPercentage, domain.ValueSourceDatabase
	}

	if o.FreightCostPerContainer != nil {
		r.inputs.FreightCostPerContainer, r.sources.Freight = *o.FreightCostPerContainer, domain.ValueSourceOverride
	} else {
		rate, err := s.freight.resolveActiveAsOf(ctx, key, now)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogInfo(ctx, "No active freight rate", slog.String("freight_key", key.String()))
				return nil, fmt.Errorf("%w: %s", apperrors.ErrFreightRateMissing, key)
			}
			s.LogError(ctx, err, "Failed to resolve freight rate", slog.String("freight_key", key.String()))
			return nil, err
		}
		r.inputs.FreightCostPerContainer, r.sources.Freight = rate.Value.FreightCost, domain.ValueSourceDatabase
	}

	if o.USDToILS != nil {
		r.inputs.USDToILS, r.sources.USDRate = *o.USDToILS, domain.ValueSourceOverride
	} else {
		rate, err := s.rates.CurrentRate(ctx)
		if err != nil {
			return nil, err
		}
		r.inputs.USDToILS, r.sources.USDRate = rate.USDRateWithMargin, domain.ValueSourceDatabase
		r.rate = rate
	}

	return r, nil
}

func (s *pricingService) newResult(item *domain.Item, key domain.FreightKey, chain domain.PricingChain, qtyPerCarton int, boxCBM decimal.Decimal, requested *int) (*domain.PricingResult, error) {
	quantity := qtyPerCarton
	if requested != nil {
		if *requested <= 0 {
			return nil, fmt.Errorf("%w: requested quantity must be positive", apperrors.ErrValidation)
		}
		quantity = *requested
	}
	cartons := pricingutil.CartonsFor(quantity, qtyPerCarton)

	return &domain.PricingResult{
		Item: domain.ItemSummary{
			ItemID:       item.ItemID,
			ItemCode:     item.ItemCode,
			Description:  item.Description,
			QtyPerCarton: qtyPerCarton,
			BoxCBM:       boxCBM,
			CategoryID:   item.CategoryID,
		},
		Chain:             chain,
		PortOfOrigin:      key.PortOfOrigin,
		ContainerSizeCBM:  key.ContainerSizeCBM,
		RequestedQuantity: quantity,
		NumberOfCartons:   cartons,
		TotalCBM:          pricingutil.TotalCBM(cartons, boxCBM),
		CalculatedAt:      s.now(),
	}, nil
}

func (s *pricingService) loadItem(ctx context.Context, itemID string) (*domain.Item, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, fmt.Errorf("%w: item id is required", apperrors.ErrValidation)
	}
	item, err := s.items.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrItemNotFound, itemID)
		}
		s.LogError(ctx, err, "Failed to load item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return item, nil
}

func (s *pricingService) categoryName(ctx context.Context, categoryID string) string {
	category, err := s.categories.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, err, "Failed to load category name", slog.String("category_id", categoryID))
		}
		return ""
	}
	return category.Name
}

func (s *pricingService) freightKey(port *string, containerSize *int) (domain.FreightKey, error) {
	key := domain.FreightKey{
		PortOfOrigin:     s.defaults.PortOfOrigin,
		ContainerSizeCBM: s.defaults.ContainerSizeCBM,
	}
	if port != nil && strings.TrimSpace(*port) != "" {
		key.PortOfOrigin = normalizePort(*port)
	}
	if containerSize != nil {
		if !domain.IsValidContainerSize(*containerSize) {
			return key, fmt.Errorf("%w: container size must be 33, 57 or 68 CBM", apperrors.ErrValidation)
		}
		key.ContainerSizeCBM = *containerSize
	}
	return key, nil
}

func validateOverrides(o domain.PricingOverrides) error {
	switch {
	case o.SupplierPrice != nil && !o.SupplierPrice.IsPositive():
		return fmt.Errorf("%w: supplier price override must be positive", apperrors.ErrValidation)
	case o.FreightCostPerContainer != nil && o.FreightCostPerContainer.IsNegative():
		return fmt.Errorf("%w: freight override must not be negative", apperrors.ErrValidation)
	case o.MarginPercentage != nil && !isPercentage(*o.MarginPercentage):
		return fmt.Errorf("%w: margin override must be between 0 and 100", apperrors.ErrValidation)
	case o.USDToILS != nil && !o.USDToILS.IsPositive():
		return fmt.Errorf("%w: currency rate override must be positive", apperrors.ErrValidation)
	case o.BoxCBM != nil && !o.BoxCBM.IsPositive():
		return fmt.Errorf("%w: carton volume override must be positive", apperrors.ErrValidation)
	case o.QtyPerCarton != nil && *o.QtyPerCarton <= 0:
		return fmt.Errorf("%w: quantity per carton override must be positive", apperrors.ErrValidation)
	}
	return nil
}

func pickDecimal(override *decimal.Decimal, stored decimal.Decimal) (decimal.Decimal, domain.ValueSource) {
	if override != nil {
		return *override, domain.ValueSourceOverride
	}
	return stored, domain.ValueSourceDatabase
}

func pickInt(override *int, stored int) (int, domain.ValueSource) {
	if override != nil {
		return *override, domain.ValueSourceOverride
	}
	return stored, domain.ValueSourceDatabase
}

func isPercentage(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

func normalizePort(port string) string {
	return strings.ToUpper(strings.TrimSpace(port))
}
