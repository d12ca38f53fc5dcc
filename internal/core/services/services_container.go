package services

import (
	"github.com/saragoldblat100/br-sales/internal/core/ports/gateways"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/platform/config"
	pricingutil "github.com/saragoldblat100/br-sales/internal/utils/pricing"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// bankSource may be nil, in which case only stored currency rates are served.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, bankSource gateways.BankRateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency rates come first since pricing converts through them
	rateOptions := []CurrencyRateOption{
		WithBusinessLocation(cfg.BusinessLocation),
		WithDefaultRateMargin(cfg.CurrencyRateMarginPercent),
		WithFetchTimeout(cfg.BankRateTimeout),
	}
	if bankSource != nil {
		rateOptions = append(rateOptions, WithBankRateSource(bankSource))
	}
	container.CurrencyRate = NewCurrencyRateService(repos.CurrencyRateRepo, rateOptions...)

	container.Pricing = NewPricingService(
		repos,
		container.CurrencyRate,
		WithPricingDefaults(PricingDefaults{
			PortOfOrigin:     cfg.DefaultPortOfOrigin,
			ContainerSizeCBM: cfg.DefaultContainerSizeCBM,
			Rounding:         pricingutil.ParseRoundingMode(cfg.PricingRounding),
		}),
	)

	container.PricingRules = NewPricingRuleService(repos)

	return container
}
