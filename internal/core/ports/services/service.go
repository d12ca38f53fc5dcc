package services

// ServiceContainer holds instances of all the application services.
// It is the entry point the handlers and the CLI use to reach the core.
type ServiceContainer struct {
	Pricing      PricingSvc
	CurrencyRate CurrencyRateSvcFacade
	PricingRules PricingRuleSvc
}
