package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	ItemRepo         ItemReader
	CategoryRepo     CategoryReader
	MarginRuleRepo   MarginRuleRepositoryFacade
	FreightRateRepo  FreightRateRepositoryFacade
	CurrencyRateRepo CurrencyRateRepositoryFacade
	SpecialPriceRepo SpecialPriceRepositoryFacade
}
