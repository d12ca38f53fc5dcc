package services_test

import (
	"context"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockItemRepository is a mock type for the ItemReader interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

// MockCategoryRepository is a mock type for the CategoryReader interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// MockMarginRuleRepository is a mock type for the MarginRuleRepositoryFacade interface
type MockMarginRuleRepository struct {
	mock.Mock
}

func (m *MockMarginRuleRepository) ListActiveVersions(ctx context.Context, categoryID string, asOf time.Time) ([]domain.RuleVersion[domain.MarginRule], error) {
	args := m.Called(ctx, categoryID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleVersion[domain.MarginRule]), args.Error(1)
}

func (m *MockMarginRuleRepository) SaveMarginRule(ctx context.Context, rule domain.MarginRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockMarginRuleRepository) DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error {
	args := m.Called(ctx, ruleID, userID)
	return args.Error(0)
}

// MockFreightRateRepository is a mock type for the FreightRateRepositoryFacade interface
type MockFreightRateRepository struct {
	mock.Mock
}

func (m *MockFreightRateRepository) ListActiveVersions(ctx context.Context, key domain.FreightKey, asOf time.Time) ([]domain.RuleVersion[domain.FreightRate], error) {
	args := m.Called(ctx, key, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleVersion[domain.FreightRate]), args.Error(1)
}

func (m *MockFreightRateRepository) SaveFreightRate(ctx context.Context, rate domain.FreightRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockCurrencyRateRepository is a mock type for the CurrencyRateRepositoryFacade interface
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListActiveVersions(ctx context.Context, base domain.CurrencyCode, asOf time.Time) ([]domain.RuleVersion[domain.CurrencyRate], error) {
	args := m.Called(ctx, base, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RuleVersion[domain.CurrencyRate]), args.Error(1)
}

func (m *MockCurrencyRateRepository) ListRates(ctx context.Context, base domain.CurrencyCode, limit int, before *time.Time) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx, base, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) InsertRateIfAbsent(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, bool, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Bool(1), args.Error(2)
}

// MockSpecialPriceRepository is a mock type for the SpecialPriceRepositoryFacade interface
type MockSpecialPriceRepository struct {
	mock.Mock
}

func (m *MockSpecialPriceRepository) FindSpecialPrice(ctx context.Context, customerCode, itemCode string) (*domain.SpecialPrice, error) {
	args := m.Called(ctx, customerCode, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialPrice), args.Error(1)
}

func (m *MockSpecialPriceRepository) UpsertSpecialPrice(ctx context.Context, price domain.SpecialPrice) (*domain.SpecialPrice, error) {
	args := m.Called(ctx, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialPrice), args.Error(1)
}

// MockBankRateSource is a mock type for the BankRateSource gateway
type MockBankRateSource struct {
	mock.Mock
}

func (m *MockBankRateSource) FetchUSDRate(ctx context.Context) (*domain.BankRateQuote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankRateQuote), args.Error(1)
}

// MockCurrencyRateService is a mock type for the CurrencyRateReaderSvc interface
type MockCurrencyRateService struct {
	mock.Mock
}

func (m *MockCurrencyRateService) CurrentRate(ctx context.Context) (*domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateService) ListRates(ctx context.Context, limit int, nextToken *string) ([]domain.CurrencyRate, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var rates []domain.CurrencyRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.CurrencyRate)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return rates, next, args.Error(2)
}
