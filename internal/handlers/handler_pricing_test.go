package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/handlers"
	"github.com/saragoldblat100/br-sales/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) CalculatePrice(ctx context.Context, req domain.PricingRequest) (*domain.PricingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingResult), args.Error(1)
}
func (m *MockPricingService) PreviewPrice(ctx context.Context, req domain.PreviewRequest) (*domain.PricingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingResult), args.Error(1)
}

var _ portssvc.PricingSvc = (*MockPricingService)(nil)

// --- Mock CurrencyRateService ---
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
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.CurrencyRate), next, args.Error(2)
}
func (m *MockCurrencyRateService) RefreshToday(ctx context.Context) (*domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

var _ portssvc.CurrencyRateSvcFacade = (*MockCurrencyRateService)(nil)

// --- Mock PricingRuleService ---
type MockPricingRuleService struct {
	mock.Mock
}

func (m *MockPricingRuleService) CreateMarginRule(ctx context.Context, req dto.CreateMarginRuleRequest, creatorUserID string) (*domain.MarginRule, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarginRule), args.Error(1)
}
func (m *MockPricingRuleService) DeactivateMarginRule(ctx context.Context, ruleID string, userID string) error {
	args := m.Called(ctx, ruleID, userID)
	return args.Error(0)
}
func (m *MockPricingRuleService) CreateFreightRate(ctx context.Context, req dto.CreateFreightRateRequest, creatorUserID string) (*domain.FreightRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FreightRate), args.Error(1)
}
func (m *MockPricingRuleService) UpsertSpecialPrice(ctx context.Context, req dto.UpsertSpecialPriceRequest, userID string) (*domain.SpecialPrice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpecialPrice), args.Error(1)
}

var _ portssvc.PricingRuleSvc = (*MockPricingRuleService)(nil)

// --- Test Suite ---
type PricingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockPricing     *MockPricingService
	mockRates       *MockCurrencyRateService
	mockRules       *MockPricingRuleService
	jwtSecret       string
	testUserID      string
	authHeaderValue string
}

func TestPricingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PricingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "br-sales-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.testUserID = "user-42"
	suite.authHeaderValue = "Bearer " + suite.generateTestToken(suite.testUserID)

	suite.mockPricing = new(MockPricingService)
	suite.mockRates = new(MockCurrencyRateService)
	suite.mockRules = new(MockPricingRuleService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Pricing:      suite.mockPricing,
		CurrencyRate: suite.mockRates,
		PricingRules: suite.mockRules,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *PricingHandlerTestSuite) TearDownTest() {
	suite.mockPricing.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
	suite.mockRules.AssertExpectations(suite.T())
}

func (suite *PricingHandlerTestSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeaderValue)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PricingHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleResult() *domain.PricingResult {
	return &domain.PricingResult{
		Item: domain.ItemSummary{
			ItemID:       "item-1",
			ItemCode:     "KT-100",
			Description:  "Steel pot",
			QtyPerCarton: 12,
			BoxCBM:       decimal.RequireFromString("0.068"),
		},
		Chain: domain.PricingChain{
			SupplierPricePerCarton:   decimal.RequireFromString("120"),
			SellingPricePerCartonUSD: decimal.RequireFromString("65.27"),
			SellingPricePerCartonILS: decimal.RequireFromString("241.50"),
			PriceSource:              domain.PriceSourceCalculated,
		},
		PortOfOrigin:      "NINGBO",
		ContainerSizeCBM:  68,
		RequestedQuantity: 12,
		NumberOfCartons:   1,
		TotalCBM:          decimal.RequireFromString("0.068"),
		CalculatedAt:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

// --- Pricing ---

func (suite *PricingHandlerTestSuite) TestCalculatePrice_Success() {
	customer := "C-7"
	expectedReq := domain.PricingRequest{ItemID: "item-1", CustomerCode: &customer}
	suite.mockPricing.On("CalculatePrice", mock.Anything, expectedReq).Return(sampleResult(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pricing/calculate", map[string]any{"itemId": "item-1", "customerCode": "C-7"}, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PricingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("KT-100", resp.Item.ItemCode)
	suite.True(resp.Pricing.SellingPricePerCartonUSD.Equal(decimal.RequireFromString("65.27")))
	suite.Equal(domain.PriceSourceCalculated, resp.Pricing.PriceSource)
	suite.Equal(1, resp.Pricing.NumberOfCartons)
}

func (suite *PricingHandlerTestSuite) TestCalculatePrice_ContainerSizeLeftToService() {
	customer := "C-7"
	size := 40
	expectedReq := domain.PricingRequest{ItemID: "item-1", CustomerCode: &customer, ContainerSizeCBM: &size}
	suite.mockPricing.On("CalculatePrice", mock.Anything, expectedReq).Return(sampleResult(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pricing/calculate", map[string]any{"itemId": "item-1", "customerCode": "C-7", "containerSizeCBM": 40}, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPricing.AssertExpectations(suite.T())
}

func (suite *PricingHandlerTestSuite) TestCalculatePrice_Unauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", bytes.NewBufferString(`{"itemId":"item-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PricingHandlerTestSuite) TestCalculatePrice_BindingErrors() {
	testCases := []struct {
		name string
		body map[string]any
	}{
		{"missing item", map[string]any{"customerCode": "C-7"}},
		{"non-numeric container", map[string]any{"itemId": "item-1", "containerSizeCBM": "forty"}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/pricing/calculate", tc.body, nil)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (suite *PricingHandlerTestSuite) TestCalculatePrice_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"item not found", fmt.Errorf("%w: item-1", apperrors.ErrItemNotFound), http.StatusNotFound},
		{"category margin missing", fmt.Errorf("%w: cat-kitchen", apperrors.ErrCategoryMarginMissing), http.StatusBadRequest},
		{"freight missing", apperrors.ErrFreightRateMissing, http.StatusBadRequest},
		{"no currency rate", apperrors.ErrNoCurrencyRateAvailable, http.StatusBadRequest},
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockPricing.On("CalculatePrice", mock.Anything, domain.PricingRequest{ItemID: "item-1"}).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/pricing/calculate", map[string]any{"itemId": "item-1"}, nil)

			suite.Equal(tc.wantStatus, w.Code)
			suite.True(suite.decodeError(w).Error)
		})
	}
}

func (suite *PricingHandlerTestSuite) TestCalculatePrice_MissingDataTranslated() {
	missing := apperrors.NewMissingPricingDataError(domain.FieldSupplierPrice, domain.FieldBoxCBM)
	suite.mockPricing.On("CalculatePrice", mock.Anything, domain.PricingRequest{ItemID: "item-1"}).Return(nil, missing).Twice()

	w := suite.do(http.MethodPost, "/api/v1/pricing/calculate", map[string]any{"itemId": "item-1"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"Supplier price", "Carton volume (CBM)"}, suite.decodeError(w).MissingFields)

	w = suite.do(http.MethodPost, "/api/v1/pricing/calculate", map[string]any{"itemId": "item-1"}, map[string]string{"Accept-Language": "he-IL,he;q=0.9"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"מחיר ספק", "נפח קרטון (CBM)"}, suite.decodeError(w).MissingFields)
}

func (suite *PricingHandlerTestSuite) TestPreviewPrice_Success() {
	result := sampleResult()
	result.Preview = &domain.PreviewDetails{
		Sources: domain.FieldSources{
			SupplierPrice: domain.ValueSourceDatabase,
			Freight:       domain.ValueSourceDatabase,
			Margin:        domain.ValueSourceOverride,
			USDRate:       domain.ValueSourceDatabase,
			BoxCBM:        domain.ValueSourceDatabase,
			QtyPerCarton:  domain.ValueSourceDatabase,
		},
		CategoryName: "Kitchen",
	}
	matchesOverride := mock.MatchedBy(func(req domain.PreviewRequest) bool {
		m := req.Overrides.MarginPercentage
		return req.ItemID == "item-1" && m != nil && m.Equal(decimal.NewFromInt(25)) && req.Overrides.SupplierPrice == nil
	})
	suite.mockPricing.On("PreviewPrice", mock.Anything, matchesOverride).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pricing/preview", map[string]any{"itemId": "item-1", "overrideMargin": 25}, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PricingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ValueSourceOverride, resp.Pricing.MarginSource)
	suite.Equal(domain.ValueSourceDatabase, resp.Pricing.FreightSource)
	suite.Equal("Kitchen", resp.Pricing.CategoryName)
}

// --- Currency rates ---

func (suite *PricingHandlerTestSuite) TestGetCurrentRate() {
	rate := domain.NewCurrencyRate("rate-1", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("3.70"), decimal.RequireFromString("2"), "bank_of_israel")
	suite.mockRates.On("CurrentRate", mock.Anything).Return(&rate, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates/current", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-10", resp.RateDate)
	suite.True(resp.USDRateWithMargin.Equal(decimal.RequireFromString("3.774")))
}

func (suite *PricingHandlerTestSuite) TestGetCurrentRate_NoneAvailable() {
	suite.mockRates.On("CurrentRate", mock.Anything).Return(nil, apperrors.ErrNoCurrencyRateAvailable).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates/current", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PricingHandlerTestSuite) TestListRates() {
	token := "next-page"
	rates := []domain.CurrencyRate{
		domain.NewCurrencyRate("rate-2", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("3.70"), decimal.Zero, "bank_of_israel"),
	}
	suite.mockRates.On("ListRates", mock.Anything, 1, (*string)(nil)).Return(rates, &token, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates?limit=1", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCurrencyRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rates, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func (suite *PricingHandlerTestSuite) TestListRates_InvalidLimit() {
	w := suite.do(http.MethodGet, "/api/v1/currency-rates?limit=1000", nil, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PricingHandlerTestSuite) TestRefreshToday() {
	rate := domain.NewCurrencyRate("rate-3", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("3.71"), decimal.Zero, "bank_of_israel")
	suite.mockRates.On("RefreshToday", mock.Anything).Return(&rate, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currency-rates/refresh", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Pricing rules ---

func (suite *PricingHandlerTestSuite) TestCreateMarginRule() {
	matchesReq := mock.MatchedBy(func(req dto.CreateMarginRuleRequest) bool {
		return req.CategoryID == "cat-kitchen" && req.MarginPercentage.Equal(decimal.NewFromInt(20))
	})
	rule := &domain.MarginRule{RuleID: "rule-1", CategoryID: "cat-kitchen", MarginPercentage: decimal.NewFromInt(20), IsActive: true}
	suite.mockRules.On("CreateMarginRule", mock.Anything, matchesReq, suite.testUserID).Return(rule, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/pricing-rules/margins", map[string]any{"categoryId": "cat-kitchen", "marginPercentage": "20"}, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.MarginRuleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("rule-1", resp.RuleID)
}

func (suite *PricingHandlerTestSuite) TestDeactivateMarginRule() {
	suite.mockRules.On("DeactivateMarginRule", mock.Anything, "rule-1", suite.testUserID).Return(nil).Once()
	suite.mockRules.On("DeactivateMarginRule", mock.Anything, "missing", suite.testUserID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/pricing-rules/margins/rule-1", nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/pricing-rules/margins/missing", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PricingHandlerTestSuite) TestCreateFreightRate_InvalidContainer() {
	w := suite.do(http.MethodPost, "/api/v1/pricing-rules/freight", map[string]any{"portOfOrigin": "NINGBO", "containerSizeCBM": 40, "freightCost": "4700"}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PricingHandlerTestSuite) TestUpsertSpecialPrice() {
	matchesReq := mock.MatchedBy(func(req dto.UpsertSpecialPriceRequest) bool {
		return req.CustomerCode == "C-7" && req.ItemCode == "KT-100" && req.Currency == "ILS"
	})
	saved := &domain.SpecialPrice{CustomerCode: "C-7", ItemCode: "KT-100", Price: decimal.NewFromInt(100), Currency: domain.CurrencyILS}
	suite.mockRules.On("UpsertSpecialPrice", mock.Anything, matchesReq, suite.testUserID).Return(saved, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/pricing-rules/special-prices", map[string]any{"customerCode": "C-7", "itemCode": "KT-100", "price": "100", "currency": "ILS"}, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PricingHandlerTestSuite) TestUpsertSpecialPrice_UnknownCurrency() {
	w := suite.do(http.MethodPut, "/api/v1/pricing-rules/special-prices", map[string]any{"customerCode": "C-7", "itemCode": "KT-100", "price": "100", "currency": "EUR"}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
