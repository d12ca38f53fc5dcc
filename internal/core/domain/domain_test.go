package domain_test

import (
	"testing"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func completeItem() domain.Item {
	return domain.Item{
		ItemID:        "item-1",
		SupplierPrice: decimal.NewFromInt(10),
		BoxCBM:        decimal.RequireFromString("0.068"),
		QtyPerCarton:  12,
		CategoryID:    stringPtr("cat-1"),
	}
}

func TestRequiredInputs(t *testing.T) {
	tests := []struct {
		name      string
		item      func() domain.Item
		overrides domain.PricingOverrides
		want      []string
	}{
		{
			name: "complete item",
			item: completeItem,
		},
		{
			name: "missing supplier price",
			item: func() domain.Item {
				i := completeItem()
				i.SupplierPrice = decimal.Zero
				return i
			},
			want: []string{domain.FieldSupplierPrice},
		},
		{
			name: "supplier price waived by override",
			item: func() domain.Item {
				i := completeItem()
				i.SupplierPrice = decimal.Zero
				return i
			},
			overrides: domain.PricingOverrides{SupplierPrice: decimalPtr(decimal.NewFromInt(5))},
		},
		{
			name: "everything missing",
			item: func() domain.Item { return domain.Item{ItemID: "x"} },
			want: []string{domain.FieldSupplierPrice, domain.FieldBoxCBM, domain.FieldQtyPerCarton, domain.FieldCategory},
		},
		{
			name: "category waived by margin override",
			item: func() domain.Item {
				i := completeItem()
				i.CategoryID = nil
				return i
			},
			overrides: domain.PricingOverrides{MarginPercentage: decimalPtr(decimal.NewFromInt(20))},
		},
		{
			name: "empty category id counts as missing",
			item: func() domain.Item {
				i := completeItem()
				i.CategoryID = stringPtr("")
				return i
			},
			want: []string{domain.FieldCategory},
		},
		{
			name: "packaging waived by overrides",
			item: func() domain.Item {
				i := completeItem()
				i.BoxCBM = decimal.Zero
				i.QtyPerCarton = 0
				return i
			},
			overrides: domain.PricingOverrides{
				BoxCBM:       decimalPtr(decimal.RequireFromString("0.05")),
				QtyPerCarton: intPtr(6),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RequiredInputs(tt.item(), tt.overrides))
		})
	}
}

func TestNewCurrencyRate(t *testing.T) {
	at := time.Date(2024, 3, 10, 22, 30, 0, 0, time.FixedZone("IDT", 3*3600))
	rate := domain.NewCurrencyRate("r1", at, decimal.RequireFromString("3.7"), decimal.NewFromInt(2), domain.RateSourceBankOfIsrael)

	assert.Equal(t, domain.CurrencyUSD, rate.BaseCurrency)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), rate.RateDate)
	assert.True(t, rate.USDRateWithMargin.Equal(decimal.RequireFromString("3.774")), rate.USDRateWithMargin.String())
	assert.True(t, rate.IsActive)
	assert.True(t, rate.IsFor(at))
	assert.False(t, rate.IsFor(at.AddDate(0, 0, 1)))
}

func TestApplyRateMargin_RoundsToFourPlaces(t *testing.T) {
	got := domain.ApplyRateMargin(decimal.RequireFromString("3.6123"), decimal.RequireFromString("1.5"))
	assert.Equal(t, "3.6665", got.StringFixed(4))
}

func TestParseCurrencyCode(t *testing.T) {
	c, ok := domain.ParseCurrencyCode(" usd ")
	assert.True(t, ok)
	assert.Equal(t, domain.CurrencyUSD, c)

	_, ok = domain.ParseCurrencyCode("EUR")
	assert.False(t, ok)

	assert.Equal(t, domain.CurrencyILS, domain.CurrencyCode("").OrDefault(domain.CurrencyILS))
	assert.Equal(t, domain.CurrencyUSD, domain.CurrencyUSD.OrDefault(domain.CurrencyILS))
}

func TestIsValidContainerSize(t *testing.T) {
	for _, size := range []int{33, 57, 68} {
		assert.True(t, domain.IsValidContainerSize(size))
	}
	assert.False(t, domain.IsValidContainerSize(40))
}
