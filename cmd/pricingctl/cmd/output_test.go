package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() *domain.PricingResult {
	return &domain.PricingResult{
		Item: domain.ItemSummary{ItemID: "item-1", ItemCode: "KT-100", Description: "Steel pot", QtyPerCarton: 12},
		Chain: domain.PricingChain{
			SupplierPricePerCarton:      decimal.RequireFromString("10"),
			FreightCostPerCarton:        decimal.RequireFromString("4.70"),
			TotalCostPerCarton:          decimal.RequireFromString("14.70"),
			MarginPercentage:            decimal.RequireFromString("20"),
			USDToILS:                    decimal.RequireFromString("3.70"),
			CalculatedPricePerCartonUSD: decimal.RequireFromString("17.64"),
			CalculatedPricePerCartonILS: decimal.RequireFromString("65.27"),
			SellingPricePerCartonUSD:    decimal.RequireFromString("17.64"),
			SellingPricePerCartonILS:    decimal.RequireFromString("65.27"),
			SellingPricePerUnitUSD:      decimal.RequireFromString("1.47"),
			SellingPricePerUnitILS:      decimal.RequireFromString("5.44"),
			PriceSource:                 domain.PriceSourceCalculated,
		},
		RequestedQuantity: 12,
		NumberOfCartons:   1,
		TotalCBM:          decimal.RequireFromString("0.068"),
		CalculatedAt:      time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestPrintPricing_Table(t *testing.T) {
	jsonOut = false
	var buf bytes.Buffer

	require.NoError(t, printPricing(&buf, sampleQuote()))

	out := buf.String()
	assert.Contains(t, out, "KT-100 (Steel pot)")
	assert.Contains(t, out, "calculated")
	assert.Contains(t, out, "17.64 | 65.27")
	assert.Contains(t, out, "12 units, 1 cartons, 0.068 CBM")
	assert.NotContains(t, out, "Sources")
}

func TestPrintPricing_JSON(t *testing.T) {
	jsonOut = true
	t.Cleanup(func() { jsonOut = false })
	var buf bytes.Buffer

	require.NoError(t, printPricing(&buf, sampleQuote()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	pricing, ok := decoded["pricing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "calculated", pricing["priceSource"])
}

func TestPrintRates_Table(t *testing.T) {
	jsonOut = false
	var buf bytes.Buffer
	rate := domain.NewCurrencyRate("rate-1", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("3.7"), decimal.RequireFromString("2"), domain.RateSourceBankOfIsrael)

	require.NoError(t, printRates(&buf, []domain.CurrencyRate{rate}))

	assert.Contains(t, buf.String(), "2026-03-10")
	assert.Contains(t, buf.String(), "3.7740")
}

func TestDescribeError(t *testing.T) {
	language = "he"
	t.Cleanup(func() { language = "en" })

	err := describeError(apperrors.NewMissingPricingDataError(domain.FieldQtyPerCarton))
	assert.EqualError(t, err, "missing pricing data: כמות בקרטון")

	other := errors.New("boom")
	assert.Same(t, other, describeError(other))
	assert.NoError(t, describeError(nil))
}
