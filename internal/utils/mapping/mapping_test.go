package mapping

import (
	"testing"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainItem_NullColumns(t *testing.T) {
	item := ToDomainItem(models.Item{ItemID: "item-1", ItemCode: "BR-1"})

	assert.True(t, item.SupplierPrice.IsZero())
	assert.True(t, item.BoxCBM.IsZero())
	assert.Zero(t, item.QtyPerCarton)
	assert.Nil(t, item.CategoryID)
	assert.Nil(t, item.LastSale)
	assert.Equal(t, []string{domain.FieldSupplierPrice, domain.FieldBoxCBM, domain.FieldQtyPerCarton, domain.FieldCategory},
		domain.RequiredInputs(item, domain.PricingOverrides{}))
}

func TestToDomainItem_LastSale(t *testing.T) {
	qty := 12
	ils := "ILS"
	soldAt := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	item := ToDomainItem(models.Item{
		ItemID:                 "item-1",
		QtyPerCarton:           &qty,
		SupplierPrice:          decimal.NewNullDecimal(decimal.NewFromInt(10)),
		LastSalesOrderPrice:    decimal.NewNullDecimal(decimal.NewFromInt(70)),
		LastSalesOrderCurrency: &ils,
		LastSalesOrderDate:     &soldAt,
	})

	require.NotNil(t, item.LastSale)
	assert.Equal(t, domain.CurrencyILS, item.LastSale.Currency)
	assert.True(t, item.LastSale.Price.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 12, item.QtyPerCarton)
	assert.Equal(t, domain.CurrencyCode(""), item.SupplierCurrency)
}

func TestToDomainCurrencyRate_NormalizesDate(t *testing.T) {
	local := time.Date(2026, 3, 10, 0, 0, 0, 0, time.FixedZone("IST", 2*60*60))

	rate := ToDomainCurrencyRate(models.CurrencyRate{RateID: "r1", RateDate: local})

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), rate.RateDate)
}
