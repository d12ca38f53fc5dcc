package mapping

import (
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainItem converts a model Item to a domain Item. NULL numeric columns
// become zero values, which the pricing validation reports as missing.
func ToDomainItem(m models.Item) domain.Item {
	item := domain.Item{
		ItemID:        m.ItemID,
		ItemCode:      m.ItemCode,
		Description:   m.Description,
		BoxCBM:        nullToZero(m.BoxCBM),
		CategoryID:    m.CategoryID,
		SupplierPrice: nullToZero(m.SupplierPrice),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.QtyPerCarton != nil {
		item.QtyPerCarton = *m.QtyPerCarton
	}
	if m.SupplierCurrency != nil {
		item.SupplierCurrency = domain.CurrencyCode(*m.SupplierCurrency)
	}
	if m.LastSalesOrderPrice.Valid {
		item.LastSale = &domain.LastSale{
			Price: m.LastSalesOrderPrice.Decimal,
			Date:  m.LastSalesOrderDate,
		}
		if m.LastSalesOrderCurrency != nil {
			item.LastSale.Currency = domain.CurrencyCode(*m.LastSalesOrderCurrency)
		}
	}
	return item
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{CategoryID: m.CategoryID, Name: m.Name}
}

func nullToZero(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}
