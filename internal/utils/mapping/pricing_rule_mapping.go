package mapping

import (
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/models"
)

// ToModelMarginRule converts a domain MarginRule to a model MarginRule
func ToModelMarginRule(d domain.MarginRule) models.MarginRule {
	return models.MarginRule{
		RuleID:           d.RuleID,
		CategoryID:       d.CategoryID,
		MarginPercentage: d.MarginPercentage,
		ValidFrom:        d.ValidFrom,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMarginRule converts a model MarginRule to a domain MarginRule
func ToDomainMarginRule(m models.MarginRule) domain.MarginRule {
	return domain.MarginRule{
		RuleID:           m.RuleID,
		CategoryID:       m.CategoryID,
		MarginPercentage: m.MarginPercentage,
		ValidFrom:        m.ValidFrom,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFreightRate converts a domain FreightRate to a model FreightRate
func ToModelFreightRate(d domain.FreightRate) models.FreightRate {
	return models.FreightRate{
		RateID:           d.RateID,
		PortOfOrigin:     d.PortOfOrigin,
		ContainerSizeCBM: d.ContainerSizeCBM,
		FreightCost:      d.FreightCost,
		ValidFrom:        d.ValidFrom,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFreightRate converts a model FreightRate to a domain FreightRate
func ToDomainFreightRate(m models.FreightRate) domain.FreightRate {
	return domain.FreightRate{
		RateID:           m.RateID,
		PortOfOrigin:     m.PortOfOrigin,
		ContainerSizeCBM: m.ContainerSizeCBM,
		FreightCost:      m.FreightCost,
		ValidFrom:        m.ValidFrom,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSpecialPrice converts a domain SpecialPrice to a model SpecialPrice
func ToModelSpecialPrice(d domain.SpecialPrice) models.SpecialPrice {
	return models.SpecialPrice{
		CustomerCode: d.CustomerCode,
		ItemCode:     d.ItemCode,
		Price:        d.Price,
		Currency:     string(d.Currency),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSpecialPrice converts a model SpecialPrice to a domain SpecialPrice
func ToDomainSpecialPrice(m models.SpecialPrice) domain.SpecialPrice {
	return domain.SpecialPrice{
		CustomerCode: m.CustomerCode,
		ItemCode:     m.ItemCode,
		Price:        m.Price,
		Currency:     domain.CurrencyCode(m.Currency),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
