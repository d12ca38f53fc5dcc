package dto

import (
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculatePriceRequest defines the body of a standard price calculation.
type CalculatePriceRequest struct {
	ItemID            string  `json:"itemId" binding:"required"`
	CustomerCode      *string `json:"customerCode,omitempty"`
	RequestedQuantity *int    `json:"requestedQuantity,omitempty" binding:"omitempty,gt=0"`
	PortOfOrigin      *string `json:"portOfOrigin,omitempty"`
	ContainerSizeCBM  *int    `json:"containerSizeCBM,omitempty"` // checked only when freight is priced
}

// ToDomain converts the request to a domain.PricingRequest.
func (r CalculatePriceRequest) ToDomain() domain.PricingRequest {
	return domain.PricingRequest{
		ItemID:            r.ItemID,
		CustomerCode:      r.CustomerCode,
		RequestedQuantity: r.RequestedQuantity,
		PortOfOrigin:      r.PortOfOrigin,
		ContainerSizeCBM:  r.ContainerSizeCBM,
	}
}

// PreviewPriceRequest defines the body of a what-if price calculation.
// Override money values are in USD.
type PreviewPriceRequest struct {
	ItemID                string           `json:"itemId" binding:"required"`
	PortOfOrigin          *string          `json:"portOfOrigin,omitempty"`
	ContainerSizeCBM      *int             `json:"containerSizeCBM,omitempty" binding:"omitempty,oneof=33 57 68"`
	OverrideSupplierPrice *decimal.Decimal `json:"overrideSupplierPrice,omitempty"`
	OverrideFreight       *decimal.Decimal `json:"overrideFreight,omitempty"`
	OverrideMargin        *decimal.Decimal `json:"overrideMargin,omitempty"`
	OverrideUsdRate       *decimal.Decimal `json:"overrideUsdRate,omitempty"`
	OverrideBoxCBM        *decimal.Decimal `json:"overrideBoxCBM,omitempty"`
	OverrideQtyPerCarton  *int             `json:"overrideQtyPerCarton,omitempty"`
}

// ToDomain converts the request to a domain.PreviewRequest.
func (r PreviewPriceRequest) ToDomain() domain.PreviewRequest {
	return domain.PreviewRequest{
		ItemID:           r.ItemID,
		PortOfOrigin:     r.PortOfOrigin,
		ContainerSizeCBM: r.ContainerSizeCBM,
		Overrides: domain.PricingOverrides{
			SupplierPrice:           r.OverrideSupplierPrice,
			FreightCostPerContainer: r.OverrideFreight,
			MarginPercentage:        r.OverrideMargin,
			USDToILS:                r.OverrideUsdRate,
			BoxCBM:                  r.OverrideBoxCBM,
			QtyPerCarton:            r.OverrideQtyPerCarton,
		},
	}
}

// ItemSummaryResponse is the item part of a pricing response.
type ItemSummaryResponse struct {
	ItemID       string          `json:"itemId"`
	ItemCode     string          `json:"itemCode"`
	Description  string          `json:"description"`
	QtyPerCarton int             `json:"qtyPerCarton"`
	BoxCBM       decimal.Decimal `json:"boxCBM"`
	CategoryID   *string         `json:"categoryId,omitempty"`
}

// LastSaleResponse describes an item's most recent real sale.
type LastSaleResponse struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Date     *time.Time      `json:"date,omitempty"`
}

// PricingChainResponse carries every figure of the price computation, per carton unless noted.
type PricingChainResponse struct {
	SupplierPricePerCarton      decimal.Decimal    `json:"supplierPricePerCarton"`
	FreightCostPerCarton        decimal.Decimal    `json:"freightCostPerCarton"`
	TotalCostPerCarton          decimal.Decimal    `json:"totalCostPerCarton"`
	MarginPercentage            decimal.Decimal    `json:"marginPercentage"`
	USDToILS                    decimal.Decimal    `json:"usdToIls"`
	CalculatedPricePerCartonUSD decimal.Decimal    `json:"calculatedPricePerCartonUSD"`
	CalculatedPricePerCartonILS decimal.Decimal    `json:"calculatedPricePerCartonILS"`
	SellingPricePerCartonUSD    decimal.Decimal    `json:"sellingPricePerCartonUSD"`
	SellingPricePerCartonILS    decimal.Decimal    `json:"sellingPricePerCartonILS"`
	SellingPricePerUnitUSD      decimal.Decimal    `json:"sellingPricePerUnitUSD"`
	SellingPricePerUnitILS      decimal.Decimal    `json:"sellingPricePerUnitILS"`
	PriceSource                 domain.PriceSource `json:"priceSource"`
	RequestedQuantity           int                `json:"requestedQuantity"`
	NumberOfCartons             int                `json:"numberOfCartons"`
	TotalCBM                    decimal.Decimal    `json:"totalCBM"`
	PortOfOrigin                string             `json:"portOfOrigin,omitempty"`
	ContainerSizeCBM            int                `json:"containerSizeCBM,omitempty"`
	LastSalesOrderPrice         *decimal.Decimal   `json:"lastSalesOrderPrice,omitempty"`
	LastSalesOrderCurrency      *string            `json:"lastSalesOrderCurrency,omitempty"`
	LastSalesOrderDate          *time.Time         `json:"lastSalesOrderDate,omitempty"`

	// Preview only.
	SupplierPriceSource domain.ValueSource `json:"supplierPriceSource,omitempty"`
	FreightSource       domain.ValueSource `json:"freightSource,omitempty"`
	MarginSource        domain.ValueSource `json:"marginSource,omitempty"`
	USDRateSource       domain.ValueSource `json:"usdRateSource,omitempty"`
	BoxCBMSource        domain.ValueSource `json:"boxCBMSource,omitempty"`
	QtyPerCartonSource  domain.ValueSource `json:"qtyPerCartonSource,omitempty"`
	BankRate            *decimal.Decimal   `json:"bankRate,omitempty"`
	RateMarginPercent   *decimal.Decimal   `json:"rateMarginPercent,omitempty"`
	CategoryName        string             `json:"categoryName,omitempty"`
	LastSaleInfo        *LastSaleResponse  `json:"lastSaleInfo,omitempty"`
}

// PricingResponse is the body of a successful pricing call.
type PricingResponse struct {
	Item         ItemSummaryResponse  `json:"item"`
	Pricing      PricingChainResponse `json:"pricing"`
	CalculatedAt time.Time            `json:"calculatedAt"`
}

// ToPricingResponse converts a domain.PricingResult to its response DTO.
func ToPricingResponse(r *domain.PricingResult) PricingResponse {
	c := r.Chain
	chain := PricingChainResponse{
		SupplierPricePerCarton:      c.SupplierPricePerCarton,
		FreightCostPerCarton:        c.FreightCostPerCarton,
		TotalCostPerCarton:          c.TotalCostPerCarton,
		MarginPercentage:            c.MarginPercentage,
		USDToILS:                    c.USDToILS,
		CalculatedPricePerCartonUSD: c.CalculatedPricePerCartonUSD,
		CalculatedPricePerCartonILS: c.CalculatedPricePerCartonILS,
		SellingPricePerCartonUSD:    c.SellingPricePerCartonUSD,
		SellingPricePerCartonILS:    c.SellingPricePerCartonILS,
		SellingPricePerUnitUSD:      c.SellingPricePerUnitUSD,
		SellingPricePerUnitILS:      c.SellingPricePerUnitILS,
		PriceSource:                 c.PriceSource,
		RequestedQuantity:           r.RequestedQuantity,
		NumberOfCartons:             r.NumberOfCartons,
		TotalCBM:                    r.TotalCBM,
		PortOfOrigin:                r.PortOfOrigin,
		ContainerSizeCBM:            r.ContainerSizeCBM,
	}
	if r.LastSale != nil {
		currency := string(r.LastSale.Currency)
		chain.LastSalesOrderPrice = &r.LastSale.Price
		chain.LastSalesOrderCurrency = &currency
		chain.LastSalesOrderDate = r.LastSale.Date
	}
	if p := r.Preview; p != nil {
		chain.SupplierPriceSource = p.Sources.SupplierPrice
		chain.FreightSource = p.Sources.Freight
		chain.MarginSource = p.Sources.Margin
		chain.USDRateSource = p.Sources.USDRate
		chain.BoxCBMSource = p.Sources.BoxCBM
		chain.QtyPerCartonSource = p.Sources.QtyPerCarton
		chain.BankRate = p.BankRate
		chain.RateMarginPercent = p.RateMarginPercent
		chain.CategoryName = p.CategoryName
		if p.LastSaleInfo != nil {
			chain.LastSaleInfo = &LastSaleResponse{
				Price:    p.LastSaleInfo.Price,
				Currency: string(p.LastSaleInfo.Currency),
				Date:     p.LastSaleInfo.Date,
			}
		}
	}

	return PricingResponse{
		Item: ItemSummaryResponse{
			ItemID:       r.Item.ItemID,
			ItemCode:     r.Item.ItemCode,
			Description:  r.Item.Description,
			QtyPerCarton: r.Item.QtyPerCarton,
			BoxCBM:       r.Item.BoxCBM,
			CategoryID:   r.Item.CategoryID,
		},
		Pricing:      chain,
		CalculatedAt: r.CalculatedAt,
	}
}
