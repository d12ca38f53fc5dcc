package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource tells which input determined the final price.
type PriceSource string

const (
	PriceSourceSpecialPrice PriceSource = "special_price"
	PriceSourceCalculated   PriceSource = "calculated"
	PriceSourceLastSale     PriceSource = "last_sale"
)

// ValueSource is the provenance of one pricing input.
type ValueSource string

const (
	ValueSourceOverride ValueSource = "override"
	ValueSourceDatabase ValueSource = "database"
)

// PricingOverrides holds caller supplied replacements for resolved inputs.
// A nil field means "resolve from stored data". Money overrides are in USD.
type PricingOverrides struct {
	SupplierPrice           *decimal.Decimal
	FreightCostPerContainer *decimal.Decimal
	MarginPercentage        *decimal.Decimal
	USDToILS                *decimal.Decimal
	BoxCBM                  *decimal.Decimal
	QtyPerCarton            *int
}

// PricingRequest asks for the price actually charged for an item.
type PricingRequest struct {
	ItemID            string
	CustomerCode      *string
	RequestedQuantity *int // units; defaults to one carton
	PortOfOrigin      *string
	ContainerSizeCBM  *int
}

// PreviewRequest asks what the calculated price would be under the given overrides.
type PreviewRequest struct {
	ItemID           string
	PortOfOrigin     *string
	ContainerSizeCBM *int
	Overrides        PricingOverrides
}

// CostInputs are the fully resolved inputs of the standard cost buildup.
type CostInputs struct {
	SupplierPrice           decimal.Decimal // per carton
	SupplierCurrency        CurrencyCode
	FreightCostPerContainer decimal.Decimal
	ContainerSizeCBM        int
	BoxCBM                  decimal.Decimal
	QtyPerCarton            int
	MarginPercentage        decimal.Decimal
	USDToILS                decimal.Decimal
	LastSalePrice           decimal.Decimal // zero when there is no last sale
	LastSaleCurrency        CurrencyCode
}

// FieldSources records the provenance of each overridable input.
type FieldSources struct {
	SupplierPrice ValueSource `json:"supplierPriceSource"`
	Freight       ValueSource `json:"freightSource"`
	Margin        ValueSource `json:"marginSource"`
	USDRate       ValueSource `json:"usdRateSource"`
	BoxCBM        ValueSource `json:"boxCBMSource"`
	QtyPerCarton  ValueSource `json:"qtyPerCartonSource"`
}

// PricingBasis is the pipeline a price is derived from. It is either a
// SpecialPriceBasis or a StandardCostBasis.
type PricingBasis interface {
	isPricingBasis()
}

// SpecialPriceBasis prices an item from a negotiated customer price.
type SpecialPriceBasis struct {
	SpecialPrice SpecialPrice
	QtyPerCarton int
	USDToILS     decimal.Decimal
}

// StandardCostBasis prices an item from its cost buildup.
type StandardCostBasis struct {
	Inputs     CostInputs
	ApplyFloor bool
}

func (SpecialPriceBasis) isPricingBasis() {}
func (StandardCostBasis) isPricingBasis() {}

// ItemSummary is the item data echoed in a pricing result.
type ItemSummary struct {
	ItemID       string
	ItemCode     string
	Description  string
	QtyPerCarton int
	BoxCBM       decimal.Decimal
	CategoryID   *string
}

// PricingChain holds every figure of a price computation, per carton unless noted.
type PricingChain struct {
	SupplierPricePerCarton      decimal.Decimal // USD
	FreightCostPerCarton        decimal.Decimal // USD
	TotalCostPerCarton          decimal.Decimal // USD
	MarginPercentage            decimal.Decimal
	USDToILS                    decimal.Decimal
	CalculatedPricePerCartonUSD decimal.Decimal
	CalculatedPricePerCartonILS decimal.Decimal
	SellingPricePerCartonUSD    decimal.Decimal
	SellingPricePerCartonILS    decimal.Decimal
	SellingPricePerUnitUSD      decimal.Decimal
	SellingPricePerUnitILS      decimal.Decimal
	PriceSource                 PriceSource
}

// PreviewDetails carries the provenance and informational fields of a preview.
type PreviewDetails struct {
	Sources           FieldSources
	BankRate          *decimal.Decimal // nil when the rate was overridden
	RateMarginPercent *decimal.Decimal
	CategoryName      string
	LastSaleInfo      *LastSale
}

// PricingResult is the outcome of a successful price calculation.
type PricingResult struct {
	Item              ItemSummary
	Chain             PricingChain
	PortOfOrigin      string
	ContainerSizeCBM  int
	RequestedQuantity int
	NumberOfCartons   int
	TotalCBM          decimal.Decimal
	LastSale          *LastSale
	Preview           *PreviewDetails
	CalculatedAt      time.Time
}
