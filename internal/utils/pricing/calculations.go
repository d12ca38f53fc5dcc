package pricing

import (
	"fmt"

	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculate derives the pricing chain for a basis. It performs no lookups.
func Calculate(basis domain.PricingBasis, mode RoundingMode) (domain.PricingChain, error) {
	r := rounder{mode: mode}
	switch b := basis.(type) {
	case domain.SpecialPriceBasis:
		return r.special(b)
	case domain.StandardCostBasis:
		return r.standard(b)
	default:
		return domain.PricingChain{}, fmt.Errorf("unsupported pricing basis %T", basis)
	}
}

func (r rounder) special(b domain.SpecialPriceBasis) (domain.PricingChain, error) {
	if b.QtyPerCarton <= 0 {
		return domain.PricingChain{}, fmt.Errorf("%w: quantity per carton must be positive", apperrors.ErrValidation)
	}
	if !b.USDToILS.IsPositive() {
		return domain.PricingChain{}, fmt.Errorf("%w: currency rate must be positive", apperrors.ErrValidation)
	}

	rate := b.USDToILS
	price := b.SpecialPrice.Price
	var usd, ils decimal.Decimal
	switch b.SpecialPrice.Currency {
	case domain.CurrencyUSD:
		usd = price
		ils = r.stage(price.Mul(rate), MoneyPlaces)
	case domain.CurrencyILS:
		ils = price
		usd = r.stage(price.Div(rate), MoneyPlaces)
	default:
		return domain.PricingChain{}, fmt.Errorf("%w: unsupported special price currency %q", apperrors.ErrValidation, b.SpecialPrice.Currency)
	}

	qty := decimal.NewFromInt(int64(b.QtyPerCarton))
	return domain.PricingChain{
		USDToILS:                 rate.Round(RatePlaces),
		SellingPricePerCartonUSD: money(usd),
		SellingPricePerCartonILS: money(ils),
		SellingPricePerUnitUSD:   money(usd.Div(qty)),
		SellingPricePerUnitILS:   money(ils.Div(qty)),
		PriceSource:              domain.PriceSourceSpecialPrice,
	}, nil
}

func (r rounder) standard(b domain.StandardCostBasis) (domain.PricingChain, error) {
	in := b.Inputs
	if in.ContainerSizeCBM <= 0 {
		return domain.PricingChain{}, fmt.Errorf("%w: container size must be positive", apperrors.ErrValidation)
	}
	if in.QtyPerCarton <= 0 {
		return domain.PricingChain{}, fmt.Errorf("%w: quantity per carton must be positive", apperrors.ErrValidation)
	}
	if !in.USDToILS.IsPositive() {
		return domain.PricingChain{}, fmt.Errorf("%w: currency rate must be positive", apperrors.ErrValidation)
	}
	rate := in.USDToILS

	supplierUSD := in.SupplierPrice
	if in.SupplierCurrency == domain.CurrencyILS {
		supplierUSD = r.stage(in.SupplierPrice.Div(rate), MoneyPlaces)
	}

	freight := r.stage(FreightPerCarton(in.FreightCostPerContainer, in.ContainerSizeCBM, in.BoxCBM), MoneyPlaces)
	total := r.stage(supplierUSD.Add(freight), MoneyPlaces)
	calcUSD := r.stage(total.Mul(decimal.NewFromInt(1).Add(in.MarginPercentage.Div(hundred))), MoneyPlaces)
	calcILS := r.stage(calcUSD.Mul(rate), MoneyPlaces)

	finalILS, source := calcILS, domain.PriceSourceCalculated
	if b.ApplyFloor && in.LastSalePrice.IsPositive() {
		lastILS := in.LastSalePrice
		if in.LastSaleCurrency == domain.CurrencyUSD {
			lastILS = r.stage(lastILS.Mul(rate), MoneyPlaces)
		}
		if money(lastILS).GreaterThan(money(calcILS)) {
			finalILS, source = lastILS, domain.PriceSourceLastSale
		}
	}
	finalUSD := r.stage(finalILS.Div(rate), MoneyPlaces)

	qty := decimal.NewFromInt(int64(in.QtyPerCarton))
	return domain.PricingChain{
		SupplierPricePerCarton:      money(supplierUSD),
		FreightCostPerCarton:        money(freight),
		TotalCostPerCarton:          money(total),
		MarginPercentage:            in.MarginPercentage,
		USDToILS:                    rate.Round(RatePlaces),
		CalculatedPricePerCartonUSD: money(calcUSD),
		CalculatedPricePerCartonILS: money(calcILS),
		SellingPricePerCartonUSD:    money(finalUSD),
		SellingPricePerCartonILS:    money(finalILS),
		SellingPricePerUnitUSD:      money(finalUSD.Div(qty)),
		SellingPricePerUnitILS:      money(finalILS.Div(qty)),
		PriceSource:                 source,
	}, nil
}

// FreightPerCarton spreads a container's freight cost over one carton's volume.
func FreightPerCarton(freightPerContainer decimal.Decimal, containerSizeCBM int, boxCBM decimal.Decimal) decimal.Decimal {
	return freightPerContainer.Mul(boxCBM).Div(decimal.NewFromInt(int64(containerSizeCBM)))
}

// CartonsFor returns the whole number of cartons needed to ship units.
func CartonsFor(units, qtyPerCarton int) int {
	if qtyPerCarton <= 0 || units <= 0 {
		return 0
	}
	return (units + qtyPerCarton - 1) / qtyPerCarton
}

// TotalCBM returns the shipped volume of cartons, rounded to 3 places.
func TotalCBM(cartons int, boxCBM decimal.Decimal) decimal.Decimal {
	return boxCBM.Mul(decimal.NewFromInt(int64(cartons))).Round(VolumePlaces)
}
