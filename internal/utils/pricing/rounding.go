package pricing

import "github.com/shopspring/decimal"

// Decimal places of each figure kind.
const (
	MoneyPlaces  int32 = 2
	RatePlaces   int32 = 4
	VolumePlaces int32 = 3
)

// RoundingMode selects where intermediate figures are rounded.
type RoundingMode string

const (
	// RoundPerStage rounds after every step of the cost buildup. This is the
	// behavior historical price lists were produced with.
	RoundPerStage RoundingMode = "stage"
	// RoundAtBoundary keeps full precision until the figures are returned.
	RoundAtBoundary RoundingMode = "boundary"
)

// ParseRoundingMode returns the mode named by s, defaulting to RoundPerStage.
func ParseRoundingMode(s string) RoundingMode {
	if RoundingMode(s) == RoundAtBoundary {
		return RoundAtBoundary
	}
	return RoundPerStage
}

type rounder struct {
	mode RoundingMode
}

// stage rounds an intermediate figure according to the mode.
func (r rounder) stage(d decimal.Decimal, places int32) decimal.Decimal {
	if r.mode == RoundAtBoundary {
		return d
	}
	return d.Round(places)
}

func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
