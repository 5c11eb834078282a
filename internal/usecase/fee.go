package usecase

import "github.com/shopspring/decimal"

// Fee tiers, strictly descending thresholds, evaluated top-down.
// Amounts at or below the lowest threshold pay the base 10%.
var feeTiers = []struct {
	threshold int64
	percent   int64
}{
	{100_000, 5},
	{50_000, 6},
	{10_000, 8},
}

const baseFeePercent = 10

// minorUnitFactor converts major to minor currency units (kobo/cents).
var minorUnitFactor = decimal.NewFromInt(100)

// FeePercent returns the platform fee percent for the given amount.
func FeePercent(amount decimal.Decimal) int64 {
	for _, tier := range feeTiers {
		if amount.GreaterThan(decimal.NewFromInt(tier.threshold)) {
			return tier.percent
		}
	}
	return baseFeePercent
}

// PlatformFee computes the fee frozen onto a transaction at initiation.
// It is never recomputed afterwards, even if the tiers change.
func PlatformFee(amount decimal.Decimal) decimal.Decimal {
	percent := decimal.NewFromInt(FeePercent(amount))
	return amount.Mul(percent).Div(decimal.NewFromInt(100))
}
