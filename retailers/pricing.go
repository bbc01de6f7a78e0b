package retailers

import (
	"math"
	"math/rand"
)

// PriceStrategy maps a catalog base price to the price quoted for one fetch.
// Injectable per adapter so tests can substitute deterministic pricing
// without touching orchestration.
type PriceStrategy func(basePrice float64) float64

// FixedPrice quotes the catalog base price unchanged
func FixedPrice() PriceStrategy {
	return func(basePrice float64) float64 {
		return basePrice
	}
}

// SymmetricVariance perturbs the base price by a bounded symmetric random
// factor, e.g. spread 0.08 quotes within ±8% of the base price. Each store
// carries its own spread to mimic how retailer prices drift independently.
func SymmetricVariance(spread float64) PriceStrategy {
	return func(basePrice float64) float64 {
		factor := 1 + (2*rand.Float64()-1)*spread
		return basePrice * factor
	}
}

// Round2 rounds a price to 2 decimal places
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
