package models

import "time"

// PriceRange is the min/max spread over the available quotes of a comparison.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComparisonResult is the merged answer for one query: one quote per
// registered adapter in registry order, the cheapest available quote, and the
// computed savings spread. Constructed fresh on a cache miss and immutable
// afterwards; a newer result supersedes it once its cache entry expires.
type ComparisonResult struct {
	Item        string       `json:"item"`
	Quotes      []PriceQuote `json:"quotes"`
	Cheapest    *PriceQuote  `json:"cheapest,omitempty"`
	Savings     float64      `json:"savings"`
	PriceRange  *PriceRange  `json:"price_range,omitempty"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// AvailableCount returns how many quotes carry a usable price.
func (r *ComparisonResult) AvailableCount() int {
	count := 0
	for _, q := range r.Quotes {
		if q.Available {
			count++
		}
	}
	return count
}
