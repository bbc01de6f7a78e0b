package tests

import (
	"context"
	"testing"
	"time"

	"github.com/budgetsakkie/price-backend/models"
	"github.com/budgetsakkie/price-backend/retailers"
	"github.com/budgetsakkie/price-backend/services"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// fixedAdapter quotes one fixed price; a non-positive price simulates an
// unavailable retailer.
type fixedAdapter struct {
	retailer models.Retailer
	price    float64
}

func (a *fixedAdapter) Retailer() models.Retailer {
	return a.retailer
}

func (a *fixedAdapter) FetchQuote(ctx context.Context, item, location string) models.PriceQuote {
	if a.price <= 0 {
		return models.NewFailedQuote(a.retailer, "ZAR", "item not found at "+a.retailer.Name)
	}

	price := a.price
	return models.PriceQuote{
		RetailerID:   a.retailer.ID,
		RetailerName: a.retailer.Name,
		Available:    true,
		Price:        &price,
		Currency:     "ZAR",
		ProductName:  item,
		LastUpdated:  time.Now(),
	}
}

func registryFromPrices(prices []float64) *retailers.Registry {
	adapters := make([]retailers.Adapter, 0, len(prices))
	for i, price := range prices {
		id := string(rune('A' + i%26))
		adapters = append(adapters, &fixedAdapter{
			retailer: models.Retailer{ID: id, Name: id, Status: "active"},
			price:    price,
		})
	}
	return retailers.NewRegistry(adapters...)
}

// TestComparisonRankingProperties checks the ranking invariants over
// arbitrary per-retailer price sets: completeness, savings non-negativity,
// and cheapest correctness with registry-order tie-breaking.
func TestComparisonRankingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("comparison is complete and correctly ranked for any price set", prop.ForAll(
		func(prices []float64) bool {
			registry := registryFromPrices(prices)
			service := services.NewComparisonService(registry, services.NewCacheService(time.Minute))

			result := service.Compare(context.Background(), "milk", "")

			if len(result.Quotes) != registry.Size() {
				t.Logf("expected %d quotes, got %d", registry.Size(), len(result.Quotes))
				return false
			}

			if result.Savings < 0 {
				t.Logf("negative savings: %f", result.Savings)
				return false
			}

			var available []float64
			for _, price := range prices {
				if price > 0 {
					available = append(available, price)
				}
			}

			if len(available) == 0 {
				return result.Cheapest == nil && result.PriceRange == nil && result.Savings == 0
			}

			minPrice, maxPrice := available[0], available[0]
			for _, price := range available[1:] {
				if price < minPrice {
					minPrice = price
				}
				if price > maxPrice {
					maxPrice = price
				}
			}

			if result.Cheapest == nil || result.Cheapest.Price == nil {
				t.Log("cheapest missing despite available quotes")
				return false
			}
			if *result.Cheapest.Price != minPrice {
				t.Logf("cheapest %f != min %f", *result.Cheapest.Price, minPrice)
				return false
			}

			// Tie-break: the cheapest quote is the first one in registry
			// order carrying the minimum price
			for _, quote := range result.Quotes {
				if !quote.Available {
					continue
				}
				if *quote.Price == minPrice {
					if quote.RetailerID != result.Cheapest.RetailerID {
						t.Logf("tie broken to %s, expected %s", result.Cheapest.RetailerID, quote.RetailerID)
						return false
					}
					break
				}
			}

			if result.PriceRange == nil || result.PriceRange.Min != minPrice || result.PriceRange.Max != maxPrice {
				t.Log("price range mismatch")
				return false
			}

			if len(available) >= 2 {
				expected := retailers.Round2(maxPrice - minPrice)
				if result.Savings != expected {
					t.Logf("savings %f != %f", result.Savings, expected)
					return false
				}
			} else if result.Savings != 0 {
				t.Logf("savings %f with fewer than two available quotes", result.Savings)
				return false
			}

			return true
		},
		gen.SliceOf(gen.Float64Range(-50, 1000)),
	))

	properties.TestingRun(t)
}

// TestNormalizationProperties checks that query normalization is idempotent
// and that cache keys are deterministic.
func TestNormalizationProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("normalization is idempotent", prop.ForAll(
		func(query string) bool {
			once := retailers.NormalizeQuery(query)
			twice := retailers.NormalizeQuery(once)
			return once == twice
		},
		gen.AnyString(),
	))

	properties.Property("cache keys are deterministic", prop.ForAll(
		func(item, location string) bool {
			return services.CacheKey(item, location) == services.CacheKey(item, location)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestCachedComparisonProperty checks that within the TTL, repeated compares
// for any item return the identical cached result.
func TestCachedComparisonProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("repeat queries within TTL return the cached result", prop.ForAll(
		func(item string) bool {
			registry := registryFromPrices([]float64{22.00, 18.00, -1})
			service := services.NewComparisonService(registry, services.NewCacheService(time.Minute))

			first := service.Compare(context.Background(), item, "")
			second := service.Compare(context.Background(), item, "")

			return first == second && first.GeneratedAt.Equal(second.GeneratedAt)
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
