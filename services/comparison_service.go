package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/budgetsakkie/price-backend/models"
	"github.com/budgetsakkie/price-backend/retailers"
	"github.com/budgetsakkie/price-backend/shared"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ComparisonService fans one query out to every registered retailer adapter
// concurrently, waits for all of them, ranks the quotes, and caches the
// merged result for a bounded window. It has no failure mode of its own:
// adapters degrade into unavailable quotes, and "no retailer has this item"
// is represented by a nil Cheapest, never an error.
type ComparisonService struct {
	registry *retailers.Registry
	cache    *CacheService
	metrics  *shared.ServiceMetrics
	group    singleflight.Group
}

// NewComparisonService creates the aggregation orchestrator over a registry
// and a result cache instance
func NewComparisonService(registry *retailers.Registry, cache *CacheService) *ComparisonService {
	return &ComparisonService{
		registry: registry,
		cache:    cache,
		metrics:  shared.NewServiceMetrics("comparison-service"),
	}
}

// CacheKey normalizes an (item, location) pair into the result cache key
func CacheKey(item, location string) string {
	normalizedLocation := strings.ToLower(strings.TrimSpace(location))
	if normalizedLocation == "" {
		normalizedLocation = "default"
	}
	return retailers.NormalizeQuery(item) + "-" + normalizedLocation
}

// Compare produces the ranked comparison for one item. A fresh cached result
// is returned unchanged; on a miss every adapter is queried concurrently and
// the merged result is stored under the query's cache key. Concurrent misses
// for the same key share a single fan-out.
func (s *ComparisonService) Compare(ctx context.Context, item, location string) *models.ComparisonResult {
	startTime := time.Now()
	key := CacheKey(item, location)

	logger := logrus.WithFields(logrus.Fields{
		"component": "ComparisonService",
		"item":      item,
		"location":  location,
		"cache_key": key,
	})

	if cached, found := s.cache.Get(key); found {
		if result, ok := cached.(*models.ComparisonResult); ok {
			s.metrics.IncrementCounter("result_cache_hits")
			logger.Debug("Returning cached comparison result")
			return result
		}
	}

	s.metrics.IncrementCounter("result_cache_misses")

	value, _, _ := s.group.Do(key, func() (interface{}, error) {
		// A sibling flight may have finished between our cache check and
		// joining the group; its stored result is still fresh.
		if cached, found := s.cache.Get(key); found {
			if result, ok := cached.(*models.ComparisonResult); ok {
				return result, nil
			}
		}

		result := s.fanOut(ctx, item, location)
		s.cache.Set(key, result)
		return result, nil
	})
	result := value.(*models.ComparisonResult)

	elapsed := time.Since(startTime)
	s.metrics.RecordRequest(true, elapsed)
	logger.WithFields(logrus.Fields{
		"elapsed":         elapsed,
		"quotes":          len(result.Quotes),
		"available_count": result.AvailableCount(),
	}).Info("Comparison completed")

	return result
}

// fanOut queries every registered adapter concurrently and joins on all of
// them. Each call is independent: one slow or failing retailer never blocks
// or blanks out the others, and nothing cancels an in-flight sibling. Quotes
// land in registry order via the index, not completion order.
func (s *ComparisonService) fanOut(ctx context.Context, item, location string) *models.ComparisonResult {
	adapters := s.registry.Adapters()
	quotes := make([]models.PriceQuote, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(idx int, a retailers.Adapter) {
			defer wg.Done()
			quotes[idx] = a.FetchQuote(ctx, item, location)
		}(i, adapter)
	}
	wg.Wait()

	for _, quote := range quotes {
		if quote.Available {
			s.metrics.IncrementCounter("quotes_available")
		} else {
			s.metrics.IncrementCounter("quotes_failed")
		}
	}

	return s.rank(item, quotes)
}

// rank computes cheapest, savings, and the price range over the available
// subset. Ties on the minimum price resolve to the first quote in registry
// order through the strict comparison.
func (s *ComparisonService) rank(item string, quotes []models.PriceQuote) *models.ComparisonResult {
	result := &models.ComparisonResult{
		Item:        retailers.NormalizeQuery(item),
		Quotes:      quotes,
		GeneratedAt: time.Now(),
	}

	cheapestIdx := -1
	availableCount := 0
	var minPrice, maxPrice float64

	for i, quote := range quotes {
		if !quote.Available || quote.Price == nil {
			continue
		}
		price := *quote.Price
		availableCount++

		if cheapestIdx < 0 {
			cheapestIdx = i
			minPrice, maxPrice = price, price
			continue
		}
		if price < minPrice {
			minPrice = price
			cheapestIdx = i
		}
		if price > maxPrice {
			maxPrice = price
		}
	}

	if cheapestIdx >= 0 {
		result.Cheapest = &result.Quotes[cheapestIdx]
		result.PriceRange = &models.PriceRange{Min: minPrice, Max: maxPrice}
		if availableCount >= 2 {
			result.Savings = retailers.Round2(maxPrice - minPrice)
		}
	}

	return result
}

// Registry exposes the adapter registry for the retailer-list endpoint
func (s *ComparisonService) Registry() *retailers.Registry {
	return s.registry
}

// Metrics returns the orchestrator's metrics tracker
func (s *ComparisonService) Metrics() *shared.ServiceMetrics {
	return s.metrics
}
