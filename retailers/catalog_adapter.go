package retailers

import (
	"context"
	"fmt"
	"time"

	"github.com/budgetsakkie/price-backend/config"
	"github.com/budgetsakkie/price-backend/models"
	"github.com/budgetsakkie/price-backend/shared"
	"github.com/sirupsen/logrus"
)

// CatalogAdapter implements Adapter over a catalog-serving Transport. It owns
// the full per-retailer request budget: politeness pacing, a per-attempt
// timeout, and bounded exponential-backoff retries. Terminal failures of any
// kind degrade into a failed quote instead of propagating.
type CatalogAdapter struct {
	retailer       models.Retailer
	currency       string
	transport      Transport
	price          PriceStrategy
	limiter        *shared.RequestRateLimiter
	attemptTimeout time.Duration
	maxRetries     int
	backoffUnit    time.Duration
}

// NewCatalogAdapter creates an adapter for one retailer
func NewCatalogAdapter(retailer models.Retailer, currency string, transport Transport, price PriceStrategy, cfg *config.AdapterConfig) *CatalogAdapter {
	if cfg == nil {
		cfg = config.DefaultAdapterConfig()
	}

	return &CatalogAdapter{
		retailer:       retailer,
		currency:       currency,
		transport:      transport,
		price:          price,
		limiter:        shared.NewRequestRateLimiter(cfg.PolitenessGap),
		attemptTimeout: cfg.AttemptTimeout,
		maxRetries:     cfg.MaxRetries,
		backoffUnit:    cfg.BackoffUnit,
	}
}

// Retailer returns the adapter's static identity metadata
func (a *CatalogAdapter) Retailer() models.Retailer {
	return a.retailer
}

// FetchQuote looks up one item at this retailer. The location hint is
// accepted for interface compatibility but store selection by location is
// not performed.
func (a *CatalogAdapter) FetchQuote(ctx context.Context, item, location string) models.PriceQuote {
	logger := logrus.WithFields(logrus.Fields{
		"component": "CatalogAdapter",
		"retailer":  a.retailer.ID,
		"item":      item,
	})

	normalized := NormalizeQuery(item)

	var entries []models.CatalogEntry
	err := shared.ExecuteWithRetry(ctx, "fetch_catalog_"+a.retailer.ID, a.maxRetries, a.backoffUnit, func(ctx context.Context) error {
		a.limiter.EnforceRateLimit()

		attemptCtx, cancel := context.WithTimeout(ctx, a.attemptTimeout)
		defer cancel()

		fetched, fetchErr := a.transport.FetchCatalog(attemptCtx)
		if fetchErr != nil {
			return fetchErr
		}

		entries = fetched
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("Retailer unreachable after retries")
		return models.NewFailedQuote(a.retailer, a.currency,
			fmt.Sprintf("%s is unreachable: %v", a.retailer.Name, err))
	}

	entry, ok := MatchCatalog(entries, normalized)
	if !ok {
		logger.Debug("No catalog match for item")
		return models.NewFailedQuote(a.retailer, a.currency,
			fmt.Sprintf("item not found at %s", a.retailer.Name))
	}

	price := Round2(a.price(entry.BasePrice))
	logger.WithFields(logrus.Fields{
		"product": entry.ProductName,
		"price":   price,
	}).Debug("Catalog match found")

	return models.PriceQuote{
		RetailerID:   a.retailer.ID,
		RetailerName: a.retailer.Name,
		Logo:         a.retailer.Logo,
		Color:        a.retailer.Color,
		Available:    true,
		Price:        &price,
		Currency:     a.currency,
		ProductName:  entry.ProductName,
		ProductURL:   entry.URL,
		LastUpdated:  time.Now(),
	}
}
