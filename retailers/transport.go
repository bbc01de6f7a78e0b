package retailers

import (
	"context"
	"math/rand"
	"time"

	"github.com/budgetsakkie/price-backend/models"
	"github.com/budgetsakkie/price-backend/shared"
)

// Transport performs one "request" against a retailer and returns its current
// catalog snapshot. Implementations are expected to respect the deadline on
// the supplied context; a failed round trip returns an error that the adapter
// retry loop classifies via shared.IsRetryableError.
type Transport interface {
	FetchCatalog(ctx context.Context) ([]models.CatalogEntry, error)
}

// SimulatedTransport stands in for a live retailer connection. It carries a
// static catalog and reproduces the transport behaviors the adapters must
// tolerate: network latency and intermittent failures.
type SimulatedTransport struct {
	RetailerID  string
	Entries     []models.CatalogEntry
	Latency     time.Duration
	FailureRate float64 // probability in [0,1] that a round trip fails
}

// FetchCatalog simulates one catalog request round trip
func (t *SimulatedTransport) FetchCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	if t.Latency > 0 {
		select {
		case <-time.After(t.Latency):
		case <-ctx.Done():
			return nil, shared.WrapError(ctx.Err(), shared.ErrorCategoryTimeout,
				"REQUEST_TIMEOUT", t.RetailerID, "fetch_catalog", true)
		}
	} else if err := ctx.Err(); err != nil {
		return nil, shared.WrapError(err, shared.ErrorCategoryTimeout,
			"REQUEST_TIMEOUT", t.RetailerID, "fetch_catalog", true)
	}

	if t.FailureRate > 0 && rand.Float64() < t.FailureRate {
		return nil, shared.NewServiceError(shared.ErrorCategoryNetwork,
			"CONNECTION_FAILED", "simulated connection failure",
			t.RetailerID, "fetch_catalog", true, nil)
	}

	return t.Entries, nil
}
