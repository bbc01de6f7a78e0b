package retailers

import (
	"context"

	"github.com/budgetsakkie/price-backend/models"
)

// Adapter produces a price quote for one retailer. Implementations never
// return an error: any failure (network, timeout, no catalog match) must be
// converted into a PriceQuote with Available=false and ErrorReason set, so
// the orchestrator never special-cases adapter failures.
type Adapter interface {
	Retailer() models.Retailer
	FetchQuote(ctx context.Context, item, location string) models.PriceQuote
}

// Registry is the fixed, ordered, immutable list of adapters assembled at
// process start. The orchestrator iterates adapters in registered order so
// comparison output is deterministic across runs.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry over the given adapters in the given order
func NewRegistry(adapters ...Adapter) *Registry {
	owned := make([]Adapter, len(adapters))
	copy(owned, adapters)
	return &Registry{adapters: owned}
}

// Adapters returns the registered adapters in registry order
func (r *Registry) Adapters() []Adapter {
	return r.adapters
}

// Size returns the number of registered adapters
func (r *Registry) Size() int {
	return len(r.adapters)
}

// Retailers returns the static identity metadata of every registered adapter
func (r *Registry) Retailers() []models.Retailer {
	retailers := make([]models.Retailer, 0, len(r.adapters))
	for _, adapter := range r.adapters {
		retailers = append(retailers, adapter.Retailer())
	}
	return retailers
}
