package retailers

import (
	"time"

	"github.com/budgetsakkie/price-backend/config"
	"github.com/budgetsakkie/price-backend/models"
)

// The five supported retailers with their simulated catalogs. Prices are in
// ZAR. Catalog order is load-bearing for the first-match-wins policy, so
// entries stay in the order listed here.

func checkersCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: "bread", ProductName: "White Bread", BasePrice: 15.99, Unit: "700g", URL: "https://www.checkers.co.za/products/white-bread"},
		{Key: "milk", ProductName: "Full Cream Milk", BasePrice: 22.99, Unit: "1L", URL: "https://www.checkers.co.za/products/full-cream-milk"},
		{Key: "eggs", ProductName: "Large Eggs", BasePrice: 34.99, Unit: "18 pack", URL: "https://www.checkers.co.za/products/large-eggs"},
		{Key: "bananas", ProductName: "Bananas", BasePrice: 19.99, Unit: "per kg", URL: "https://www.checkers.co.za/products/bananas"},
		{Key: "chicken", ProductName: "Chicken Breasts", BasePrice: 89.99, Unit: "per kg", URL: "https://www.checkers.co.za/products/chicken-breasts"},
		{Key: "rice", ProductName: "Basmati Rice", BasePrice: 45.99, Unit: "2kg", URL: "https://www.checkers.co.za/products/basmati-rice"},
		{Key: "coffee", ProductName: "Instant Coffee", BasePrice: 67.99, Unit: "200g", URL: "https://www.checkers.co.za/products/instant-coffee"},
		{Key: "toilet paper", ProductName: "Toilet Paper", BasePrice: 89.99, Unit: "24 pack", URL: "https://www.checkers.co.za/products/toilet-paper"},
	}
}

func picknpayCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: "bread", ProductName: "Brown Bread", BasePrice: 14.99, Unit: "700g", URL: "https://www.pnp.co.za/products/brown-bread"},
		{Key: "milk", ProductName: "Low Fat Milk", BasePrice: 21.99, Unit: "1L", URL: "https://www.pnp.co.za/products/low-fat-milk"},
		{Key: "eggs", ProductName: "Free Range Eggs", BasePrice: 39.99, Unit: "12 pack", URL: "https://www.pnp.co.za/products/free-range-eggs"},
		{Key: "apples", ProductName: "Red Apples", BasePrice: 24.99, Unit: "per kg", URL: "https://www.pnp.co.za/products/red-apples"},
		{Key: "beef", ProductName: "Beef Mince", BasePrice: 79.99, Unit: "per kg", URL: "https://www.pnp.co.za/products/beef-mince"},
		{Key: "rice", ProductName: "Jasmine Rice", BasePrice: 42.99, Unit: "2kg", URL: "https://www.pnp.co.za/products/jasmine-rice"},
		{Key: "coffee", ProductName: "Ground Coffee", BasePrice: 89.99, Unit: "250g", URL: "https://www.pnp.co.za/products/ground-coffee"},
		{Key: "kitchen towels", ProductName: "Kitchen Towels", BasePrice: 45.99, Unit: "6 pack", URL: "https://www.pnp.co.za/products/kitchen-towels"},
	}
}

func woolworthsCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: "bread", ProductName: "Artisan Bread", BasePrice: 18.99, Unit: "600g", URL: "https://www.woolworths.co.za/products/artisan-bread"},
		{Key: "milk", ProductName: "Organic Milk", BasePrice: 28.99, Unit: "1L", URL: "https://www.woolworths.co.za/products/organic-milk"},
		{Key: "eggs", ProductName: "Omega Eggs", BasePrice: 44.99, Unit: "12 pack", URL: "https://www.woolworths.co.za/products/omega-eggs"},
		{Key: "apples", ProductName: "Granny Smith Apples", BasePrice: 29.99, Unit: "per kg", URL: "https://www.woolworths.co.za/products/granny-smith-apples"},
		{Key: "chicken", ProductName: "Premium Chicken", BasePrice: 99.99, Unit: "per kg", URL: "https://www.woolworths.co.za/products/premium-chicken"},
		{Key: "rice", ProductName: "Organic Rice", BasePrice: 55.99, Unit: "1kg", URL: "https://www.woolworths.co.za/products/organic-rice"},
		{Key: "coffee", ProductName: "Premium Coffee", BasePrice: 129.99, Unit: "250g", URL: "https://www.woolworths.co.za/products/premium-coffee"},
		{Key: "toilet paper", ProductName: "Eco Toilet Paper", BasePrice: 119.99, Unit: "12 pack", URL: "https://www.woolworths.co.za/products/eco-toilet-paper"},
	}
}

func shopriteCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: "bread", ProductName: "White Bread", BasePrice: 13.99, Unit: "700g", URL: "https://www.shoprite.co.za/products/white-bread"},
		{Key: "milk", ProductName: "Full Cream Milk", BasePrice: 20.99, Unit: "1L", URL: "https://www.shoprite.co.za/products/full-cream-milk"},
		{Key: "eggs", ProductName: "Large Eggs", BasePrice: 32.99, Unit: "18 pack", URL: "https://www.shoprite.co.za/products/large-eggs"},
		{Key: "bananas", ProductName: "Bananas", BasePrice: 17.99, Unit: "per kg", URL: "https://www.shoprite.co.za/products/bananas"},
		{Key: "chicken", ProductName: "Chicken Pieces", BasePrice: 69.99, Unit: "per kg", URL: "https://www.shoprite.co.za/products/chicken-pieces"},
		{Key: "rice", ProductName: "Long Grain Rice", BasePrice: 39.99, Unit: "2kg", URL: "https://www.shoprite.co.za/products/long-grain-rice"},
		{Key: "coffee", ProductName: "Instant Coffee", BasePrice: 59.99, Unit: "200g", URL: "https://www.shoprite.co.za/products/instant-coffee"},
		{Key: "toilet paper", ProductName: "Toilet Paper", BasePrice: 79.99, Unit: "24 pack", URL: "https://www.shoprite.co.za/products/toilet-paper"},
	}
}

func sparCatalog() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: "bread", ProductName: "Whole Wheat Bread", BasePrice: 16.99, Unit: "700g", URL: "https://www.spar.co.za/products/whole-wheat-bread"},
		{Key: "milk", ProductName: "Fresh Milk", BasePrice: 23.99, Unit: "1L", URL: "https://www.spar.co.za/products/fresh-milk"},
		{Key: "eggs", ProductName: "Farm Eggs", BasePrice: 36.99, Unit: "12 pack", URL: "https://www.spar.co.za/products/farm-eggs"},
		{Key: "apples", ProductName: "Golden Apples", BasePrice: 26.99, Unit: "per kg", URL: "https://www.spar.co.za/products/golden-apples"},
		{Key: "chicken", ProductName: "Chicken Thighs", BasePrice: 74.99, Unit: "per kg", URL: "https://www.spar.co.za/products/chicken-thighs"},
		{Key: "rice", ProductName: "Basmati Rice", BasePrice: 48.99, Unit: "2kg", URL: "https://www.spar.co.za/products/basmati-rice"},
		{Key: "coffee", ProductName: "Filter Coffee", BasePrice: 79.99, Unit: "250g", URL: "https://www.spar.co.za/products/filter-coffee"},
		{Key: "toilet paper", ProductName: "Soft Toilet Paper", BasePrice: 94.99, Unit: "18 pack", URL: "https://www.spar.co.za/products/soft-toilet-paper"},
	}
}

type storeDefinition struct {
	retailer models.Retailer
	catalog  func() []models.CatalogEntry
	spread   float64
	latency  time.Duration
}

func storeDefinitions() []storeDefinition {
	return []storeDefinition{
		{
			retailer: models.Retailer{ID: "checkers", Name: "Checkers", Logo: "/logos/checkers.png", Color: "#00a653", Status: "active"},
			catalog:  checkersCatalog,
			spread:   0.08,
			latency:  40 * time.Millisecond,
		},
		{
			retailer: models.Retailer{ID: "pick_n_pay", Name: "Pick n Pay", Logo: "/logos/pick_n_pay.png", Color: "#e3131b", Status: "active"},
			catalog:  picknpayCatalog,
			spread:   0.07,
			latency:  55 * time.Millisecond,
		},
		{
			retailer: models.Retailer{ID: "woolworths", Name: "Woolworths", Logo: "/logos/woolworths.png", Color: "#00573f", Status: "active"},
			catalog:  woolworthsCatalog,
			spread:   0.05,
			latency:  35 * time.Millisecond,
		},
		{
			retailer: models.Retailer{ID: "shoprite", Name: "Shoprite", Logo: "/logos/shoprite.png", Color: "#ee2e24", Status: "active"},
			catalog:  shopriteCatalog,
			spread:   0.12,
			latency:  60 * time.Millisecond,
		},
		{
			retailer: models.Retailer{ID: "spar", Name: "SPAR", Logo: "/logos/spar.png", Color: "#006f46", Status: "active"},
			catalog:  sparCatalog,
			spread:   0.09,
			latency:  45 * time.Millisecond,
		},
	}
}

// DefaultRegistry assembles the production adapter registry: the five SA
// retailers backed by simulated transports and per-store price variance.
func DefaultRegistry(currency string, adapterCfg *config.AdapterConfig) *Registry {
	definitions := storeDefinitions()

	adapters := make([]Adapter, 0, len(definitions))
	for _, def := range definitions {
		transport := &SimulatedTransport{
			RetailerID: def.retailer.ID,
			Entries:    def.catalog(),
			Latency:    def.latency,
		}
		adapters = append(adapters, NewCatalogAdapter(def.retailer, currency, transport, SymmetricVariance(def.spread), adapterCfg))
	}

	return NewRegistry(adapters...)
}
