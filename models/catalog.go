package models

// CatalogEntry is one row of a retailer's simulated product catalog.
// Key is the normalized term the matching policy compares against; BasePrice
// is the price before per-retailer variance is applied.
type CatalogEntry struct {
	Key         string  `json:"key"`
	ProductName string  `json:"product_name"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
	URL         string  `json:"url"`
}
