package models

// Retailer holds the static identity metadata for one supported store.
// Constructed once at startup and never mutated afterwards.
type Retailer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Color  string `json:"color"`
	Status string `json:"status"`
}
