package models

import "time"

// PriceQuote is one retailer's answer for one query.
//
// Invariant: Available == true implies Price is set and ErrorReason is empty;
// Available == false implies Price is nil.
type PriceQuote struct {
	RetailerID   string   `json:"retailer_id"`
	RetailerName string   `json:"retailer_name"`
	Logo         string   `json:"logo"`
	Color        string   `json:"color"`
	Available    bool     `json:"available"`
	Price        *float64 `json:"price,omitempty"`
	Currency     string   `json:"currency"`
	ProductName  string   `json:"product_name,omitempty"`
	ProductURL   string   `json:"product_url,omitempty"`
	ErrorReason  string   `json:"error_reason,omitempty"`
	// LastUpdated is set when the quote object is built, not when the
	// underlying price was observed.
	LastUpdated time.Time `json:"last_updated"`
}

// NewFailedQuote builds the standard failed-quote shape for a retailer.
// Every adapter failure, including "no catalog match", degrades into this
// shape so the orchestrator never special-cases adapter errors.
func NewFailedQuote(retailer Retailer, currency, reason string) PriceQuote {
	return PriceQuote{
		RetailerID:   retailer.ID,
		RetailerName: retailer.Name,
		Logo:         retailer.Logo,
		Color:        retailer.Color,
		Available:    false,
		Currency:     currency,
		ErrorReason:  reason,
		LastUpdated:  time.Now(),
	}
}
