package retailers

import (
	"regexp"
	"strings"

	"github.com/budgetsakkie/price-backend/models"
)

var (
	punctuationRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// NormalizeQuery cleans a search term for catalog matching: lowercase, strip
// punctuation, collapse runs of whitespace, trim.
func NormalizeQuery(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	normalized = punctuationRegex.ReplaceAllString(normalized, "")
	normalized = whitespaceRegex.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// FirstToken returns the first whitespace-delimited token of a normalized query
func FirstToken(normalized string) string {
	if idx := strings.IndexByte(normalized, ' '); idx >= 0 {
		return normalized[:idx]
	}
	return normalized
}

// MatchCatalog finds the first catalog entry matching a normalized query.
// A match succeeds when the query contains the catalog key as a substring,
// or the key contains the first token of the query. Entries are scanned in
// slice order and the first match wins; reordering a catalog can change which
// entry matches, so store catalogs keep a stable order.
func MatchCatalog(entries []models.CatalogEntry, normalizedQuery string) (models.CatalogEntry, bool) {
	if normalizedQuery == "" {
		return models.CatalogEntry{}, false
	}

	firstToken := FirstToken(normalizedQuery)
	for _, entry := range entries {
		if strings.Contains(normalizedQuery, entry.Key) || strings.Contains(entry.Key, firstToken) {
			return entry, true
		}
	}

	return models.CatalogEntry{}, false
}
