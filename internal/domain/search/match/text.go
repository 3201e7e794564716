// Package match implements in-memory text matching over content records.
package match

import "strings"

// Searchable exposes the fields scanned by Search.
type Searchable interface {
	// SearchFields returns the free-text fields of the record.
	SearchFields() []string
	// SearchTerms returns tags or related terms of the record.
	SearchTerms() []string
}

// Search returns records where any search field or term contains query,
// case-insensitively. Input order is preserved. An empty or whitespace-only
// query returns records unchanged.
func Search[T Searchable](records []T, query string) []T {
	q := normalize(query)
	if q == "" {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if Contains(r, q) {
			out = append(out, r)
		}
	}
	return out
}

// Contains reports whether r matches an already normalized query.
func Contains(r Searchable, normalizedQuery string) bool {
	for _, f := range r.SearchFields() {
		if containsFold(f, normalizedQuery) {
			return true
		}
	}
	for _, t := range r.SearchTerms() {
		if containsFold(t, normalizedQuery) {
			return true
		}
	}
	return false
}

// normalize trims and lower-cases a query; "" means no filtering.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func containsFold(value, lowerQuery string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(value), lowerQuery)
}
