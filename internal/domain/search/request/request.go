package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 512
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Request is a validated listing query: free text plus optional criteria.
type Request struct {
	query      string
	searchMode mode.Mode
	criteria   filter.Criteria
	page       int
	limit      int
}

// New validates and normalizes listing parameters.
// Defaults: mode=substring, page=1. A zero limit is resolved later by Limit.
// An empty query is valid and means "no text filter".
func New(query string, m mode.Mode, criteria filter.Criteria, page, limit int) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if m == "" {
		m = mode.Substring
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("invalid search mode: %q", m)
	}
	if page < 0 {
		return Request{}, fmt.Errorf("page must be positive")
	}
	if page == 0 {
		page = 1
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must be positive")
	}

	return Request{
		query:      query,
		searchMode: m,
		criteria:   criteria,
		page:       page,
		limit:      limit,
	}, nil
}

// Query returns the raw query text.
func (r Request) Query() string { return r.query }

// HasQuery reports whether the query contains non-whitespace text.
func (r Request) HasQuery() bool { return strings.TrimSpace(r.query) != "" }

// Mode returns the matching strategy.
func (r Request) Mode() mode.Mode { return r.searchMode }

// Criteria returns the filter criteria.
func (r Request) Criteria() filter.Criteria { return r.criteria }

// Page returns the 1-based page number.
func (r Request) Page() int { return r.page }

// Limit returns the page size, falling back to def and clamped to maxLimit.
func (r Request) Limit(def, maxLimit int) int {
	if def <= 0 {
		def = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	limit := r.limit
	if limit == 0 {
		limit = def
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
