package filter

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
)

// MaxTags is the maximum number of tags in a single request.
const MaxTags = 32

// Criteria is a validated set of optional filter criteria.
type Criteria struct {
	categoryID string
	tags       []string
	role       string
	zipCode    string
}

// NewCriteria validates and creates Criteria. Empty values mean "no filter".
func NewCriteria(categoryID string, tags []string, role, zipCode string) (Criteria, error) {
	if len(tags) > MaxTags {
		return Criteria{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	role = strings.TrimSpace(role)
	if role != "" && !contact.IsValidRole(role) {
		return Criteria{}, fmt.Errorf("invalid role %q", role)
	}
	zipCode = strings.TrimSpace(zipCode)
	for _, r := range zipCode {
		if r < '0' || r > '9' {
			return Criteria{}, fmt.Errorf("zip code must be numeric, got %q", zipCode)
		}
	}
	return Criteria{
		categoryID: strings.TrimSpace(categoryID),
		tags:       cleaned,
		role:       role,
		zipCode:    zipCode,
	}, nil
}

// CategoryID returns the category filter.
func (c Criteria) CategoryID() string { return c.categoryID }

// Tags returns the tag filter.
func (c Criteria) Tags() []string { return c.tags }

// Role returns the audience role filter.
func (c Criteria) Role() string { return c.role }

// ZipCode returns the postal code filter.
func (c Criteria) ZipCode() string { return c.zipCode }

// IsEmpty reports whether no criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.categoryID == "" && len(c.tags) == 0 && c.role == "" && c.zipCode == ""
}
