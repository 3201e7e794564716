package entry

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Limits for library entries.
const (
	MaxTitleLength = 256
	MaxBodySize    = 262144 // 256KB
	MaxTags        = 32
)

// Fields carries the raw attributes of an entry for construction and hydration.
type Fields struct {
	ID          string
	CategoryID  string
	Title       string
	Summary     string
	Body        string
	Tags        []string
	Published   bool
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastUpdated time.Time
}

// Entry is a library article (immutable value object).
type Entry struct {
	id          string
	categoryID  string
	title       string
	summary     string
	body        string
	tags        []string
	published   bool
	order       int
	createdAt   time.Time
	updatedAt   time.Time
	lastUpdated time.Time
}

// New validates and creates an Entry.
func New(f Fields) (Entry, error) {
	if strings.TrimSpace(f.ID) == "" {
		return Entry{}, fmt.Errorf("entry ID is required")
	}
	if strings.TrimSpace(f.CategoryID) == "" {
		return Entry{}, fmt.Errorf("category ID is required")
	}
	if strings.TrimSpace(f.Title) == "" {
		return Entry{}, fmt.Errorf("title is required")
	}
	if len(f.Title) > MaxTitleLength {
		return Entry{}, fmt.Errorf("title too long (max %d)", MaxTitleLength)
	}
	if len(f.Body) > MaxBodySize {
		return Entry{}, fmt.Errorf("body too large (max %d bytes)", MaxBodySize)
	}
	if len(f.Tags) > MaxTags {
		return Entry{}, fmt.Errorf("too many tags (max %d)", MaxTags)
	}
	for _, t := range f.Tags {
		if strings.TrimSpace(t) == "" {
			return Entry{}, fmt.Errorf("tags must not be empty")
		}
	}
	return Reconstruct(f), nil
}

// Reconstruct creates an Entry without validation (storage hydration).
func Reconstruct(f Fields) Entry {
	return Entry{
		id:          f.ID,
		categoryID:  f.CategoryID,
		title:       f.Title,
		summary:     f.Summary,
		body:        f.Body,
		tags:        slices.Clone(f.Tags),
		published:   f.Published,
		order:       f.Order,
		createdAt:   f.CreatedAt,
		updatedAt:   f.UpdatedAt,
		lastUpdated: f.LastUpdated,
	}
}

// ID returns the entry identifier.
func (e Entry) ID() string { return e.id }

// CategoryID returns the owning category identifier.
func (e Entry) CategoryID() string { return e.categoryID }

// Title returns the entry title.
func (e Entry) Title() string { return e.title }

// Summary returns the short summary.
func (e Entry) Summary() string { return e.summary }

// Body returns the full article text.
func (e Entry) Body() string { return e.body }

// Tags returns the entry tags.
func (e Entry) Tags() []string { return e.tags }

// Published reports whether the entry is visible to readers.
func (e Entry) Published() bool { return e.published }

// Order returns the explicit display position.
func (e Entry) Order() int { return e.order }

// CreatedAt returns the creation time.
func (e Entry) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the last modification time of the row.
func (e Entry) UpdatedAt() time.Time { return e.updatedAt }

// LastUpdated returns the time the content was last revised.
func (e Entry) LastUpdated() time.Time { return e.lastUpdated }

// Fields returns a copy of the entry attributes.
func (e Entry) Fields() Fields {
	return Fields{
		ID:          e.id,
		CategoryID:  e.categoryID,
		Title:       e.title,
		Summary:     e.summary,
		Body:        e.body,
		Tags:        slices.Clone(e.tags),
		Published:   e.published,
		Order:       e.order,
		CreatedAt:   e.createdAt,
		UpdatedAt:   e.updatedAt,
		LastUpdated: e.lastUpdated,
	}
}

// SearchFields returns the free-text fields used by substring search.
func (e Entry) SearchFields() []string {
	return []string{e.title, e.summary, e.body}
}

// SearchTerms returns the tag list used by substring search.
func (e Entry) SearchTerms() []string { return e.tags }

// TextField resolves a named string field for ranked matching.
func (e Entry) TextField(name string) (string, bool) {
	switch name {
	case "id":
		return e.id, true
	case "category_id":
		return e.categoryID, true
	case "title":
		return e.title, true
	case "summary":
		return e.summary, true
	case "body":
		return e.body, true
	default:
		return "", false
	}
}
