package category

import (
	"fmt"
	"regexp"
	"time"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category groups library entries.
type Category struct {
	id          string
	name        string
	description string
	slug        string
	order       int
	createdAt   time.Time
	updatedAt   time.Time
}

// New validates and creates a Category.
// Slug: lowercase alphanumerics separated by single hyphens.
func New(id, name, description, slug string, order int) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("category ID is required")
	}
	if name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	if !slugRegex.MatchString(slug) {
		return Category{}, fmt.Errorf("invalid slug %q", slug)
	}
	return Category{id: id, name: name, description: description, slug: slug, order: order}, nil
}

// Reconstruct creates a Category without validation (storage hydration).
func Reconstruct(
	id, name, description, slug string, order int, createdAt, updatedAt time.Time,
) Category {
	return Category{
		id: id, name: name, description: description, slug: slug, order: order,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// ID returns the category identifier.
func (c Category) ID() string { return c.id }

// Name returns the display name.
func (c Category) Name() string { return c.name }

// Description returns the category description.
func (c Category) Description() string { return c.description }

// Slug returns the URL slug.
func (c Category) Slug() string { return c.slug }

// Order returns the display position.
func (c Category) Order() int { return c.order }

// Title returns the name; used as the tie-breaker when sorting by order.
func (c Category) Title() string { return c.name }

// CreatedAt returns the creation time.
func (c Category) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last modification time.
func (c Category) UpdatedAt() time.Time { return c.updatedAt }
