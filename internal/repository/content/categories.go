package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
)

var categoryColumns = []string{"id", "name", "description", "slug", `"order"`, "created_at", "updated_at"}

// Categories implements usecase/library.CategoryRepository.
type Categories struct {
	q   querier
	now func() time.Time
}

// NewCategories creates a category repository.
func NewCategories(q querier) *Categories {
	return &Categories{q: q, now: time.Now}
}

// List returns all categories by display order.
func (r *Categories) List(ctx context.Context) ([]category.Category, error) {
	b := psql.Select(categoryColumns...).From("categories").OrderBy(`"order"`, "name")
	cats, err := list(ctx, r.q, b, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Get returns the category with id.
func (r *Categories) Get(ctx context.Context, id string) (category.Category, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

// GetBySlug returns the category with slug.
func (r *Categories) GetBySlug(ctx context.Context, slug string) (category.Category, error) {
	return r.getWhere(ctx, squirrel.Eq{"slug": slug})
}

func (r *Categories) getWhere(ctx context.Context, pred squirrel.Eq) (category.Category, error) {
	b := psql.Select(categoryColumns...).From("categories").Where(pred)
	var (
		id, name, desc, slug string
		order                int
		createdAt, updatedAt time.Time
	)
	err := getOne(ctx, r.q, b, domain.ErrCategoryNotFound, &id, &name, &desc, &slug, &order, &createdAt, &updatedAt)
	if err != nil {
		return category.Category{}, err
	}
	return category.Reconstruct(id, name, desc, slug, order, createdAt, updatedAt), nil
}

// Upsert inserts or replaces c. Returns true when the row was created.
func (r *Categories) Upsert(ctx context.Context, c category.Category) (bool, error) {
	now := r.now().UTC()
	b := psql.Insert("categories").
		Columns(categoryColumns...).
		Values(c.ID(), c.Name(), c.Description(), c.Slug(), c.Order(), nowOr(c.CreatedAt(), now), now).
		Suffix(upsertSuffix("name", "description", "slug", `"order"`, "updated_at"))

	created, err := upsert(ctx, r.q, b)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return false, fmt.Errorf("slug %q: %w", c.Slug(), domain.ErrAlreadyExists)
		}
		return false, fmt.Errorf("upsert category: %w", err)
	}
	return created, nil
}

// Delete removes the category with id and, by cascade, its entries.
func (r *Categories) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "categories", id, domain.ErrCategoryNotFound)
}

func scanCategory(row pgx.Row) (category.Category, error) {
	var (
		id, name, desc, slug string
		order                int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &desc, &slug, &order, &createdAt, &updatedAt); err != nil {
		return category.Category{}, err
	}
	return category.Reconstruct(id, name, desc, slug, order, createdAt, updatedAt), nil
}
