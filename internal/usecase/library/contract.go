package library

import (
	"context"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
)

// EntryRepository defines the storage contract for library entries.
type EntryRepository interface {
	List(ctx context.Context) ([]entry.Entry, error)
	Get(ctx context.Context, id string) (entry.Entry, error)
	Upsert(ctx context.Context, e entry.Entry) (bool, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the storage contract for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]category.Category, error)
	Get(ctx context.Context, id string) (category.Category, error)
	GetBySlug(ctx context.Context, slug string) (category.Category, error)
	Upsert(ctx context.Context, c category.Category) (bool, error)
	Delete(ctx context.Context, id string) error
}
