package favorites

import (
	"context"

	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
)

// Repository persists favorites sets. Modify must serialize concurrent
// changes to the same owner.
type Repository interface {
	Load(ctx context.Context, owner string) (domfav.Favorites, error)
	Modify(ctx context.Context, owner string, fn func(domfav.Favorites) (domfav.Favorites, bool, error)) (domfav.Favorites, error)
	Delete(ctx context.Context, owner string) error
}

// EntryReader checks that a saved entry exists and is visible.
type EntryReader interface {
	Get(ctx context.Context, id string) (entry.Entry, error)
}
