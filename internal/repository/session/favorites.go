package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/db"
	"github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
)

type favoritesBlob struct {
	EntryIDs  []string  `json:"entryIds"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FavoritesStore implements usecase/favorites.Repository.
type FavoritesStore struct {
	store  store
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewFavoritesStore creates a favorites store. ttl <= 0 keeps sets forever.
func NewFavoritesStore(s store, prefix string, ttl time.Duration, logger *zap.Logger) *FavoritesStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{store: s, prefix: prefix, ttl: ttl, logger: logger}
}

func (f *FavoritesStore) key(owner string) string {
	return f.prefix + "favorites:" + hashKey(owner)
}

// Load returns the owner's favorites. Missing or undecodable data loads as an empty set.
func (f *FavoritesStore) Load(ctx context.Context, owner string) (favorites.Favorites, error) {
	data, err := f.store.Get(ctx, f.key(owner))
	if errors.Is(err, db.ErrKeyNotFound) {
		return favorites.Reconstruct(owner, nil, time.Time{}), nil
	}
	if err != nil {
		return favorites.Favorites{}, fmt.Errorf("load favorites: %w", err)
	}
	return f.decode(owner, data), nil
}

// Modify applies fn to the stored set atomically per owner: concurrent
// modifications of the same owner are serialized by the store, never lost.
// fn may run more than once; changed=false skips the write. It returns the
// set as stored after the call.
func (f *FavoritesStore) Modify(
	ctx context.Context, owner string, fn func(favorites.Favorites) (favorites.Favorites, bool, error),
) (favorites.Favorites, error) {
	var result favorites.Favorites
	err := f.store.Update(ctx, f.key(owner), f.ttl, func(data []byte, found bool) ([]byte, error) {
		cur := favorites.Reconstruct(owner, nil, time.Time{})
		if found {
			cur = f.decode(owner, data)
		}
		next, changed, err := fn(cur)
		if err != nil {
			return nil, err
		}
		if !changed {
			result = cur
			return nil, nil
		}
		result = next
		return encodeFavorites(next)
	})
	if err != nil {
		return favorites.Favorites{}, fmt.Errorf("modify favorites: %w", err)
	}
	return result, nil
}

func (f *FavoritesStore) decode(owner string, data []byte) favorites.Favorites {
	var blob favoritesBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		f.logger.Warn("discarding undecodable favorites", zap.Error(err))
		return favorites.Reconstruct(owner, nil, time.Time{})
	}
	return favorites.Reconstruct(owner, blob.EntryIDs, blob.UpdatedAt)
}

func encodeFavorites(fav favorites.Favorites) ([]byte, error) {
	ids := fav.EntryIDs()
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(favoritesBlob{EntryIDs: ids, UpdatedAt: fav.UpdatedAt().UTC()})
	if err != nil {
		return nil, fmt.Errorf("marshal favorites: %w", err)
	}
	return data, nil
}

// Delete removes the owner's favorites.
func (f *FavoritesStore) Delete(ctx context.Context, owner string) error {
	if err := f.store.Del(ctx, f.key(owner)); err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}
