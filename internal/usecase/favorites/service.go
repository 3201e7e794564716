package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
)

// Service manages saved library entries per owner.
type Service struct {
	repo    Repository
	entries EntryReader
	now     func() time.Time
}

// New creates a favorites service.
func New(repo Repository, entries EntryReader) *Service {
	return &Service{repo: repo, entries: entries, now: time.Now}
}

// List returns the owner's favorites in the order they were saved.
func (s *Service) List(ctx context.Context, owner string) (domfav.Favorites, error) {
	if err := validateOwner(owner); err != nil {
		return domfav.Favorites{}, err
	}
	f, err := s.repo.Load(ctx, owner)
	if err != nil {
		return domfav.Favorites{}, fmt.Errorf("load favorites: %w", err)
	}
	return f, nil
}

// Add saves entryID for owner. The entry must exist and be published.
// Concurrent adds for the same owner are all kept.
func (s *Service) Add(ctx context.Context, owner, entryID string) (domfav.Favorites, error) {
	if err := validateOwner(owner); err != nil {
		return domfav.Favorites{}, err
	}
	if _, err := s.entries.Get(ctx, entryID); err != nil {
		return domfav.Favorites{}, fmt.Errorf("check entry: %w", err)
	}
	f, err := s.repo.Modify(ctx, owner, func(cur domfav.Favorites) (domfav.Favorites, bool, error) {
		if cur.Contains(entryID) {
			return cur, false, nil
		}
		next, err := cur.Add(entryID, s.now().UTC())
		if err != nil {
			return cur, false, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
		}
		return next, true, nil
	})
	if err != nil {
		return domfav.Favorites{}, fmt.Errorf("save favorites: %w", err)
	}
	return f, nil
}

// Remove drops entryID from owner's favorites. Removing an unsaved id is a no-op.
func (s *Service) Remove(ctx context.Context, owner, entryID string) (domfav.Favorites, error) {
	if err := validateOwner(owner); err != nil {
		return domfav.Favorites{}, err
	}
	f, err := s.repo.Modify(ctx, owner, func(cur domfav.Favorites) (domfav.Favorites, bool, error) {
		next, removed := cur.Remove(entryID, s.now().UTC())
		return next, removed, nil
	})
	if err != nil {
		return domfav.Favorites{}, fmt.Errorf("save favorites: %w", err)
	}
	return f, nil
}

// Clear removes all of owner's favorites.
func (s *Service) Clear(ctx context.Context, owner string) error {
	if err := validateOwner(owner); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, owner); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}

func validateOwner(owner string) error {
	if _, err := domfav.New(owner); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return nil
}
