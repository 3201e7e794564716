package favorites

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Limits for favorites sets.
const (
	MaxEntries     = 500
	MaxOwnerLength = 128
)

// Favorites is an ordered, duplicate-free set of saved entry ids.
type Favorites struct {
	owner     string
	entryIDs  []string
	updatedAt time.Time
}

// New creates an empty set for owner.
func New(owner string) (Favorites, error) {
	if strings.TrimSpace(owner) == "" {
		return Favorites{}, fmt.Errorf("owner is required")
	}
	if len(owner) > MaxOwnerLength {
		return Favorites{}, fmt.Errorf("owner too long (max %d)", MaxOwnerLength)
	}
	return Favorites{owner: owner}, nil
}

// Reconstruct hydrates a set from storage, dropping blanks and duplicates.
func Reconstruct(owner string, entryIDs []string, updatedAt time.Time) Favorites {
	f := Favorites{owner: owner, updatedAt: updatedAt}
	for _, id := range entryIDs {
		if id != "" && !slices.Contains(f.entryIDs, id) {
			f.entryIDs = append(f.entryIDs, id)
		}
	}
	return f
}

// Owner returns the id the set is stored under.
func (f Favorites) Owner() string { return f.owner }

// EntryIDs returns a copy of the saved ids in the order they were added.
func (f Favorites) EntryIDs() []string { return slices.Clone(f.entryIDs) }

// UpdatedAt returns the time of the last change.
func (f Favorites) UpdatedAt() time.Time { return f.updatedAt }

// Len returns the number of saved entries.
func (f Favorites) Len() int { return len(f.entryIDs) }

// Contains reports whether entryID is saved.
func (f Favorites) Contains(entryID string) bool {
	return slices.Contains(f.entryIDs, entryID)
}

// Add returns a copy with entryID appended. Adding a saved id is a no-op.
func (f Favorites) Add(entryID string, now time.Time) (Favorites, error) {
	if strings.TrimSpace(entryID) == "" {
		return f, fmt.Errorf("entry ID is required")
	}
	if f.Contains(entryID) {
		return f, nil
	}
	if len(f.entryIDs) >= MaxEntries {
		return f, fmt.Errorf("too many favorites (max %d)", MaxEntries)
	}
	ids := make([]string, len(f.entryIDs), len(f.entryIDs)+1)
	copy(ids, f.entryIDs)
	return Favorites{owner: f.owner, entryIDs: append(ids, entryID), updatedAt: now}, nil
}

// Remove returns a copy without entryID. The bool reports whether it was present.
func (f Favorites) Remove(entryID string, now time.Time) (Favorites, bool) {
	idx := slices.Index(f.entryIDs, entryID)
	if idx < 0 {
		return f, false
	}
	ids := slices.Delete(slices.Clone(f.entryIDs), idx, idx+1)
	return Favorites{owner: f.owner, entryIDs: ids, updatedAt: now}, true
}
