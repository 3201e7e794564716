package chi

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
	favoritesuc "github.com/kailas-cloud/earlyhelp/internal/usecase/favorites"
	glossaryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/glossary"
	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
	libraryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/library"
	navigatoruc "github.com/kailas-cloud/earlyhelp/internal/usecase/navigator"
)

// --- In-memory repositories ---

// memRepo is an ordered in-memory keyed store.
type memRepo[T any] struct {
	mu       sync.Mutex
	ids      []string
	items    map[string]T
	id       func(T) string
	notFound error
}

func newMemRepo[T any](id func(T) string, notFound error, seed ...T) *memRepo[T] {
	m := &memRepo[T]{items: map[string]T{}, id: id, notFound: notFound}
	for _, it := range seed {
		_, _ = m.Upsert(context.Background(), it)
	}
	return m
}

func (m *memRepo[T]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *memRepo[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		var zero T
		return zero, m.notFound
	}
	return it, nil
}

func (m *memRepo[T]) Upsert(_ context.Context, it T) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id(it)
	_, exists := m.items[id]
	if !exists {
		m.ids = append(m.ids, id)
	}
	m.items[id] = it
	return !exists, nil
}

func (m *memRepo[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return m.notFound
	}
	delete(m.items, id)
	for i, v := range m.ids {
		if v == id {
			m.ids = append(m.ids[:i], m.ids[i+1:]...)
			break
		}
	}
	return nil
}

type memCategories struct {
	*memRepo[category.Category]
}

func (m memCategories) GetBySlug(ctx context.Context, slug string) (category.Category, error) {
	all, _ := m.List(ctx)
	for _, c := range all {
		if c.Slug() == slug {
			return c, nil
		}
	}
	return category.Category{}, domain.ErrCategoryNotFound
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]domchecklist.Session
}

func (m *memSessions) Load(_ context.Context, id string) (domchecklist.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok, nil
}

func (m *memSessions) Save(_ context.Context, s domchecklist.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type memFavorites struct {
	mu   sync.Mutex
	sets map[string]domfav.Favorites
}

func (m *memFavorites) Load(_ context.Context, owner string) (domfav.Favorites, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.sets[owner]; ok {
		return f, nil
	}
	return domfav.Reconstruct(owner, nil, time.Time{}), nil
}

func (m *memFavorites) Modify(
	_ context.Context, owner string, fn func(domfav.Favorites) (domfav.Favorites, bool, error),
) (domfav.Favorites, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sets[owner]
	if !ok {
		cur = domfav.Reconstruct(owner, nil, time.Time{})
	}
	next, changed, err := fn(cur)
	if err != nil {
		return domfav.Favorites{}, err
	}
	if !changed {
		return cur, nil
	}
	m.sets[owner] = next
	return next, nil
}

func (m *memFavorites) Delete(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sets, owner)
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// --- Fixtures ---

type testEnv struct {
	server     *Server
	entries    *memRepo[entry.Entry]
	categories memCategories
	sessions   *memSessions
	favorites  *memFavorites
}

func mustEntry(t *testing.T, f entry.Fields) entry.Entry {
	t.Helper()
	e, err := entry.New(f)
	if err != nil {
		t.Fatalf("entry.New: %v", err)
	}
	return e
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cat, err := category.New("cat-1", "Understanding", "Basics", "understanding", 1)
	if err != nil {
		t.Fatalf("category.New: %v", err)
	}
	categories := memCategories{newMemRepo(category.Category.ID, domain.ErrCategoryNotFound, cat)}

	entries := newMemRepo(entry.Entry.ID, domain.ErrEntryNotFound,
		mustEntry(t, entry.Fields{
			ID: "e1", CategoryID: "cat-1", Title: "Radicalization Explained",
			Summary: "What radicalization is", Body: "Radicalization is a process.",
			Tags: []string{"basics", "process"}, Published: true, Order: 2,
		}),
		mustEntry(t, entry.Fields{
			ID: "e2", CategoryID: "cat-1", Title: "Warning Signs",
			Summary: "Signs to watch", Body: "Withdrawal from friends.",
			Tags: []string{"signs"}, Published: true, Order: 1,
		}),
		mustEntry(t, entry.Fields{
			ID: "draft", CategoryID: "cat-1", Title: "Draft Radicalization Notes",
			Tags: []string{"internal"}, Published: false, Order: 3,
		}),
	)

	item, err := domglossary.New(domglossary.Fields{
		ID: "g1", Term: "Echo Chamber", Meaning: "A closed information space",
		Context: "Online forums", RelatedTerms: []string{"filter bubble"},
	})
	if err != nil {
		t.Fatalf("glossary.New: %v", err)
	}
	glossary := newMemRepo(domglossary.Item.ID, domain.ErrGlossaryItemNotFound, item)

	c1, err := contact.New(contact.Fields{
		ID: "c1", Name: "Family Counseling Center", Role: contact.RoleParent,
		Region: "Berlin", ZipCodes: []string{"10"}, Description: "Counseling for parents",
	})
	if err != nil {
		t.Fatalf("contact.New: %v", err)
	}
	c2, err := contact.New(contact.Fields{
		ID: "c2", Name: "School Support Network", Role: contact.RoleTeacher,
		Region: "Hamburg", ZipCodes: []string{"20095"}, Description: "Support for schools",
	})
	if err != nil {
		t.Fatalf("contact.New: %v", err)
	}
	contacts := newMemRepo(contact.Contact.ID, domain.ErrContactNotFound, c1, c2)

	sessions := &memSessions{sessions: map[string]domchecklist.Session{}}
	favorites := &memFavorites{sets: map[string]domfav.Favorites{}}

	library := libraryuc.New(entries, categories, libraryuc.Listing{DefaultLimit: 10, MaxLimit: 50})
	srv := NewServer(
		library,
		glossaryuc.New(glossary, 10, 50),
		navigatoruc.New(contacts, 10, 50),
		checklistuc.New(sessions),
		favoritesuc.New(favorites, library),
		healthuc.New(stubPinger{}, stubPinger{err: errors.New("down")}),
		zap.NewNop(),
	)
	return &testEnv{
		server:     srv,
		entries:    entries,
		categories: categories,
		sessions:   sessions,
		favorites:  favorites,
	}
}
