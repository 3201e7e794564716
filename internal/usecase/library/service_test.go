package library

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
)

// --- Mocks ---

type mockEntries struct {
	entries   []entry.Entry
	listErr   error
	getErr    error
	upserted  []entry.Entry
	created   bool
	upsertErr error
	deleted   []string
	deleteErr error
}

func (m *mockEntries) List(_ context.Context) ([]entry.Entry, error) {
	return m.entries, m.listErr
}

func (m *mockEntries) Get(_ context.Context, id string) (entry.Entry, error) {
	if m.getErr != nil {
		return entry.Entry{}, m.getErr
	}
	for _, e := range m.entries {
		if e.ID() == id {
			return e, nil
		}
	}
	return entry.Entry{}, domain.ErrEntryNotFound
}

func (m *mockEntries) Upsert(_ context.Context, e entry.Entry) (bool, error) {
	m.upserted = append(m.upserted, e)
	return m.created, m.upsertErr
}

func (m *mockEntries) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.deleteErr
}

type mockCategories struct {
	cats      []category.Category
	created   bool
	upsertErr error
	deleteErr error
}

func (m *mockCategories) List(_ context.Context) ([]category.Category, error) {
	return m.cats, nil
}

func (m *mockCategories) Get(_ context.Context, id string) (category.Category, error) {
	for _, c := range m.cats {
		if c.ID() == id {
			return c, nil
		}
	}
	return category.Category{}, domain.ErrCategoryNotFound
}

func (m *mockCategories) GetBySlug(_ context.Context, slug string) (category.Category, error) {
	for _, c := range m.cats {
		if c.Slug() == slug {
			return c, nil
		}
	}
	return category.Category{}, domain.ErrCategoryNotFound
}

func (m *mockCategories) Upsert(_ context.Context, _ category.Category) (bool, error) {
	return m.created, m.upsertErr
}

func (m *mockCategories) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// --- Fixtures ---

func mkEntry(id, cat, title, summary string, order int, published bool, tags ...string) entry.Entry {
	return entry.Reconstruct(entry.Fields{
		ID: id, CategoryID: cat, Title: title, Summary: summary, Tags: tags, Order: order, Published: published,
	})
}

func fixtures() (*mockEntries, *mockCategories) {
	entries := &mockEntries{entries: []entry.Entry{
		mkEntry("e1", "basics", "Radicalization Explained", "How views harden", 2, true, "radicalization"),
		mkEntry("e2", "online", "Algorithm Rabbit Holes", "Recommendation spirals", 1, true, "Algorithms", "online"),
		mkEntry("e3", "online", "Draft: Gaming chats", "Not ready", 0, false, "gaming"),
		mkEntry("e4", "basics", "Warning signs", "What to watch for in radicalization", 3, true, "signs"),
	}}
	c1, _ := category.New("basics", "Basics", "", "basics", 1)
	c2, _ := category.New("online", "Online Spaces", "", "online-spaces", 0)
	return entries, &mockCategories{cats: []category.Category{c1, c2}}
}

func mustRequest(t *testing.T, query string, m mode.Mode, cat string, tags []string, page, limit int) request.Request {
	t.Helper()
	crit, err := filter.NewCriteria(cat, tags, "", "")
	if err != nil {
		t.Fatalf("NewCriteria: %v", err)
	}
	req, err := request.New(query, m, crit, page, limit)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}

func ids(es []entry.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID()
	}
	return out
}

// --- Tests ---

func TestSearch_EmptyQueryListsPublishedByOrder(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	page, err := svc.Search(context.Background(), mustRequest(t, "", "", "", nil, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e2", "e1", "e4"}) {
		t.Errorf("ids = %v", got)
	}
	if page.Total() != 3 || page.Limit() != 20 {
		t.Errorf("total=%d limit=%d", page.Total(), page.Limit())
	}
}

func TestSearch_SubstringMatchesTitleSummaryAndTags(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	page, _ := svc.Search(context.Background(), mustRequest(t, "RADICAL", mode.Substring, "", nil, 1, 0))
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e1", "e4"}) {
		t.Errorf("ids = %v", got)
	}

	page, _ = svc.Search(context.Background(), mustRequest(t, "algorithms", mode.Substring, "", nil, 1, 0))
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e2"}) {
		t.Errorf("tag match ids = %v", got)
	}
}

func TestSearch_NeverReturnsDrafts(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	page, _ := svc.Search(context.Background(), mustRequest(t, "gaming", "", "", nil, 1, 0))
	if page.Total() != 0 {
		t.Errorf("draft leaked: %v", ids(page.Items()))
	}
}

func TestSearch_CategoryAndTags(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	page, _ := svc.Search(context.Background(), mustRequest(t, "", "", "basics", []string{"SIGNS"}, 1, 0))
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e4"}) {
		t.Errorf("ids = %v", got)
	}
}

func TestSearch_RankedOrdersByScore(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	// e1 scores a title prefix (60), e4 only a summary substring (35).
	page, err := svc.Search(context.Background(), mustRequest(t, "radicalization", mode.Ranked, "", nil, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(page.Items())
	if len(got) != 2 || got[0] != "e1" || got[1] != "e4" {
		t.Errorf("ids = %v", got)
	}
}

func TestSearch_Pagination(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{DefaultLimit: 2, MaxLimit: 2})

	page, _ := svc.Search(context.Background(), mustRequest(t, "", "", "", nil, 2, 50))
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e4"}) {
		t.Errorf("ids = %v", got)
	}
	if page.Limit() != 2 || page.TotalPages() != 2 || page.HasMore() {
		t.Errorf("limit=%d pages=%d more=%v", page.Limit(), page.TotalPages(), page.HasMore())
	}
}

func TestSearch_RepoError(t *testing.T) {
	_, cats := fixtures()
	svc := New(&mockEntries{listErr: errors.New("db down")}, cats, Listing{})
	if _, err := svc.Search(context.Background(), mustRequest(t, "", "", "", nil, 1, 0)); err == nil {
		t.Fatal("expected error")
	}
}

func TestGet_HidesDrafts(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	if _, err := svc.Get(context.Background(), "e3"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for draft, got %v", err)
	}
	e, err := svc.Get(context.Background(), "e1")
	if err != nil || e.ID() != "e1" {
		t.Errorf("Get(e1) = %v, %v", e.ID(), err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestTags_PublishedOnly(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	tags, err := svc.Tags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Algorithms", "online", "radicalization", "signs"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
}

func TestCategories_SortedByOrder(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	got, _ := svc.Categories(context.Background())
	if len(got) != 2 || got[0].ID() != "online" {
		t.Errorf("categories = %+v", got)
	}

	c, err := svc.CategoryBySlug(context.Background(), "online-spaces")
	if err != nil || c.ID() != "online" {
		t.Errorf("CategoryBySlug = %v, %v", c.ID(), err)
	}
	if _, err := svc.Category(context.Background(), "x"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestListAll_IncludesDrafts(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	page, err := svc.ListAll(context.Background(), mustRequest(t, "", "", "online", nil, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(page.Items()); !reflect.DeepEqual(got, []string{"e3", "e2"}) {
		t.Errorf("ids = %v", got)
	}
}

func TestUpsertEntry(t *testing.T) {
	entries, cats := fixtures()
	entries.created = true
	svc := New(entries, cats, Listing{})

	e, created, err := svc.UpsertEntry(context.Background(), entry.Fields{ID: "e9", CategoryID: "basics", Title: "New"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created || e.ID() != "e9" || len(entries.upserted) != 1 {
		t.Errorf("created=%v upserted=%d", created, len(entries.upserted))
	}
}

func TestUpsertEntry_Invalid(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	_, _, err := svc.UpsertEntry(context.Background(), entry.Fields{ID: "e9", CategoryID: "basics"})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if len(entries.upserted) != 0 {
		t.Error("invalid entry was stored")
	}
}

func TestUpsertEntry_UnknownCategory(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	_, _, err := svc.UpsertEntry(context.Background(), entry.Fields{ID: "e9", CategoryID: "nope", Title: "T"})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteEntry_PropagatesNotFound(t *testing.T) {
	entries, cats := fixtures()
	entries.deleteErr = domain.ErrEntryNotFound
	svc := New(entries, cats, Listing{})

	if err := svc.DeleteEntry(context.Background(), "zz"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestUpsertCategory(t *testing.T) {
	entries, cats := fixtures()
	svc := New(entries, cats, Listing{})

	if _, _, err := svc.UpsertCategory(context.Background(), "c", "Name", "", "Bad Slug", 0); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	c, _, err := svc.UpsertCategory(context.Background(), "c", "Name", "", "good-slug", 4)
	if err != nil || c.Order() != 4 {
		t.Errorf("UpsertCategory = %+v, %v", c, err)
	}
	cats.deleteErr = domain.ErrCategoryNotFound
	if err := svc.DeleteCategory(context.Background(), "c"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}
