package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	"github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

func entryRow(id string, published bool, order int) []any {
	return []any{
		id, "cat-1", "Title " + id, "summary", "body", []string{"a", "b"}, published, order,
		testNow, testNow, testNow,
	}
}

// --- entries ---

func TestEntries_List(t *testing.T) {
	q := &fakeQuerier{rows: [][]any{entryRow("e1", true, 1), entryRow("e2", false, 2)}}
	r := NewEntries(q)

	got, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "e1" || got[1].Order() != 2 {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if len(got[0].Tags()) != 2 || !got[0].Published() {
		t.Errorf("row not hydrated: %+v", got[0].Fields())
	}

	if got[1].Published() {
		t.Error("unpublished flag lost")
	}

	c := q.last()
	if !strings.HasSuffix(c.sql, `FROM entries ORDER BY "order", title`) {
		t.Errorf("sql = %s", c.sql)
	}
	if len(c.args) != 0 {
		t.Errorf("args = %v", c.args)
	}
}

func TestEntries_List_QueryError(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New("conn refused")}
	if _, err := NewEntries(q).List(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestEntries_Get(t *testing.T) {
	q := &fakeQuerier{row: entryRow("e1", false, 3)}
	got, err := NewEntries(q).Get(context.Background(), "e1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID() != "e1" || got.Published() || got.CategoryID() != "cat-1" {
		t.Errorf("unexpected entry: %+v", got.Fields())
	}
	if q.last().args[0] != "e1" {
		t.Errorf("args = %v", q.last().args)
	}
}

func TestEntries_Get_NotFound(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	_, err := NewEntries(q).Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntries_Upsert(t *testing.T) {
	q := &fakeQuerier{row: []any{true}}
	r := NewEntries(q)
	e := entry.Reconstruct(entry.Fields{ID: "e1", CategoryID: "cat-1", Title: "T"})

	created, err := r.Upsert(context.Background(), e)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("expected created=true")
	}

	c := q.last()
	if !strings.HasPrefix(c.sql, "INSERT INTO entries") {
		t.Errorf("sql = %s", c.sql)
	}
	if !strings.Contains(c.sql, "ON CONFLICT (id) DO UPDATE SET category_id = EXCLUDED.category_id") {
		t.Errorf("missing conflict clause: %s", c.sql)
	}
	if !strings.HasSuffix(c.sql, "RETURNING (xmax = 0)") {
		t.Errorf("missing returning: %s", c.sql)
	}
	if strings.Contains(c.sql, "created_at = EXCLUDED") {
		t.Errorf("created_at must not be overwritten: %s", c.sql)
	}
	if tags, ok := c.args[5].([]string); !ok || tags == nil {
		t.Errorf("nil tags must be sent as empty array, got %#v", c.args[5])
	}
}

func TestEntries_Upsert_UnknownCategory(t *testing.T) {
	q := &fakeQuerier{rowErr: &pgconn.PgError{Code: pgForeignKeyViolation}}
	e := entry.Reconstruct(entry.Fields{ID: "e1", CategoryID: "nope", Title: "T"})
	_, err := NewEntries(q).Upsert(context.Background(), e)
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestEntries_Delete(t *testing.T) {
	q := &fakeQuerier{affected: 1}
	if err := NewEntries(q).Delete(context.Background(), "e1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if q.last().sql != "DELETE FROM entries WHERE id = $1" {
		t.Errorf("sql = %s", q.last().sql)
	}

	q = &fakeQuerier{affected: 0}
	if err := NewEntries(q).Delete(context.Background(), "e1"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

// --- categories ---

func TestCategories_ListAndGetBySlug(t *testing.T) {
	row := []any{"c1", "Basics", "desc", "basics", 1, testNow, testNow}
	q := &fakeQuerier{rows: [][]any{row}, row: row}
	r := NewCategories(q)

	cats, err := r.List(context.Background())
	if err != nil || len(cats) != 1 || cats[0].Slug() != "basics" {
		t.Fatalf("List = %+v, %v", cats, err)
	}

	got, err := r.GetBySlug(context.Background(), "basics")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID() != "c1" {
		t.Errorf("ID = %q", got.ID())
	}
	if !strings.Contains(q.last().sql, "WHERE slug = $1") {
		t.Errorf("sql = %s", q.last().sql)
	}
}

func TestCategories_Get_NotFound(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	if _, err := NewCategories(q).Get(context.Background(), "x"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategories_Upsert_DuplicateSlug(t *testing.T) {
	q := &fakeQuerier{rowErr: &pgconn.PgError{Code: pgUniqueViolation}}
	c, _ := category.New("c2", "Other", "", "basics", 2)
	if _, err := NewCategories(q).Upsert(context.Background(), c); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCategories_Upsert_Updated(t *testing.T) {
	q := &fakeQuerier{row: []any{false}}
	r := NewCategories(q)
	r.now = func() time.Time { return testNow }
	c, _ := category.New("c1", "Basics", "", "basics", 1)

	created, err := r.Upsert(context.Background(), c)
	if err != nil || created {
		t.Fatalf("Upsert = %v, %v", created, err)
	}
	if got, ok := q.last().args[6].(time.Time); !ok || !got.Equal(testNow) {
		t.Errorf("updated_at arg = %v", q.last().args[6])
	}
}

// --- glossary ---

func TestGlossary_ListGetDelete(t *testing.T) {
	row := []any{"g1", "Echo chamber", "meaning", "ctx", "ex", []string{"filter bubble"}, testNow, testNow}
	q := &fakeQuerier{rows: [][]any{row}, row: row, affected: 0}
	r := NewGlossary(q)

	items, err := r.List(context.Background())
	if err != nil || len(items) != 1 || items[0].RelatedTerms()[0] != "filter bubble" {
		t.Fatalf("List = %+v, %v", items, err)
	}
	if !strings.Contains(q.last().sql, "ORDER BY term, id") {
		t.Errorf("sql = %s", q.last().sql)
	}

	it, err := r.Get(context.Background(), "g1")
	if err != nil || it.Term() != "Echo chamber" {
		t.Fatalf("Get = %+v, %v", it, err)
	}

	if err := r.Delete(context.Background(), "g1"); !errors.Is(err, domain.ErrGlossaryItemNotFound) {
		t.Errorf("expected ErrGlossaryItemNotFound, got %v", err)
	}
}

func TestGlossary_Upsert(t *testing.T) {
	q := &fakeQuerier{row: []any{true}}
	it, _ := glossary.New(glossary.Fields{ID: "g1", Term: "t", Meaning: "m"})
	if _, err := NewGlossary(q).Upsert(context.Background(), it); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !strings.HasPrefix(q.last().sql, "INSERT INTO glossary_items") {
		t.Errorf("sql = %s", q.last().sql)
	}
}

// --- contacts ---

func TestContacts_ListAndUpsert(t *testing.T) {
	row := []any{
		"s1", "Youth Line", contact.RoleParent, "Berlin", []string{"10115"}, "", "", "", "desc", "hotline",
		testNow, testNow,
	}
	q := &fakeQuerier{rows: [][]any{row}, row: []any{true}}
	r := NewContacts(q)

	got, err := r.List(context.Background())
	if err != nil || len(got) != 1 || got[0].ZipCodes()[0] != "10115" {
		t.Fatalf("List = %+v, %v", got, err)
	}

	c, _ := contact.New(contact.Fields{ID: "s1", Name: "Youth Line", Role: contact.RoleAll})
	created, err := r.Upsert(context.Background(), c)
	if err != nil || !created {
		t.Fatalf("Upsert = %v, %v", created, err)
	}
	if !strings.Contains(q.last().sql, "zip_codes = EXCLUDED.zip_codes") {
		t.Errorf("sql = %s", q.last().sql)
	}
}

func TestContacts_Get_NotFound(t *testing.T) {
	q := &fakeQuerier{rowErr: pgx.ErrNoRows}
	if _, err := NewContacts(q).Get(context.Background(), "x"); !errors.Is(err, domain.ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}
