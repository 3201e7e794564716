package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
)

var entryColumns = []string{
	"id", "category_id", "title", "summary", "body", "tags", "published", `"order"`,
	"created_at", "updated_at", "last_updated",
}

// Entries implements usecase/library.EntryRepository.
type Entries struct {
	q   querier
	now func() time.Time
}

// NewEntries creates an entry repository.
func NewEntries(q querier) *Entries {
	return &Entries{q: q, now: time.Now}
}

// List returns every entry, published or not, by display order.
func (r *Entries) List(ctx context.Context) ([]entry.Entry, error) {
	b := psql.Select(entryColumns...).From("entries").OrderBy(`"order"`, "title")
	entries, err := list(ctx, r.q, b, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Get returns the entry with id regardless of its published flag.
func (r *Entries) Get(ctx context.Context, id string) (entry.Entry, error) {
	b := psql.Select(entryColumns...).From("entries").Where(squirrel.Eq{"id": id})
	var f entry.Fields
	err := getOne(ctx, r.q, b, domain.ErrEntryNotFound, entryDest(&f)...)
	if err != nil {
		return entry.Entry{}, err
	}
	return entry.Reconstruct(f), nil
}

// Upsert inserts or replaces e and stamps last_updated. Returns true when created.
func (r *Entries) Upsert(ctx context.Context, e entry.Entry) (bool, error) {
	now := r.now().UTC()
	b := psql.Insert("entries").
		Columns(entryColumns...).
		Values(
			e.ID(), e.CategoryID(), e.Title(), e.Summary(), e.Body(), orEmpty(e.Tags()), e.Published(), e.Order(),
			nowOr(e.CreatedAt(), now), now, nowOr(e.LastUpdated(), now),
		).
		Suffix(upsertSuffix(
			"category_id", "title", "summary", "body", "tags", "published", `"order"`,
			"updated_at", "last_updated",
		))

	created, err := upsert(ctx, r.q, b)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return false, fmt.Errorf("category %q: %w", e.CategoryID(), domain.ErrCategoryNotFound)
		}
		return false, fmt.Errorf("upsert entry: %w", err)
	}
	return created, nil
}

// Delete removes the entry with id.
func (r *Entries) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "entries", id, domain.ErrEntryNotFound)
}

func entryDest(f *entry.Fields) []any {
	return []any{
		&f.ID, &f.CategoryID, &f.Title, &f.Summary, &f.Body, &f.Tags, &f.Published, &f.Order,
		&f.CreatedAt, &f.UpdatedAt, &f.LastUpdated,
	}
}

func scanEntry(row pgx.Row) (entry.Entry, error) {
	var f entry.Fields
	if err := row.Scan(entryDest(&f)...); err != nil {
		return entry.Entry{}, err
	}
	return entry.Reconstruct(f), nil
}
