package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

var glossaryColumns = []string{
	"id", "term", "meaning", "context", "examples", "related_terms", "created_at", "updated_at",
}

// Glossary implements usecase/glossary.Repository.
type Glossary struct {
	q   querier
	now func() time.Time
}

// NewGlossary creates a glossary repository.
func NewGlossary(q querier) *Glossary {
	return &Glossary{q: q, now: time.Now}
}

// List returns all glossary items ordered by term.
func (r *Glossary) List(ctx context.Context) ([]glossary.Item, error) {
	b := psql.Select(glossaryColumns...).From("glossary_items").OrderBy("term", "id")
	items, err := list(ctx, r.q, b, scanGlossaryItem)
	if err != nil {
		return nil, fmt.Errorf("list glossary: %w", err)
	}
	return items, nil
}

// Get returns the glossary item with id.
func (r *Glossary) Get(ctx context.Context, id string) (glossary.Item, error) {
	b := psql.Select(glossaryColumns...).From("glossary_items").Where(squirrel.Eq{"id": id})
	var f glossary.Fields
	if err := getOne(ctx, r.q, b, domain.ErrGlossaryItemNotFound, glossaryDest(&f)...); err != nil {
		return glossary.Item{}, err
	}
	return glossary.Reconstruct(f), nil
}

// Upsert inserts or replaces it. Returns true when created.
func (r *Glossary) Upsert(ctx context.Context, it glossary.Item) (bool, error) {
	now := r.now().UTC()
	b := psql.Insert("glossary_items").
		Columns(glossaryColumns...).
		Values(
			it.ID(), it.Term(), it.Meaning(), it.Context(), it.Examples(), orEmpty(it.RelatedTerms()),
			nowOr(it.CreatedAt(), now), now,
		).
		Suffix(upsertSuffix("term", "meaning", "context", "examples", "related_terms", "updated_at"))

	created, err := upsert(ctx, r.q, b)
	if err != nil {
		return false, fmt.Errorf("upsert glossary item: %w", err)
	}
	return created, nil
}

// Delete removes the glossary item with id.
func (r *Glossary) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "glossary_items", id, domain.ErrGlossaryItemNotFound)
}

func glossaryDest(f *glossary.Fields) []any {
	return []any{&f.ID, &f.Term, &f.Meaning, &f.Context, &f.Examples, &f.RelatedTerms, &f.CreatedAt, &f.UpdatedAt}
}

func scanGlossaryItem(row pgx.Row) (glossary.Item, error) {
	var f glossary.Fields
	if err := row.Scan(glossaryDest(&f)...); err != nil {
		return glossary.Item{}, err
	}
	return glossary.Reconstruct(f), nil
}
