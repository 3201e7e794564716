package library

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/match"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	"github.com/kailas-cloud/earlyhelp/internal/metrics"
)

// RankFields are the entry fields scored by ranked search.
var RankFields = []string{"title", "summary", "body"}

// Listing holds page size defaults.
type Listing struct {
	DefaultLimit int
	MaxLimit     int
}

// Service serves the educational library: entries grouped by category.
type Service struct {
	entries    EntryRepository
	categories CategoryRepository
	listing    Listing
}

// New creates a library service.
func New(entries EntryRepository, categories CategoryRepository, listing Listing) *Service {
	return &Service{entries: entries, categories: categories, listing: listing}
}

// Search lists published entries matching req, one page at a time.
// Substring results keep display order; ranked results are ordered by score.
func (s *Service) Search(ctx context.Context, req request.Request) (result.Page[entry.Entry], error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return result.Page[entry.Entry]{}, fmt.Errorf("list entries: %w", err)
	}

	crit := req.Criteria()
	recs := filter.Published(all)
	recs = filter.ByCategory(recs, crit.CategoryID())
	recs = filter.ByTags(recs, crit.Tags())

	if req.Mode() == mode.Ranked && req.HasQuery() {
		recs = match.Rank(recs, req.Query(), RankFields)
	} else {
		recs = filter.SortByOrder(match.Search(recs, req.Query()))
	}

	metrics.SearchResults.WithLabelValues("entries", string(req.Mode())).Observe(float64(len(recs)))
	return result.Paginate(recs, req.Page(), req.Limit(s.listing.DefaultLimit, s.listing.MaxLimit)), nil
}

// Get returns a published entry. Unpublished entries are reported as missing.
func (s *Service) Get(ctx context.Context, id string) (entry.Entry, error) {
	e, err := s.entries.Get(ctx, id)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	if !e.Published() {
		return entry.Entry{}, domain.ErrEntryNotFound
	}
	return e, nil
}

// Tags returns the sorted set of tags across published entries.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return filter.UniqueTags(filter.Published(all)), nil
}

// Categories returns all categories by display order.
func (s *Service) Categories(ctx context.Context) ([]category.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return filter.SortByOrder(cats), nil
}

// Category returns the category with id.
func (s *Service) Category(ctx context.Context, id string) (category.Category, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return category.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// CategoryBySlug returns the category with slug.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (category.Category, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return category.Category{}, fmt.Errorf("get category by slug: %w", err)
	}
	return c, nil
}

// ListAll returns every entry including drafts, by display order.
func (s *Service) ListAll(ctx context.Context, req request.Request) (result.Page[entry.Entry], error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return result.Page[entry.Entry]{}, fmt.Errorf("list entries: %w", err)
	}
	recs := filter.ByCategory(all, req.Criteria().CategoryID())
	recs = filter.SortByOrder(match.Search(recs, req.Query()))
	return result.Paginate(recs, req.Page(), req.Limit(s.listing.DefaultLimit, s.listing.MaxLimit)), nil
}

// UpsertEntry validates and stores an entry. Returns true when created.
func (s *Service) UpsertEntry(ctx context.Context, f entry.Fields) (entry.Entry, bool, error) {
	e, err := entry.New(f)
	if err != nil {
		return entry.Entry{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	if _, err := s.categories.Get(ctx, e.CategoryID()); err != nil {
		return entry.Entry{}, false, fmt.Errorf("check category: %w", err)
	}
	created, err := s.entries.Upsert(ctx, e)
	if err != nil {
		return entry.Entry{}, false, fmt.Errorf("upsert entry: %w", err)
	}
	metrics.ContentUpsertsTotal.WithLabelValues("entry", metrics.UpsertResult(created)).Inc()
	return e, created, nil
}

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// UpsertCategory validates and stores a category. Returns true when created.
func (s *Service) UpsertCategory(
	ctx context.Context, id, name, description, slug string, order int,
) (category.Category, bool, error) {
	c, err := category.New(id, name, description, slug, order)
	if err != nil {
		return category.Category{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	created, err := s.categories.Upsert(ctx, c)
	if err != nil {
		return category.Category{}, false, fmt.Errorf("upsert category: %w", err)
	}
	metrics.ContentUpsertsTotal.WithLabelValues("category", metrics.UpsertResult(created)).Inc()
	return c, created, nil
}

// DeleteCategory removes a category and its entries.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

