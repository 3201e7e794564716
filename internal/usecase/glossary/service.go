package glossary

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/match"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	"github.com/kailas-cloud/earlyhelp/internal/metrics"
)

// RankFields are the glossary fields scored by ranked search.
var RankFields = []string{"term", "meaning", "context"}

// Service serves glossary lookups.
type Service struct {
	repo         Repository
	defaultLimit int
	maxLimit     int
}

// New creates a glossary service.
func New(repo Repository, defaultLimit, maxLimit int) *Service {
	return &Service{repo: repo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Search lists glossary items matching req. Substring results keep term order.
func (s *Service) Search(ctx context.Context, req request.Request) (result.Page[domglossary.Item], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return result.Page[domglossary.Item]{}, fmt.Errorf("list glossary: %w", err)
	}

	if req.Mode() == mode.Ranked {
		items = match.Rank(items, req.Query(), RankFields)
	} else {
		items = match.Search(items, req.Query())
	}

	metrics.SearchResults.WithLabelValues("glossary", string(req.Mode())).Observe(float64(len(items)))
	return result.Paginate(items, req.Page(), req.Limit(s.defaultLimit, s.maxLimit)), nil
}

// Get returns the glossary item with id.
func (s *Service) Get(ctx context.Context, id string) (domglossary.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return domglossary.Item{}, fmt.Errorf("get glossary item: %w", err)
	}
	return it, nil
}

// Upsert validates and stores an item. Returns true when created.
func (s *Service) Upsert(ctx context.Context, f domglossary.Fields) (domglossary.Item, bool, error) {
	it, err := domglossary.New(f)
	if err != nil {
		return domglossary.Item{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	created, err := s.repo.Upsert(ctx, it)
	if err != nil {
		return domglossary.Item{}, false, fmt.Errorf("upsert glossary item: %w", err)
	}
	metrics.ContentUpsertsTotal.WithLabelValues("glossary", metrics.UpsertResult(created)).Inc()
	return it, created, nil
}

// Delete removes the item with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete glossary item: %w", err)
	}
	return nil
}
