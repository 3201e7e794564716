package navigator

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/match"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	"github.com/kailas-cloud/earlyhelp/internal/metrics"
)

// RankFields are the contact fields scored by ranked search.
var RankFields = []string{"name", "region", "description"}

// Service is the Help Navigator: support contacts by audience and area.
type Service struct {
	repo         Repository
	defaultLimit int
	maxLimit     int
}

// New creates a navigator service.
func New(repo Repository, defaultLimit, maxLimit int) *Service {
	return &Service{repo: repo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Find lists contacts serving the requested role and postal area that match the query.
func (s *Service) Find(ctx context.Context, req request.Request) (result.Page[contact.Contact], error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return result.Page[contact.Contact]{}, fmt.Errorf("list contacts: %w", err)
	}

	crit := req.Criteria()
	recs := filter.ByRole(all, crit.Role())
	recs = filter.ByZipCode(recs, crit.ZipCode())

	if req.Mode() == mode.Ranked {
		recs = match.Rank(recs, req.Query(), RankFields)
	} else {
		recs = match.Search(recs, req.Query())
	}

	metrics.SearchResults.WithLabelValues("contacts", string(req.Mode())).Observe(float64(len(recs)))
	return result.Paginate(recs, req.Page(), req.Limit(s.defaultLimit, s.maxLimit)), nil
}

// Get returns the contact with id.
func (s *Service) Get(ctx context.Context, id string) (contact.Contact, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Upsert validates and stores a contact. Returns true when created.
func (s *Service) Upsert(ctx context.Context, f contact.Fields) (contact.Contact, bool, error) {
	c, err := contact.New(f)
	if err != nil {
		return contact.Contact{}, false, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	created, err := s.repo.Upsert(ctx, c)
	if err != nil {
		return contact.Contact{}, false, fmt.Errorf("upsert contact: %w", err)
	}
	metrics.ContentUpsertsTotal.WithLabelValues("contact", metrics.UpsertResult(created)).Inc()
	return c, created, nil
}

// Delete removes the contact with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
