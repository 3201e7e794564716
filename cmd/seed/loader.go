package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

type upserter[T any] interface {
	Upsert(ctx context.Context, v T) (created bool, err error)
}

// sinks are the repositories a seed file is written to.
type sinks struct {
	categories upserter[category.Category]
	entries    upserter[entry.Entry]
	glossary   upserter[domglossary.Item]
	contacts   upserter[contact.Contact]
}

// loadStats counts upsert outcomes.
type loadStats struct {
	created atomic.Int64
	updated atomic.Int64
	failed  atomic.Int64
}

func (s *loadStats) record(created bool, err error) {
	switch {
	case err != nil:
		s.failed.Add(1)
	case created:
		s.created.Add(1)
	default:
		s.updated.Add(1)
	}
}

// loader fans upserts out over an ants worker pool.
type loader struct {
	pool   *ants.Pool
	sinks  sinks
	logger *zap.Logger
	stats  loadStats

	mu   sync.Mutex
	errs []error
}

func newLoader(workers int, s sinks, logger *zap.Logger) (*loader, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("workers must be greater than 0")
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &loader{pool: pool, sinks: s, logger: logger}, nil
}

// Release stops the worker pool.
func (l *loader) Release() { l.pool.Release() }

// Load writes c. Categories are written first since entries reference them.
func (l *loader) Load(ctx context.Context, c content) error {
	var wg sync.WaitGroup
	submitAll(ctx, l, &wg, "category", l.sinks.categories, c.categories, category.Category.ID)
	wg.Wait()
	if err := l.err(); err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	submitAll(ctx, l, &wg, "entry", l.sinks.entries, c.entries, entry.Entry.ID)
	submitAll(ctx, l, &wg, "glossary", l.sinks.glossary, c.glossary, domglossary.Item.ID)
	submitAll(ctx, l, &wg, "contact", l.sinks.contacts, c.contacts, contact.Contact.ID)
	wg.Wait()
	return l.err()
}

func submitAll[T any](
	ctx context.Context, l *loader, wg *sync.WaitGroup,
	kind string, repo upserter[T], items []T, id func(T) string,
) {
	for _, it := range items {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			created, err := repo.Upsert(ctx, it)
			l.stats.record(created, err)
			if err != nil {
				l.fail(fmt.Errorf("%s %q: %w", kind, id(it), err))
				return
			}
			l.logger.Debug("upserted", zap.String("kind", kind), zap.String("id", id(it)), zap.Bool("created", created))
		}
		if err := l.pool.Submit(task); err != nil {
			wg.Done()
			l.stats.record(false, err)
			l.fail(fmt.Errorf("%s %q: submit: %w", kind, id(it), err))
		}
	}
}

func (l *loader) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err)
}

func (l *loader) err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return errors.Join(l.errs...)
}
