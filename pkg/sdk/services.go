package earlyhelp

import (
	"context"
	"fmt"
	"time"
)

// LibraryService reads and edits library entries and categories.
type LibraryService struct {
	svc libraryUseCase
	obs *observer
}

// Search lists published entries matching q.
func (s *LibraryService) Search(ctx context.Context, q Query) (_ Page[Entry], err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.search", start, err) }()

	req, err := q.toInternal()
	if err != nil {
		return Page[Entry]{}, fmt.Errorf("search entries: %w: %w", ErrInvalidRequest, err)
	}
	page, err := s.svc.Search(ctx, req)
	if err != nil {
		return Page[Entry]{}, fmt.Errorf("search entries: %w", err)
	}
	return fromInternalPage(page), nil
}

// Get returns a published entry.
func (s *LibraryService) Get(ctx context.Context, id string) (_ Entry, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.get", start, err) }()

	e, err := s.svc.Get(ctx, id)
	if err != nil {
		return Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// Tags returns the sorted tags of published entries.
func (s *LibraryService) Tags(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.tags", start, err) }()

	tags, err := s.svc.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Categories lists all categories in display order.
func (s *LibraryService) Categories(ctx context.Context) (_ []Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.categories", start, err) }()

	cats, err := s.svc.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Category returns a category by id.
func (s *LibraryService) Category(ctx context.Context, id string) (_ Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.category", start, err) }()

	c, err := s.svc.Category(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// CategoryBySlug returns a category by its URL slug.
func (s *LibraryService) CategoryBySlug(ctx context.Context, slug string) (_ Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.category_by_slug", start, err) }()

	c, err := s.svc.CategoryBySlug(ctx, slug)
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// UpsertEntry stores an entry. Returns true when it was created.
func (s *LibraryService) UpsertEntry(ctx context.Context, f EntryFields) (_ Entry, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.upsert_entry", start, err) }()

	e, created, err := s.svc.UpsertEntry(ctx, f)
	if err != nil {
		return Entry{}, false, fmt.Errorf("upsert entry: %w", err)
	}
	return e, created, nil
}

// DeleteEntry removes an entry.
func (s *LibraryService) DeleteEntry(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.delete_entry", start, err) }()

	if err = s.svc.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// UpsertCategory stores a category. Returns true when it was created.
func (s *LibraryService) UpsertCategory(
	ctx context.Context, id, name, description, slug string, order int,
) (_ Category, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.upsert_category", start, err) }()

	c, created, err := s.svc.UpsertCategory(ctx, id, name, description, slug, order)
	if err != nil {
		return Category{}, false, fmt.Errorf("upsert category: %w", err)
	}
	return c, created, nil
}

// DeleteCategory removes a category and its entries.
func (s *LibraryService) DeleteCategory(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("library.delete_category", start, err) }()

	if err = s.svc.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// GlossaryService reads and edits glossary items.
type GlossaryService struct {
	svc glossaryUseCase
	obs *observer
}

// Search lists glossary items matching q. Only Text, Mode, Page and Limit apply.
func (s *GlossaryService) Search(ctx context.Context, q Query) (_ Page[GlossaryItem], err error) {
	start := time.Now()
	defer func() { s.obs.observe("glossary.search", start, err) }()

	req, err := q.toInternal()
	if err != nil {
		return Page[GlossaryItem]{}, fmt.Errorf("search glossary: %w: %w", ErrInvalidRequest, err)
	}
	page, err := s.svc.Search(ctx, req)
	if err != nil {
		return Page[GlossaryItem]{}, fmt.Errorf("search glossary: %w", err)
	}
	return fromInternalPage(page), nil
}

// Get returns a glossary item by id.
func (s *GlossaryService) Get(ctx context.Context, id string) (_ GlossaryItem, err error) {
	start := time.Now()
	defer func() { s.obs.observe("glossary.get", start, err) }()

	it, err := s.svc.Get(ctx, id)
	if err != nil {
		return GlossaryItem{}, fmt.Errorf("get glossary item: %w", err)
	}
	return it, nil
}

// Upsert stores a glossary item. Returns true when it was created.
func (s *GlossaryService) Upsert(ctx context.Context, f GlossaryFields) (_ GlossaryItem, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("glossary.upsert", start, err) }()

	it, created, err := s.svc.Upsert(ctx, f)
	if err != nil {
		return GlossaryItem{}, false, fmt.Errorf("upsert glossary item: %w", err)
	}
	return it, created, nil
}

// Delete removes a glossary item.
func (s *GlossaryService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("glossary.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete glossary item: %w", err)
	}
	return nil
}

// NavigatorService finds support contacts.
type NavigatorService struct {
	svc navigatorUseCase
	obs *observer
}

// Find lists contacts matching q. Role and ZipCode narrow the directory.
func (s *NavigatorService) Find(ctx context.Context, q Query) (_ Page[Contact], err error) {
	start := time.Now()
	defer func() { s.obs.observe("navigator.find", start, err) }()

	req, err := q.toInternal()
	if err != nil {
		return Page[Contact]{}, fmt.Errorf("find contacts: %w: %w", ErrInvalidRequest, err)
	}
	page, err := s.svc.Find(ctx, req)
	if err != nil {
		return Page[Contact]{}, fmt.Errorf("find contacts: %w", err)
	}
	return fromInternalPage(page), nil
}

// Get returns a contact by id.
func (s *NavigatorService) Get(ctx context.Context, id string) (_ Contact, err error) {
	start := time.Now()
	defer func() { s.obs.observe("navigator.get", start, err) }()

	c, err := s.svc.Get(ctx, id)
	if err != nil {
		return Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Upsert stores a contact. Returns true when it was created.
func (s *NavigatorService) Upsert(ctx context.Context, f ContactFields) (_ Contact, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("navigator.upsert", start, err) }()

	c, created, err := s.svc.Upsert(ctx, f)
	if err != nil {
		return Contact{}, false, fmt.Errorf("upsert contact: %w", err)
	}
	return c, created, nil
}

// Delete removes a contact.
func (s *NavigatorService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("navigator.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// ChecklistService scores checklist progress and persists sessions.
type ChecklistService struct {
	svc checklistUseCase
	obs *observer
}

// Catalog returns the checklist items.
func (s *ChecklistService) Catalog() []ChecklistItem {
	return ChecklistCatalog()
}

// Score interprets progress without storing it.
func (s *ChecklistService) Score(progress ChecklistProgress) ChecklistResult {
	start := time.Now()
	defer s.obs.observe("checklist.score", start, nil)
	return s.svc.Score(progress)
}

// Start opens a new empty session.
func (s *ChecklistService) Start(ctx context.Context) (_ ChecklistSession, err error) {
	start := time.Now()
	defer func() { s.obs.observe("checklist.start", start, err) }()

	ev, err := s.svc.Start(ctx)
	if err != nil {
		return ChecklistSession{}, fmt.Errorf("start session: %w", err)
	}
	return fromEvaluation(ev), nil
}

// Load returns a stored session with its current score.
func (s *ChecklistService) Load(ctx context.Context, sessionID string) (_ ChecklistSession, err error) {
	start := time.Now()
	defer func() { s.obs.observe("checklist.load", start, err) }()

	ev, err := s.svc.Load(ctx, sessionID)
	if err != nil {
		return ChecklistSession{}, fmt.Errorf("load session: %w", err)
	}
	return fromEvaluation(ev), nil
}

// Save replaces the progress of a session and rescores it.
func (s *ChecklistService) Save(
	ctx context.Context, sessionID string, progress ChecklistProgress,
) (_ ChecklistSession, err error) {
	start := time.Now()
	defer func() { s.obs.observe("checklist.save", start, err) }()

	ev, err := s.svc.Save(ctx, sessionID, progress)
	if err != nil {
		return ChecklistSession{}, fmt.Errorf("save session: %w", err)
	}
	return fromEvaluation(ev), nil
}

// Reset deletes a session.
func (s *ChecklistService) Reset(ctx context.Context, sessionID string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("checklist.reset", start, err) }()

	if err = s.svc.Reset(ctx, sessionID); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// FavoritesService keeps per-owner lists of saved entries.
type FavoritesService struct {
	svc favoritesUseCase
	obs *observer
}

// List returns the favorites of owner. Unknown owners have none.
func (s *FavoritesService) List(ctx context.Context, owner string) (_ Favorites, err error) {
	start := time.Now()
	defer func() { s.obs.observe("favorites.list", start, err) }()

	f, err := s.svc.List(ctx, owner)
	if err != nil {
		return Favorites{}, fmt.Errorf("list favorites: %w", err)
	}
	return f, nil
}

// Add saves entryID for owner. The entry must exist and be published.
func (s *FavoritesService) Add(ctx context.Context, owner, entryID string) (_ Favorites, err error) {
	start := time.Now()
	defer func() { s.obs.observe("favorites.add", start, err) }()

	f, err := s.svc.Add(ctx, owner, entryID)
	if err != nil {
		return Favorites{}, fmt.Errorf("add favorite: %w", err)
	}
	return f, nil
}

// Remove drops entryID from the favorites of owner.
func (s *FavoritesService) Remove(ctx context.Context, owner, entryID string) (_ Favorites, err error) {
	start := time.Now()
	defer func() { s.obs.observe("favorites.remove", start, err) }()

	f, err := s.svc.Remove(ctx, owner, entryID)
	if err != nil {
		return Favorites{}, fmt.Errorf("remove favorite: %w", err)
	}
	return f, nil
}

// Clear removes every favorite of owner.
func (s *FavoritesService) Clear(ctx context.Context, owner string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("favorites.clear", start, err) }()

	if err = s.svc.Clear(ctx, owner); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
