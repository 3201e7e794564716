package earlyhelp

import (
	"context"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
)

// --- libraryUseCase mock ---

type mockLibraryUC struct {
	searchFn         func(ctx context.Context, req request.Request) (result.Page[entry.Entry], error)
	getFn            func(ctx context.Context, id string) (entry.Entry, error)
	tagsFn           func(ctx context.Context) ([]string, error)
	categoriesFn     func(ctx context.Context) ([]category.Category, error)
	categoryFn       func(ctx context.Context, id string) (category.Category, error)
	categoryBySlugFn func(ctx context.Context, slug string) (category.Category, error)
	upsertEntryFn    func(ctx context.Context, f entry.Fields) (entry.Entry, bool, error)
	deleteEntryFn    func(ctx context.Context, id string) error
	upsertCategoryFn func(ctx context.Context, id, name, description, slug string, order int) (category.Category, bool, error)
	deleteCategoryFn func(ctx context.Context, id string) error
}

func (m *mockLibraryUC) Search(ctx context.Context, req request.Request) (result.Page[entry.Entry], error) {
	return m.searchFn(ctx, req)
}

func (m *mockLibraryUC) Get(ctx context.Context, id string) (entry.Entry, error) {
	return m.getFn(ctx, id)
}

func (m *mockLibraryUC) Tags(ctx context.Context) ([]string, error) { return m.tagsFn(ctx) }

func (m *mockLibraryUC) Categories(ctx context.Context) ([]category.Category, error) {
	return m.categoriesFn(ctx)
}

func (m *mockLibraryUC) Category(ctx context.Context, id string) (category.Category, error) {
	return m.categoryFn(ctx, id)
}

func (m *mockLibraryUC) CategoryBySlug(ctx context.Context, slug string) (category.Category, error) {
	return m.categoryBySlugFn(ctx, slug)
}

func (m *mockLibraryUC) UpsertEntry(ctx context.Context, f entry.Fields) (entry.Entry, bool, error) {
	return m.upsertEntryFn(ctx, f)
}

func (m *mockLibraryUC) DeleteEntry(ctx context.Context, id string) error {
	return m.deleteEntryFn(ctx, id)
}

func (m *mockLibraryUC) UpsertCategory(
	ctx context.Context, id, name, description, slug string, order int,
) (category.Category, bool, error) {
	return m.upsertCategoryFn(ctx, id, name, description, slug, order)
}

func (m *mockLibraryUC) DeleteCategory(ctx context.Context, id string) error {
	return m.deleteCategoryFn(ctx, id)
}

// --- glossaryUseCase mock ---

type mockGlossaryUC struct {
	searchFn func(ctx context.Context, req request.Request) (result.Page[domglossary.Item], error)
	getFn    func(ctx context.Context, id string) (domglossary.Item, error)
	upsertFn func(ctx context.Context, f domglossary.Fields) (domglossary.Item, bool, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockGlossaryUC) Search(ctx context.Context, req request.Request) (result.Page[domglossary.Item], error) {
	return m.searchFn(ctx, req)
}

func (m *mockGlossaryUC) Get(ctx context.Context, id string) (domglossary.Item, error) {
	return m.getFn(ctx, id)
}

func (m *mockGlossaryUC) Upsert(ctx context.Context, f domglossary.Fields) (domglossary.Item, bool, error) {
	return m.upsertFn(ctx, f)
}

func (m *mockGlossaryUC) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

// --- navigatorUseCase mock ---

type mockNavigatorUC struct {
	findFn   func(ctx context.Context, req request.Request) (result.Page[contact.Contact], error)
	getFn    func(ctx context.Context, id string) (contact.Contact, error)
	upsertFn func(ctx context.Context, f contact.Fields) (contact.Contact, bool, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockNavigatorUC) Find(ctx context.Context, req request.Request) (result.Page[contact.Contact], error) {
	return m.findFn(ctx, req)
}

func (m *mockNavigatorUC) Get(ctx context.Context, id string) (contact.Contact, error) {
	return m.getFn(ctx, id)
}

func (m *mockNavigatorUC) Upsert(ctx context.Context, f contact.Fields) (contact.Contact, bool, error) {
	return m.upsertFn(ctx, f)
}

func (m *mockNavigatorUC) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

// --- checklistUseCase mock ---

type mockChecklistUC struct {
	startFn func(ctx context.Context) (checklistuc.Evaluation, error)
	loadFn  func(ctx context.Context, id string) (checklistuc.Evaluation, error)
	saveFn  func(ctx context.Context, id string, p domchecklist.Progress) (checklistuc.Evaluation, error)
	resetFn func(ctx context.Context, id string) error
}

func (m *mockChecklistUC) Score(p domchecklist.Progress) domchecklist.Result {
	return domchecklist.Score(p)
}

func (m *mockChecklistUC) Start(ctx context.Context) (checklistuc.Evaluation, error) {
	return m.startFn(ctx)
}

func (m *mockChecklistUC) Load(ctx context.Context, id string) (checklistuc.Evaluation, error) {
	return m.loadFn(ctx, id)
}

func (m *mockChecklistUC) Save(
	ctx context.Context, id string, p domchecklist.Progress,
) (checklistuc.Evaluation, error) {
	return m.saveFn(ctx, id, p)
}

func (m *mockChecklistUC) Reset(ctx context.Context, id string) error { return m.resetFn(ctx, id) }

// --- favoritesUseCase mock ---

type mockFavoritesUC struct {
	listFn   func(ctx context.Context, owner string) (domfav.Favorites, error)
	addFn    func(ctx context.Context, owner, entryID string) (domfav.Favorites, error)
	removeFn func(ctx context.Context, owner, entryID string) (domfav.Favorites, error)
	clearFn  func(ctx context.Context, owner string) error
}

func (m *mockFavoritesUC) List(ctx context.Context, owner string) (domfav.Favorites, error) {
	return m.listFn(ctx, owner)
}

func (m *mockFavoritesUC) Add(ctx context.Context, owner, entryID string) (domfav.Favorites, error) {
	return m.addFn(ctx, owner, entryID)
}

func (m *mockFavoritesUC) Remove(ctx context.Context, owner, entryID string) (domfav.Favorites, error) {
	return m.removeFn(ctx, owner, entryID)
}

func (m *mockFavoritesUC) Clear(ctx context.Context, owner string) error { return m.clearFn(ctx, owner) }

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
