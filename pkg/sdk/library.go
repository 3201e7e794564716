package earlyhelp

import (
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/match"
	glossaryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/glossary"
	libraryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/library"
	navigatoruc "github.com/kailas-cloud/earlyhelp/internal/usecase/navigator"
)

// Record capabilities used by the generic functions below. Entry,
// GlossaryItem and Contact implement the ones that apply to them.
type (
	// Searchable exposes free-text fields and terms for Search.
	Searchable = match.Searchable
	// FieldSource resolves named string fields for FuzzyMatch.
	FieldSource = match.FieldSource
	// Categorized records belong to a category.
	Categorized = filter.Categorized
	// Tagged records carry tags.
	Tagged = filter.Tagged
	// RoleScoped records serve an audience role.
	RoleScoped = filter.RoleScoped
	// Zoned records cover postal codes.
	Zoned = filter.Zoned
)

// Default fields ranked by FuzzyMatch for each record type.
var (
	EntryRankFields    = libraryuc.RankFields
	GlossaryRankFields = glossaryuc.RankFields
	ContactRankFields  = navigatoruc.RankFields
)

// Search keeps records whose fields or terms contain query, ignoring case.
// Order is preserved. A blank query returns records unchanged.
func Search[T Searchable](records []T, query string) []T {
	return match.Search(records, query)
}

// SearchEntries matches entries on title, summary, body and tags.
func SearchEntries(entries []Entry, query string) []Entry {
	return match.Search(entries, query)
}

// SearchGlossary matches glossary items on term, meaning, context and related terms.
func SearchGlossary(items []GlossaryItem, query string) []GlossaryItem {
	return match.Search(items, query)
}

// FilterByCategory keeps records in categoryID. Empty keeps all.
func FilterByCategory[T Categorized](records []T, categoryID string) []T {
	return filter.ByCategory(records, categoryID)
}

// FilterByTags keeps records sharing at least one tag with tags. Empty keeps all.
func FilterByTags[T Tagged](records []T, tags []string) []T {
	return filter.ByTags(records, tags)
}

// FilterByRole keeps records serving role or RoleAll. Empty keeps all.
func FilterByRole[T RoleScoped](records []T, role string) []T {
	return filter.ByRole(records, role)
}

// FilterByZipCode keeps records with a postal code equal to zip or sharing
// a prefix with it in either direction. Empty keeps all.
func FilterByZipCode[T Zoned](records []T, zip string) []T {
	return filter.ByZipCode(records, zip)
}

// UniqueTags returns the sorted, de-duplicated tags of records.
func UniqueTags[T Tagged](records []T) []string {
	return filter.UniqueTags(records)
}

// SortEntries returns a copy of entries ordered by Order, ties by Title.
func SortEntries(entries []Entry) []Entry {
	return filter.SortByOrder(entries)
}

// FuzzyMatch scores records against query over fields and returns the
// positive hits by descending score. Equal scores keep input order.
func FuzzyMatch[T FieldSource](records []T, query string, fields []string) []T {
	return match.Rank(records, query, fields)
}

// ScoreChecklist interprets progress against the checklist catalog.
// Ids outside the catalog are ignored.
func ScoreChecklist(progress ChecklistProgress) ChecklistResult {
	return domchecklist.Score(progress)
}

// ChecklistCatalog returns the checklist items in display order.
func ChecklistCatalog() []ChecklistItem {
	return domchecklist.Catalog()
}
