package earlyhelp

import (
	"time"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/filter"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/mode"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
)

// Content records.
type (
	Category       = category.Category
	Entry          = entry.Entry
	EntryFields    = entry.Fields
	GlossaryItem   = domglossary.Item
	GlossaryFields = domglossary.Fields
	Contact        = contact.Contact
	ContactFields  = contact.Fields
	Favorites      = domfav.Favorites
)

// Checklist types.
type (
	ChecklistItem     = domchecklist.Item
	ChecklistProgress = domchecklist.Progress
	ChecklistResult   = domchecklist.Result
	ChecklistLevel    = domchecklist.Level
)

// Audience roles of a support contact.
const (
	RoleParent       = contact.RoleParent
	RoleTeacher      = contact.RoleTeacher
	RoleSocialWorker = contact.RoleSocialWorker
	RoleAll          = contact.RoleAll
)

// NewEntry validates and creates an Entry.
func NewEntry(f EntryFields) (Entry, error) { return entry.New(f) }

// NewGlossaryItem validates and creates a GlossaryItem.
func NewGlossaryItem(f GlossaryFields) (GlossaryItem, error) { return domglossary.New(f) }

// NewContact validates and creates a Contact.
func NewContact(f ContactFields) (Contact, error) { return contact.New(f) }

// NewCategory validates and creates a Category.
func NewCategory(id, name, description, slug string, order int) (Category, error) {
	return category.New(id, name, description, slug, order)
}

// SearchMode selects how Query.Text is matched.
type SearchMode string

// Search modes.
const (
	// ModeSubstring keeps matching records in their natural order.
	ModeSubstring SearchMode = SearchMode(mode.Substring)
	// ModeRanked sorts matching records by relevance.
	ModeRanked SearchMode = SearchMode(mode.Ranked)
)

// Query is a listing request. Zero values mean "no constraint"; Page and
// Limit default to the first page and the client's default page size.
type Query struct {
	Text     string
	Mode     SearchMode
	Category string
	Tags     []string
	Role     string
	ZipCode  string
	Page     int
	Limit    int
}

func (q Query) toInternal() (request.Request, error) {
	crit, err := filter.NewCriteria(q.Category, q.Tags, q.Role, q.ZipCode)
	if err != nil {
		return request.Request{}, err
	}
	return request.New(q.Text, mode.Mode(q.Mode), crit, q.Page, q.Limit)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
	HasMore    bool
}

func fromInternalPage[T any](p result.Page[T]) Page[T] {
	return Page[T]{
		Items:      p.Items(),
		Total:      p.Total(),
		Page:       p.Page(),
		Limit:      p.Limit(),
		TotalPages: p.TotalPages(),
		HasMore:    p.HasMore(),
	}
}

// ChecklistSession is a stored checklist progress with its current score.
type ChecklistSession struct {
	ID        string
	Progress  ChecklistProgress
	UpdatedAt time.Time
	Result    ChecklistResult
}

func fromEvaluation(ev checklistuc.Evaluation) ChecklistSession {
	return ChecklistSession{
		ID:        ev.Session.ID,
		Progress:  ev.Session.Progress,
		UpdatedAt: ev.Session.UpdatedAt,
		Result:    ev.Result,
	}
}
