package chi

import (
	"time"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest           = "bad_request"
	CodeValidationFailed     = "validation_failed"
	CodeNotFound             = "not_found"
	CodeEntryNotFound        = "entry_not_found"
	CodeCategoryNotFound     = "category_not_found"
	CodeGlossaryItemNotFound = "glossary_item_not_found"
	CodeContactNotFound      = "contact_not_found"
	CodeSessionNotFound      = "session_not_found"
	CodeAlreadyExists        = "already_exists"
	CodeUnauthorized         = "unauthorized"
	CodeUnavailable          = "unavailable"
	CodeInternalError        = "internal_error"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

func pageToDTO[D, T any](p result.Page[D], conv func(D) T) PageResponse[T] {
	items := make([]T, len(p.Items()))
	for i, it := range p.Items() {
		items[i] = conv(it)
	}
	return PageResponse[T]{
		Items:      items,
		Total:      p.Total(),
		Page:       p.Page(),
		Limit:      p.Limit(),
		TotalPages: p.TotalPages(),
		HasMore:    p.HasMore(),
	}
}

// ListResponse wraps an unpaginated collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// Category DTOs.

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Order       int    `json:"order"`
}

func categoryToDTO(c category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Slug:        c.Slug(),
		Order:       c.Order(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// Entry DTOs.

type EntryResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"content"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	Order       int       `json:"order"`
	LastUpdated time.Time `json:"lastUpdated,omitzero"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type EntryRequest struct {
	CategoryID  string    `json:"categoryId"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"content"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	Order       int       `json:"order"`
	LastUpdated time.Time `json:"lastUpdated,omitzero"`
}

func entryToDTO(e entry.Entry) EntryResponse {
	tags := e.Tags()
	if tags == nil {
		tags = []string{}
	}
	return EntryResponse{
		ID:          e.ID(),
		CategoryID:  e.CategoryID(),
		Title:       e.Title(),
		Summary:     e.Summary(),
		Body:        e.Body(),
		Tags:        tags,
		Published:   e.Published(),
		Order:       e.Order(),
		LastUpdated: e.LastUpdated(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func entryFields(id string, req EntryRequest) entry.Fields {
	return entry.Fields{
		ID:          id,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		Tags:        req.Tags,
		Published:   req.Published,
		Order:       req.Order,
		LastUpdated: req.LastUpdated,
	}
}

// Glossary DTOs.

type GlossaryItemResponse struct {
	ID           string    `json:"id"`
	Term         string    `json:"term"`
	Meaning      string    `json:"meaning"`
	Context      string    `json:"context"`
	Examples     string    `json:"examples"`
	RelatedTerms []string  `json:"relatedTerms"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

type GlossaryItemRequest struct {
	Term         string   `json:"term"`
	Meaning      string   `json:"meaning"`
	Context      string   `json:"context"`
	Examples     string   `json:"examples"`
	RelatedTerms []string `json:"relatedTerms"`
}

func glossaryToDTO(i domglossary.Item) GlossaryItemResponse {
	related := i.RelatedTerms()
	if related == nil {
		related = []string{}
	}
	return GlossaryItemResponse{
		ID:           i.ID(),
		Term:         i.Term(),
		Meaning:      i.Meaning(),
		Context:      i.Context(),
		Examples:     i.Examples(),
		RelatedTerms: related,
		CreatedAt:    i.CreatedAt(),
		UpdatedAt:    i.UpdatedAt(),
	}
}

// Contact DTOs.

type ContactResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Region      string    `json:"region"`
	ZipCodes    []string  `json:"zipCodes"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type ContactRequest struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Region      string   `json:"region"`
	ZipCodes    []string `json:"zipCodes"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     string   `json:"website"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

func contactToDTO(c contact.Contact) ContactResponse {
	zips := c.ZipCodes()
	if zips == nil {
		zips = []string{}
	}
	return ContactResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Role:        c.Role(),
		Region:      c.Region(),
		ZipCodes:    zips,
		Phone:       c.Phone(),
		Email:       c.Email(),
		Website:     c.Website(),
		Description: c.Description(),
		Category:    c.Category(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

// Checklist DTOs.

type ChecklistItemResponse struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
	Category    string `json:"category"`
}

type ProgressRequest struct {
	Progress map[string]bool `json:"progress"`
}

type ChecklistResultResponse struct {
	CheckedCount   int            `json:"checkedCount"`
	TotalCount     int            `json:"totalCount"`
	Categories     map[string]int `json:"categories"`
	Level          string         `json:"level"`
	Interpretation string         `json:"interpretation"`
	NextSteps      []string       `json:"nextSteps"`
}

type ChecklistSessionResponse struct {
	ID        string                  `json:"id"`
	Progress  map[string]bool         `json:"progress"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Result    ChecklistResultResponse `json:"result"`
}

func checklistItemToDTO(i domchecklist.Item) ChecklistItemResponse {
	return ChecklistItemResponse{ID: i.ID, Text: i.Text, Explanation: i.Explanation, Category: i.Category}
}

func checklistResultToDTO(r domchecklist.Result) ChecklistResultResponse {
	cats := r.Categories
	if cats == nil {
		cats = map[string]int{}
	}
	return ChecklistResultResponse{
		CheckedCount:   r.CheckedCount,
		TotalCount:     r.TotalCount,
		Categories:     cats,
		Level:          string(r.Level),
		Interpretation: r.Interpretation,
		NextSteps:      r.NextSteps,
	}
}

func evaluationToDTO(ev checklistuc.Evaluation) ChecklistSessionResponse {
	progress := map[string]bool(ev.Session.Progress)
	if progress == nil {
		progress = map[string]bool{}
	}
	return ChecklistSessionResponse{
		ID:        ev.Session.ID,
		Progress:  progress,
		UpdatedAt: ev.Session.UpdatedAt,
		Result:    checklistResultToDTO(ev.Result),
	}
}

// Favorites DTOs.

type FavoritesResponse struct {
	Owner     string    `json:"owner"`
	EntryIDs  []string  `json:"entryIds"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func favoritesToDTO(f domfav.Favorites) FavoritesResponse {
	ids := f.EntryIDs()
	if ids == nil {
		ids = []string{}
	}
	return FavoritesResponse{Owner: f.Owner(), EntryIDs: ids, UpdatedAt: f.UpdatedAt()}
}
