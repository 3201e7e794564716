package chi

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

// AdminListEntries handles GET /admin/entries. Drafts are included.
func (s *Server) AdminListEntries(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequest(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	page, err := s.library.ListAll(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToDTO(page, entryToDTO))
}

// AdminCreateEntry handles POST /admin/entries with a server-assigned id.
func (s *Server) AdminCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e, _, err := s.library.UpsertEntry(r.Context(), entryFields(uuid.NewString(), req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/entries/"+e.ID())
	writeJSON(w, http.StatusCreated, entryToDTO(e))
}

// AdminUpsertEntry handles PUT /admin/entries/{id}.
func (s *Server) AdminUpsertEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req EntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e, created, err := s.library.UpsertEntry(r.Context(), entryFields(id, req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeUpserted(w, created, entryToDTO(e))
}

// AdminDeleteEntry handles DELETE /admin/entries/{id}.
func (s *Server) AdminDeleteEntry(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.library.DeleteEntry)
}

// AdminUpsertCategory handles PUT /admin/categories/{id}.
func (s *Server) AdminUpsertCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, created, err := s.library.UpsertCategory(r.Context(), id, req.Name, req.Description, req.Slug, req.Order)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeUpserted(w, created, categoryToDTO(c))
}

// AdminDeleteCategory handles DELETE /admin/categories/{id}. Entries in the
// category are removed with it.
func (s *Server) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.library.DeleteCategory)
}

// AdminUpsertGlossaryItem handles PUT /admin/glossary/{id}.
func (s *Server) AdminUpsertGlossaryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req GlossaryItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	item, created, err := s.glossary.Upsert(r.Context(), domglossary.Fields{
		ID:           id,
		Term:         req.Term,
		Meaning:      req.Meaning,
		Context:      req.Context,
		Examples:     req.Examples,
		RelatedTerms: req.RelatedTerms,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeUpserted(w, created, glossaryToDTO(item))
}

// AdminDeleteGlossaryItem handles DELETE /admin/glossary/{id}.
func (s *Server) AdminDeleteGlossaryItem(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.glossary.Delete)
}

// AdminUpsertContact handles PUT /admin/contacts/{id}.
func (s *Server) AdminUpsertContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, created, err := s.navigator.Upsert(r.Context(), contact.Fields{
		ID:          id,
		Name:        req.Name,
		Role:        req.Role,
		Region:      req.Region,
		ZipCodes:    req.ZipCodes,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeUpserted(w, created, contactToDTO(c))
}

// AdminDeleteContact handles DELETE /admin/contacts/{id}.
func (s *Server) AdminDeleteContact(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.navigator.Delete)
}

func (s *Server) deleteByID(
	w http.ResponseWriter, r *http.Request,
	del func(ctx context.Context, id string) error,
) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := del(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
