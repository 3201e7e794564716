package chi

import (
	"net/http"
)

// ListCategories handles GET /categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.library.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		items[i] = categoryToDTO(c)
	}
	writeJSON(w, http.StatusOK, ListResponse[CategoryResponse]{Items: items})
}

// GetCategory handles GET /categories/{id}.
func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.library.Category(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToDTO(c))
}

// GetCategoryBySlug handles GET /categories/by-slug/{slug}.
func (s *Server) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug, err := pathParam(r, "slug")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.library.CategoryBySlug(r.Context(), slug)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryToDTO(c))
}

// SearchEntries handles GET /entries.
func (s *Server) SearchEntries(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequest(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	page, err := s.library.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToDTO(page, entryToDTO))
}

// ListTags handles GET /entries/tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.library.Tags(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, ListResponse[string]{Items: tags})
}

// GetEntry handles GET /entries/{id}.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	e, err := s.library.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToDTO(e))
}

// SearchGlossary handles GET /glossary.
func (s *Server) SearchGlossary(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequest(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	page, err := s.glossary.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToDTO(page, glossaryToDTO))
}

// GetGlossaryItem handles GET /glossary/{id}.
func (s *Server) GetGlossaryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	item, err := s.glossary.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, glossaryToDTO(item))
}

// FindContacts handles GET /contacts.
func (s *Server) FindContacts(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequest(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	page, err := s.navigator.Find(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageToDTO(page, contactToDTO))
}

// GetContact handles GET /contacts/{id}.
func (s *Server) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.navigator.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToDTO(c))
}
