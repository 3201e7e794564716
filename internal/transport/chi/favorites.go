package chi

import (
	"net/http"
)

// ListFavorites handles GET /favorites/{owner}.
func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	owner, err := pathParam(r, "owner")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	f, err := s.favorites.List(r.Context(), owner)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritesToDTO(f))
}

// ClearFavorites handles DELETE /favorites/{owner}.
func (s *Server) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	owner, err := pathParam(r, "owner")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.favorites.Clear(r.Context(), owner); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFavorite handles PUT /favorites/{owner}/entries/{entryId}.
func (s *Server) AddFavorite(w http.ResponseWriter, r *http.Request) {
	owner, entryID, ok := s.favoriteParams(w, r)
	if !ok {
		return
	}
	f, err := s.favorites.Add(r.Context(), owner, entryID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritesToDTO(f))
}

// RemoveFavorite handles DELETE /favorites/{owner}/entries/{entryId}.
func (s *Server) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	owner, entryID, ok := s.favoriteParams(w, r)
	if !ok {
		return
	}
	f, err := s.favorites.Remove(r.Context(), owner, entryID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favoritesToDTO(f))
}

func (s *Server) favoriteParams(w http.ResponseWriter, r *http.Request) (owner, entryID string, ok bool) {
	owner, err := pathParam(r, "owner")
	if err != nil {
		s.handleDomainError(w, r, err)
		return "", "", false
	}
	entryID, err = pathParam(r, "entryId")
	if err != nil {
		s.handleDomainError(w, r, err)
		return "", "", false
	}
	return owner, entryID, true
}
