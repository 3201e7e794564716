package chi

import (
	"net/http"

	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
)

// ListChecklistItems handles GET /checklist/items.
func (s *Server) ListChecklistItems(w http.ResponseWriter, _ *http.Request) {
	catalog := s.checklist.Catalog()
	items := make([]ChecklistItemResponse, len(catalog))
	for i, it := range catalog {
		items[i] = checklistItemToDTO(it)
	}
	writeJSON(w, http.StatusOK, ListResponse[ChecklistItemResponse]{Items: items})
}

// ScoreChecklist handles POST /checklist/score. Nothing is stored.
func (s *Server) ScoreChecklist(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := s.checklist.Score(domchecklist.Progress(req.Progress))
	writeJSON(w, http.StatusOK, checklistResultToDTO(res))
}

// StartSession handles POST /checklist/sessions.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	ev, err := s.checklist.Start(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/checklist/sessions/"+ev.Session.ID)
	writeJSON(w, http.StatusCreated, evaluationToDTO(ev))
}

// GetSession handles GET /checklist/sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	ev, err := s.checklist.Load(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationToDTO(ev))
}

// SaveSession handles PUT /checklist/sessions/{id}.
func (s *Server) SaveSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req ProgressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ev, err := s.checklist.Save(r.Context(), id, domchecklist.Progress(req.Progress))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, evaluationToDTO(ev))
}

// ResetSession handles DELETE /checklist/sessions/{id}.
func (s *Server) ResetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.checklist.Reset(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
