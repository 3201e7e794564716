package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/db"
	"github.com/kailas-cloud/earlyhelp/internal/domain"
	logpkg "github.com/kailas-cloud/earlyhelp/internal/logger"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
	favoritesuc "github.com/kailas-cloud/earlyhelp/internal/usecase/favorites"
	glossaryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/glossary"
	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
	libraryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/library"
	navigatoruc "github.com/kailas-cloud/earlyhelp/internal/usecase/navigator"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server serves the Early Help HTTP API.
type Server struct {
	library       *libraryuc.Service
	glossary      *glossaryuc.Service
	navigator     *navigatoruc.Service
	checklist     *checklistuc.Service
	favorites     *favoritesuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	library *libraryuc.Service,
	glossary *glossaryuc.Service,
	navigator *navigatoruc.Service,
	checklist *checklistuc.Service,
	favorites *favoritesuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		library:   library,
		glossary:  glossary,
		navigator: navigator,
		checklist: checklist,
		favorites: favorites,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		detailHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrEntryNotFound, http.StatusNotFound, CodeEntryNotFound),
		sentinelHandler(domain.ErrCategoryNotFound, http.StatusNotFound, CodeCategoryNotFound),
		sentinelHandler(domain.ErrGlossaryItemNotFound, http.StatusNotFound, CodeGlossaryItemNotFound),
		sentinelHandler(domain.ErrContactNotFound, http.StatusNotFound, CodeContactNotFound),
		sentinelHandler(domain.ErrSessionNotFound, http.StatusNotFound, CodeSessionNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, CodeUnauthorized),
		storeUnavailableHandler,
	}
	return s
}

// Routes mounts the API on r. admin guards the /api/v1/admin subtree.
func (s *Server) Routes(r gochi.Router, admin func(http.Handler) http.Handler) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r gochi.Router) {
		r.Get("/categories", s.ListCategories)
		r.Get("/categories/by-slug/{slug}", s.GetCategoryBySlug)
		r.Get("/categories/{id}", s.GetCategory)

		r.Get("/entries", s.SearchEntries)
		r.Get("/entries/tags", s.ListTags)
		r.Get("/entries/{id}", s.GetEntry)

		r.Get("/glossary", s.SearchGlossary)
		r.Get("/glossary/{id}", s.GetGlossaryItem)

		r.Get("/contacts", s.FindContacts)
		r.Get("/contacts/{id}", s.GetContact)

		r.Get("/checklist/items", s.ListChecklistItems)
		r.Post("/checklist/score", s.ScoreChecklist)
		r.Post("/checklist/sessions", s.StartSession)
		r.Get("/checklist/sessions/{id}", s.GetSession)
		r.Put("/checklist/sessions/{id}", s.SaveSession)
		r.Delete("/checklist/sessions/{id}", s.ResetSession)

		r.Get("/favorites/{owner}", s.ListFavorites)
		r.Delete("/favorites/{owner}", s.ClearFavorites)
		r.Put("/favorites/{owner}/entries/{entryId}", s.AddFavorite)
		r.Delete("/favorites/{owner}/entries/{entryId}", s.RemoveFavorite)

		r.Route("/admin", func(r gochi.Router) {
			r.Use(admin)
			r.Get("/entries", s.AdminListEntries)
			r.Post("/entries", s.AdminCreateEntry)
			r.Put("/entries/{id}", s.AdminUpsertEntry)
			r.Delete("/entries/{id}", s.AdminDeleteEntry)
			r.Put("/categories/{id}", s.AdminUpsertCategory)
			r.Delete("/categories/{id}", s.AdminDeleteCategory)
			r.Put("/glossary/{id}", s.AdminUpsertGlossaryItem)
			r.Delete("/glossary/{id}", s.AdminDeleteGlossaryItem)
			r.Put("/contacts/{id}", s.AdminUpsertContact)
			r.Delete("/contacts/{id}", s.AdminDeleteContact)
		})
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// decodeBody decodes a JSON request body into v. Returns false after writing a 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeUpserted answers an upsert with 201 when created and 200 otherwise.
func writeUpserted(w http.ResponseWriter, created bool, v any) {
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, v)
}

// sentinelHandler returns an errorHandler that matches a single sentinel error
// and answers with the sentinel's own message.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

// detailHandler is sentinelHandler for validation errors whose full message
// is safe to return to the client.
func detailHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

// storeUnavailableHandler answers driver failures of the session store with 503
// so clients can retry; the driver message stays in the logs.
func storeUnavailableHandler(w http.ResponseWriter, err error) bool {
	if !db.IsTransient(err) {
		return false
	}
	writeError(w, http.StatusServiceUnavailable, CodeUnavailable, "session store unavailable")
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
