// Package server exposes dashboard storage and body assembly over HTTP.
//
// Dashboards are created by posting a TOML definition, stored under a
// generated ID, and assembled on demand. Assembly results are cached per
// dashboard so repeated body requests for the same definition and region
// are served from the cache.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/gridboard/gridboard/pkg/cache"
	"github.com/gridboard/gridboard/pkg/definition"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/observability"
	"github.com/gridboard/gridboard/pkg/pipeline"
)

// Server handles dashboard API requests.
type Server struct {
	store  Store
	cache  cache.Cache
	logger *log.Logger
}

// New creates a server. A nil cache disables body caching; a nil logger
// falls back to the default logger.
func New(store Store, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, cache: c, logger: logger}
}

// Router returns the HTTP handler for the dashboard API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/dashboards", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/body", s.handleBody)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createRequest is the POST /v1/dashboards payload.
type createRequest struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if err := errors.ValidateDashboardName(req.Name); err != nil {
		s.writeError(w, err)
		return
	}

	// Reject definitions that cannot be assembled before storing them.
	source := []byte(req.Definition)
	def, err := definition.Parse(source)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if _, err := pipeline.NewRunner(nil, s.logger).Build(def, ""); err != nil {
		s.writeError(w, err)
		return
	}

	d := &Dashboard{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(r.Context(), d); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("dashboard created", "id", d.ID, "name", d.Name)
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	dashboards, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dashboards": dashboards})
}

// getResponse includes the definition source alongside the metadata.
type getResponse struct {
	Dashboard
	Definition string `json:"definition"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getResponse{Dashboard: *d, Definition: string(d.Source)})
}

func (s *Server) handleBody(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	region := r.URL.Query().Get("region")
	if err := errors.ValidateRegion(region); err != nil {
		s.writeError(w, err)
		return
	}

	runner := pipeline.NewRunner(cache.NewScoped(s.cache, d.ID), s.logger)
	result, err := runner.Execute(r.Context(), pipeline.Options{
		Source: d.Source,
		Region: region,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("dashboard deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(code)
	resp.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, resp)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeDashboardNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDefinition,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeWidgetCount,
		errors.ErrCodeMixedWidgets:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
