package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/repository/firestore"
	"github.com/regmon-lab/regmon/pkg/repository/memory"
	"github.com/regmon-lab/regmon/pkg/usecase"
	"github.com/regmon-lab/regmon/pkg/utils/errutil"
	"github.com/regmon-lab/regmon/pkg/utils/logging"
	"github.com/regmon-lab/regmon/pkg/utils/safe"
)

// timeFormat is the wire format for timestamps in JSON responses
const timeFormat = time.RFC3339

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api/organizations/{orgID}/risks", func(r chi.Router) {
		r.Get("/", s.listRisks)
		r.Post("/", s.createRisk)
		r.Get("/summary", s.riskSummary)
		r.Get("/heatmap", s.riskHeatMap)
		r.Get("/{id}", s.getRisk)
		r.Put("/{id}", s.updateRisk)
		r.Delete("/{id}", s.deleteRisk)
	})

	r.Route("/api/complaints", func(r chi.Router) {
		r.Get("/", s.listComplaints)
		r.Post("/", s.createComplaint)
		r.Get("/{id}", s.getComplaint)
		r.Put("/{id}", s.updateComplaint)
		r.Delete("/{id}", s.deleteComplaint)
		r.Get("/{id}/deadline", s.complaintDeadline)
		r.Post("/{id}/letters/{kind}", s.markLetterSent)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// respondJSON marshals v and writes it with the given status code
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}

// handleError maps repository and validation errors to HTTP status codes
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, memory.ErrNotFound), errors.Is(err, firestore.ErrNotFound):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidInput):
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}
