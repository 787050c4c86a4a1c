package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/conform/pkg/schema"
)

// DefaultMaxBodyBytes bounds the size of a validation request body.
const DefaultMaxBodyBytes = 1 << 20

// Validator defines what the server needs from a schema validator.
type Validator interface {
	ValidateJSON(text []byte) error
	Schema() *schema.Object
}

// Server serves validation requests for a single schema.
type Server struct {
	Validator    Validator
	logger       *slog.Logger
	gatherer     prometheus.Gatherer
	maxBodyBytes int64
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the gatherer's metrics on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithMaxBodyBytes overrides DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// Result is the response body of POST /validate.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Path  string `json:"path,omitempty"`
}

// NewHandler creates a new HTTP handler for the validator.
func NewHandler(v Validator, opts ...Option) http.Handler {
	server := &Server{
		Validator:    v,
		logger:       slog.Default(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/validate", server.Validate)
	r.Get("/schema", server.Schema)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Validate: could not read body", "error", err)
		return
	}

	resp := Result{Valid: true}
	status := http.StatusOK
	if err := s.Validator.ValidateJSON(body); err != nil {
		resp = Result{Error: err.Error()}
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			resp.Path = verr.Path
		}
		status = http.StatusUnprocessableEntity
		s.logger.Debug("Validate: rejected", "error", err, "size", len(body))
	}

	writeJSON(w, status, resp, s.logger)
}

// Schema handles the GET /schema request.
func (s *Server) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Validator.Schema(), s.logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
