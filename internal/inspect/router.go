package inspect

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/codec"
	"github.com/dshills/arcevents/internal/event/events"
)

// DefaultDispatchTimeout bounds how long POST /v1/dispatch waits for an
// answer.
const DefaultDispatchTimeout = 30 * time.Second

// maxEnvelopeBytes caps dispatch request bodies.
const maxEnvelopeBytes = 1 << 20

// Handler serves the inspection routes.
type Handler struct {
	catalog         *events.Catalog
	codec           *codec.Codec
	target          *event.Target
	logger          *slog.Logger
	dispatchTimeout time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithTarget enables POST /v1/dispatch against t.
func WithTarget(t *event.Target) Option {
	return func(h *Handler) {
		h.target = t
	}
}

// WithLogger sets the request logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithDispatchTimeout bounds the wait for answers to dispatched requests.
func WithDispatchTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.dispatchTimeout = d
		}
	}
}

// NewHandler creates a handler for catalog. A nil catalog uses
// events.Default.
func NewHandler(catalog *events.Catalog, opts ...Option) *Handler {
	if catalog == nil {
		catalog = events.Default()
	}
	h := &Handler{
		catalog:         catalog,
		codec:           codec.New(catalog),
		logger:          slog.Default(),
		dispatchTimeout: DefaultDispatchTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("module", "inspect")
	return h
}

// NewRouter registers the routes and middleware stack.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware(h.logger))
	r.Use(loggingMiddleware(h.logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/healthz", h.healthz)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/types", h.listTypes)
		r.Get("/types/{path}", h.getType)
		r.Get("/namespaces", h.listNamespaces)
		r.Get("/lookup/{type}", h.lookupType)
		if h.target != nil {
			r.Post("/dispatch", h.dispatch)
		}
	})
	return r
}
