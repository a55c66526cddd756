package inspect

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dshills/arcevents/internal/event"
	"github.com/dshills/arcevents/internal/event/codec"
	"github.com/dshills/arcevents/internal/event/namespace"
)

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{
		"types":   h.catalog.Len(),
		"domains": len(h.catalog.Domains()),
	})
}

// listTypes answers GET /v1/types. The match query takes a path pattern
// and defaults to every type.
func (h *Handler) listTypes(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("match")
	if pattern == "" {
		pattern = namespace.WildcardMulti
	}
	writeSuccess(w, http.StatusOK, DescribeAll(h.catalog.Match(namespace.Path(pattern))))
}

func (h *Handler) getType(w http.ResponseWriter, r *http.Request) {
	path := namespace.Path(chi.URLParam(r, "path"))
	entry, ok := h.catalog.Entry(path)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_PATH", "no event at "+path.String())
		return
	}
	writeSuccess(w, http.StatusOK, Describe(entry))
}

func (h *Handler) listNamespaces(w http.ResponseWriter, _ *http.Request) {
	paths := h.catalog.Namespaces()
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"domains":    h.catalog.Domains(),
		"namespaces": out,
	})
}

func (h *Handler) lookupType(w http.ResponseWriter, r *http.Request) {
	typ := event.Type(chi.URLParam(r, "type"))
	entry, ok := h.catalog.ByType(typ)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_TYPE", "unknown event type "+typ.String())
		return
	}
	writeSuccess(w, http.StatusOK, Describe(entry))
}

// dispatch answers POST /v1/dispatch with the result envelope of the
// posted event.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", err.Error())
		return
	}

	env, err := h.codec.Decode(body)
	switch {
	case errors.Is(err, codec.ErrUnknownType):
		writeError(w, http.StatusNotFound, "UNKNOWN_TYPE", err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "MALFORMED_ENVELOPE", err.Error())
		return
	}

	ev, err := h.codec.Event(env, event.WithSource("http"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_DETAIL", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.dispatchTimeout)
	defer cancel()

	if err := h.target.Dispatch(ctx, ev); err != nil {
		h.logger.WarnContext(ctx, "dispatch failed",
			"type", env.Type,
			"request_id", requestIDFromContext(ctx),
			"error", err,
		)
		writeError(w, http.StatusConflict, "DISPATCH_FAILED", err.Error())
		return
	}

	var result any
	var answerErr error
	if a, ok := ev.(event.Answerable); ok {
		result, answerErr = a.AwaitAny(ctx)
	}
	out, err := codec.EncodeResult(env.ID, result, answerErr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "ENCODE_FAILED", err.Error())
		return
	}
	writeRaw(w, http.StatusOK, out)
}
