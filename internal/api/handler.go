package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eugenenazirov/landing/internal/content"
	"github.com/eugenenazirov/landing/internal/editable"
	"github.com/eugenenazirov/landing/internal/navigate"
	"github.com/eugenenazirov/landing/internal/render"
	"github.com/eugenenazirov/landing/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires storage, rendering and navigation into HTTP handlers.
type Handler struct {
	storage  storage.Storage
	renderer *render.Renderer
	resolver *navigate.Resolver

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, renderer *render.Renderer, resolver *navigate.Resolver, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage:  store,
		renderer: renderer,
		resolver: resolver,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	billing := content.ParseBillingPeriod(r.URL.Query().Get("billing"))

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, h.storage.Page(), billing); err != nil {
		writeInternalError(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *Handler) handleSectionFragment(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}
	billing := content.ParseBillingPeriod(r.URL.Query().Get("billing"))

	var buf bytes.Buffer
	if err := h.renderer.Section(&buf, section, h.storage.Page(), billing); err != nil {
		writeInternalError(w, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (h *Handler) handleGo(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("to")
	t := h.resolver.Resolve(r.Context(), raw, navigate.NewRedirector(w, r, "/"))
	if t.Kind == navigate.None {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("target")
	t := h.resolver.Classify(raw)
	writeJSON(w, http.StatusOK, navigateResponse{
		Target:   raw,
		Kind:     t.Kind.String(),
		Href:     t.Href,
		Fragment: t.Fragment,
		External: t.Kind == navigate.External,
	})
}

func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, sectionsResponse{
		Sections:  content.Sections(),
		UpdatedAt: h.currentContentUpdatedAt(),
	})
}

func (h *Handler) handleGetSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}
	page := h.storage.Page()
	cfg, err := page.Config(section)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleListFields(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}
	page := h.storage.Page()
	cfg, err := page.Config(section)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fieldsResponse{
		Section:   section,
		Fields:    editable.Leaves(cfg),
		UpdatedAt: h.currentContentUpdatedAt(),
	})
}

func (h *Handler) handleGetField(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}
	path, err := editable.ParsePath(r.URL.Query().Get("path"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid path", err.Error())
		return
	}

	page := h.storage.Page()
	cfg, err := page.Config(section)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	value, err := editable.ResolveString(cfg, path)
	if err != nil {
		writeError(w, http.StatusNotFound, "Field not found", err.Error(),
			"Paths are positional; refresh the field list after reordering items")
		return
	}
	writeJSON(w, http.StatusOK, editable.Field{Path: path, Value: value, Kind: editable.KindOf(path)})
}

func (h *Handler) handlePutField(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	path, err := editable.ParsePath(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid path", err.Error())
		return
	}

	if err := h.storage.SetField(section, path, req.Value); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidHref):
			writeError(w, http.StatusBadRequest, "Invalid href", err.Error(),
				"Use #anchor, /path or an absolute http(s) URL")
		case errors.Is(err, storage.ErrInvalidText):
			writeError(w, http.StatusBadRequest, "Invalid text", err.Error(),
				"Send plain text without markup")
		case errors.Is(err, editable.ErrUnknownField), errors.Is(err, editable.ErrIndexOutOfRange):
			writeError(w, http.StatusNotFound, "Field not found", err.Error())
		case errors.Is(err, storage.ErrInvalidPath):
			writeError(w, http.StatusUnprocessableEntity, "Field not editable", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	page := h.storage.Page()
	cfg, err := page.Config(section)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	value, err := editable.ResolveString(cfg, path)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fieldResponse{
		Field:     editable.Field{Path: path, Value: value, Kind: editable.KindOf(path)},
		UpdatedAt: h.currentContentUpdatedAt(),
		Message:   "Field updated successfully",
	})
}

func (h *Handler) handleResetSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.section(w, r)
	if !ok {
		return
	}
	if err := h.storage.Reset(section); err != nil {
		writeInternalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// section parses the {section} path value, answering 404 for unknown names.
func (h *Handler) section(w http.ResponseWriter, r *http.Request) (content.Section, bool) {
	section, err := content.ParseSection(r.PathValue("section"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown section", err.Error())
		return "", false
	}
	return section, true
}

// currentContentUpdatedAt comes from storage so file reloads advance it too.
func (h *Handler) currentContentUpdatedAt() time.Time {
	return h.storage.UpdatedAt()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type fieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type fieldResponse struct {
	Field     editable.Field `json:"field"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Message   string         `json:"message,omitempty"`
}

type fieldsResponse struct {
	Section   content.Section  `json:"section"`
	Fields    []editable.Field `json:"fields"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type sectionsResponse struct {
	Sections  []content.Section `json:"sections"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type navigateResponse struct {
	Target   string `json:"target"`
	Kind     string `json:"kind"`
	Href     string `json:"href,omitempty"`
	Fragment string `json:"fragment,omitempty"`
	External bool   `json:"external"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
