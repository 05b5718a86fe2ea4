package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/AJ-Ball/lib-api/config"
	"github.com/AJ-Ball/lib-api/loader"
	"github.com/AJ-Ball/lib-api/locate"
)

// APIError is the structured error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Handler serves the locator's HTTP surface: /health, /search and
// /debug/index. Routing, CORS and parameter decoding live here; everything
// that answers a query is delegated to the locate facade.
type Handler struct {
	store   *loader.CachedStore
	cfg     config.Config
	decoder *schema.Decoder
}

// New builds the HTTP handler with its middleware chain.
func New(store *loader.CachedStore, cfg config.Config) http.Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	h := &Handler{store: store, cfg: cfg, decoder: decoder}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /search", h.handleSearch)
	mux.HandleFunc("GET /debug/index", h.handleDebugIndex)

	return Chain(mux,
		recoveryMiddleware,
		loggingMiddleware,
		corsMiddleware(cfg.Server.CORSOrigins),
	)
}

type searchParams struct {
	Q     string `schema:"q"`
	Limit int    `schema:"limit"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var params searchParams
	if err := h.decoder.Decode(&params, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Invalid query parameters")
		return
	}
	if params.Q == "" {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Parameter q is required")
		return
	}
	if params.Limit == 0 {
		params.Limit = h.cfg.Search.DefaultLimit
	}
	if params.Limit < 1 || params.Limit > locate.MaxLimit {
		writeError(w, http.StatusBadRequest, ErrCodeBadRequest, "Parameter limit must be in [1,20]")
		return
	}

	loc, ok := h.locator(w)
	if !ok {
		return
	}

	res := loc.Search(r.Context(), params.Q, params.Limit)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.locator(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"rows": loc.Size(),
	})
}

func (h *Handler) handleDebugIndex(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.locator(w)
	if !ok {
		return
	}
	idx := loc.Index()
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":        idx.Size(),
		"dropped":     idx.Dropped(),
		"fingerprint": idx.Fingerprint(),
		"workbook":    h.cfg.Catalog.Workbook,
		"sheet":       h.cfg.Catalog.Sheet,
	})
}

// locator fetches the cached locator, writing the error response itself
// when the catalog could not be loaded.
func (h *Handler) locator(w http.ResponseWriter) (*locate.Locator, bool) {
	loc, err := h.store.Locator()
	if err != nil {
		slog.Error("catalog unavailable", "error", err)
		writeError(w, http.StatusInternalServerError, ErrCodeInternalError, "Catalog unavailable")
		return nil, false
	}
	return loc, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIError{Code: code, Message: message}); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}
