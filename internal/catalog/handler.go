package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the hero catalog API.
type Handler struct {
	engine  *Engine
	metrics *Metrics
	logger  *zap.Logger
}

// NewHandler creates a new catalog API handler. metrics may be nil.
func NewHandler(engine *Engine, metrics *Metrics, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, metrics: metrics, logger: logger}
}

// RegisterRoutes implements server.RouteRegistrar. The /boruto/heroes paths
// serve older clients.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog/entities", h.handleListHeroes)
	mux.HandleFunc("GET /catalog/entities/search", h.handleSearchHeroes)
	mux.HandleFunc("GET /boruto/heroes", h.handleListHeroes)
	mux.HandleFunc("GET /boruto/heroes/search", h.handleSearchHeroes)
}

// handleListHeroes returns one page of heroes.
//
//	@Summary		List heroes
//	@Description	Returns one page of the hero catalog. Page numbers start at 1; a missing page selects the first page. Out-of-range pages are rejected with 400.
//	@Tags			heroes
//	@Produce		json
//	@Param			page query int false "Page number" default(1)
//	@Success		200 {object} APIResponse
//	@Failure		400 {object} APIResponse
//	@Router			/catalog/entities [get]
func (h *Handler) handleListHeroes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := q.Get("page")

	resp := h.engine.RespondPage(raw, q.Has("page"))
	h.metrics.observe("page", resp.Outcome, len(resp.Body.Heroes))
	if resp.Err != nil {
		h.logger.Debug("rejected page query",
			zap.String("page", raw),
			zap.String("outcome", resp.Outcome),
			zap.Error(resp.Err),
		)
	}
	writeJSON(w, resp.Status, resp.Body)
}

// handleSearchHeroes returns every hero whose name contains the query.
//
//	@Summary		Search heroes
//	@Description	Case-insensitive substring search on hero names, in catalog order. An empty query returns no heroes.
//	@Tags			heroes
//	@Produce		json
//	@Param			name query string false "Substring of the hero name"
//	@Success		200 {object} APIResponse
//	@Router			/catalog/entities/search [get]
func (h *Handler) handleSearchHeroes(w http.ResponseWriter, r *http.Request) {
	resp := h.engine.RespondSearch(r.URL.Query().Get("name"))
	h.metrics.observe("search", resp.Outcome, len(resp.Body.Heroes))
	writeJSON(w, resp.Status, resp.Body)
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
