package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"skywatch/milmon/internal/models"
	"skywatch/milmon/internal/models/dtos/responses"
)

type setFiltersRequest struct {
	Categories []string `json:"categories"`
}

// GetFiltersHandler handles GET /api/v1/filters
func (h *Handlers) GetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, h.filterState())
}

// SetFiltersHandler handles PUT /api/v1/filters
//
// Replaces the active filter set. An empty list means "show all".
func (h *Handlers) SetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	var req setFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categories := make([]models.Category, 0, len(req.Categories))
	for _, raw := range req.Categories {
		c := models.Category(raw)
		if !c.IsValid() {
			respondWithError(w, http.StatusBadRequest, "unknown category: "+raw)
			return
		}
		categories = append(categories, c)
	}

	h.deps.Filters.SetActive(categories)
	h.republishVisible()

	respondWithSuccess(w, http.StatusOK, h.filterState())
}

// ToggleFilterHandler handles POST /api/v1/filters/{category}/toggle
func (h *Handlers) ToggleFilterHandler(w http.ResponseWriter, r *http.Request) {
	c := models.Category(chi.URLParam(r, "category"))
	if !c.IsValid() {
		respondWithError(w, http.StatusBadRequest, "unknown category: "+string(c))
		return
	}

	h.deps.Filters.Toggle(c)
	h.republishVisible()

	respondWithSuccess(w, http.StatusOK, h.filterState())
}

// republishVisible recomputes the visible rows against the current
// inventory so filter changes take effect without waiting for the next
// fetch. Stats stay those of the last completed cycle.
func (h *Handlers) republishVisible() {
	snapshot := h.deps.Inventory.Snapshot()
	visible := h.deps.Filters.Visible(snapshot)
	h.deps.Publisher.Publish(visible, h.deps.Publisher.LastStats())
}

func (h *Handlers) filterState() *responses.FilterState {
	active := h.deps.Filters.Active()

	state := responses.FilterState{
		Active:    make([]string, 0, len(active)),
		Available: make([]string, 0, len(models.AllCategories)),
		ShowAll:   len(active) == 0,
	}
	for _, c := range active {
		state.Active = append(state.Active, string(c))
	}
	for _, c := range models.AllCategories {
		state.Available = append(state.Available, string(c))
	}
	return &state
}
