package api

import (
	"net/http"

	"skywatch/milmon/internal/models"
	"skywatch/milmon/internal/models/dtos/responses"
)

// AircraftHandler handles GET /api/v1/aircraft
//
// Returns the currently visible (filter-applied) tracked aircraft, as
// last published by the refresh cycle or a filter change.
func (h *Handlers) AircraftHandler(w http.ResponseWriter, r *http.Request) {
	rows := h.deps.Publisher.VisibleRows()

	payload := responses.AircraftList[models.TrackedAircraft]{
		Count:    len(rows),
		Aircraft: rows,
	}
	respondWithSuccess(w, http.StatusOK, &payload)
}

// StatsHandler handles GET /api/v1/stats
func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats := h.deps.Publisher.LastStats()
	respondWithSuccess(w, http.StatusOK, &stats)
}

// RefreshHandler handles POST /api/v1/refresh
//
// Runs one refresh cycle synchronously and returns its stats. This is
// the manual-refresh control for dashboards.
func (h *Handlers) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	stats := h.deps.Refresh.RunCycle(r.Context())
	respondWithSuccess(w, http.StatusOK, &stats)
}
