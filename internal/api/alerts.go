package api

import (
	"net/http"
	"strconv"

	"skywatch/milmon/internal/models"
	"skywatch/milmon/internal/models/dtos/responses"
)

// RecentAlertsHandler handles GET /api/v1/alerts/recent
//
// Serves the in-memory recent-alert window; nothing here touches the
// database.
func (h *Handlers) RecentAlertsHandler(w http.ResponseWriter, r *http.Request) {
	alerts := h.deps.Publisher.RecentAlerts()

	payload := responses.AlertList[models.AlertEvent]{
		Count:  len(alerts),
		Alerts: alerts,
	}
	respondWithSuccess(w, http.StatusOK, &payload)
}

// AlertHistoryHandler handles GET /api/v1/alerts/history?limit=N
func (h *Handlers) AlertHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	alerts, err := h.deps.AlertRepo.History(r.Context(), limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load alert history")
		return
	}

	payload := responses.AlertList[models.AlertEvent]{
		Count:  len(alerts),
		Alerts: alerts,
	}
	respondWithSuccess(w, http.StatusOK, &payload)
}

// AlertStatsHandler handles GET /api/v1/alerts/stats
func (h *Handlers) AlertStatsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.deps.AlertRepo.CountsByCategory(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to aggregate alerts")
		return
	}

	respondWithSuccess(w, http.StatusOK, &counts)
}
