package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dompetku/internal/service"
)

// DashboardHandler serves the aggregated dashboard and insights payloads.
type DashboardHandler struct {
	auth *service.AuthService
	dash *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(auth *service.AuthService, dash *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{auth: auth, dash: dash}
}

// HandleOverview returns every dashboard aggregate for the current month.
// GET /dashboard
func (h *DashboardHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	overview, err := h.dash.Overview(r.Context(), user.ID, time.Now().UTC())
	if err != nil {
		slog.Error("dashboard overview", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toOverviewDTO(overview))
}

// HandleInsights returns the three single-row insights for the current month.
// GET /insights
func (h *DashboardHandler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	insights, err := h.dash.Insights(r.Context(), user.ID, time.Now().UTC())
	if err != nil {
		slog.Error("insights", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toInsightsDTO(insights))
}
