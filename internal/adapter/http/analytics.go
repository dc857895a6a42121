package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleAnalyticsOverview returns the headline counts, plus one campaign's
// metrics when a campaignId query parameter is present.
func (h *Handler) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.Overview(r.Context(), r.URL.Query().Get("campaignId"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, overview, "Analytics retrieved successfully", nil)
}

// handleClientAnalytics aggregates metrics over one client's active
// campaigns. Admin/manager only, enforced by the route's role middleware.
func (h *Handler) handleClientAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.ClientAnalytics(r.Context(), chi.URLParam(r, "clientId"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, analytics, "Client analytics retrieved successfully", nil)
}

// handleAnalyticsSummary returns ledger-wide counts and the per-status
// breakdown. Admin only.
func (h *Handler) handleAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Summary(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, stats, "Summary statistics retrieved successfully", nil)
}
