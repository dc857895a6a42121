package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// handleCreateCampaign creates a campaign. Client existence and the date
// range are validated inside the service.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	if in.Status != "" && !in.Status.Valid() {
		h.respondFail(w, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	campaign, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, campaign, "Campaign created successfully", nil)
}

// handleListCampaigns lists active campaigns. Optional filters: name
// (case-insensitive substring) and status (exact).
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sort, page := parseListOptions(r)
	filter := port.CampaignFilter{
		Name:   r.URL.Query().Get("name"),
		Status: r.URL.Query().Get("status"),
	}

	result, err := h.campaigns.List(r.Context(), filter, sort, page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, result.Items, "Campaigns retrieved successfully", pageOf(result, page))
}

func (h *Handler) handleListCampaignsByClient(w http.ResponseWriter, r *http.Request) {
	sort, page := parseListOptions(r)

	result, err := h.campaigns.ListByClient(r.Context(), chi.URLParam(r, "clientId"), sort, page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, result.Items, "Client campaigns retrieved successfully", pageOf(result, page))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Campaign retrieved successfully", nil)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var upd domain.CampaignUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.respondError(w, r, err)
		return
	}
	if upd.Status != nil && !upd.Status.Valid() {
		h.respondFail(w, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	campaign, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Campaign updated successfully", nil)
}

// handleUpdateCampaignStatus overwrites the status. Enum membership is
// checked here at the boundary; the service applies any value it is given.
func (h *Handler) handleUpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Status domain.Status `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	if !in.Status.Valid() {
		h.respondFail(w, http.StatusBadRequest, "Invalid status", nil)
		return
	}

	campaign, err := h.campaigns.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Campaign status updated successfully", nil)
}

// handleUpdateCampaignMetrics merges metric fields additively; omitted
// fields are preserved.
func (h *Handler) handleUpdateCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	var in domain.Metrics
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	campaign, err := h.campaigns.UpdateMetrics(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Campaign metrics updated successfully", nil)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nil, "Campaign deleted successfully", nil)
}

func (h *Handler) handleAddTeamMembers(w http.ResponseWriter, r *http.Request) {
	var in struct {
		TeamMemberIDs []string `json:"teamMemberIds"`
	}
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	if len(in.TeamMemberIDs) == 0 {
		h.respondFail(w, http.StatusBadRequest, "teamMemberIds is required", nil)
		return
	}

	campaign, err := h.campaigns.AddTeamMembers(r.Context(), chi.URLParam(r, "id"), in.TeamMemberIDs)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Team members added successfully", nil)
}

func (h *Handler) handleRemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.RemoveTeamMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "memberId"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, campaign, "Team member removed successfully", nil)
}
