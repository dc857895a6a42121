package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// handleCreateClient creates an advertiser record.
func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var in port.ClientInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	client, err := h.clients.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, client, "Client created successfully", nil)
}

// handleListClients lists active clients. Optional filters: name
// (case-insensitive substring) and industry (exact).
func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	sort, page := parseListOptions(r)
	filter := port.ClientFilter{
		Name:     r.URL.Query().Get("name"),
		Industry: r.URL.Query().Get("industry"),
	}

	result, err := h.clients.List(r.Context(), filter, sort, page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, result.Items, "Clients retrieved successfully", pageOf(result, page))
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.clients.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, client, "Client retrieved successfully", nil)
}

func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var upd domain.ClientUpdate
	if err := decodeJSON(r, &upd); err != nil {
		h.respondError(w, r, err)
		return
	}

	client, err := h.clients.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, client, "Client updated successfully", nil)
}

// handleDeleteClient soft-deletes: the record stays addressable by id but
// drops out of default listings.
func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nil, "Client deleted successfully", nil)
}

// handlePermanentDeleteClient physically removes the record. Admin-only,
// enforced by the route's role middleware.
func (h *Handler) handlePermanentDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.HardDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, nil, "Client permanently deleted", nil)
}
