package httpadapter

import (
	"net/http"

	"dmc-campaigns/internal/auth"
	"dmc-campaigns/internal/core/port"
)

// handleRegister creates a user account. The role, when supplied, must be
// a known enum value; it defaults to "user" in the service.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in port.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	if in.Role != "" && !in.Role.Valid() {
		h.respondFail(w, http.StatusBadRequest, "Invalid role", nil)
		return
	}

	result, err := h.auth.Register(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, result, "User registered successfully", nil)
}

// handleLogin verifies credentials and issues a token.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, result, "Login successful", nil)
}

// handleProfile returns the authenticated user's own profile.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		h.respondFail(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	user, err := h.auth.Profile(r.Context(), identity.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, user, "Profile retrieved successfully", nil)
}
