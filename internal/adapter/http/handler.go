package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dmc-campaigns/internal/auth"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// TokenVerifier validates a bearer token and returns the identity it
// carries.
type TokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// Handler is the inbound HTTP adapter. It holds the usecases, the token
// verifier for the authentication middleware and a structured logger.
// Routes are registered on a chi.Router.
type Handler struct {
	auth      port.AuthUseCase
	clients   port.ClientUseCase
	campaigns port.CampaignUseCase
	analytics port.AnalyticsUseCase
	verifier  TokenVerifier
	logger    *slog.Logger
	dev       bool
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. dev enables
// error detail in responses and should be false in production.
func NewHandler(authUC port.AuthUseCase, clients port.ClientUseCase, campaigns port.CampaignUseCase, analytics port.AnalyticsUseCase, verifier TokenVerifier, logger *slog.Logger, dev bool) *Handler {
	h := &Handler{
		auth:      authUC,
		clients:   clients,
		campaigns: campaigns,
		analytics: analytics,
		verifier:  verifier,
		logger:    logger,
		dev:       dev,
	}

	r := chi.NewRouter()
	r.Use(h.recoverPanics)
	r.Use(h.logRequests)

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.With(h.authenticate).Get("/profile", h.handleProfile)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/", h.handleListClients)
			r.Post("/", h.handleCreateClient)
			r.Get("/{id}", h.handleGetClient)
			r.Put("/{id}", h.handleUpdateClient)
			r.Delete("/{id}", h.handleDeleteClient)
			r.With(h.requireRoles(domain.RoleAdmin)).Delete("/{id}/permanent", h.handlePermanentDeleteClient)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/client/{clientId}", h.handleListCampaignsByClient)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Patch("/{id}/status", h.handleUpdateCampaignStatus)
			r.Patch("/{id}/metrics", h.handleUpdateCampaignMetrics)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.With(h.requireRoles(domain.RoleAdmin, domain.RoleManager)).Post("/{id}/team", h.handleAddTeamMembers)
			r.With(h.requireRoles(domain.RoleAdmin, domain.RoleManager)).Delete("/{id}/team/{memberId}", h.handleRemoveTeamMember)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/", h.handleAnalyticsOverview)
			r.With(h.requireRoles(domain.RoleAdmin)).Get("/summary", h.handleAnalyticsSummary)
			r.With(h.requireRoles(domain.RoleAdmin, domain.RoleManager)).Get("/client/{clientId}", h.handleClientAnalytics)
		})
	})

	r.NotFound(h.handleNotFound)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, nil, "ok", nil)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.respondFail(w, http.StatusNotFound, "Route not found: "+r.Method+" "+r.URL.Path, nil)
}
