package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"dmc-campaigns/internal/auth"
	"dmc-campaigns/internal/core/domain"
)

// extractBearerToken extracts a bearer token from the Authorization
// header. The second return is an error message, empty on success.
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "Authentication required"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "Authentication required"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "Authentication required"
	}
	return token, ""
}

// authenticate validates the bearer token and attaches the decoded
// identity to the request context. Requests without a valid token never
// reach a service.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
		if errMsg != "" {
			h.respondFail(w, http.StatusUnauthorized, errMsg, nil)
			return
		}

		identity, err := h.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrMissingClaim) {
				h.respondFail(w, http.StatusUnauthorized, "Invalid or expired token", err.Error())
				return
			}
			h.respondError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}

// requireRoles grants access iff the authenticated identity's role is a
// member of the set. An absent identity is Unauthorized, a role mismatch
// Forbidden.
func (h *Handler) requireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.IdentityFromContext(r.Context())
			if identity == nil {
				h.respondFail(w, http.StatusUnauthorized, "Authentication required", nil)
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			h.respondFail(w, http.StatusForbidden, "You do not have permission to perform this action", nil)
		})
	}
}

// recoverPanics converts a handler panic into the standard internal-error
// envelope. http.ErrAbortHandler is rethrown so aborted responses keep
// their net/http semantics.
func (h *Handler) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logger.Error("panic recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec))
				h.respondError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logRequests records method, path, status and duration for every request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)))
	})
}
