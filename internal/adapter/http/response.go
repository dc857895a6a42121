package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dmc-campaigns/internal/apperror"
)

// pagination is the listing metadata attached to paged responses.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// envelope is the uniform response wrapper applied to every boundary
// response. Error responses additionally carry a "fail"/"error" status
// classification.
type envelope struct {
	Success    bool        `json:"success"`
	Status     string      `json:"status,omitempty"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      any         `json:"error,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// respond writes a success envelope.
func (h *Handler) respond(w http.ResponseWriter, status int, data any, message string, pg *pagination) {
	h.writeJSON(w, status, envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pg,
	})
}

// respondFail writes a client-error envelope without going through the
// error taxonomy. detail is included only in dev builds.
func (h *Handler) respondFail(w http.ResponseWriter, status int, message string, detail any) {
	body := envelope{Success: false, Status: "fail", Message: message}
	if h.dev {
		body.Error = detail
	}
	h.writeJSON(w, status, body)
}

// respondError serializes a service error. Typed errors map onto their
// status code and classification; anything else is an internal error,
// logged and masked.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		h.logger.Error("internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		appErr = apperror.Internal("An error occurred")
	}

	body := envelope{Success: false, Status: appErr.Status(), Message: appErr.Message}
	if h.dev {
		body.Error = err.Error()
	}
	h.writeJSON(w, appErr.HTTPStatus(), body)
}
