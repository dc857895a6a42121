package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/port"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// decodeJSON decodes the request body into v, converting parse failures
// into a validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.Validation("Invalid JSON payload")
	}
	return nil
}

// parseListOptions reads the shared listing query parameters: page, limit,
// sortField and sortOrder ("asc" sorts ascending, anything else
// descending). Page is clamped to a minimum of 1 and limit to [1,100].
func parseListOptions(r *http.Request) (port.Sort, port.PageRequest) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	sort := port.Sort{
		Field: q.Get("sortField"),
		Desc:  q.Get("sortOrder") != "asc",
	}
	return sort, port.PageRequest{Page: page, Limit: limit}
}

// pageOf builds the pagination block for a listing result.
func pageOf[T any](result port.Page[T], page port.PageRequest) *pagination {
	return &pagination{
		Page:  page.Page,
		Limit: page.Limit,
		Total: result.Total,
		Pages: result.Pages(page.Limit),
	}
}
