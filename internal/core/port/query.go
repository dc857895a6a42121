package port

// PageRequest selects a slice of a listing. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Sort orders a listing by a single logical field name. The repository maps
// the field onto a storage column; unknown fields fall back to the listing
// default.
type Sort struct {
	Field string
	Desc  bool
}

// Page is one page of a listing together with the total match count.
type Page[T any] struct {
	Items []T
	Total int64
}

// Pages returns the page count for the given limit, ceil(total/limit).
func (p Page[T]) Pages(limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((p.Total + int64(limit) - 1) / int64(limit))
}

// ClientFilter restricts a client listing. Name matches case-insensitively
// as a substring; Industry matches exactly. Zero values are ignored.
type ClientFilter struct {
	Name     string
	Industry string
}

// CampaignFilter restricts a campaign listing. Name matches
// case-insensitively as a substring; Status and ClientID match exactly.
// Zero values are ignored.
type CampaignFilter struct {
	Name     string
	Status   string
	ClientID string
}
