package port

import (
	"context"
	"time"

	"dmc-campaigns/internal/core/domain"
)

// CampaignInput is the payload for creating a campaign. Status defaults to
// draft when empty.
type CampaignInput struct {
	ClientID       string                 `json:"client"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	StartDate      time.Time              `json:"startDate"`
	EndDate        *time.Time             `json:"endDate,omitempty"`
	Budget         float64                `json:"budget"`
	Status         domain.Status          `json:"status,omitempty"`
	Objectives     []string               `json:"objectives"`
	TargetAudience *domain.TargetAudience `json:"targetAudience,omitempty"`
	Channels       []string               `json:"channels,omitempty"`
	Team           []string               `json:"team,omitempty"`
}

// ClientRef is the client summary embedded in a campaign detail view.
type ClientRef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
}

// TeamMember is the user summary embedded in a campaign detail view.
type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CampaignDetail is a campaign with its client and team references
// resolved for display.
type CampaignDetail struct {
	domain.Campaign
	Client *ClientRef   `json:"clientDetails,omitempty"`
	Team   []TeamMember `json:"teamDetails"`
}

// CampaignUseCase is the campaign service: CRUD plus status, metrics and
// team mutation over the campaign ledger.
type CampaignUseCase interface {
	// Create persists a campaign after validating the client reference and
	// the date range.
	Create(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	// List returns active campaigns matching the filter, with pagination.
	List(ctx context.Context, f CampaignFilter, sort Sort, page PageRequest) (Page[domain.Campaign], error)
	// ListByClient lists the active campaigns of one client; Validation
	// error when the client does not exist.
	ListByClient(ctx context.Context, clientID string, sort Sort, page PageRequest) (Page[domain.Campaign], error)
	// GetByID returns the campaign with client and team resolved.
	GetByID(ctx context.Context, id string) (*CampaignDetail, error)
	// Update shallow-merges the partial, re-validating the client
	// reference when it changes and the date range over the merged values.
	Update(ctx context.Context, id string, u domain.CampaignUpdate) (*domain.Campaign, error)
	// UpdateStatus unconditionally overwrites the status. Enum membership
	// is the caller's concern.
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error)
	// UpdateMetrics merges metric fields additively; fields absent from
	// the partial are preserved.
	UpdateMetrics(ctx context.Context, id string, m domain.Metrics) (*domain.Campaign, error)
	// SoftDelete marks the campaign inactive without removing it.
	SoftDelete(ctx context.Context, id string) error
	// AddTeamMembers appends the ids not already on the team; the write is
	// skipped when every id is already present.
	AddTeamMembers(ctx context.Context, id string, memberIDs []string) (*domain.Campaign, error)
	// RemoveTeamMember filters the member out of the team and persists
	// even when nothing was removed.
	RemoveTeamMember(ctx context.Context, id, memberID string) (*domain.Campaign, error)
}
