package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// CampaignUseCase implements the campaign ledger operations. It depends on
// the client repository for referential validation and on the user
// repository to resolve team members for display.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	clients   port.ClientRepository
	users     port.UserRepository
}

// NewCampaignUseCase creates the campaign service.
func NewCampaignUseCase(campaigns port.CampaignRepository, clients port.ClientRepository, users port.UserRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, clients: clients, users: users}
}

// Create validates the client reference and the date range, then persists
// the campaign with status draft unless one was supplied.
func (u *CampaignUseCase) Create(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.Validation("Client not found")
	}
	if !domain.ValidDateRange(in.StartDate, in.EndDate) {
		return nil, apperror.Validation("End date must be after start date")
	}

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	now := time.Now().UTC()
	campaign := &domain.Campaign{
		ID:             uuid.NewString(),
		ClientID:       in.ClientID,
		Name:           in.Name,
		Description:    in.Description,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Budget:         in.Budget,
		Status:         status,
		Objectives:     in.Objectives,
		TargetAudience: in.TargetAudience,
		Channels:       in.Channels,
		Team:           in.Team,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if campaign.Team == nil {
		campaign.Team = []string{}
	}
	if err = u.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// List returns active campaigns matching the filter.
func (u *CampaignUseCase) List(ctx context.Context, f port.CampaignFilter, sort port.Sort, page port.PageRequest) (port.Page[domain.Campaign], error) {
	return u.campaigns.List(ctx, f, sort, page)
}

// ListByClient lists the active campaigns of one client after verifying
// the client exists.
func (u *CampaignUseCase) ListByClient(ctx context.Context, clientID string, sort port.Sort, page port.PageRequest) (port.Page[domain.Campaign], error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return port.Page[domain.Campaign]{}, err
	}
	if client == nil {
		return port.Page[domain.Campaign]{}, apperror.Validation("Client not found")
	}
	return u.campaigns.List(ctx, port.CampaignFilter{ClientID: clientID}, sort, page)
}

// GetByID returns the campaign with its client and team resolved for
// display. A dangling client reference leaves the summary empty rather
// than failing the lookup.
func (u *CampaignUseCase) GetByID(ctx context.Context, id string) (*port.CampaignDetail, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}

	detail := &port.CampaignDetail{Campaign: *campaign, Team: []port.TeamMember{}}

	client, err := u.clients.GetByID(ctx, campaign.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		detail.Client = &port.ClientRef{
			ID:            client.ID,
			Name:          client.Name,
			ContactPerson: client.ContactPerson,
			Email:         client.Email,
		}
	}

	if len(campaign.Team) > 0 {
		members, err := u.users.GetByIDs(ctx, campaign.Team)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			detail.Team = append(detail.Team, port.TeamMember{ID: m.ID, Name: m.Name, Email: m.Email})
		}
	}
	return detail, nil
}

// Update shallow-merges the partial onto the stored record. A changed
// client reference is re-validated, and the date invariant is checked
// against the combination of submitted and pre-existing values.
func (u *CampaignUseCase) Update(ctx context.Context, id string, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}

	if upd.ClientID != nil && *upd.ClientID != campaign.ClientID {
		client, err := u.clients.GetByID(ctx, *upd.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.Validation("Client not found")
		}
	}

	// either side of the range may come from the payload or the record
	start := campaign.StartDate
	if upd.StartDate != nil {
		start = *upd.StartDate
	}
	end := campaign.EndDate
	if upd.EndDate != nil {
		end = upd.EndDate
	}
	if !domain.ValidDateRange(start, end) {
		return nil, apperror.Validation("End date must be after start date")
	}

	upd.Apply(campaign)
	campaign.UpdatedAt = time.Now().UTC()
	if err = u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateStatus overwrites the status unconditionally; there is no
// transition table.
func (u *CampaignUseCase) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}
	campaign.Status = status
	campaign.UpdatedAt = time.Now().UTC()
	if err = u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateMetrics merges the submitted metric fields onto the stored ones.
// Fields absent from the partial are preserved, not zeroed.
func (u *CampaignUseCase) UpdateMetrics(ctx context.Context, id string, m domain.Metrics) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}
	campaign.Metrics = campaign.Metrics.Merge(m)
	campaign.UpdatedAt = time.Now().UTC()
	if err = u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// SoftDelete flips the active flag; the record remains addressable by id.
func (u *CampaignUseCase) SoftDelete(ctx context.Context, id string) error {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return apperror.NotFound("Campaign not found")
	}
	campaign.IsActive = false
	campaign.UpdatedAt = time.Now().UTC()
	return u.campaigns.Update(ctx, campaign)
}

// AddTeamMembers appends only the ids not already present. When every id
// is already on the team the write is skipped entirely.
func (u *CampaignUseCase) AddTeamMembers(ctx context.Context, id string, memberIDs []string) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}

	var novel []string
	for _, mid := range memberIDs {
		if !slices.Contains(campaign.Team, mid) && !slices.Contains(novel, mid) {
			novel = append(novel, mid)
		}
	}
	if len(novel) == 0 {
		return campaign, nil
	}

	campaign.Team = append(campaign.Team, novel...)
	campaign.UpdatedAt = time.Now().UTC()
	if err = u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// RemoveTeamMember filters the member out of the team. The record is
// persisted even when nothing was removed.
func (u *CampaignUseCase) RemoveTeamMember(ctx context.Context, id, memberID string) (*domain.Campaign, error) {
	campaign, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NotFound("Campaign not found")
	}

	team := make([]string, 0, len(campaign.Team))
	for _, mid := range campaign.Team {
		if mid != memberID {
			team = append(team, mid)
		}
	}
	campaign.Team = team
	campaign.UpdatedAt = time.Now().UTC()
	if err = u.campaigns.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
