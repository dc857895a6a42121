package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

type campaignFixture struct {
	svc       *CampaignUseCase
	campaigns *fakeCampaignRepo
	clients   *fakeClientRepo
	users     *fakeUserRepo
	clientID  string
}

func newCampaignFixture(t *testing.T) campaignFixture {
	t.Helper()
	campaigns := newFakeCampaignRepo()
	clients := newFakeClientRepo()
	users := newFakeUserRepo()

	clientSvc := NewClientUseCase(clients)
	client, err := clientSvc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Jo", Email: "jo@acme.test", Phone: "1"})
	require.NoError(t, err)

	return campaignFixture{
		svc:       NewCampaignUseCase(campaigns, clients, users),
		campaigns: campaigns,
		clients:   clients,
		users:     users,
		clientID:  client.ID,
	}
}

func validInput(clientID string) port.CampaignInput {
	return port.CampaignInput{
		ClientID:    clientID,
		Name:        "Spring Launch",
		Description: "spring product launch",
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Budget:      10000,
		Objectives:  []string{"awareness"},
	}
}

func TestCampaignCreateUnknownClient(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.svc.Create(context.Background(), validInput("missing"))
	require.True(t, apperror.IsKind(err, apperror.KindValidation))
	require.Empty(t, f.campaigns.campaigns, "no record may be created on a dangling client reference")
}

func TestCampaignCreateEmptyObjectives(t *testing.T) {
	f := newCampaignFixture(t)

	in := validInput(f.clientID)
	in.Objectives = []string{}
	c, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Empty(t, c.Objectives)
}

func TestCampaignCreateDateRange(t *testing.T) {
	f := newCampaignFixture(t)

	in := validInput(f.clientID)
	in.EndDate = timePtr(in.StartDate.AddDate(0, 0, -1))
	_, err := f.svc.Create(context.Background(), in)
	require.True(t, apperror.IsKind(err, apperror.KindValidation))

	// endDate equal to startDate is allowed
	in.EndDate = timePtr(in.StartDate)
	c, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, c.Status, "status defaults to draft")
}

func TestCampaignUpdateDateRangeCombinesStoredAndSubmitted(t *testing.T) {
	f := newCampaignFixture(t)

	in := validInput(f.clientID)
	in.EndDate = timePtr(in.StartDate.AddDate(0, 1, 0))
	c, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	// submitted end before the stored start
	_, err = f.svc.Update(context.Background(), c.ID, domain.CampaignUpdate{
		EndDate: timePtr(in.StartDate.AddDate(0, 0, -1)),
	})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))

	// submitted start after the stored end
	_, err = f.svc.Update(context.Background(), c.ID, domain.CampaignUpdate{
		StartDate: timePtr(in.EndDate.AddDate(0, 1, 0)),
	})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))

	// moving both sides together is fine
	newStart := in.StartDate.AddDate(1, 0, 0)
	updated, err := f.svc.Update(context.Background(), c.ID, domain.CampaignUpdate{
		StartDate: timePtr(newStart),
		EndDate:   timePtr(newStart.AddDate(0, 2, 0)),
	})
	require.NoError(t, err)
	require.Equal(t, newStart, updated.StartDate)
}

func TestCampaignUpdateClientReference(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	missing := "missing"
	_, err = f.svc.Update(context.Background(), c.ID, domain.CampaignUpdate{ClientID: &missing})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))

	other, err := NewClientUseCase(f.clients).Create(context.Background(), port.ClientInput{Name: "Globex", ContactPerson: "H", Email: "h@g.test", Phone: "2"})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), c.ID, domain.CampaignUpdate{ClientID: &other.ID})
	require.NoError(t, err)
	require.Equal(t, other.ID, updated.ClientID)
}

func TestCampaignUpdateMetricsPreservesOmittedFields(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	_, err = f.svc.UpdateMetrics(context.Background(), c.ID, domain.Metrics{
		Impressions: int64Ptr(100),
		Clicks:      int64Ptr(10),
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateMetrics(context.Background(), c.ID, domain.Metrics{Conversions: int64Ptr(5)})
	require.NoError(t, err)
	require.Equal(t, int64(100), *updated.Metrics.Impressions)
	require.Equal(t, int64(10), *updated.Metrics.Clicks)
	require.Equal(t, int64(5), *updated.Metrics.Conversions)
	require.Nil(t, updated.Metrics.ROI)
}

func TestCampaignStatusOverwrite(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	// no transition table: draft may jump straight to completed and back
	updated, err := f.svc.UpdateStatus(context.Background(), c.ID, domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, updated.Status)

	updated, err = f.svc.UpdateStatus(context.Background(), c.ID, domain.StatusDraft)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, updated.Status)

	_, err = f.svc.UpdateStatus(context.Background(), "missing", domain.StatusActive)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCampaignAddTeamMembersIdempotent(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	updated, err := f.svc.AddTeamMembers(context.Background(), c.ID, []string{"u1", "u2"})
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2"}, updated.Team)
	writesAfterFirst := f.campaigns.updates

	updated, err = f.svc.AddTeamMembers(context.Background(), c.ID, []string{"u1"})
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2"}, updated.Team, "re-adding an existing member must not duplicate it")
	require.Equal(t, writesAfterFirst, f.campaigns.updates, "an empty difference skips the write")

	// duplicates within a single request collapse too
	updated, err = f.svc.AddTeamMembers(context.Background(), c.ID, []string{"u3", "u3"})
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2", "u3"}, updated.Team)
}

func TestCampaignRemoveTeamMember(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	_, err = f.svc.AddTeamMembers(context.Background(), c.ID, []string{"u1", "u2"})
	require.NoError(t, err)

	updated, err := f.svc.RemoveTeamMember(context.Background(), c.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, updated.Team)

	// removing an absent member succeeds and still persists
	writesBefore := f.campaigns.updates
	updated, err = f.svc.RemoveTeamMember(context.Background(), c.ID, "ghost")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, updated.Team)
	require.Equal(t, writesBefore+1, f.campaigns.updates)
}

func TestCampaignListByClient(t *testing.T) {
	f := newCampaignFixture(t)

	_, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	_, err = f.svc.ListByClient(context.Background(), "missing", port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.True(t, apperror.IsKind(err, apperror.KindValidation))

	page, err := f.svc.ListByClient(context.Background(), f.clientID, port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, int64(1), page.Total)
	require.Equal(t, 1, page.Pages(10))
}

func TestCampaignSoftDeleteHidesFromListings(t *testing.T) {
	f := newCampaignFixture(t)

	c, err := f.svc.Create(context.Background(), validInput(f.clientID))
	require.NoError(t, err)

	require.NoError(t, f.svc.SoftDelete(context.Background(), c.ID))

	page, err := f.svc.List(context.Background(), port.CampaignFilter{}, port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, page.Items)

	detail, err := f.svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.False(t, detail.IsActive)
}

func TestCampaignGetByIDResolvesReferences(t *testing.T) {
	f := newCampaignFixture(t)

	f.users.users["u1"] = domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}

	in := validInput(f.clientID)
	in.Team = []string{"u1", "ghost"}
	c, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)

	detail, err := f.svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Client)
	require.Equal(t, "Acme", detail.Client.Name)
	require.Len(t, detail.Team, 1, "unresolvable team ids are skipped in the display view")
	require.Equal(t, "Ada", detail.Team[0].Name)

	_, err = f.svc.GetByID(context.Background(), "missing")
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
