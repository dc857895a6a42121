package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

func strPtr(s string) *string { return &s }

func TestClientCreateDuplicateName(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	_, err := svc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Jo", Email: "jo@acme.test", Phone: "1"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Other", Email: "x@acme.test", Phone: "2"})
	require.True(t, apperror.IsKind(err, apperror.KindConflict))
	require.Len(t, repo.clients, 1)
}

func TestClientUpdateRenameConflict(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	a, err := svc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Jo", Email: "jo@acme.test", Phone: "1"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), port.ClientInput{Name: "Globex", ContactPerson: "Hank", Email: "h@globex.test", Phone: "2"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), a.ID, domain.ClientUpdate{Name: strPtr("Globex")})
	require.True(t, apperror.IsKind(err, apperror.KindConflict))

	// keeping the same name is not a conflict
	updated, err := svc.Update(context.Background(), a.ID, domain.ClientUpdate{Name: strPtr("Acme"), Phone: strPtr("42")})
	require.NoError(t, err)
	require.Equal(t, "42", updated.Phone)
}

func TestClientUpdateShallowMerge(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	c, err := svc.Create(context.Background(), port.ClientInput{
		Name:          "Acme",
		ContactPerson: "Jo",
		Email:         "jo@acme.test",
		Phone:         "1",
		Address:       &domain.Address{City: "Lisbon", Country: "PT"},
	})
	require.NoError(t, err)

	// a submitted address replaces the nested struct wholesale
	updated, err := svc.Update(context.Background(), c.ID, domain.ClientUpdate{
		Address: &domain.Address{City: "Porto"},
	})
	require.NoError(t, err)
	require.Equal(t, "Porto", updated.Address.City)
	require.Empty(t, updated.Address.Country, "nested structs replace, not deep-merge")
	require.Equal(t, "Jo", updated.ContactPerson, "omitted top-level fields survive")

	_, err = svc.Update(context.Background(), "missing", domain.ClientUpdate{})
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestClientSoftDeleteAndListVisibility(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	c, err := svc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Jo", Email: "jo@acme.test", Phone: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), c.ID))

	page, err := svc.List(context.Background(), port.ClientFilter{}, port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, page.Items, "soft-deleted clients drop out of default listings")

	got, err := svc.GetByID(context.Background(), c.ID)
	require.NoError(t, err, "soft-deleted clients stay addressable by id")
	require.False(t, got.IsActive)

	require.True(t, apperror.IsKind(svc.SoftDelete(context.Background(), "missing"), apperror.KindNotFound))
}

func TestClientHardDelete(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	c, err := svc.Create(context.Background(), port.ClientInput{Name: "Acme", ContactPerson: "Jo", Email: "jo@acme.test", Phone: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.HardDelete(context.Background(), c.ID))

	_, err = svc.GetByID(context.Background(), c.ID)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound), "hard delete removes the record physically")

	require.True(t, apperror.IsKind(svc.HardDelete(context.Background(), c.ID), apperror.KindNotFound))
}

func TestClientListFilters(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientUseCase(repo)

	seed := []port.ClientInput{
		{Name: "Acme Retail", ContactPerson: "a", Email: "a@t", Phone: "1", Industry: "retail"},
		{Name: "Globex Media", ContactPerson: "b", Email: "b@t", Phone: "2", Industry: "media"},
		{Name: "acme labs", ContactPerson: "c", Email: "c@t", Phone: "3", Industry: "research"},
	}
	for _, in := range seed {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), port.ClientFilter{Name: "ACME"}, port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2, "name filter is a case-insensitive substring match")

	page, err = svc.List(context.Background(), port.ClientFilter{Industry: "media"}, port.Sort{}, port.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Globex Media", page.Items[0].Name)
}
