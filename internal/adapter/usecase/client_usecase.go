package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// ClientUseCase implements CRUD and soft/hard delete over the client
// registry. Data invariants (name uniqueness, existence) live here; role
// gating stays at the HTTP boundary.
type ClientUseCase struct {
	clients port.ClientRepository
}

// NewClientUseCase creates the client service.
func NewClientUseCase(clients port.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

// Create persists a new client after checking name uniqueness.
func (u *ClientUseCase) Create(ctx context.Context, in port.ClientInput) (*domain.Client, error) {
	existing, err := u.clients.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("A client with this name already exists")
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ID:                 uuid.NewString(),
		Name:               in.Name,
		ContactPerson:      in.ContactPerson,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		Industry:           in.Industry,
		Logo:               in.Logo,
		Website:            in.Website,
		SocialMediaHandles: in.SocialMediaHandles,
		Notes:              in.Notes,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err = u.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns active clients matching the filter.
func (u *ClientUseCase) List(ctx context.Context, f port.ClientFilter, sort port.Sort, page port.PageRequest) (port.Page[domain.Client], error) {
	return u.clients.List(ctx, f, sort, page)
}

// GetByID returns the client, regardless of its active flag.
func (u *ClientUseCase) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("Client not found")
	}
	return client, nil
}

// Update shallow-merges the partial onto the stored record. A rename
// re-checks uniqueness first.
func (u *ClientUseCase) Update(ctx context.Context, id string, upd domain.ClientUpdate) (*domain.Client, error) {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NotFound("Client not found")
	}

	if upd.Name != nil && *upd.Name != client.Name {
		existing, err := u.clients.GetByName(ctx, *upd.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("A client with this name already exists")
		}
	}

	upd.Apply(client)
	client.UpdatedAt = time.Now().UTC()
	if err = u.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// SoftDelete flips the active flag; the record remains addressable by id.
func (u *ClientUseCase) SoftDelete(ctx context.Context, id string) error {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NotFound("Client not found")
	}
	client.IsActive = false
	client.UpdatedAt = time.Now().UTC()
	return u.clients.Update(ctx, client)
}

// HardDelete physically removes the record. The admin restriction is
// enforced by the routing boundary, not here.
func (u *ClientUseCase) HardDelete(ctx context.Context, id string) error {
	deleted, err := u.clients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Client not found")
	}
	return nil
}
