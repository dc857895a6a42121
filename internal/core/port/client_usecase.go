package port

import (
	"context"

	"dmc-campaigns/internal/core/domain"
)

// ClientInput is the payload for creating an advertiser record.
type ClientInput struct {
	Name               string                     `json:"name"`
	ContactPerson      string                     `json:"contactPerson"`
	Email              string                     `json:"email"`
	Phone              string                     `json:"phone"`
	Address            *domain.Address            `json:"address,omitempty"`
	Industry           string                     `json:"industry,omitempty"`
	Logo               string                     `json:"logo,omitempty"`
	Website            string                     `json:"website,omitempty"`
	SocialMediaHandles *domain.SocialMediaHandles `json:"socialMediaHandles,omitempty"`
	Notes              string                     `json:"notes,omitempty"`
}

// ClientUseCase is the client service: CRUD plus soft and hard delete.
// Role gating for hard delete happens at the HTTP boundary, not here.
type ClientUseCase interface {
	// Create persists a new client, Conflict when the name is taken.
	Create(ctx context.Context, in ClientInput) (*domain.Client, error)
	// List returns active clients matching the filter, with pagination.
	List(ctx context.Context, f ClientFilter, sort Sort, page PageRequest) (Page[domain.Client], error)
	// GetByID returns the client, NotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// Update shallow-merges the partial onto the stored record. A rename
	// re-checks name uniqueness and fails with Conflict on collision.
	Update(ctx context.Context, id string, u domain.ClientUpdate) (*domain.Client, error)
	// SoftDelete marks the client inactive without removing it.
	SoftDelete(ctx context.Context, id string) error
	// HardDelete physically removes the client, NotFound when absent.
	HardDelete(ctx context.Context, id string) error
}
