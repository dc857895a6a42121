package port

import (
	"context"

	"dmc-campaigns/internal/core/domain"
)

// ClientRepository is the persistence layer for advertiser records. Lookup
// methods return (nil, nil) when no record matches. Delete is a physical
// removal and reports whether a record was deleted.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	// List returns active records matching the filter, sorted and paged.
	List(ctx context.Context, f ClientFilter, sort Sort, page PageRequest) (Page[domain.Client], error)
	// CountActive counts active records.
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) (bool, error)
}
