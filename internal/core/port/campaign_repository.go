package port

import (
	"context"
	"time"

	"dmc-campaigns/internal/core/domain"
)

// CampaignRepository is the persistence layer for campaign records. Lookup
// methods return (nil, nil) when no record matches.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// List returns active records matching the filter, sorted and paged.
	List(ctx context.Context, f CampaignFilter, sort Sort, page PageRequest) (Page[domain.Campaign], error)
	// AllByClient returns every active campaign of one client, unpaged.
	AllByClient(ctx context.Context, clientID string) ([]domain.Campaign, error)
	// CountActive counts active records matching the filter.
	CountActive(ctx context.Context, f CampaignFilter) (int64, error)
	// CountCreatedSince counts active records created at or after since.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	Update(ctx context.Context, c *domain.Campaign) error
}
