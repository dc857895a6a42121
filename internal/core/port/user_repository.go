package port

import (
	"context"

	"dmc-campaigns/internal/core/domain"
)

// UserRepository is the persistence layer for identity records. Lookup
// methods return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByIDs returns the users whose ids appear in ids; missing ids are
	// silently skipped.
	GetByIDs(ctx context.Context, ids []string) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
