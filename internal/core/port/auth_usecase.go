package port

import (
	"context"

	"dmc-campaigns/internal/core/domain"
)

// RegisterInput is the payload for creating a user account. Role defaults
// to "user" when empty.
type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role,omitempty"`
}

// AuthResult pairs a user with a freshly issued session token. The user's
// password hash is stripped before it crosses this boundary.
type AuthResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUseCase is the authentication service: registration, credential
// verification with token issuance, and profile lookup.
type AuthUseCase interface {
	// Register creates a user and issues a token. It fails with Conflict
	// when the email is already present.
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	// Login verifies credentials, updates the last-login timestamp and
	// issues a token. Unknown email and wrong password surface the same
	// generic Unauthorized message; deactivated accounts a distinct one.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Profile returns the user for the given id, NotFound when absent.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
