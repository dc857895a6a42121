package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dmc-campaigns/internal/apperror"
	"dmc-campaigns/internal/auth"
	"dmc-campaigns/internal/core/domain"
	"dmc-campaigns/internal/core/port"
)

// AuthUseCase implements registration, login and profile lookup over the
// user repository, issuing claims tokens through the token issuer.
type AuthUseCase struct {
	users  port.UserRepository
	tokens *auth.TokenIssuer
}

// NewAuthUseCase creates the authentication service.
func NewAuthUseCase(users port.UserRepository, tokens *auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Register creates a user account and issues a token. The email conflict
// check is an exact match against stored emails.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*port.AuthResult, error) {
	existing, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already in use")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hash,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{User: sanitize(user), Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same generic message so the two cases are
// indistinguishable to the caller; a deactivated account gets its own.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("Your account has been deactivated")
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	// record the login before issuing the token
	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err = u.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{User: sanitize(user), Token: token}, nil
}

// Profile returns the user for the given id.
func (u *AuthUseCase) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return sanitize(user), nil
}

// sanitize returns a copy of the user without the password hash.
func sanitize(u *domain.User) *domain.User {
	clean := *u
	clean.Password = ""
	return &clean
}
