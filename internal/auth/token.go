// Package auth implements claims-token issuance and verification plus
// password hashing. Tokens are HS256-signed JWTs carrying id, email and
// role, verifiable without a database round-trip.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dmc-campaigns/internal/core/domain"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// Claims is the signed token payload.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the decoded token content attached to a request.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenIssuer signs and verifies session tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer with the given secret and expiration
// window.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Generate creates a signed token for the user.
func (t *TokenIssuer) Generate(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: u.Email,
		Role:  string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates the token signature and expiry and extracts the
// identity. Expired tokens return ErrExpiredToken; any other parse failure
// wraps ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (*Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: role", ErrMissingClaim)
	}
	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}
