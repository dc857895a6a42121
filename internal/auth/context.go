package auth

import "context"

// identityKey is the context key type for the request identity.
type identityKey struct{}

// WithIdentity returns a new context with the identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext retrieves the identity from the context, returning
// nil when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
