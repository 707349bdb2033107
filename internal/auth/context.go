// Package auth provides password hashing and request identity helpers.
package auth

import "context"

// Identity is the verified caller identity extracted from a bearer token.
type Identity struct {
	UserID int64
	Email  string
}

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityContextKey is the context key for storing the Identity.
const identityContextKey contextKey = "identity"

// ContextWithIdentity adds the verified Identity to the context.
func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext retrieves the Identity from the context.
// Returns nil if not present.
func IdentityFromContext(ctx context.Context) *Identity {
	id, ok := ctx.Value(identityContextKey).(*Identity)
	if !ok {
		return nil
	}
	return id
}

// UserIDFromContext is a convenience function to get the user ID from context.
// Returns 0 if not authenticated.
func UserIDFromContext(ctx context.Context) int64 {
	id := IdentityFromContext(ctx)
	if id == nil {
		return 0
	}
	return id.UserID
}
