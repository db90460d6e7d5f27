// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/giggi/basesetup/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key used to store the authenticated principal in the
// request context. The principal is set by the authentication middleware for
// the lifetime of a single request and is never shared across requests.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithPrincipal(ctx, principal)
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true  — a principal was established for this request
//   - ok == false — the request is anonymous (no valid token was presented)
//
// Example usage:
//
//	principal, ok := utils.GetPrincipalFromContext(ctx)
//	if !ok {
//	    // handle anonymous request
//	}
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
