// Package utils provides general-purpose helpers used across the
// application: type-safe context keys, JSON response writing, JWT token
// generation and validation, and identity generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with other packages that store string-keyed values in the
// same context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated caller's identity
// is stored in the request context by the auth middleware.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0198c...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the caller identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is present and is a string
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
