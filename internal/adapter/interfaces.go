// Package adapter provides the client-side transport for talking to the
// VoxAi server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// runtime from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/voxai-app/voxai/models"
)

// ServerAdapter defines transport-agnostic communication with the VoxAi
// server. Implementations are responsible for serialisation, auth header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the session token that will be attached to all
	// subsequent authenticated requests in the x-auth-token header.
	SetToken(token string)

	// Token returns the session token currently stored in the adapter, or
	// an empty string if no token has been set.
	Token() string

	// OnUnauthorized registers a callback invoked whenever any response
	// comes back 401. The token held by the adapter is cleared before the
	// callback runs, regardless of which request triggered the rejection.
	OnUnauthorized(fn func())

	// Register sends a registration request. Registration never yields a
	// token; a separate Login call is required afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates with the server. On success the returned token
	// is stored via SetToken and the token plus the public user projection
	// are returned to the caller for persistence.
	Login(ctx context.Context, email string, secret string) (models.LoginResponse, error)

	// ListSchemes fetches the scheme catalogue, optionally filtered.
	ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)

	// GetScheme fetches a single scheme by id.
	GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error)

	// CreateScheme creates a scheme record. Requires a valid token.
	CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)

	// UpdateScheme replaces a scheme record. Requires a valid token.
	UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)

	// DeleteScheme removes a scheme record. Requires a valid token.
	DeleteScheme(ctx context.Context, schemeID int64) error

	// Chat sends a single message to the chatbot and returns its reply.
	// Requires a valid token.
	Chat(ctx context.Context, message string) (string, error)
}
