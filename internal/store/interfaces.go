// Package store implements the persistence layer: the PostgreSQL-backed
// repositories used by the server and the SQLite-backed session storage
// used by the client.
package store

import (
	"context"

	"github.com/voxai-app/voxai/models"
)

// UserRepository is the credential store contract: unique-constrained
// insert plus lookup by the login key.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SchemeRepository persists the government scheme catalogue.
type SchemeRepository interface {
	CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error)
	ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	DeleteScheme(ctx context.Context, schemeID int64) error
}
