package service

import (
	"context"

	"github.com/voxai-app/voxai/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, email string, secret string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type SchemeService interface {
	CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error)
	ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	DeleteScheme(ctx context.Context, schemeID int64) error
}

// ChatService answers a single user message. Implementations are stateless
// between calls; conversation history is not kept server-side.
type ChatService interface {
	Reply(ctx context.Context, userID string, message string) (string, error)
}
