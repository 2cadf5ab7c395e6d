// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/service"
	"github.com/voxai-app/voxai/internal/utils"
)

// AuthTokenHeader carries the raw signed session token on every protected
// request. There is no scheme prefix; the header value is the token itself.
const AuthTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the raw token from the x-auth-token header, validates it via
// [service.AuthService.ParseToken], and on success stores the authenticated
// user's ID in the request context under [utils.UserIDCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The header is absent ([ErrMissingAuthToken]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is malformed, tampered with or signed with a different key.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(AuthTokenHeader)
		if tokenString == "" {
			log.Err(ErrMissingAuthToken).Send()
			http.Error(w, ErrMissingAuthToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, "token expired", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
