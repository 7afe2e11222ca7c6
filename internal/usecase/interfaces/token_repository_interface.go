package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// ITokenRepository issues bearer tokens and resolves them back to users.
// It is the token-verification collaborator behind the auth middleware.
type ITokenRepository interface {
	Create(ctx context.Context, t entities.APIToken) (entities.APIToken, error)
	// GetUserByToken resolves a bearer token to its user. An unknown token
	// yields a zero-ID user, not an error.
	GetUserByToken(ctx context.Context, token string) (entities.User, error)
}
