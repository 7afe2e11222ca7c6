package interfaces

import (
	"context"

	"projectdesk/internal/domain/entities"
)

// IUserRepository abstracts relational persistence for User.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}
