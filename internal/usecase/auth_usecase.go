package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/domain/permissions"
	"projectdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserInput   = errors.New("invalid user payload")
	ErrInvalidUserRole    = errors.New("invalid user role")
	ErrUsernameTaken      = errors.New("username already taken")
)

// IAuthUseCase issues bearer tokens and manages user accounts.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.APIToken, entities.User, error)
	CreateUser(ctx context.Context, actor *entities.User, username, password string, role entities.Role) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenRepository
	perms  *permissions.Engine
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenRepository, perms *permissions.Engine) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, perms: perms}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.APIToken, entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.APIToken{}, entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.APIToken{}, entities.User{}, err
	}
	if user.ID == "" {
		return entities.APIToken{}, entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.APIToken{}, entities.User{}, ErrInvalidCredentials
	}

	token := entities.APIToken{Token: uuid.NewString(), UserID: user.ID}
	created, err := u.tokens.Create(ctx, token)
	if err != nil {
		return entities.APIToken{}, entities.User{}, err
	}
	log.Printf("[auth][usecase] issued token user=%s role=%s", user.Username, user.Role)
	return created, user, nil
}

func (u *AuthUseCase) CreateUser(ctx context.Context, actor *entities.User, username, password string, role entities.Role) (entities.User, error) {
	if !u.perms.Can(actor, permissions.CapabilityManageUsers) {
		return entities.User{}, ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.User{}, ErrInvalidUserInput
	}
	if !entities.ValidRole(role) {
		return entities.User{}, ErrInvalidUserRole
	}

	existing, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	return u.users.Create(ctx, user)
}
