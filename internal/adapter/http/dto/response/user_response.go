package response

import (
	"time"

	"projectdesk/internal/domain/entities"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// LoginResponse pairs the issued bearer token with the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromLogin(t entities.APIToken, u entities.User) LoginResponse {
	return LoginResponse{Token: t.Token, User: FromUser(u)}
}
