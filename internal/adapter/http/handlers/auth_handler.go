package handlers

import (
	"errors"
	request "projectdesk/internal/adapter/http/dto/request"
	response "projectdesk/internal/adapter/http/dto/response"
	"projectdesk/internal/adapter/http/middleware"
	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase"
	"projectdesk/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
	errInvalidUserPayload  = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
)

// AuthHandler handles login and user administration.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login exchanges credentials for a bearer token. This is the only mutating
// endpoint served without authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.Success(response.FromLogin(token, user)))
}

// CreateUser provisions an account. Requires the manage_users capability.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.CreateUser(c.Request.Context(), middleware.CurrentUser(c), payload.Username, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.FromUser(user)))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidUserInput), errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
