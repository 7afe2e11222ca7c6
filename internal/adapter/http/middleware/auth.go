package middleware

import (
	"log"
	"net/http"
	"strings"

	"projectdesk/internal/domain/entities"
	"projectdesk/internal/usecase/interfaces"
	"projectdesk/pkg"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHORIZED", "unauthorized", http.StatusUnauthorized)

// RequireUser resolves the Authorization bearer token to a user and aborts
// with the 401 envelope when the token is missing, malformed or unknown.
func RequireUser(tokens interfaces.ITokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		user, err := tokens.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token lookup failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError).ToHTTPError())
			return
		}
		if user.ID == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// CurrentUser returns the authenticated user set by RequireUser, or nil on
// routes that bypass it.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}
