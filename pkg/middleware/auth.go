package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailydiet/dailydiet/internal/models"
)

// UserGetter is the minimal interface the resolver depends on. A missing
// user is reported as (nil, nil).
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// UserIDKey is the context key the resolver stores the validated user id under.
const UserIDKey = "userID"

// CheckUser returns a Gin middleware resolving the session cookie to a
// known user. The cookie value is an opaque bearer token: whoever holds it
// is the user, no signature is checked. Requests without a cookie get 401,
// requests with a token for an unknown user get 404.
func CheckUser(cookieName string, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := c.Cookie(cookieName)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "create an user"})
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.Set(UserIDKey, u.ID)
		c.Next()
	}
}
