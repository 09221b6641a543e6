package middleware

import (
	"net/http"

	"quizhub-backend/internal/dto"
	"quizhub-backend/internal/model"

	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// Identity reads the caller's identity from trusted proxy headers. The edge
// (reverse proxy or auth gateway) verifies the session and forwards these; the
// API itself never sees credentials.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader("X-User-Id")
		if uid != "" {
			c.Set(userKey, model.User{
				UID:     uid,
				Name:    c.GetHeader("X-User-Name"),
				Email:   c.GetHeader("X-User-Email"),
				IsAdmin: c.GetHeader("X-User-Admin") == "true",
			})
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by Identity, if any.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// RequireUser rejects unauthenticated requests.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin hides the admin surface from non-admins. The response is a
// plain 404 so the routes are indistinguishable from missing ones.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.Next()
	}
}
