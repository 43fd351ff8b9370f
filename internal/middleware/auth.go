package middleware

import (
	"net/http"
	"strings"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"

	// SessionCookie is the cookie the login handler sets.
	SessionCookie = "shahd_session"
)

// Authenticate resolves the session token from the cookie or the
// Authorization header and stores the caller's identity in the request
// context. Requests without a valid session are rejected before any
// handler runs.
func Authenticate(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		identity, err := authService.Resolve(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// RequireAdmin gates the admin surface. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity stored by Authenticate.
func GetIdentity(c *gin.Context) services.Identity {
	identity, _ := c.MustGet(identityKey).(services.Identity)
	return identity
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
