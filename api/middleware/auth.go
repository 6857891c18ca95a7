package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// SessionResolver turns a session token into a user id.
type SessionResolver interface {
	Resolve(token string) (string, bool)
}

// Identify resolves the session cookie of the request. It never writes to
// the response.
func Identify(c *gin.Context, sessions SessionResolver, cookieName string) (string, bool) {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return sessions.Resolve(token)
}

// RequireAuth rejects requests without a live session and stores the
// session's user id for CurrentUserID.
func RequireAuth(sessions SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := Identify(c, sessions, cookieName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the user id stored by RequireAuth.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
