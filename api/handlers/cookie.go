package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (s SessionCookie) write(c *gin.Context, token string, ttl time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s SessionCookie) clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
