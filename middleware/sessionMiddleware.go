package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-table-order/helpers"
)

const (
	sessionCookie  = "cart_session"
	SessionIDKey   = "session_id"
	cookieLifetime = 24 * 60 * 60
)

// CartSession attaches a cart-session id to the request. A missing or
// invalid cookie gets a fresh session instead of an error: sessions are
// cart identity, not authentication.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			if claims, err := helpers.ValidateSessionToken(cookie); err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.NewString()
		token, err := helpers.GenerateSessionToken(sessionID, c.Query("table"))
		if err == nil {
			c.SetCookie(sessionCookie, token, cookieLifetime, "/", "", false, true)
		}
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// SessionID returns the cart-session id set by CartSession.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
