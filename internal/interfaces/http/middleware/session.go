package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/cartigo-backend/internal/config"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a shopper session id. The id lives
// in a cookie; a new uuid is issued when the cookie is missing or empty.
// The session scopes the shopper's cart for the duration of their visit.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Storefront.SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(cfg.Storefront.SessionCookie, sessionID, cfg.Storefront.SessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id attached by the Session middleware.
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
