// internal/interfaces/http/handlers/session.go
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/menu-storefront/internal/config"
)

const sessionCookie = "cart_session"

// getOrCreateSessionID resolves the session identity binding a browser
// to its cart: X-Session-ID header first, then the session cookie, else
// a fresh id handed back via cookie and header.
func getOrCreateSessionID(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}

	if sessionID, err := c.Cookie(sessionCookie); err == nil && sessionID != "" {
		return sessionID
	}

	sessionID := uuid.NewString()
	c.SetCookie(sessionCookie, sessionID, 86400, "/", "", false, true)
	c.Header("X-Session-ID", sessionID)
	return sessionID
}

// cartKey namespaces one session's cart in the persistence collaborator
func cartKey(cfg *config.Config, sessionID string) string {
	return fmt.Sprintf("%s:%s", cfg.Storefront.CartKeyPrefix, sessionID)
}
