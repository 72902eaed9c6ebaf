package middleware

import (
	"net/http"

	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware guarantees every storefront request carries a
// session id: an existing valid cookie is reused, anything else gets a
// freshly minted id set back on the response.
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL.Seconds())

	return func(c *gin.Context) {
		var sessionID uuid.UUID

		if raw, err := c.Cookie(cfg.CookieName); err == nil {
			sessionID, _ = uuid.Parse(raw)
		}

		if sessionID == uuid.Nil {
			sessionID = uuid.New()
		}

		// Refresh on every request so the cookie lifetime slides with
		// the server-side TTL.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sessionID.String(), maxAge, "/", "", cfg.Secure, true)

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}
