package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/combat-companion/internal/pkg/idgen"
)

const sessionContextKey = "session_id"

// sessionMiddleware makes sure every request carries a session cookie.
// Missing or malformed cookies get a fresh ID.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	id, err := c.Cookie(h.sessionCookie)
	if err != nil || !idgen.Valid(h.sessionPrefix, id) {
		id = idgen.NewUUID(h.sessionPrefix).Generate()
	}

	// refresh the cookie so its lifetime tracks the stored session
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCookie, id, int(h.sessionMaxAge.Seconds()), "/", "", h.secureCookies, true)

	c.Set(sessionContextKey, id)
	c.Next()
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
