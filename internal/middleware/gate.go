package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutricoach/pkg/response"
)

// AccessGate requires the shared access token when one is configured. A
// valid ?token= sets the access cookie so later requests need only the cookie.
func (m Middleware) AccessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.AccessToken == "" {
			c.Next()
			return
		}
		if _, ok := exemptPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		if q := c.Query(m.cfg.AccessQuery); q != "" && m.tokenMatches(q) {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     m.cfg.AccessCookie,
				Value:    q,
				Path:     "/",
				MaxAge:   int(accessCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			c.Next()
			return
		}

		if v, err := c.Cookie(m.cfg.AccessCookie); err == nil && m.tokenMatches(v) {
			c.Next()
			return
		}

		m.l.Warn(c.Request.Context(), "access denied", "path", c.Request.URL.Path, "ip", c.ClientIP())
		response.Unauthorized(c)
	}
}

func (m Middleware) tokenMatches(v string) bool {
	return subtle.ConstantTimeCompare([]byte(v), []byte(m.cfg.AccessToken)) == 1
}
