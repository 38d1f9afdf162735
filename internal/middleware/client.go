package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nutricoach/pkg/log"
)

// RequestID tags each request with an id, reusing an inbound X-Request-ID.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// ClientID identifies the browser by a long-lived cookie, minting a uuid
// on first contact. The id namespaces settings, profile and conversation.
func (m Middleware) ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.cfg.ClientCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     m.cfg.ClientCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(clientCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   m.cfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(ctxKeyClientID, id)
		c.Request = c.Request.WithContext(log.WithClientID(c.Request.Context(), id))
		c.Next()
	}
}

// GetClientID returns the id set by ClientID, or "".
func GetClientID(c *gin.Context) string {
	return c.GetString(ctxKeyClientID)
}
