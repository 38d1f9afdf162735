package middleware

import "time"

const (
	DefaultClientCookie = "nutri_client"
	DefaultAccessCookie = "nutri_access"
	DefaultAccessQuery  = "token"

	HeaderRequestID = "X-Request-ID"

	clientCookieMaxAge = 365 * 24 * time.Hour
	accessCookieMaxAge = 30 * 24 * time.Hour

	ctxKeyClientID  = "client_id"
	ctxKeyRequestID = "request_id"
)

// exemptPaths bypass the access gate so probes keep working.
var exemptPaths = map[string]struct{}{
	"/health": {},
	"/ready":  {},
	"/live":   {},
}
