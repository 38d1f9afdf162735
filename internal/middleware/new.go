package middleware

import (
	"nutricoach/pkg/log"
)

// Config holds middleware settings taken from the service config.
type Config struct {
	ClientCookie    string
	CookieSecure    bool
	AccessToken     string
	AccessCookie    string
	AccessQuery     string
	RateLimitPerMin int
	CORSOrigins     []string
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.ClientCookie == "" {
		cfg.ClientCookie = DefaultClientCookie
	}
	if cfg.AccessCookie == "" {
		cfg.AccessCookie = DefaultAccessCookie
	}
	if cfg.AccessQuery == "" {
		cfg.AccessQuery = DefaultAccessQuery
	}
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
