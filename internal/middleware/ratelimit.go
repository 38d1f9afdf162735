package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"nutricoach/pkg/response"
)

const (
	maxLimiterSources = 1000
	limiterTTL        = 5 * time.Minute
)

// RateLimit throttles per client IP. A non-positive limit disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil || m.limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		m.l.Warn(c.Request.Context(), "rate limit exceeded", "ip", c.ClientIP())
		response.TooManyRequests(c)
	}
}

// rateLimiter keeps one token bucket per source, evicted after limiterTTL.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimiterSources, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
