package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"multi-agent-code-assistant/pkg/response"
)

type clientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (cl *clientLimiter) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	limiter, ok := cl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit returns a per-client-IP token bucket limiter. Requests over the
// configured rate get 429. A zero requests-per-minute config disables the
// middleware.
func (m Middleware) RateLimit() gin.HandlerFunc {
	rpm := m.config.RateLimit.RequestsPerMin
	if rpm <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := m.config.RateLimit.Burst
	if burst <= 0 {
		burst = rpm
	}

	cl := &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(rpm) / 60.0),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
