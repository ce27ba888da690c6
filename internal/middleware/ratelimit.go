package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"ai-negotiator/pkg/response"
)

// RateLimit throttles requests per client IP with a token bucket. Old client
// entries age out of the LRU, which also resets their buckets; that is an
// acceptable trade for a bounded map.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := c.ClientIP()
		lim, ok := m.limiters.Get(key)
		if !ok {
			lim = rate.NewLimiter(m.rps, m.burst)
			m.limiters.Add(key, lim)
		}
		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
