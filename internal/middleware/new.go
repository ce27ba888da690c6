package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"ai-negotiator/pkg/log"
)

// limiterCacheSize bounds the per-client limiter map so hostile clients
// cannot grow it without bound.
const limiterCacheSize = 10000

type Middleware struct {
	l        log.Logger
	limiters *lru.Cache[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// New creates the middleware set. rps <= 0 disables rate limiting.
func New(l log.Logger, rps float64, burst int) (Middleware, error) {
	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		return Middleware{}, err
	}
	if burst <= 0 {
		burst = 1
	}
	return Middleware{
		l:        l,
		limiters: limiters,
		rps:      rate.Limit(rps),
		burst:    burst,
	}, nil
}
