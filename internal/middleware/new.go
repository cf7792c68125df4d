package middleware

import (
	"golang.org/x/time/rate"

	"smart-task-parser/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. ratePerMin caps parse requests
// across all clients; zero or negative disables limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60), ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
