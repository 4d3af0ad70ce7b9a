package middleware

import (
	"context"

	"golang.org/x/time/rate"

	"stompsession/frame"
)

// RateLimitMiddleware caps how often a subscription handler is invoked,
// using the token bucket algorithm. Messages arriving faster than the
// broker-side flow can be handled are Nack'd instead of queued, so a slow
// consumer backpressures the broker via redelivery rather than building an
// unbounded in-process backlog.
//
// CRITICAL: the limiter is created in the OUTER closure (once per middleware
// creation), NOT in the inner handler function. If created per-message,
// every message would get a fresh full bucket, defeating the entire purpose
// of rate limiting.
//
// Parameters:
//   - r: token refill rate (messages per second)
//   - burst: maximum bucket size (allows this many messages in a burst)
func RateLimitMiddleware(r float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(r), burst) // Shared across all messages
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg *frame.Frame) frame.AckOrNack {
			if !limiter.Allow() {
				// No tokens available — reject immediately (short-circuit, don't call next)
				return frame.Nack
			}
			return next(ctx, msg)
		}
	}
}
