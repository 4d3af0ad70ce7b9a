package middleware

import (
	"context"
	"log"
	"time"

	"stompsession/frame"
)

// LoggingMiddleware records the destination, duration, and ack decision for
// each dispatched MESSAGE. It captures the start time before calling next,
// and logs the elapsed time after next returns.
//
// Example output:
//
//	destination: /queue/orders, duration: 42μs, ack: Ack
func LoggingMiddleware() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg *frame.Frame) frame.AckOrNack {
			start := time.Now()

			decision := next(ctx, msg)

			duration := time.Since(start)
			dest, _ := msg.Get(frame.HdrDestination)
			log.Printf("destination: %s, duration: %s, ack: %v", dest, duration, decision)
			return decision
		}
	}
}
