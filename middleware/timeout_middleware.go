package middleware

import (
	"context"
	"log"
	"time"

	"stompsession/frame"
)

// TimeOutMiddleware enforces a maximum duration for a subscription handler.
// If the handler doesn't complete within the timeout, the message is
// Nack'd immediately.
//
// Implementation:
//  1. Create a context with timeout (ctx.Done() fires when timeout expires)
//  2. Run the next handler in a goroutine, sending its result to a channel
//  3. Select between the result channel and ctx.Done()
//
// Note: the handler goroutine is NOT cancelled — it continues running in the background.
// The timeout only controls when the dispatcher gives up waiting. For true cancellation,
// the handler must check ctx.Done() internally.
func TimeOutMiddleware(timeout time.Duration) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, msg *frame.Frame) frame.AckOrNack {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			done := make(chan frame.AckOrNack, 1) // Buffered: prevent goroutine leak if timeout fires
			go func() {
				done <- next(ctx, msg)
			}()

			select {
			case decision := <-done:
				return decision
			case <-ctx.Done():
				dest, _ := msg.Get(frame.HdrDestination)
				log.Printf("handler timed out after %s, destination: %s", timeout, dest)
				return frame.Nack
			}
		}
	}
}
