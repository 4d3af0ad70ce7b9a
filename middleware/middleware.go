// Package middleware implements the onion model middleware chain for
// subscription message handlers.
//
// A handler registered on a subscription can be wrapped with cross-cutting
// concerns (logging, timeout, rate limiting) without the handler itself
// knowing about them.
//
// Onion model execution order:
//
//	Chain(A, B, C)(handler)  →  A(B(C(handler)))
//
//	Dispatch: A.before → B.before → C.before → handler
//	Return:   handler → C.after → B.after → A.after
//
// Each middleware can:
//   - Do pre-processing (before calling next)
//   - Call next(ctx, frame) to pass to the next layer
//   - Do post-processing (after next returns)
//   - Short-circuit by returning early without calling next (e.g., rate limiting)
package middleware

import (
	"context"

	"stompsession/frame"
)

// HandlerFunc is the signature shared by a subscription's business handler
// and every middleware-wrapped handler built on top of it. It receives the
// inbound MESSAGE frame and returns the Ack/Nack decision the session
// should act on.
type HandlerFunc func(ctx context.Context, msg *frame.Frame) frame.AckOrNack

// Middleware takes a handler and returns a new handler that wraps it.
// This is the decorator pattern — each middleware adds behavior around the next handler.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes multiple middlewares into a single middleware.
// It builds the chain from right to left so that the first middleware in the list
// is the outermost layer (executed first on dispatch, last on return).
//
// Example:
//
//	chain := Chain(LoggingMiddleware(), TimeOutMiddleware(time.Second))
//	handler := chain(businessHandler)
//	// Execution: Logging → Timeout → businessHandler → Timeout → Logging
func Chain(middlewares ...Middleware) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		// Build from right to left: wrap innermost first
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
