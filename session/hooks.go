package session

import (
	"context"
	"log"

	"stompsession/frame"
)

// FrameHandler observes a frame without mutating it — used for the error
// hook and for one-shot receipt handlers.
type FrameHandler func(f *frame.Frame)

// FrameHandlerMut observes a frame with the ability to mutate it before it
// is sent or after it is received — used for the before-send and
// before-receive hooks (e.g. to attach a custom header to every outbound
// frame).
type FrameHandlerMut func(f *frame.Frame)

// MessageHandler is invoked for every inbound MESSAGE delivered to a
// subscription. Its return value controls whether the session emits an
// ACK or NACK when the subscription's ack mode requires one. ctx is the
// session's Listen context, threaded through so a handler wrapped with
// middleware.Chain can honor cancellation/deadlines the same way the
// middleware package's own HandlerFunc does — the two signatures match
// exactly, so a SubscriptionBuilder.WithMiddleware chain converts directly
// to a MessageHandler with no adapter glue.
type MessageHandler func(ctx context.Context, f *frame.Frame) frame.AckOrNack

func defaultErrorHandler(f *frame.Frame) {
	body := string(f.Body)
	log.Printf("session: ERROR received: %s", body)
}

func defaultBeforeSendHandler(f *frame.Frame) {
	log.Printf("session: sending %s", f.Command)
}

func defaultBeforeReceiveHandler(f *frame.Frame) {
	log.Printf("session: received %s", f.Command)
}

// hookSet bundles the session's three replaceable callbacks. Stored by
// value inside Session and swapped one field at a time by OnError,
// OnBeforeSend, and OnBeforeReceive — the Go rendition of the spec's
// "polymorphic capability, freely replaceable at runtime" design note.
type hookSet struct {
	onError       FrameHandler
	beforeSend    FrameHandlerMut
	beforeReceive FrameHandlerMut
}

func newHookSet() hookSet {
	return hookSet{
		onError:       defaultErrorHandler,
		beforeSend:    defaultBeforeSendHandler,
		beforeReceive: defaultBeforeReceiveHandler,
	}
}
