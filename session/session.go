// Package session implements the long-lived STOMP client session: one TCP
// connection to a broker and a single dispatcher goroutine driving framing,
// dispatch, heartbeats and reconnect. The frame buffer and the socket's
// read side are handled only by that goroutine, and only it replaces
// connState; outbound frames are written by send on whichever goroutine
// calls it. The subscription and receipt registries are likewise shared:
// Subscription/Start, Unsubscribe
// and Message/Send register and deregister from whatever goroutine the
// caller invokes them on, concurrently with the dispatcher's own lookups,
// so both registries guard their map with a mutex.
package session

import (
	"context"

	"stompsession/frame"
)

// Session owns one logical connection to a STOMP broker. Per spec §9's
// re-architecture note, it splits into an immutable Config (this struct's
// cfg field) and a mutable connState swapped wholesale by reconnect — the
// Go rendition of the original's self-replacing mem::replace pattern.
type Session struct {
	cfg Config

	ctx context.Context

	events     chan sessionEvent
	generation uint64
	cs         *connState

	subs     *subscriptionRegistry
	receipts *receiptRegistry
	hooks    hookSet
	stats    statCounters

	nextTransactionID  uint32
	nextSubscriptionID uint32
	nextReceiptID      uint32
}

// New constructs a Session and immediately opens the connection via
// Config.Dial, mirroring the original's Session::new — which already
// wraps a live Connection by the time the caller can build subscriptions
// or send messages. ctx governs only this initial dial; the long-running
// ctx controlling the dispatcher loop and all later reconnects is the one
// passed to Listen.
func New(ctx context.Context, cfg Config) (*Session, error) {
	s := &Session{
		cfg:      cfg,
		ctx:      ctx,
		events:   make(chan sessionEvent, 64),
		subs:     newSubscriptionRegistry(),
		receipts: newReceiptRegistry(),
		hooks:    newHookSet(),
	}

	conn, txMs, rxMs, err := cfg.Dial(ctx)
	if err != nil {
		return nil, err
	}

	s.generation = 1
	cs := newConnState(s.generation, conn, txMs, rxMs)
	s.cs = cs
	go readLoop(cs, s.events)
	s.armTxTimer(cs)
	s.armWatchdog(cs)

	return s, nil
}

// Listen enters the dispatcher loop and blocks until ctx is cancelled or a
// fatal inbound error terminates the session: a protocol violation (§7,
// class 2), a malformed frame, or a failure to write the ACK/NACK a
// client-ack subscription requires. A read failure or a failed heartbeat
// write instead triggers the reconnect loop internally and does not cause
// Listen to return. ctx also governs every reconnect attempt made for the
// remaining lifetime of the session.
func (s *Session) Listen(ctx context.Context) error {
	s.ctx = ctx
	return s.run()
}

// Message starts a fluent SEND builder for the given destination and body.
func (s *Session) Message(destination string, body []byte) *MessageBuilder {
	return &MessageBuilder{session: s, frame: frame.Send(destination, body)}
}

// Subscription starts a fluent SUBSCRIBE builder for the given destination
// and message handler. Ack mode defaults to AckAuto.
func (s *Session) Subscription(destination string, handler MessageHandler) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		session:     s,
		destination: destination,
		ackMode:     frame.AckAuto,
		handler:     handler,
	}
}

// Unsubscribe removes the subscription from the registry and sends an
// UNSUBSCRIBE frame.
func (s *Session) Unsubscribe(id string) error {
	s.subs.remove(id)
	return s.send(frame.Unsubscribe(id))
}

// Disconnect sends a DISCONNECT frame. It does not itself tear down the
// session's goroutines or close the socket — callers that want a full
// shutdown should cancel the context passed to Listen afterward.
func (s *Session) Disconnect() error {
	return s.send(frame.Disconnect())
}

// OnError replaces the handler invoked for inbound ERROR frames.
func (s *Session) OnError(handler FrameHandler) {
	s.hooks.onError = handler
}

// OnBeforeSend replaces the hook invoked with a mutable reference to every
// outbound frame just before serialisation.
func (s *Session) OnBeforeSend(handler FrameHandlerMut) {
	s.hooks.beforeSend = handler
}

// OnBeforeReceive replaces the hook invoked with a mutable reference to
// every inbound frame just after framing and before dispatch.
func (s *Session) OnBeforeReceive(handler FrameHandlerMut) {
	s.hooks.beforeReceive = handler
}

// OutstandingReceipts returns a snapshot of receipt ids sent on the wire
// for which no RECEIPT has yet arrived.
func (s *Session) OutstandingReceipts() []string {
	return s.receipts.outstanding()
}

func (s *Session) generateTransactionID() string {
	id := s.nextTransactionID
	s.nextTransactionID++
	return itoa(id)
}

func (s *Session) generateSubscriptionID() string {
	id := s.nextSubscriptionID
	s.nextSubscriptionID++
	return itoa(id)
}

func (s *Session) generateReceiptID() string {
	id := s.nextReceiptID
	s.nextReceiptID++
	return itoa(id)
}
