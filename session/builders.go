package session

import (
	"strconv"

	"stompsession/frame"
	"stompsession/middleware"
)

// MessageBuilder is the fluent wrapper returned by Session.Message. Per
// spec §9's builder-lifetime note, it holds a pointer back to the session
// for the duration of the chain and must be consumed by Send — Go has no
// borrow checker to enforce this, so it is simply documented.
type MessageBuilder struct {
	session *Session
	frame   *frame.Frame
	receipt FrameHandler
}

// WithHeader adds a header to the outbound SEND frame.
func (b *MessageBuilder) WithHeader(key, value string) *MessageBuilder {
	b.frame.Append(key, value)
	return b
}

// WithReceipt requests a RECEIPT for this send and registers handler to be
// invoked once it arrives.
func (b *MessageBuilder) WithReceipt(handler FrameHandler) *MessageBuilder {
	b.receipt = handler
	return b
}

// Send transmits the built SEND frame. If a receipt was requested, the
// session allocates a receipt id, stores the handler, and splices the
// receipt: header in right after destination — frame.Send already
// appended content-length, and the wire order destination/receipt/
// content-length is what a receiving broker expects a hand-built client
// to produce.
func (b *MessageBuilder) Send() error {
	if b.receipt != nil {
		id := b.session.generateReceiptID()
		b.session.receipts.insert(id, b.receipt)
		b.frame.InsertAfter(frame.HdrDestination, frame.HdrReceipt, id)
	}
	return b.session.send(b.frame)
}

// SubscriptionBuilder is the fluent wrapper returned by Session.Subscription.
type SubscriptionBuilder struct {
	session     *Session
	destination string
	ackMode     frame.AckMode
	headers     []frame.Header
	handler     MessageHandler
	receipt     FrameHandler
}

// WithAckMode sets the subscription's ack mode. Defaults to AckAuto.
func (b *SubscriptionBuilder) WithAckMode(mode frame.AckMode) *SubscriptionBuilder {
	b.ackMode = mode
	return b
}

// WithHeader adds an extra header to the SUBSCRIBE frame, replayed
// verbatim (minus any receipt: header) on reconnect.
func (b *SubscriptionBuilder) WithHeader(key, value string) *SubscriptionBuilder {
	b.headers = append(b.headers, frame.Header{Key: key, Value: value})
	return b
}

// WithReceipt requests a RECEIPT for the SUBSCRIBE frame itself.
func (b *SubscriptionBuilder) WithReceipt(handler FrameHandler) *SubscriptionBuilder {
	b.receipt = handler
	return b
}

// WithMiddleware wraps the handler in the given middleware chain, outermost
// first — the same onion order middleware.Chain documents. Logging,
// timeout and rate-limiting concerns attach here instead of inside the
// business handler itself.
func (b *SubscriptionBuilder) WithMiddleware(mw ...middleware.Middleware) *SubscriptionBuilder {
	wrapped := middleware.Chain(mw...)(middleware.HandlerFunc(b.handler))
	b.handler = MessageHandler(wrapped)
	return b
}

// Start registers the subscription and sends the SUBSCRIBE frame,
// returning the generated subscription id.
func (b *SubscriptionBuilder) Start() (string, error) {
	id := b.session.generateSubscriptionID()

	sub := &subscription{
		id:          id,
		destination: b.destination,
		ackMode:     b.ackMode,
		headers:     b.headers,
		handler:     b.handler,
	}
	if err := b.session.subs.insert(sub); err != nil {
		return "", err
	}

	f := frame.Subscribe(id, b.destination, b.ackMode)
	for _, h := range b.headers {
		f.Append(h.Key, h.Value)
	}
	if b.receipt != nil {
		receiptID := b.session.generateReceiptID()
		b.session.receipts.insert(receiptID, b.receipt)
		f.Append(frame.HdrReceipt, receiptID)
	}

	if err := b.session.send(f); err != nil {
		b.session.subs.remove(id)
		return "", err
	}
	return id, nil
}

func itoa(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}
