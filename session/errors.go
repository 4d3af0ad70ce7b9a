package session

import "errors"

// ErrConnectionLost is returned by send-path operations (message, subscribe,
// unsubscribe, disconnect, transaction frames) when the underlying transport
// has failed. The caller may retry after the background reconnect loop has
// re-established the connection; there is no more specific transport error
// surfaced, per the design's single opaque "connection lost" result.
var ErrConnectionLost = errors.New("session: connection lost")

// Protocol violations. Any of these except ErrDuplicateSubscriptionID
// terminates Listen — they indicate broker/client desynchronisation that
// cannot be safely recovered from. ErrDuplicateSubscriptionID is returned
// by SubscriptionBuilder.Start instead.
var (
	ErrMissingReceiptID        = errors.New("session: RECEIPT frame missing receipt-id header")
	ErrUnknownReceipt          = errors.New("session: RECEIPT frame references unknown receipt id")
	ErrMissingSubscriptionHdr  = errors.New("session: frame missing subscription header")
	ErrUnknownSubscription     = errors.New("session: frame references unknown subscription")
	ErrMissingAckHeader        = errors.New("session: message requires ack header but none present")
	ErrDuplicateSubscriptionID = errors.New("session: subscription id already registered")
)
