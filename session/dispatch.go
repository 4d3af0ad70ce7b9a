package session

import "stompsession/frame"

// dispatch routes one inbound frame by command, per spec §4.6. A non-nil
// error is a protocol violation, or ErrConnectionLost when writing an
// ACK/NACK fails, and is fatal to the session — the dispatcher loop
// propagates it out of Listen. ERROR frames are not fatal:
// they invoke the error hook and dispatch returns normally, matching the
// original's `"ERROR" => return self.error_callback.on_frame(&frame)`,
// which only returns from the dispatch call, not from the reactor.
func (s *Session) dispatch(f *frame.Frame) error {
	switch f.Command {
	case frame.CmdError:
		s.hooks.onError(f)
		return nil
	case frame.CmdReceipt:
		return s.dispatchReceipt(f)
	default:
		return s.dispatchMessage(f)
	}
}

func (s *Session) dispatchReceipt(f *frame.Frame) error {
	receiptID, ok := f.ReceiptId()
	if !ok {
		return ErrMissingReceiptID
	}
	handler, ok := s.receipts.remove(receiptID)
	if !ok {
		return ErrUnknownReceipt
	}
	handler(f)
	return nil
}

// dispatchMessage handles any command other than ERROR/RECEIPT — in
// practice always MESSAGE. Tie-break per spec §4.6: when both the
// subscription header and the ack header are missing, the subscription
// lookup error surfaces first, since it is checked first below.
func (s *Session) dispatchMessage(f *frame.Frame) error {
	subID, ok := f.Subscription()
	if !ok {
		return ErrMissingSubscriptionHdr
	}

	sub, ok := s.subs.get(subID)
	if !ok {
		return ErrUnknownSubscription
	}

	ackMode := sub.ackMode
	decision := sub.handler(s.ctx, f)

	if ackMode == frame.AckAuto {
		return nil
	}

	ackID, ok := f.Ack()
	if !ok {
		return ErrMissingAckHeader
	}

	var ackFrame *frame.Frame
	if decision == frame.Ack {
		ackFrame = frame.AckFrame(ackID)
	} else {
		ackFrame = frame.NackFrame(ackID)
	}

	if err := s.send(ackFrame); err != nil {
		return err
	}
	return nil
}
