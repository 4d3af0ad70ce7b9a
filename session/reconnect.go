package session

import (
	"log"

	"golang.org/x/time/rate"

	"stompsession/frame"
)

// reconnect implements spec §4.8. It is invoked from the dispatcher
// goroutine only (readLoop never calls it directly — it just reports the
// read error as an event), so it never races with dispatch or with a
// concurrent send.
//
// The backoff between failed attempts uses a golang.org/x/time/rate
// limiter instead of a bare time.Sleep: rate.NewLimiter(rate.Every(backoff), 1)
// still blocks for exactly one backoff period per attempt (burst=1 caps it
// to one token per period), but Wait is cancelable via context, so a
// Session whose Listen context is cancelled mid-backoff returns promptly
// instead of sleeping out a fixed duration it no longer needs.
func (s *Session) reconnect(dead *connState) {
	if dead != s.cs {
		return // already superseded by a later reconnect
	}

	dead.stopTimers()
	s.stats.reconnects++

	limiter := rate.NewLimiter(rate.Every(s.cfg.backoff()), 1)
	limiter.Allow() // drain the initial full bucket so the first retry still waits a full period

	for {
		conn, txMs, rxMs, err := s.cfg.Dial(s.ctx)
		if err != nil {
			log.Printf("session: reconnect failed: %v, retrying in %s", err, s.cfg.backoff())
			if waitErr := limiter.Wait(s.ctx); waitErr != nil {
				return // context cancelled; Listen is tearing down
			}
			continue
		}

		log.Printf("session: reconnected successfully")
		s.generation++
		cs := newConnState(s.generation, conn, txMs, rxMs)
		s.cs = cs
		go readLoop(cs, s.events)
		s.armTxTimer(cs)
		s.armWatchdog(cs)
		s.resubscribeAll(cs)
		return
	}
}

// resubscribeAll replays a fresh SUBSCRIBE for every entry still in the
// subscription registry, cloning each subscription's extra headers but
// stripping any receipt: header to avoid colliding with a new receipt id
// issued against the new connection.
func (s *Session) resubscribeAll(cs *connState) {
	subs := s.subs.all()
	log.Printf("session: resubscribing to %d destination(s)", len(subs))
	for _, sub := range subs {
		f := frame.Subscribe(sub.id, sub.destination, sub.ackMode)
		for _, h := range sub.headers {
			if h.Key == frame.HdrReceipt {
				continue
			}
			f.Append(h.Key, h.Value)
		}
		if err := s.send(f); err != nil {
			log.Printf("session: failed to resubscribe %s to %s: %v", sub.id, sub.destination, err)
		}
	}
}
