package session

import (
	"errors"

	"stompsession/frame"
)

// ErrTransactionDone is returned when a Transaction is used after it has
// already been committed or aborted, mirroring djoyahoy-stomp's
// ErrTxDone.
var ErrTransactionDone = errors.New("session: transaction has already been committed or aborted")

// Transaction scopes a sequence of SEND/ACK/NACK frames to a single
// transaction: header, committed or rolled back atomically by the broker.
// Supplements spec.md's one-line "begin_transaction() -> Transaction"
// mention with the full Send/Ack/Nack surface from the original Rust
// source and djoyahoy-stomp's Tx.
type Transaction struct {
	id      string
	session *Session
	done    bool
}

// BeginTransaction allocates a transaction id and sends a BEGIN frame.
func (s *Session) BeginTransaction() (*Transaction, error) {
	id := s.generateTransactionID()
	tx := &Transaction{id: id, session: s}
	if err := s.send(frame.Begin(id)); err != nil {
		return nil, err
	}
	return tx, nil
}

// Send sends a message scoped to this transaction.
func (t *Transaction) Send(destination string, body []byte) error {
	if t.done {
		return ErrTransactionDone
	}
	f := frame.Send(destination, body)
	f.Append(frame.HdrTransaction, t.id)
	return t.session.send(f)
}

// Ack acknowledges a message scoped to this transaction.
func (t *Transaction) Ack(ackID string) error {
	if t.done {
		return ErrTransactionDone
	}
	f := frame.AckFrame(ackID)
	f.Append(frame.HdrTransaction, t.id)
	return t.session.send(f)
}

// Nack negatively acknowledges a message scoped to this transaction.
func (t *Transaction) Nack(ackID string) error {
	if t.done {
		return ErrTransactionDone
	}
	f := frame.NackFrame(ackID)
	f.Append(frame.HdrTransaction, t.id)
	return t.session.send(f)
}

// Commit commits the transaction. The transaction cannot be used
// afterward.
func (t *Transaction) Commit() error {
	if t.done {
		return ErrTransactionDone
	}
	t.done = true
	return t.session.send(frame.Commit(t.id))
}

// Abort rolls back the transaction. Safe to call after Commit (e.g. in a
// defer) — unlike Commit, it does not return ErrTransactionDone, matching
// djoyahoy-stomp's Tx.Abort.
func (t *Transaction) Abort() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.session.send(frame.Abort(t.id))
}
