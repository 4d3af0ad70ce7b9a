package session

import "sync"

// receiptRegistry maps a pending receipt id to the one-shot handler
// registered when the receipt-bearing frame was sent. Like
// subscriptionRegistry, insert is called from a caller goroutine (Send,
// Start) while remove runs on the dispatcher goroutine as RECEIPT frames
// arrive — mu protects the map across that split.
type receiptRegistry struct {
	mu   sync.Mutex
	byID map[string]FrameHandler
}

func newReceiptRegistry() *receiptRegistry {
	return &receiptRegistry{byID: make(map[string]FrameHandler)}
}

func (r *receiptRegistry) insert(id string, handler FrameHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[id] = handler
}

func (r *receiptRegistry) remove(id string) (FrameHandler, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	handler, ok := r.byID[id]
	if ok {
		delete(r.byID, id)
	}
	return handler, ok
}

// outstanding returns a snapshot of currently pending receipt ids, used by
// tests and for shutdown diagnostics.
func (r *receiptRegistry) outstanding() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}
