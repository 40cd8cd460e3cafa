package replspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTimeout      = errors.New("replspace request timed out")
	ErrUnknownNonce = errors.New("unknown or expired nonce")
)

type entry struct {
	reply    chan Reply
	deadline time.Time
}

// Table maps nonces to one-shot reply slots.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Pending is a request waiting for its reply.
type Pending struct {
	Nonce string

	table *Table
	entry *entry
}

// Create registers a new nonce that expires after timeout.
func (t *Table) Create(timeout time.Duration) *Pending {
	nonce := uuid.NewString()
	e := &entry{
		reply:    make(chan Reply, 1),
		deadline: t.now().Add(timeout),
	}

	t.mu.Lock()
	t.entries[nonce] = e
	t.mu.Unlock()

	return &Pending{Nonce: nonce, table: t, entry: e}
}

// Resolve delivers reply to the request waiting on nonce. Each nonce can be
// resolved once.
func (t *Table) Resolve(nonce string, reply Reply) error {
	t.mu.Lock()
	e, ok := t.entries[nonce]
	delete(t.entries, nonce)
	t.mu.Unlock()

	if !ok {
		return ErrUnknownNonce
	}
	e.reply <- reply
	return nil
}

// Evict drops expired entries and returns how many were removed.
func (t *Table) Evict() int {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for nonce, e := range t.entries {
		if now.After(e.deadline) {
			delete(t.entries, nonce)
			n++
		}
	}
	return n
}

// Len returns the number of pending nonces.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Run evicts expired entries every interval until ctx is done.
func (t *Table) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Evict()
		}
	}
}

func (t *Table) remove(nonce string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, nonce)
}

// Wait blocks until the reply arrives, the deadline passes or ctx is done.
// On timeout or cancellation the nonce is evicted.
func (p *Pending) Wait(ctx context.Context) (Reply, error) {
	timer := time.NewTimer(time.Until(p.entry.deadline))
	defer timer.Stop()

	select {
	case r := <-p.entry.reply:
		return r, nil
	case <-timer.C:
		p.table.remove(p.Nonce)
		return Reply{}, ErrTimeout
	case <-ctx.Done():
		p.table.remove(p.Nonce)
		return Reply{}, ctx.Err()
	}
}

// Cancel evicts a request that will never be waited on.
func (p *Pending) Cancel() {
	p.table.remove(p.Nonce)
}
