package actor

import (
	"context"
	"errors"
	"sync"

	"github.com/goval-community/homeval/internal/goval"
)

// ErrMailboxClosed is returned when sending to, or receiving from a
// drained, closed mailbox.
var ErrMailboxClosed = errors.New("mailbox is closed")

// Mailbox is an unbounded FIFO queue with a single consumer. Send never
// blocks; Receive suspends until an item is available, the mailbox is
// closed and drained, or the context is done.
type Mailbox[T any] struct {
	mu     sync.Mutex
	queue  []T
	closed bool
	ready  chan struct{}
}

// NewMailbox creates an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ready: make(chan struct{}, 1)}
}

// Outbox is a session's outbound command queue.
type Outbox = Mailbox[goval.Command]

// NewOutbox creates an empty session outbox.
func NewOutbox() *Outbox {
	return NewMailbox[goval.Command]()
}

// Send enqueues v.
func (m *Mailbox[T]) Send(v T) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrMailboxClosed
	}
	m.queue = append(m.queue, v)
	m.mu.Unlock()

	m.wake()
	return nil
}

// Receive dequeues the oldest item.
func (m *Mailbox[T]) Receive(ctx context.Context) (T, error) {
	var zero T
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			v := m.queue[0]
			m.queue[0] = zero
			m.queue = m.queue[1:]
			m.mu.Unlock()
			return v, nil
		}
		if m.closed {
			m.mu.Unlock()
			return zero, ErrMailboxClosed
		}
		m.mu.Unlock()

		select {
		case <-m.ready:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close rejects further sends. Items already queued can still be received.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.wake()
}

// Closed reports whether Close has been called.
func (m *Mailbox[T]) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Len returns the number of queued items.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *Mailbox[T]) wake() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}
