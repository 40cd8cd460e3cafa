package proc

import (
	"sync"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/logger"
)

// fanoutWriter copies PTY output to every subscribed session and keeps a
// bounded scrollback for sessions that join later.
type fanoutWriter struct {
	channel int32
	log     *logger.Logger

	mu          sync.Mutex
	cancelled   bool
	scrollback  []byte
	subscribers map[int32]*actor.Outbox
}

func newFanoutWriter(channel int32, log *logger.Logger) *fanoutWriter {
	return &fanoutWriter{
		channel:     channel,
		log:         log,
		subscribers: make(map[int32]*actor.Outbox),
	}
}

func (f *fanoutWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancelled {
		return 0, ErrCancelled
	}

	f.scrollback = append(f.scrollback, p...)
	if over := len(f.scrollback) - consts.MaxScrollback; over > 0 {
		f.scrollback = append(f.scrollback[:0], f.scrollback[over:]...)
	}

	chunk := goval.Output(p)
	for session, box := range f.subscribers {
		cmd := goval.Command{Channel: f.channel, Session: session, Body: chunk}
		if err := box.Send(cmd); err != nil {
			f.log.Warn("failed to send output to session %d: %v", session, err)
		}
	}
	return len(p), nil
}

// join replays the scrollback to the session, then subscribes it. Both
// happen under the lock so no chunk is missed or duplicated.
func (f *fanoutWriter) join(session int32, box *actor.Outbox) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.scrollback) > 0 {
		cmd := goval.Command{Channel: f.channel, Session: session, Body: goval.Output(f.scrollback)}
		if err := box.Send(cmd); err != nil {
			f.log.Warn("failed to send scrollback to session %d: %v", session, err)
		}
	}
	f.subscribers[session] = box
}

func (f *fanoutWriter) leave(session int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subscribers, session)
}

func (f *fanoutWriter) sessions() []int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int32, 0, len(f.subscribers))
	for s := range f.subscribers {
		out = append(out, s)
	}
	return out
}

func (f *fanoutWriter) snapshot() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.scrollback...)
}

func (f *fanoutWriter) cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = true
}

// emitWriter turns a plain output stream into bodies handed to emit.
type emitWriter struct {
	mu        sync.Mutex
	cancelled bool
	wrap      func([]byte) goval.Body
	emit      func(goval.Body)
}

func (e *emitWriter) Write(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancelled {
		return 0, ErrCancelled
	}
	e.emit(e.wrap(p))
	return len(p), nil
}

func (e *emitWriter) cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelled = true
}
