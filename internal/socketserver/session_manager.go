package socketserver

import (
	"fmt"
	"sync"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/logger"
)

// Session is one connected client.
type Session struct {
	ID     int32
	Client identity.ClientInfo
	// Outbox is drained by the connection's write pump.
	Outbox *actor.Outbox

	// channels is guarded by the router mutex
	channels map[int32]struct{}
}

// SessionManager allocates session ids and tracks live sessions.
type SessionManager struct {
	mu       sync.RWMutex
	next     int32
	sessions map[int32]*Session
	log      *logger.Logger
}

// NewSessionManager creates an empty session manager. Ids start at 1.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[int32]*Session),
		log:      logger.Named("sessions"),
	}
}

// Register allocates a session for client.
func (m *SessionManager) Register(client identity.ClientInfo) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	s := &Session{
		ID:       m.next,
		Client:   client,
		Outbox:   actor.NewOutbox(),
		channels: make(map[int32]struct{}),
	}
	m.sessions[s.ID] = s
	m.log.Info("Session %d registered for @%s (total: %d)", s.ID, client.Username, len(m.sessions))
	return s
}

// Unregister forgets a session and closes its outbox. Commands already
// queued are still delivered by the write pump.
func (m *SessionManager) Unregister(id int32) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	total := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Outbox.Close()
	m.log.Info("Session %d unregistered (total: %d)", id, total)
}

// Get looks up a live session.
func (m *SessionManager) Get(id int32) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Decode parses an inbound frame from session s.
func (m *SessionManager) Decode(s *Session, frame []byte) (goval.Command, error) {
	cmd, err := goval.Decode(frame)
	if err != nil {
		return goval.Command{}, fmt.Errorf("session %d: %w", s.ID, err)
	}
	return cmd, nil
}
