package replspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/logger"
)

// fakeHub answers requests the way a connected client would.
type fakeHub struct {
	table *Table

	mu       sync.Mutex
	sessions map[int32]int32
	sent     []Message
	targets  []int32
	answer   bool
}

func (h *fakeHub) LastSession(channel int32) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[channel]
}

func (h *fakeHub) BroadcastReplspace(session int32, msg Message) {
	h.mu.Lock()
	h.sent = append(h.sent, msg)
	h.targets = append(h.targets, session)
	answer := h.answer
	h.mu.Unlock()

	if !answer {
		return
	}
	go func() {
		switch m := msg.(type) {
		case GitHubTokenRequest:
			h.table.Resolve(m.ID, Reply{Token: "ghp_secret"})
		case OpenFileRequest:
			if m.WaitForClose {
				h.table.Resolve(m.ID, Reply{})
			}
		}
	}()
}

func TestTableResolveDeliversOnce(t *testing.T) {
	table := NewTable()
	p := table.Create(time.Second)
	assert.Equal(t, 1, table.Len())

	require.NoError(t, table.Resolve(p.Nonce, Reply{Token: "t"}))
	assert.ErrorIs(t, table.Resolve(p.Nonce, Reply{Token: "again"}), ErrUnknownNonce)

	r, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t", r.Token)
	assert.Equal(t, 0, table.Len())
}

func TestTableWaitTimesOutAndEvicts(t *testing.T) {
	table := NewTable()
	p := table.Create(20 * time.Millisecond)

	_, err := p.Wait(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, 0, table.Len())
	assert.ErrorIs(t, table.Resolve(p.Nonce, Reply{}), ErrUnknownNonce)
}

func TestTableEvictExpired(t *testing.T) {
	table := NewTable()
	now := time.Now()
	table.now = func() time.Time { return now }

	table.Create(time.Second)
	table.Create(time.Minute)

	now = now.Add(2 * time.Second)
	assert.Equal(t, 1, table.Evict())
	assert.Equal(t, 1, table.Len())
}

func TestNoncesAreUnique(t *testing.T) {
	table := NewTable()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p := table.Create(time.Second)
		assert.False(t, seen[p.Nonce])
		seen[p.Nonce] = true
	}
}

func TestGitHubTokenEndpoint(t *testing.T) {
	table := NewTable()
	hub := &fakeHub{table: table, sessions: map[int32]int32{4: 2}, answer: true}
	srv := NewServer("127.0.0.1:0", table, hub, Options{Timeout: time.Second})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/github/token?channel=4", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","token":"ghp_secret"}`, rec.Body.String())
	require.Len(t, hub.targets, 1)
	assert.Equal(t, int32(2), hub.targets[0])
}

func TestGitHubTokenTimeout(t *testing.T) {
	table := NewTable()
	hub := &fakeHub{table: table, sessions: map[int32]int32{}}
	srv := NewServer("127.0.0.1:0", table, hub, Options{Timeout: 30 * time.Millisecond})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/github/token", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"err","token":null}`, rec.Body.String())
	assert.Equal(t, []int32{0}, hub.targets)
	assert.Equal(t, 0, table.Len())
}

func TestOpenFileEndpoint(t *testing.T) {
	table := NewTable()
	hub := &fakeHub{table: table, sessions: map[int32]int32{3: 9}, answer: true}
	srv := NewServer("127.0.0.1:0", table, hub, Options{Timeout: time.Second})

	for _, wait := range []bool{false, true} {
		body, _ := json.Marshal(map[string]any{"filename": "COMMIT_EDITMSG", "waitForClose": wait, "channel": 3})
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/files/open", strings.NewReader(string(body))))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	require.Len(t, hub.sent, 2)
	first := hub.sent[0].(OpenFileRequest)
	assert.Equal(t, "COMMIT_EDITMSG", first.File)
	assert.False(t, first.WaitForClose)
	assert.NotEmpty(t, first.ID)
	assert.True(t, hub.sent[1].(OpenFileRequest).WaitForClose)
	assert.Equal(t, []int32{9, 9}, hub.targets)
}

func TestRateLimit(t *testing.T) {
	table := NewTable()
	hub := &fakeHub{table: table, answer: true}
	srv := NewServer("127.0.0.1:0", table, hub, Options{Timeout: time.Second, RateLimit: 0.001, Burst: 1})

	codes := []int{}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/github/token", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteStatusLogsEncodeFailure(t *testing.T) {
	table := NewTable()
	srv := NewServer("127.0.0.1:0", table, &fakeHub{table: table}, Options{Timeout: time.Second})
	var buf bytes.Buffer
	srv.log = logger.NewWriter(logger.LevelDebug, &buf, "replspace")

	w := brokenWriter{httptest.NewRecorder()}
	srv.writeStatus(w, http.StatusOK, statusResponse{Status: "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "Failed to write response: connection reset")
}
