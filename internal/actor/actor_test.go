package actor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
)

// recordingService records hook calls and echoes Input bodies back.
type recordingService struct {
	BaseService

	mu        sync.Mutex
	calls     []string
	shutdowns int
	panicOn   string
}

func (s *recordingService) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *recordingService) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingService) Open(*ChannelInfo) error {
	s.record("open")
	return nil
}

func (s *recordingService) Attach(_ *ChannelInfo, client identity.ClientInfo, _ int32) (goval.Body, error) {
	s.record("attach:" + client.Username)
	return &goval.Toast{Text: "hi " + client.Username}, nil
}

func (s *recordingService) Detach(*ChannelInfo, int32) error {
	s.record("detach")
	return nil
}

func (s *recordingService) Message(info *ChannelInfo, cmd goval.Command, session int32) (goval.Body, error) {
	in, ok := cmd.Body.(goval.Input)
	if !ok {
		return nil, errors.New("unsupported")
	}
	s.record("message:" + string(in))
	if string(in) == s.panicOn {
		panic("boom")
	}
	if string(in) == "broadcast" {
		return nil, info.Send(goval.Output("all"), EveryoneExcept(session))
	}
	return goval.Output(in), nil
}

func (s *recordingService) Shutdown(*ChannelInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdowns++
	return nil
}

func receive(t *testing.T, box *Outbox) goval.Command {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cmd, err := box.Receive(ctx)
	require.NoError(t, err)
	return cmd
}

func assertEmpty(t *testing.T, box *Outbox) {
	t.Helper()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, box.Len())
}

func startChannel(t *testing.T, svc Service) *Channel {
	t.Helper()
	ch := NewChannel(ServiceMetadata{ID: 7, Service: "test"}, svc, nil)
	ch.Start()
	t.Cleanup(func() {
		_ = ch.Send(Shutdown{})
		<-ch.Done()
	})
	return ch
}

func TestMailboxFIFOAndClose(t *testing.T) {
	box := NewMailbox[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, box.Send(i))
	}
	box.Close()
	assert.ErrorIs(t, box.Send(100), ErrMailboxClosed)

	ctx := context.Background()
	for i := 0; i < 100; i++ {
		v, err := box.Receive(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	_, err := box.Receive(ctx)
	assert.ErrorIs(t, err, ErrMailboxClosed)
}

func TestMailboxReceiveBlocksUntilSend(t *testing.T) {
	box := NewMailbox[string]()
	got := make(chan string, 1)
	go func() {
		v, err := box.Receive(context.Background())
		if err == nil {
			got <- v
		}
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, box.Send("x"))

	select {
	case v := <-got:
		assert.Equal(t, "x", v)
	case <-time.After(time.Second):
		t.Fatal("receiver was not woken")
	}
}

func TestMailboxReceiveHonoursContext(t *testing.T) {
	box := NewMailbox[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := box.Receive(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChannelAttachReplyIsUnicast(t *testing.T) {
	svc := &recordingService{}
	ch := startChannel(t, svc)

	a, b := NewOutbox(), NewOutbox()
	require.NoError(t, ch.Send(Attach{Session: 1, Client: identity.ClientInfo{Username: "a"}, Mailbox: a}))
	require.NoError(t, ch.Send(Attach{Session: 2, Client: identity.ClientInfo{Username: "b"}, Mailbox: b}))

	cmd := receive(t, a)
	assert.Equal(t, int32(7), cmd.Channel)
	assert.Equal(t, int32(1), cmd.Session)
	assert.Equal(t, &goval.Toast{Text: "hi a"}, cmd.Body)

	cmd = receive(t, b)
	assert.Equal(t, int32(2), cmd.Session)
	assertEmpty(t, a)
}

func TestChannelMessageReplyCarriesRef(t *testing.T) {
	ch := startChannel(t, &recordingService{})

	box := NewOutbox()
	require.NoError(t, ch.Send(Attach{Session: 3, Mailbox: box}))
	receive(t, box)

	require.NoError(t, ch.Send(IPC{Session: 3, Command: goval.Command{Channel: 7, Ref: "r1", Body: goval.Input("ping")}}))
	cmd := receive(t, box)
	assert.Equal(t, "r1", cmd.Ref)
	assert.Equal(t, goval.Output("ping"), cmd.Body)
	assert.Equal(t, int32(3), cmd.Session)
}

func TestChannelEveryoneExceptSkipsSender(t *testing.T) {
	ch := startChannel(t, &recordingService{})

	a, b := NewOutbox(), NewOutbox()
	require.NoError(t, ch.Send(Attach{Session: 1, Mailbox: a}))
	require.NoError(t, ch.Send(Attach{Session: 2, Mailbox: b}))
	receive(t, a)
	receive(t, b)

	require.NoError(t, ch.Send(IPC{Session: 1, Command: goval.Command{Body: goval.Input("broadcast")}}))

	cmd := receive(t, b)
	assert.Equal(t, goval.Output("all"), cmd.Body)
	assert.Equal(t, int32(-1), cmd.Session)
	assertEmpty(t, a)
}

func TestChannelSurvivesHookPanicAndErrors(t *testing.T) {
	svc := &recordingService{panicOn: "explode"}
	ch := startChannel(t, svc)

	box := NewOutbox()
	require.NoError(t, ch.Send(Attach{Session: 1, Mailbox: box}))
	receive(t, box)

	require.NoError(t, ch.Send(IPC{Session: 1, Command: goval.Command{Body: goval.Input("explode")}}))
	require.NoError(t, ch.Send(IPC{Session: 1, Command: goval.Command{Body: &goval.Ping{}}}))
	require.NoError(t, ch.Send(IPC{Session: 1, Command: goval.Command{}}))
	require.NoError(t, ch.Send(IPC{Session: 1, Command: goval.Command{Body: goval.Input("after")}}))

	cmd := receive(t, box)
	assert.Equal(t, goval.Output("after"), cmd.Body)
	assert.Equal(t, StateRunning, ch.State())
}

func TestChannelDetachStopsDelivery(t *testing.T) {
	svc := &recordingService{}
	ch := startChannel(t, svc)

	a, b := NewOutbox(), NewOutbox()
	require.NoError(t, ch.Send(Attach{Session: 1, Mailbox: a}))
	require.NoError(t, ch.Send(Attach{Session: 2, Mailbox: b}))
	receive(t, a)
	receive(t, b)

	require.NoError(t, ch.Send(Detach{Session: 1}))
	require.NoError(t, ch.Send(IPC{Session: 2, Command: goval.Command{Body: goval.Input("broadcast")}}))
	assertEmpty(t, a)
	assert.Eventually(t, func() bool { return len(ch.Info().Sessions()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestChannelShutdownRunsHookOnce(t *testing.T) {
	svc := &recordingService{}
	ch := NewChannel(ServiceMetadata{ID: 1, Service: "test"}, svc, nil)
	ch.Start()

	require.NoError(t, ch.Send(Shutdown{}))
	select {
	case <-ch.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not terminate")
	}

	assert.Equal(t, StateTerminated, ch.State())
	assert.ErrorIs(t, ch.Send(Shutdown{}), ErrMailboxClosed)
	assert.Equal(t, 1, svc.shutdowns)
	assert.Equal(t, []string{"open"}, svc.Calls())
}

type sinkFunc func(string) error

func (f sinkFunc) Write(s string) error { return f(s) }

type registry struct {
	mu    sync.Mutex
	sinks map[int32]InputSink
}

func (r *registry) RegisterProcess(channel int32, sink InputSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[channel] = sink
}

func (r *registry) UnregisterProcess(channel int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, channel)
}

func TestChannelInfoProcessRegistration(t *testing.T) {
	reg := &registry{sinks: make(map[int32]InputSink)}
	info := newChannelInfo(ServiceMetadata{ID: 4, Service: "shell"}, NewMailbox[Event](), reg)

	info.RegisterProcess(sinkFunc(func(string) error { return nil }))
	assert.Contains(t, reg.sinks, int32(4))
	info.UnregisterProcess()
	assert.NotContains(t, reg.sinks, int32(4))
}

func TestChannelInfoSendOnlyMissingSession(t *testing.T) {
	info := newChannelInfo(ServiceMetadata{ID: 4}, NewMailbox[Event](), nil)
	err := info.Send(&goval.Ping{}, Only(9))
	assert.ErrorIs(t, err, ErrNoSession)
}
