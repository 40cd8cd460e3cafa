package socketserver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/replspace"
)

const waitFor = 5 * time.Second

type recordingSink struct {
	mu     sync.Mutex
	writes []string
}

func (s *recordingSink) Write(input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, input)
	return nil
}

func (s *recordingSink) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

// echoService greets on attach and echoes Input back as Output.
type echoService struct {
	actor.BaseService
	sink      *recordingSink
	replspace chan replspace.Message
	stopped   chan struct{}
}

func (s *echoService) Open(info *actor.ChannelInfo) error {
	if s.sink != nil {
		info.RegisterProcess(s.sink)
	}
	return nil
}

func (s *echoService) Attach(_ *actor.ChannelInfo, client identity.ClientInfo, _ int32) (goval.Body, error) {
	return &goval.Toast{Text: "joined " + client.Username}, nil
}

func (s *echoService) Message(_ *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	if in, ok := cmd.Body.(goval.Input); ok {
		return goval.Output(in), nil
	}
	return nil, nil
}

func (s *echoService) Replspace(_ *actor.ChannelInfo, _ int32, msg replspace.Message) error {
	s.replspace <- msg
	return nil
}

func (s *echoService) Shutdown(*actor.ChannelInfo) error {
	close(s.stopped)
	return nil
}

type routerHarness struct {
	t        *testing.T
	router   *Router
	sessions *SessionManager

	mu      sync.Mutex
	created []*echoService
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()
	h := &routerHarness{t: t, sessions: NewSessionManager()}
	h.router = NewRouter(h.sessions, h.factory)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = h.router.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return h
}

func (h *routerHarness) factory(service string) (actor.Service, error) {
	svc := &echoService{replspace: make(chan replspace.Message, 4), stopped: make(chan struct{})}
	switch service {
	case "echo", "git":
	case "proc":
		svc.sink = &recordingSink{}
	default:
		return nil, actor.ErrUnknownService
	}
	h.mu.Lock()
	h.created = append(h.created, svc)
	h.mu.Unlock()
	return svc, nil
}

func (h *routerHarness) service(i int) *echoService {
	h.mu.Lock()
	defer h.mu.Unlock()
	require.Greater(h.t, len(h.created), i)
	return h.created[i]
}

func (h *routerHarness) connect(name string) *Session {
	return h.sessions.Register(identity.ClientInfo{Username: name, ID: 7})
}

func (h *routerHarness) send(s *Session, channel int32, ref string, body goval.Body) {
	h.router.Dispatch(s, goval.Command{Channel: channel, Ref: ref, Body: body})
}

// open sends an OpenChan and returns the reply.
func (h *routerHarness) open(s *Session, service, name string, action goval.OpenChanAction) goval.Command {
	h.t.Helper()
	h.send(s, 0, "open", &goval.OpenChan{Service: service, Name: name, Action: action})
	return recv(h.t, s.Outbox)
}

// join opens a channel, expecting success and the greeting.
func (h *routerHarness) join(s *Session, service, name string, action goval.OpenChanAction) int32 {
	h.t.Helper()
	cmd := h.open(s, service, name, action)
	res, ok := cmd.Body.(*goval.OpenChanRes)
	require.Truef(h.t, ok, "unexpected %s", goval.BodyName(cmd.Body))
	assert.Equal(h.t, goval.OpenChanCreated, res.State)
	assert.Equal(h.t, "open", cmd.Ref)

	greeting := recv(h.t, s.Outbox)
	assert.Equal(h.t, res.ID, greeting.Channel)
	assert.Equal(h.t, &goval.Toast{Text: "joined " + s.Client.Username}, greeting.Body)
	return res.ID
}

func (h *routerHarness) closeChan(s *Session, id int32) {
	h.t.Helper()
	h.send(s, 0, "close", &goval.CloseChan{ID: id})
	cmd := recv(h.t, s.Outbox)
	assert.Equal(h.t, &goval.CloseChanRes{Status: goval.CloseStatusClose, ID: id}, cmd.Body)
}

func recv(t *testing.T, box *actor.Outbox) goval.Command {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	cmd, err := box.Receive(ctx)
	require.NoError(t, err, "timed out waiting for a command")
	return cmd
}

func assertQuiet(t *testing.T, box *actor.Outbox) {
	t.Helper()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, box.Len())
}

func waitStopped(t *testing.T, svc *echoService) {
	t.Helper()
	select {
	case <-svc.stopped:
	case <-time.After(waitFor):
		t.Fatal("channel was not shut down")
	}
}

func TestRouterPing(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")

	h.send(s, 0, "p1", &goval.Ping{})
	cmd := recv(t, s.Outbox)
	assert.Equal(t, "p1", cmd.Ref)
	assert.Equal(t, int32(0), cmd.Channel)
	assert.Equal(t, &goval.Pong{}, cmd.Body)
}

func TestRouterUnknownService(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")

	cmd := h.open(s, "teleport", "", goval.ActionCreate)
	assert.Equal(t, "open", cmd.Ref)
	assert.Equal(t, &goval.ProtocolError{Text: "Could not create / attach channel"}, cmd.Body)
	assert.Empty(t, h.router.Channels())
}

func TestRouterRecreateGetsNewID(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")

	first := h.join(s, "echo", "a", goval.ActionCreate)
	assert.Equal(t, int32(1), first)

	h.closeChan(s, first)
	waitStopped(t, h.service(0))
	assert.Empty(t, h.router.Channels())

	second := h.join(s, "echo", "a", goval.ActionAttachOrCreate)
	assert.Greater(t, second, first)
}

func TestRouterAttachByName(t *testing.T) {
	h := newRouterHarness(t)
	alice, bob := h.connect("alice"), h.connect("bob")

	// nothing to attach to yet
	cmd := h.open(bob, "echo", "shared", goval.ActionAttach)
	assert.IsType(t, &goval.ProtocolError{}, cmd.Body)

	id := h.join(alice, "echo", "shared", goval.ActionCreate)
	assert.Equal(t, id, h.join(bob, "echo", "shared", goval.ActionAttach))
	assert.Equal(t, []int32{alice.ID, bob.ID}, h.router.Members(id))

	// same name on another service is a different channel
	other := h.join(bob, "proc", "shared", goval.ActionAttachOrCreate)
	assert.NotEqual(t, id, other)

	// anonymous channels are never attached to
	anon1 := h.join(alice, "echo", "", goval.ActionAttachOrCreate)
	anon2 := h.join(alice, "echo", "", goval.ActionAttachOrCreate)
	assert.NotEqual(t, anon1, anon2)

	// Create always makes a new channel, and attach picks the lowest id
	dup := h.join(alice, "echo", "shared", goval.ActionCreate)
	assert.NotEqual(t, id, dup)
	carol := h.connect("carol")
	assert.Equal(t, id, h.join(carol, "echo", "shared", goval.ActionAttach))
}

func TestRouterGitIsAlwaysAttachable(t *testing.T) {
	h := newRouterHarness(t)
	alice, bob := h.connect("alice"), h.connect("bob")

	id := h.join(alice, "git", "git", goval.ActionCreate)
	assert.Equal(t, id, h.join(bob, "git", "git", goval.ActionCreate))
	assert.Len(t, h.router.Channels(), 1)
}

func TestRouterLastDetachPurges(t *testing.T) {
	h := newRouterHarness(t)
	alice, bob := h.connect("alice"), h.connect("bob")

	id := h.join(alice, "proc", "p", goval.ActionCreate)
	h.join(bob, "proc", "p", goval.ActionAttach)
	assert.Eventually(t, func() bool { return h.router.HasProcess(id) }, waitFor, 10*time.Millisecond)

	h.send(alice, id, "", &goval.ResizeTerm{Rows: 1, Cols: 1})
	assert.Eventually(t, func() bool { return h.router.LastSession(id) == alice.ID }, waitFor, 10*time.Millisecond)

	h.closeChan(alice, id)
	assert.Len(t, h.router.Channels(), 1)
	assert.Equal(t, []int32{bob.ID}, h.router.Members(id))

	h.closeChan(bob, id)
	waitStopped(t, h.service(0))
	assert.Empty(t, h.router.Channels())
	assert.False(t, h.router.HasProcess(id))
	assert.Equal(t, int32(0), h.router.LastSession(id))
	assert.Nil(t, h.router.Members(id))
}

func TestRouterCloseChanNotMember(t *testing.T) {
	h := newRouterHarness(t)
	alice, bob := h.connect("alice"), h.connect("bob")

	id := h.join(alice, "echo", "a", goval.ActionCreate)
	h.closeChan(bob, id)
	h.closeChan(bob, 404)
	assert.Equal(t, []int32{alice.ID}, h.router.Members(id))
}

func TestRouterInputFastPath(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")

	id := h.join(s, "proc", "", goval.ActionCreate)
	assert.Eventually(t, func() bool { return h.router.HasProcess(id) }, waitFor, 10*time.Millisecond)

	h.send(s, id, "", goval.Input("ls\n"))
	assert.Eventually(t, func() bool { return len(h.service(0).sink.Writes()) == 1 }, waitFor, 10*time.Millisecond)
	assert.Equal(t, []string{"ls\n"}, h.service(0).sink.Writes())
	assertQuiet(t, s.Outbox)

	// without a registered process, Input reaches the service
	echo := h.join(s, "echo", "", goval.ActionCreate)
	h.send(s, echo, "in", goval.Input("hi"))
	cmd := recv(t, s.Outbox)
	assert.Equal(t, "in", cmd.Ref)
	assert.Equal(t, goval.Output("hi"), cmd.Body)
	assert.Equal(t, s.ID, h.router.LastSession(echo))
}

func TestRouterDropsUnknownChannel(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")

	h.send(s, 99, "x", goval.Input("lost"))
	h.send(s, 0, "p", &goval.Ping{})
	assert.Equal(t, &goval.Pong{}, recv(t, s.Outbox).Body)
	assertQuiet(t, s.Outbox)
}

func TestRouterCloseSessionDetachesEverywhere(t *testing.T) {
	h := newRouterHarness(t)
	alice, bob := h.connect("alice"), h.connect("bob")

	solo := h.join(alice, "echo", "solo", goval.ActionCreate)
	shared := h.join(alice, "echo", "shared", goval.ActionCreate)
	h.join(bob, "echo", "shared", goval.ActionAttach)

	h.router.CloseSession(alice)
	waitStopped(t, h.service(0))
	assert.Eventually(t, func() bool { return h.sessions.Count() == 1 }, waitFor, 10*time.Millisecond)

	assert.Nil(t, h.router.Members(solo))
	assert.Equal(t, []int32{bob.ID}, h.router.Members(shared))
	assert.True(t, alice.Outbox.Closed())
}

func TestRouterBroadcastsReplspace(t *testing.T) {
	h := newRouterHarness(t)
	s := h.connect("alice")
	h.join(s, "echo", "", goval.ActionCreate)
	h.join(s, "git", "git", goval.ActionCreate)

	msg := replspace.GitHubTokenRequest{ID: "n1"}
	h.router.BroadcastReplspace(s.ID, msg)
	for i := 0; i < 2; i++ {
		select {
		case got := <-h.service(i).replspace:
			assert.Equal(t, msg, got)
		case <-time.After(waitFor):
			t.Fatalf("channel %d did not see the request", i)
		}
	}
}
