package socketserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/services"
)

type testServer struct {
	t      *testing.T
	url    string
	dir    string
	router *Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	deps := services.Deps{FS: fs.NewOS(dir), Debounce: time.Hour}

	sessions := NewSessionManager()
	router := NewRouter(sessions, func(service string) (actor.Service, error) {
		return services.New(service, deps)
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = router.Run(ctx)
		close(done)
	}()

	srv := httptest.NewServer(NewServer("", router, sessions, nil).Handler())
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})
	return &testServer{t: t, url: srv.URL, dir: dir, router: router}
}

type wsClient struct {
	t    *testing.T
	conn *websocket.Conn
}

// dial connects as username and consumes the welcome sequence.
func (s *testServer) dial(username string, id uint32) *wsClient {
	s.t.Helper()
	token := identity.Mint(identity.ClientInfo{Username: username, ID: id}, nil)
	url := "ws" + strings.TrimPrefix(s.url, "http") + "/wsv2/" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(s.t, err)
	s.t.Cleanup(func() { conn.Close() })

	c := &wsClient{t: s.t, conn: conn}
	assert.Equal(s.t, &goval.BootStatus{Stage: goval.BootComplete}, c.read().Body)
	assert.Equal(s.t, &goval.ContainerState{State: goval.ContainerReady}, c.read().Body)
	assert.Equal(s.t, &goval.Toast{Text: "Hello @" + username + ", welcome to homeval!"}, c.read().Body)
	return c
}

func (c *wsClient) write(cmd goval.Command) {
	c.t.Helper()
	frame, err := goval.Encode(cmd)
	require.NoError(c.t, err)
	require.NoError(c.t, c.conn.WriteMessage(websocket.BinaryMessage, frame))
}

func (c *wsClient) read() goval.Command {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(waitFor)))
	kind, frame, err := c.conn.ReadMessage()
	require.NoError(c.t, err)
	require.Equal(c.t, websocket.BinaryMessage, kind)
	cmd, err := goval.Decode(frame)
	require.NoError(c.t, err)
	return cmd
}

func TestServerRootSaysHello(t *testing.T) {
	s := newTestServer(t)
	res, err := http.Get(s.url + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "Hello there")
}

func TestServerDropsMalformedFrames(t *testing.T) {
	s := newTestServer(t)
	c := s.dial("alice", 1)

	require.NoError(t, c.conn.WriteMessage(websocket.BinaryMessage, []byte{0xff, 0xff, 0xff}))
	c.write(goval.Command{Ref: "ping", Body: &goval.Ping{}})

	cmd := c.read()
	assert.Equal(t, "ping", cmd.Ref)
	assert.Equal(t, &goval.Pong{}, cmd.Body)
}

func TestServerOTLinkAndEdit(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "a.txt"), []byte("hello"), 0o644))

	alice := s.dial("alice", 1)
	alice.write(goval.Command{Ref: "open", Body: &goval.OpenChan{Service: "ot", Name: "a.txt", Action: goval.ActionCreate}})
	res := alice.read()
	assert.Equal(t, "open", res.Ref)
	assert.Equal(t, &goval.OpenChanRes{State: goval.OpenChanCreated, ID: 1}, res.Body)

	status := alice.read()
	assert.Equal(t, int32(1), status.Channel)
	assert.IsType(t, &goval.Otstatus{}, status.Body)

	alice.write(goval.Command{Channel: 1, Ref: "link", Body: &goval.OtLinkFile{File: &goval.File{Path: "a.txt"}}})
	linked := alice.read()
	assert.Equal(t, "link", linked.Ref)
	link, ok := linked.Body.(*goval.OtLinkFileResponse)
	require.True(t, ok, "got %s", goval.BodyName(linked.Body))
	assert.Equal(t, uint32(1), link.Version)
	assert.Equal(t, "hello", string(link.LinkedFile.Content))

	alice.write(goval.Command{Channel: 1, Ref: "edit", Body: &goval.OTPacket{Op: []goval.OTOp{goval.Skip(5), goval.Insert("!")}}})
	packet, ok := alice.read().Body.(*goval.OTPacket)
	require.True(t, ok)
	assert.Equal(t, uint32(2), packet.Version)
	ack := alice.read()
	assert.Equal(t, "edit", ack.Ref)
	assert.Equal(t, &goval.Ok{}, ack.Body)

	data, err := os.ReadFile(filepath.Join(s.dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello!", string(data))

	bob := s.dial("bob", 2)
	bob.write(goval.Command{Ref: "open", Body: &goval.OpenChan{Service: "ot", Name: "a.txt", Action: goval.ActionAttachOrCreate}})
	assert.Equal(t, &goval.OpenChanRes{State: goval.OpenChanCreated, ID: 1}, bob.read().Body)

	st, ok := bob.read().Body.(*goval.Otstatus)
	require.True(t, ok)
	assert.Equal(t, "hello!", st.Contents)
	assert.Equal(t, uint32(2), st.Version)
}

func TestServerDisconnectReleasesChannels(t *testing.T) {
	s := newTestServer(t)
	c := s.dial("alice", 1)

	c.write(goval.Command{Ref: "open", Body: &goval.OpenChan{Service: "chat", Name: "chatter", Action: goval.ActionCreate}})
	assert.IsType(t, &goval.OpenChanRes{}, c.read().Body)
	assert.IsType(t, &goval.ChatScrollback{}, c.read().Body)
	require.NoError(t, c.conn.Close())

	assert.Eventually(t, func() bool { return len(s.router.Channels()) == 0 }, waitFor, 10*time.Millisecond)

	other := s.dial("bob", 2)
	other.write(goval.Command{Ref: "open", Body: &goval.OpenChan{Service: "chat", Name: "chatter", Action: goval.ActionAttach}})
	assert.Equal(t, &goval.ProtocolError{Text: "Could not create / attach channel"}, other.read().Body)
}
