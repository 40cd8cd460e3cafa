package socketserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/socketutil"
)

const hello = "(づ ◕‿◕ )づ Hello there, this is homeval!\n"

// Server accepts goval websocket connections.
type Server struct {
	addr     string
	router   *Router
	sessions *SessionManager
	resolver *identity.Resolver
	upgrader websocket.Upgrader
	mux      *httprouter.Router
	log      *logger.Logger
}

// NewServer creates a server on addr. resolver may be nil, in which case
// tokens are decoded without signature verification.
func NewServer(addr string, router *Router, sessions *SessionManager, resolver *identity.Resolver) *Server {
	if resolver == nil {
		resolver, _ = identity.NewResolver("")
	}
	s := &Server{
		addr:     addr,
		router:   router,
		sessions: sessions,
		resolver: resolver,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		mux: httprouter.New(),
		log: logger.Named("server"),
	}
	s.mux.GET("/", s.handleRoot)
	s.mux.GET("/wsv2/:token", s.handleWebSocket)
	return s
}

// Handler returns the HTTP handler, for embedding in tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := socketutil.Listen(s.addr)
	if err != nil {
		return err
	}
	s.log.Info("Goval server listening on: %s", ln.Addr())

	srv := &http.Server{
		Handler:  s.mux,
		ErrorLog: logger.StdLogger(s.log, slog.LevelError),
	}
	return socketutil.Serve(ctx, srv, ln)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, hello)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	client := s.resolver.Resolve(ps.ByName("token"))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("Failed to upgrade websocket: %v", err)
		return
	}

	session := s.sessions.Register(client)
	s.welcome(session)

	c := newClient(session, conn, s.router, s.sessions)
	go c.WritePump()
	go c.ReadPump()
}

// welcome queues the greeting ahead of anything the read pump routes.
func (s *Server) welcome(session *Session) {
	for _, body := range []goval.Body{
		&goval.BootStatus{Stage: goval.BootComplete},
		&goval.ContainerState{State: goval.ContainerReady},
		&goval.Toast{Text: fmt.Sprintf("Hello @%s, welcome to homeval!", session.Client.Username)},
	} {
		_ = session.Outbox.Send(goval.Command{Body: body})
	}
}
