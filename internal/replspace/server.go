package replspace

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"

	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/socketutil"
)

// Broadcaster delivers requests to every live channel.
type Broadcaster interface {
	// LastSession returns the session that most recently sent a command on
	// channel, or 0.
	LastSession(channel int32) int32
	BroadcastReplspace(session int32, msg Message)
}

// Options tunes the HTTP API.
type Options struct {
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// Server is the replspace HTTP API
type Server struct {
	addr    string
	table   *Table
	hub     Broadcaster
	timeout time.Duration
	limiter *rate.Limiter
	router  *httprouter.Router
	log     *logger.Logger
}

// NewServer creates a replspace API server listening on addr.
func NewServer(addr string, table *Table, hub Broadcaster, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	s := &Server{
		addr:    addr,
		table:   table,
		hub:     hub,
		timeout: opts.Timeout,
		limiter: rate.NewLimiter(limit, opts.Burst),
		router:  httprouter.New(),
		log:     logger.Named("replspace"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/github/token", s.limit(s.handleGitHubToken))
	s.router.POST("/files/open", s.limit(s.handleOpenFile))
}

// Handler returns the HTTP handler, for embedding in tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := socketutil.Listen(s.addr)
	if err != nil {
		return err
	}
	s.log.Info("Replspace api server listening on: %s", ln.Addr())

	srv := &http.Server{
		Handler:  s.router,
		ErrorLog: logger.StdLogger(s.log, slog.LevelError),
	}
	return socketutil.Serve(ctx, srv, ln)
}

func (s *Server) limit(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !s.limiter.Allow() {
			s.writeStatus(w, http.StatusTooManyRequests, statusResponse{Status: "err"})
			return
		}
		h(w, r, ps)
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

type tokenResponse struct {
	Status string  `json:"status"`
	Token  *string `json:"token"`
}

type openFileRequest struct {
	Filename     string `json:"filename"`
	WaitForClose bool   `json:"waitForClose"`
	Channel      *int32 `json:"channel"`
}

func (s *Server) handleGitHubToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	session := int32(0)
	if raw := r.URL.Query().Get("channel"); raw != "" {
		channel, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			http.Error(w, "Invalid channel", http.StatusBadRequest)
			return
		}
		s.log.Debug("Got git askpass for channel #%d", channel)
		session = s.hub.LastSession(int32(channel))
	} else {
		s.log.Debug("Got git askpass without channel id")
	}

	pending := s.table.Create(s.timeout)
	s.hub.BroadcastReplspace(session, GitHubTokenRequest{ID: pending.Nonce})

	reply, err := pending.Wait(r.Context())
	if err != nil {
		s.log.Error("Failed waiting for github token: %v", err)
		s.writeStatus(w, http.StatusInternalServerError, tokenResponse{Status: "err"})
		return
	}
	s.writeStatus(w, http.StatusOK, tokenResponse{Status: "ok", Token: &reply.Token})
}

func (s *Server) handleOpenFile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req openFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session := int32(0)
	if req.Channel != nil && *req.Channel != 0 {
		s.log.Debug("Got git open file for channel #%d", *req.Channel)
		session = s.hub.LastSession(*req.Channel)
	} else {
		s.log.Debug("Got git open file without channel id")
	}

	if !req.WaitForClose {
		s.hub.BroadcastReplspace(session, OpenFileRequest{ID: uuid.NewString(), File: req.Filename})
		s.writeStatus(w, http.StatusOK, statusResponse{Status: "ok"})
		return
	}

	pending := s.table.Create(s.timeout)
	s.hub.BroadcastReplspace(session, OpenFileRequest{ID: pending.Nonce, File: req.Filename, WaitForClose: true})

	if _, err := pending.Wait(r.Context()); err != nil {
		s.log.Error("Failed waiting for file close: %v", err)
		s.writeStatus(w, http.StatusInternalServerError, statusResponse{Status: "err"})
		return
	}
	s.writeStatus(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (s *Server) writeStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("Failed to write response: %v", err)
	}
}
