// Package repldb serves the ReplDB HTTP API programs in the workspace use
// as a simple key-value database.
package repldb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/socketutil"
	"github.com/goval-community/homeval/internal/store"
)

// EnvVar is the environment variable child processes find the API under.
const EnvVar = "REPLIT_DB_URL"

// Server is the ReplDB HTTP API
type Server struct {
	addr   string
	kv     store.KV
	router *httprouter.Router
	log    *logger.Logger
}

// NewServer creates a server for kv listening on addr.
func NewServer(addr string, kv store.KV) *Server {
	s := &Server{
		addr:   addr,
		kv:     kv,
		router: httprouter.New(),
		log:    logger.Named("repldb"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.POST("/", s.handleSet)
	s.router.GET("/", s.handleList)
	s.router.GET("/:key", s.handleGet)
	s.router.DELETE("/:key", s.handleDelete)
}

// Handler returns the HTTP handler, for embedding in tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the listener and returns the URL clients should use.
func (s *Server) Listen() (net.Listener, string, error) {
	ln, err := socketutil.Listen(s.addr)
	if err != nil {
		return nil, "", err
	}
	return ln, "http://" + ln.Addr().String(), nil
}

// Serve serves the API on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("ReplDB listening on: %s", ln.Addr())
	srv := &http.Server{
		Handler:  s.router,
		ErrorLog: logger.StdLogger(s.log, slog.LevelError),
	}
	return socketutil.Serve(ctx, srv, ln)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for key, vals := range values {
		if key == "" || len(vals) == 0 {
			continue
		}
		if err := s.kv.Set(r.Context(), key, vals[len(vals)-1]); err != nil {
			s.log.Error("Failed to set %s: %v", key, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	if !query.Has("prefix") {
		w.WriteHeader(http.StatusOK)
		return
	}

	keys, err := s.kv.List(r.Context(), query.Get("prefix"))
	if err != nil {
		s.log.Error("Failed to list keys: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if query.Get("encode") == "true" {
		for i, k := range keys {
			keys[i] = url.QueryEscape(k)
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, strings.Join(keys, "\n"))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	value, err := s.kv.Get(r.Context(), ps.ByName("key"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.log.Error("Failed to get %s: %v", ps.ByName("key"), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, value)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := s.kv.Delete(r.Context(), ps.ByName("key"))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.log.Error("Failed to delete %s: %v", ps.ByName("key"), err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
