// Package pprof serves the runtime profiling endpoints on a separate
// debug listener.
package pprof

import (
	"context"
	"log/slog"
	"net/http"
	netpprof "net/http/pprof"
	"runtime"

	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/socketutil"
)

// Config holds the pprof configuration
type Config struct {
	// HTTPAddr is the debug listener, e.g. "localhost:6060"
	HTTPAddr string

	// Block and mutex profiling rates, 0 leaves them off
	BlockProfileRate     int
	MutexProfileFraction int
}

// Server serves /debug/pprof/.
type Server struct {
	config Config
	mux    *http.ServeMux
	log    *logger.Logger
}

// NewServer creates a profiling server.
func NewServer(config Config) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", netpprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", netpprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", netpprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", netpprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", netpprof.Trace)
	for _, name := range []string{"goroutine", "heap", "block", "mutex", "threadcreate", "allocs"} {
		mux.Handle("/debug/pprof/"+name, netpprof.Handler(name))
	}

	return &Server{
		config: config,
		mux:    mux,
		log:    logger.Named("pprof"),
	}
}

// Handler returns the HTTP handler, for embedding in tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves the profiling endpoints until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	if s.config.BlockProfileRate > 0 {
		runtime.SetBlockProfileRate(s.config.BlockProfileRate)
		defer runtime.SetBlockProfileRate(0)
	}
	if s.config.MutexProfileFraction > 0 {
		prev := runtime.SetMutexProfileFraction(s.config.MutexProfileFraction)
		defer runtime.SetMutexProfileFraction(prev)
	}

	ln, err := socketutil.Listen(s.config.HTTPAddr)
	if err != nil {
		return err
	}
	s.log.Info("pprof listening on: %s", ln.Addr())

	srv := &http.Server{
		Handler:  s.mux,
		ErrorLog: logger.StdLogger(s.log, slog.LevelError),
	}
	return socketutil.Serve(ctx, srv, ln)
}
