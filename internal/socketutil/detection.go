// Package socketutil provides shared helpers for the TCP listeners the
// server runs: detecting an already running server and serving an HTTP
// server until a context is cancelled.
package socketutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goval-community/homeval/internal/logger"
)

// DetectionTimeout is how long to wait when probing an address
const DetectionTimeout = 1 * time.Second

// ShutdownTimeout bounds graceful shutdown of an HTTP server.
const ShutdownTimeout = 5 * time.Second

// DetectServer reports whether something is already accepting connections
// at addr. Wildcard hosts are probed on loopback.
func DetectServer(addr string) bool {
	probe := probeAddr(addr)
	conn, err := net.DialTimeout("tcp", probe, DetectionTimeout)
	if err != nil {
		logger.Debug("No server detected at %s: %v", probe, err)
		return false
	}
	conn.Close()
	logger.Info("Detected active server at: %s", probe)
	return true
}

func probeAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

// Listen opens a TCP listener, wrapping address-in-use errors with a hint.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			return nil, fmt.Errorf("failed to listen on %s (is another homeval running?): %w", addr, err)
		}
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Serve runs srv on ln until ctx is done, then shuts it down gracefully.
// It returns nil on a clean shutdown.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
