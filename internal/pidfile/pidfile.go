// Package pidfile records the server's PID and refuses to start a second
// server against the same file.
package pidfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goval-community/homeval/internal/logger"
)

// ErrRunning is returned by Acquire when the file names a live process.
var ErrRunning = errors.New("homeval is already running")

// Pidfile represents a PID file
type Pidfile struct {
	path string
	held bool
}

// New creates a new PID file instance
func New(path string) *Pidfile {
	return &Pidfile{
		path: path,
	}
}

// Acquire writes the current PID. An existing file is replaced when the
// process it names is gone.
func (p *Pidfile) Acquire() error {
	if pid, err := p.Read(); err == nil && pid != os.Getpid() {
		if running, _ := isProcessRunning(pid); running {
			return fmt.Errorf("%w (pid %d, %s)", ErrRunning, pid, p.path)
		}
		logger.Warn("Replacing stale pidfile %s (pid %d)", p.path, pid)
	}
	if err := p.Write(); err != nil {
		return err
	}
	p.held = true
	return nil
}

// Release removes the file if Acquire wrote it.
func (p *Pidfile) Release() error {
	if !p.held {
		return nil
	}
	p.held = false
	return p.Remove()
}

// Write writes the current PID to the PID file
func (p *Pidfile) Write() error {
	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create pidfile directory: %w", err)
	}

	content := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(p.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write pidfile: %w", err)
	}
	return nil
}

// Read reads the PID from the PID file
func (p *Pidfile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read pidfile: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in pidfile: %w", err)
	}
	return pid, nil
}

// Remove removes the PID file
func (p *Pidfile) Remove() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove pidfile: %w", err)
	}
	return nil
}

// Path returns the PID file path
func (p *Pidfile) Path() string {
	return p.path
}
