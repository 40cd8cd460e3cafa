// Package proc spawns child processes for services and bridges their
// output to sessions: a PTY whose output fans out to subscribed sessions
// with scrollback, and plain processes whose stdout and stderr are
// broadcast to a channel.
package proc

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/logger"
)

var (
	// ErrCancelled is returned when writing to a cancelled process.
	ErrCancelled = errors.New("process cancelled")
	// ErrNoCommand is returned for an empty argument list.
	ErrNoCommand = errors.New("no command given")
)

// drainTimeout bounds how long exit reporting waits for output copiers.
const drainTimeout = time.Second

// Options configures a spawned process.
type Options struct {
	// Channel tags output commands.
	Channel int32
	// Env overrides variables from Base and the server environment.
	Env  map[string]string
	Base *Env
	// Dir defaults to the server's working directory.
	Dir string
	// OnExit is called once with the exit code, or -1 when cancelled.
	OnExit func(exitCode int)
}

// process is the lifecycle shared by PTY and plain processes.
type process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	input *actor.Mailbox[string]
	log   *logger.Logger

	cancelled atomic.Bool
	exited    chan struct{}
	exitCode  int
	copiers   sync.WaitGroup
	onExit    func(int)
	onCancel  func()

	// closeMu orders uses of the closers against finish closing them
	closeMu sync.Mutex
	closed  bool
	closers []io.Closer

	// pipes must be drained before Wait closes them
	drainFirst bool
}

func newProcess(cmd *exec.Cmd, opts Options, log *logger.Logger) *process {
	return &process{
		cmd:    cmd,
		input:  actor.NewMailbox[string](),
		log:    log,
		exited: make(chan struct{}),
		onExit: opts.OnExit,
	}
}

func command(args []string, opts Options) (*exec.Cmd, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrNoCommand
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = opts.Base.Environ(opts.Env)
	cmd.Dir = opts.Dir
	return cmd, nil
}

// run starts the background goroutines once the command is running.
func (p *process) run() {
	go p.writeInput()
	go p.wait()
	go p.reap()
}

func (p *process) copyOutput(r io.Reader, w io.Writer) {
	p.copiers.Add(1)
	go func() {
		defer p.copiers.Done()
		buf := make([]byte, consts.ReadBufferSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				if _, werr := w.Write(buf[:n]); werr != nil {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
}

func (p *process) writeInput() {
	for {
		input, err := p.input.Receive(context.Background())
		if err != nil {
			return
		}
		if _, err := io.WriteString(p.stdin, input); err != nil {
			p.log.Debug("failed to write input: %v", err)
		}
	}
}

func (p *process) wait() {
	if p.drainFirst {
		p.copiers.Wait()
	}
	err := p.cmd.Wait()
	p.exitCode = 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.exitCode = exitErr.ExitCode()
		} else {
			p.exitCode = -1
		}
	}
	close(p.exited)
}

func (p *process) reap() {
	ticker := time.NewTicker(consts.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.exited:
			p.finish()
			return
		case <-ticker.C:
			if p.cancelled.Load() {
				if err := killProcessGroup(p.cmd); err != nil {
					p.log.Debug("kill: %v", err)
				}
			}
		}
	}
}

func (p *process) finish() {
	drained := make(chan struct{})
	go func() {
		p.copiers.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(drainTimeout):
		p.log.Debug("output still open after exit, closing")
	}

	p.input.Close()
	p.closeMu.Lock()
	p.closed = true
	for _, c := range p.closers {
		c.Close()
	}
	p.closeMu.Unlock()

	code := p.exitCode
	if p.cancelled.Load() {
		code = -1
	}
	p.log.Debug("process %d exited with %d", p.cmd.Process.Pid, code)
	if p.onExit != nil {
		p.onExit(code)
	}
}

// Write queues input for the process's stdin.
func (p *process) Write(input string) error {
	if p.cancelled.Load() {
		return ErrCancelled
	}
	if err := p.input.Send(input); err != nil {
		return ErrCancelled
	}
	return nil
}

// Cancel kills the process. OnExit is still called, with -1.
func (p *process) Cancel() {
	if p.cancelled.Swap(true) {
		return
	}
	if p.onCancel != nil {
		p.onCancel()
	}
	if err := killProcessGroup(p.cmd); err != nil {
		p.log.Debug("kill: %v", err)
	}
}

// whileOpen runs fn unless the process has been cancelled or its files
// closed, and keeps them open until fn returns.
func (p *process) whileOpen(fn func() error) error {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed || p.cancelled.Load() {
		return ErrCancelled
	}
	return fn()
}

// Cancelled reports whether Cancel was called.
func (p *process) Cancelled() bool {
	return p.cancelled.Load()
}

// Done is closed once the process has exited.
func (p *process) Done() <-chan struct{} {
	return p.exited
}

// Pid returns the OS process id.
func (p *process) Pid() int {
	return p.cmd.Process.Pid
}
