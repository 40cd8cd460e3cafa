package proc

import (
	"fmt"
	"os"

	"github.com/creack/pty"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/logger"
)

// Pty is a process attached to a pseudo terminal. Its output fans out to
// joined sessions; the last MaxScrollback bytes are replayed on join.
type Pty struct {
	*process
	ptmx *os.File
	out  *fanoutWriter
}

// StartPty spawns args on a new 24x80 pseudo terminal.
func StartPty(args []string, opts Options) (*Pty, error) {
	cmd, err := command(args, opts)
	if err != nil {
		return nil, err
	}

	log := logger.Named(fmt.Sprintf("pty:%d", opts.Channel))
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: consts.PtyRows, Cols: consts.PtyCols})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", args[0], err)
	}

	p := &Pty{
		process: newProcess(cmd, opts, log),
		ptmx:    ptmx,
		out:     newFanoutWriter(opts.Channel, log),
	}
	p.stdin = ptmx
	p.closers = append(p.closers, ptmx)
	p.onCancel = p.out.cancel

	p.copyOutput(ptmx, p.out)
	p.run()
	log.Debug("started %q as pid %d", args, cmd.Process.Pid)
	return p, nil
}

// SessionJoin replays the scrollback to the session, then subscribes it to
// live output.
func (p *Pty) SessionJoin(session int32, box *actor.Outbox) {
	p.out.join(session, box)
}

// SessionLeave unsubscribes a session.
func (p *Pty) SessionLeave(session int32) {
	p.out.leave(session)
}

// Sessions lists the subscribed sessions.
func (p *Pty) Sessions() []int32 {
	return p.out.sessions()
}

// Scrollback returns a copy of the retained output.
func (p *Pty) Scrollback() []byte {
	return p.out.snapshot()
}

// Resize changes the terminal size. It returns ErrCancelled once the
// process is cancelled or has exited.
func (p *Pty) Resize(rows, cols uint16) error {
	return p.whileOpen(func() error {
		return pty.Setsize(p.ptmx, &pty.Winsize{Rows: rows, Cols: cols})
	})
}
