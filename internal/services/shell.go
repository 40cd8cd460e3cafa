package services

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/proc"
)

// Shell is an interactive terminal. The shell is restarted whenever it
// exits, and keeps running with no sessions attached.
type Shell struct {
	actor.BaseService

	deps Deps
	pty  *proc.Pty
}

func NewShell(deps Deps) *Shell {
	return &Shell{deps: deps}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if runtime.GOOS == "windows" {
		return "pwsh"
	}
	return "sh"
}

func (s *Shell) start(info *actor.ChannelInfo) error {
	p, err := proc.StartPty([]string{defaultShell()}, proc.Options{
		Channel: info.ID,
		Env:     s.deps.DotReplit.Env,
		Base:    s.deps.Env,
		OnExit:  notifyExit(info),
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	s.pty = p
	info.RegisterProcess(p)
	return nil
}

func (s *Shell) Open(info *actor.ChannelInfo) error {
	return s.start(info)
}

func (s *Shell) Attach(info *actor.ChannelInfo, _ identity.ClientInfo, session int32) (goval.Body, error) {
	if s.pty == nil {
		return nil, proc.ErrCancelled
	}
	box, ok := info.Outbox(session)
	if !ok {
		return nil, actor.ErrNoSession
	}
	s.pty.SessionJoin(session, box)
	return nil, nil
}

func (s *Shell) Detach(_ *actor.ChannelInfo, session int32) error {
	if s.pty != nil {
		s.pty.SessionLeave(session)
	}
	return nil
}

func (s *Shell) Message(info *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	if s.pty == nil {
		return nil, proc.ErrCancelled
	}
	switch body := cmd.Body.(type) {
	case goval.Input:
		return nil, s.pty.Write(string(body))
	case *goval.ResizeTerm:
		return nil, s.pty.Resize(uint16(body.Rows), uint16(body.Cols))
	default:
		info.Logger().Debug("ignoring %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}

func (s *Shell) ProcessDead(info *actor.ChannelInfo, exitCode int) error {
	info.Logger().Info("shell exited with %d, restarting", exitCode)
	info.UnregisterProcess()
	s.pty = nil
	if err := s.start(info); err != nil {
		return err
	}
	for _, session := range info.Sessions() {
		if box, ok := info.Outbox(session); ok {
			s.pty.SessionJoin(session, box)
		}
	}
	return nil
}

func (s *Shell) Shutdown(info *actor.ChannelInfo) error {
	info.UnregisterProcess()
	if s.pty != nil {
		s.pty.Cancel()
	}
	return nil
}
