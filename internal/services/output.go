package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/proc"
)

var defaultRun = []string{"echo", "Please configure a run command in `.replit`"}

// Output runs the .replit run command in a terminal on RunMain.
type Output struct {
	actor.BaseService

	deps    Deps
	pty     *proc.Pty
	started time.Time
	now     func() time.Time
}

func NewOutput(deps Deps) *Output {
	return &Output{deps: deps, now: time.Now}
}

func (s *Output) Attach(info *actor.ChannelInfo, _ identity.ClientInfo, session int32) (goval.Body, error) {
	if s.pty == nil {
		return goval.StateStopped, nil
	}
	if err := info.Send(s.startEvent(), actor.Only(session)); err != nil {
		return nil, err
	}
	if box, ok := info.Outbox(session); ok {
		s.pty.SessionJoin(session, box)
	}
	return goval.StateRunning, nil
}

func (s *Output) Detach(_ *actor.ChannelInfo, session int32) error {
	if s.pty != nil {
		s.pty.SessionLeave(session)
	}
	return nil
}

func (s *Output) Message(info *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	switch body := cmd.Body.(type) {
	case *goval.RunMain:
		return nil, s.run(info)
	case *goval.Clear:
		if s.pty == nil {
			info.Logger().Warn("clear requested with nothing running")
			return nil, nil
		}
		s.pty.Cancel()
	case goval.Input:
		if s.pty != nil {
			return nil, s.pty.Write(string(body))
		}
	case *goval.ResizeTerm:
		if s.pty != nil {
			return nil, s.pty.Resize(uint16(body.Rows), uint16(body.Cols))
		}
	default:
		info.Logger().Debug("ignoring %s", goval.BodyName(cmd.Body))
	}
	return nil, nil
}

func (s *Output) run(info *actor.ChannelInfo) error {
	if s.pty != nil {
		info.Logger().Warn("run requested while already running")
		return nil
	}

	args := defaultRun
	if len(s.deps.DotReplit.Run) > 0 {
		args = s.deps.DotReplit.Run
	}
	env := map[string]string{"REPLIT_GIT_TOOLS_CHANNEL_FROM": strconv.Itoa(int(info.ID))}
	for k, v := range s.deps.DotReplit.Env {
		env[k] = v
	}

	p, err := proc.StartPty(args, proc.Options{
		Channel: info.ID,
		Env:     env,
		Base:    s.deps.Env,
		OnExit:  notifyExit(info),
	})
	if err != nil {
		return fmt.Errorf("failed to run %q: %w", args, err)
	}
	s.pty = p
	s.started = s.now()
	info.RegisterProcess(p)

	// output produced before the sessions join is replayed from scrollback,
	// so it still lands after the start event
	if err := info.Send(s.startEvent(), actor.Everyone); err != nil {
		info.Logger().Warn("failed to announce run: %v", err)
	}
	if err := info.Send(goval.StateRunning, actor.Everyone); err != nil {
		info.Logger().Warn("failed to announce run: %v", err)
	}
	for _, session := range info.Sessions() {
		if box, ok := info.Outbox(session); ok {
			p.SessionJoin(session, box)
		}
	}
	return nil
}

func (s *Output) startEvent() *goval.OutputBlockStartEvent {
	return &goval.OutputBlockStartEvent{
		ExecutionMode:    goval.ExecutionModeRun,
		MeasureStartTime: s.started.Truncate(time.Second),
	}
}

func (s *Output) ProcessDead(info *actor.ChannelInfo, exitCode int) error {
	info.UnregisterProcess()
	s.pty = nil
	s.started = time.Time{}

	end := &goval.OutputBlockEndEvent{
		ExitCode:       int32(exitCode),
		MeasureEndTime: s.now().Truncate(time.Second),
	}
	if err := info.Send(end, actor.Everyone); err != nil {
		return err
	}
	if exitCode != 0 {
		if err := info.Send(goval.Error(fmt.Sprintf("exit code %d", exitCode)), actor.Everyone); err != nil {
			return err
		}
	}
	return info.Send(goval.StateStopped, actor.Everyone)
}

func (s *Output) Shutdown(info *actor.ChannelInfo) error {
	if s.pty != nil {
		info.UnregisterProcess()
		s.pty.Cancel()
	}
	return nil
}
