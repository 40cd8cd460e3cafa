package services

import (
	"fmt"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/proc"
)

type execRequest struct {
	exec    *goval.Exec
	ref     string
	session int32
}

// Exec runs non-interactive commands one at a time. Blocking requests that
// arrive while a command runs are queued; others are refused.
type Exec struct {
	actor.BaseService

	deps    Deps
	running *proc.Proc
	current execRequest
	queue   []execRequest
}

func NewExec(deps Deps) *Exec {
	return &Exec{deps: deps}
}

func (s *Exec) Message(info *actor.ChannelInfo, cmd goval.Command, session int32) (goval.Body, error) {
	switch body := cmd.Body.(type) {
	case *goval.Exec:
		req := execRequest{exec: body, ref: cmd.Ref, session: session}
		if s.running == nil {
			s.queue = append(s.queue, req)
			s.next(info)
			return nil, nil
		}
		if !body.Blocking && body.Lifecycle != goval.LifecycleBlocking {
			return goval.Error("Already running"), nil
		}
		s.queue = append(s.queue, req)
		return nil, nil
	case goval.Input:
		if s.running == nil {
			return nil, proc.ErrCancelled
		}
		return nil, s.running.Write(string(body))
	default:
		info.Logger().Debug("ignoring %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}

// next starts queued requests until one spawns or the queue is empty.
func (s *Exec) next(info *actor.ChannelInfo) {
	for s.running == nil && len(s.queue) > 0 {
		req := s.queue[0]
		s.queue = s.queue[1:]

		s.broadcast(info, goval.StateStopped)
		p, err := proc.StartProc(req.exec.Args, proc.Options{
			Channel: info.ID,
			Env:     req.exec.Env,
			Base:    s.deps.Env,
			OnExit:  notifyExit(info),
		}, func(body goval.Body) {
			s.broadcast(info, body)
		})
		if err != nil {
			info.Logger().Error("failed to start %q: %v", req.exec.Args, err)
			s.reply(info, req, goval.Error(err.Error()))
			continue
		}

		s.running = p
		s.current = req
		s.broadcast(info, goval.StateRunning)
	}
}

func (s *Exec) ProcessDead(info *actor.ChannelInfo, exitCode int) error {
	if s.running == nil {
		return nil
	}
	s.running = nil

	if exitCode == 0 {
		s.reply(info, s.current, &goval.Ok{})
	} else {
		s.reply(info, s.current, goval.Error(fmt.Sprintf("exit status %d", exitCode)))
	}
	s.current = execRequest{}
	s.broadcast(info, goval.StateStopped)

	s.next(info)
	return nil
}

func (s *Exec) Shutdown(*actor.ChannelInfo) error {
	s.queue = nil
	if s.running != nil {
		s.running.Cancel()
	}
	return nil
}

func (s *Exec) reply(info *actor.ChannelInfo, req execRequest, body goval.Body) {
	err := info.SendCommand(goval.Command{Ref: req.ref, Body: body}, actor.Only(req.session))
	if err != nil {
		info.Logger().Debug("requester %d went away: %v", req.session, err)
	}
}

func (s *Exec) broadcast(info *actor.ChannelInfo, body goval.Body) {
	if err := info.Send(body, actor.Everyone); err != nil {
		info.Logger().Warn("broadcast failed: %v", err)
	}
}
