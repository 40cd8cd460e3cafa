package actor

import (
	"context"
	"errors"
	"runtime/debug"
	"sync/atomic"

	"github.com/goval-community/homeval/internal/goval"
)

// State is the lifecycle state of a channel actor.
type State int32

const (
	StateCreated State = iota
	StateRunning
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Channel is a running channel actor.
type Channel struct {
	info    *ChannelInfo
	service Service
	inbox   *Mailbox[Event]
	state   atomic.Int32
	done    chan struct{}
}

// NewChannel creates a channel actor for service. procs receives the
// channel's process input registrations and may be nil.
func NewChannel(meta ServiceMetadata, service Service, procs ProcessRegistry) *Channel {
	inbox := NewMailbox[Event]()
	return &Channel{
		info:    newChannelInfo(meta, inbox, procs),
		service: service,
		inbox:   inbox,
		done:    make(chan struct{}),
	}
}

// Start runs the actor goroutine. The Open hook runs first, on that goroutine.
func (c *Channel) Start() {
	if !c.state.CompareAndSwap(int32(StateCreated), int32(StateRunning)) {
		return
	}
	go c.run()
}

// Send enqueues an event for the actor.
func (c *Channel) Send(ev Event) error {
	return c.inbox.Send(ev)
}

// Info returns the channel's handle.
func (c *Channel) Info() *ChannelInfo {
	return c.info
}

// State returns the current lifecycle state.
func (c *Channel) State() State {
	return State(c.state.Load())
}

// Done is closed once the actor has terminated.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

func (c *Channel) run() {
	defer close(c.done)
	defer c.state.Store(int32(StateTerminated))
	defer c.inbox.Close()

	log := c.info.log
	log.Debug("channel started")
	c.invoke("open", func() error { return c.service.Open(c.info) })

	for {
		ev, err := c.inbox.Receive(context.Background())
		if err != nil {
			// closed without a shutdown event
			return
		}
		if _, ok := ev.(Shutdown); ok {
			c.state.Store(int32(StateShuttingDown))
			c.inbox.Close()
			c.invoke("shutdown", func() error { return c.service.Shutdown(c.info) })
			log.Debug("channel stopped")
			return
		}
		c.handle(ev)
	}
}

func (c *Channel) handle(ev Event) {
	info := c.info
	switch ev := ev.(type) {
	case Attach:
		info.addClient(ev.Session, Subscriber{Client: ev.Client, Mailbox: ev.Mailbox})
		c.invoke("attach", func() error {
			body, err := c.service.Attach(info, ev.Client, ev.Session)
			if err != nil || body == nil {
				return err
			}
			return info.Send(body, Only(ev.Session))
		})
	case Detach:
		c.invoke("detach", func() error { return c.service.Detach(info, ev.Session) })
		info.removeClient(ev.Session)
	case IPC:
		c.invoke("message", func() error {
			if ev.Command.Body == nil {
				return ErrMissingBody
			}
			body, err := c.service.Message(info, ev.Command, ev.Session)
			if err != nil || body == nil {
				return err
			}
			return info.SendCommand(goval.Command{Ref: ev.Command.Ref, Body: body}, Only(ev.Session))
		})
	case ProcessDead:
		c.invoke("process_dead", func() error { return c.service.ProcessDead(info, ev.ExitCode) })
	case FSEvent:
		c.invoke("fs_event", func() error { return c.service.FSEvent(info, ev.Event) })
	case Replspace:
		c.invoke("replspace", func() error { return c.service.Replspace(info, ev.Session, ev.Message) })
	default:
		info.log.Warn("dropping unexpected event %T", ev)
	}
}

// invoke runs a service hook. Errors and panics are logged and never stop
// the actor.
func (c *Channel) invoke(hook string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			c.info.log.Error("%s hook panicked: %v\n%s", hook, r, debug.Stack())
		}
	}()
	if err := fn(); err != nil {
		if errors.Is(err, ErrNoSession) {
			c.info.log.Debug("%s: %v", hook, err)
			return
		}
		c.info.log.Error("%s hook failed: %v", hook, err)
	}
}
