// Package actor implements channel actors: one goroutine per open channel
// draining an unbounded mailbox and serializing every call into the
// channel's Service.
package actor

import (
	"errors"

	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/replspace"
)

var (
	// ErrUnknownService is returned when no Service exists for a tag.
	ErrUnknownService = errors.New("unknown service")
	// ErrMissingBody is returned for commands without a body.
	ErrMissingBody = errors.New("expected command body")
	// ErrNoSession is returned when a unicast target is not attached.
	ErrNoSession = errors.New("session is not attached to channel")
)

// Event is a message delivered to a channel actor
type Event interface {
	Type() string
}

// Attach subscribes a session to the channel.
type Attach struct {
	Session int32
	Client  identity.ClientInfo
	Mailbox *Outbox
}

// Detach unsubscribes a session from the channel.
type Detach struct {
	Session int32
}

// IPC carries a client command addressed to the channel.
type IPC struct {
	Command goval.Command
	Session int32
}

// ProcessDead reports the exit of a process owned by the channel.
type ProcessDead struct {
	ExitCode int
}

// FSEvent reports a change to a watched file.
type FSEvent struct {
	Event fs.Event
}

// Replspace delivers a side-channel request. Session is the session last
// seen on the requesting channel, or 0 when unknown.
type Replspace struct {
	Session int32
	Message replspace.Message
}

// Shutdown terminates the actor after running the Shutdown hook.
type Shutdown struct{}

func (Attach) Type() string      { return "attach" }
func (Detach) Type() string      { return "detach" }
func (IPC) Type() string         { return "ipc" }
func (ProcessDead) Type() string { return "process_dead" }
func (FSEvent) Type() string     { return "fs_event" }
func (Replspace) Type() string   { return "replspace" }
func (Shutdown) Type() string    { return "shutdown" }

// ServiceMetadata identifies a channel. An empty Name means the channel is
// anonymous and can never be attached to by name.
type ServiceMetadata struct {
	ID      int32
	Service string
	Name    string
}

// InputSink accepts process input without going through the actor.
type InputSink interface {
	Write(input string) error
}

// ProcessRegistry is the router side of the process input fast path.
type ProcessRegistry interface {
	RegisterProcess(channel int32, sink InputSink)
	UnregisterProcess(channel int32)
}
