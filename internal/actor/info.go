package actor

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/logger"
)

type targetKind int

const (
	targetEveryone targetKind = iota
	targetEveryoneExcept
	targetOnly
)

// Target selects the recipients of a channel send.
type Target struct {
	kind    targetKind
	session int32
}

// Everyone addresses every attached session.
var Everyone = Target{kind: targetEveryone}

// EveryoneExcept addresses every attached session but one.
func EveryoneExcept(session int32) Target {
	return Target{kind: targetEveryoneExcept, session: session}
}

// Only addresses a single session.
func Only(session int32) Target {
	return Target{kind: targetOnly, session: session}
}

// wireSession is the session field a command carries for this target.
func (t Target) wireSession() int32 {
	switch t.kind {
	case targetEveryoneExcept:
		return -t.session
	case targetOnly:
		return t.session
	default:
		return 0
	}
}

func (t Target) String() string {
	switch t.kind {
	case targetEveryoneExcept:
		return fmt.Sprintf("everyone except %d", t.session)
	case targetOnly:
		return fmt.Sprintf("session %d", t.session)
	default:
		return "everyone"
	}
}

// Subscriber is a session attached to a channel.
type Subscriber struct {
	Client  identity.ClientInfo
	Mailbox *Outbox
}

// ChannelInfo is the handle a Service uses to talk to its channel: its
// identity, its subscribers and its own mailbox. It is safe for use from
// goroutines a service spawns (process readers, timers).
type ChannelInfo struct {
	ServiceMetadata

	inbox *Mailbox[Event]
	procs ProcessRegistry
	log   *logger.Logger

	mu      sync.RWMutex
	clients map[int32]Subscriber
}

func newChannelInfo(meta ServiceMetadata, inbox *Mailbox[Event], procs ProcessRegistry) *ChannelInfo {
	return &ChannelInfo{
		ServiceMetadata: meta,
		inbox:           inbox,
		procs:           procs,
		log:             logger.Named(fmt.Sprintf("chan:%d:%s", meta.ID, meta.Service)),
		clients:         make(map[int32]Subscriber),
	}
}

// Logger returns the channel's logger.
func (i *ChannelInfo) Logger() *logger.Logger {
	return i.log
}

// Send delivers body to the target sessions, stamped with this channel's id.
func (i *ChannelInfo) Send(body goval.Body, target Target) error {
	return i.SendCommand(goval.Command{Body: body}, target)
}

// SendCommand delivers cmd to the target sessions. The channel and session
// fields are overwritten; the ref is kept. A failure to reach one session
// does not prevent delivery to the others.
func (i *ChannelInfo) SendCommand(cmd goval.Command, target Target) error {
	cmd.Channel = i.ID
	cmd.Session = target.wireSession()

	i.mu.RLock()
	defer i.mu.RUnlock()

	if target.kind == targetOnly {
		sub, ok := i.clients[target.session]
		if !ok {
			return fmt.Errorf("%w: %d", ErrNoSession, target.session)
		}
		return sub.Mailbox.Send(cmd)
	}

	var errs []error
	for session, sub := range i.clients {
		if target.kind == targetEveryoneExcept && session == target.session {
			continue
		}
		if err := sub.Mailbox.Send(cmd); err != nil {
			errs = append(errs, fmt.Errorf("session %d: %w", session, err))
		}
	}
	return errors.Join(errs...)
}

// Notify enqueues an event on this channel's own mailbox.
func (i *ChannelInfo) Notify(ev Event) error {
	return i.inbox.Send(ev)
}

// Client returns the identity of an attached session.
func (i *ChannelInfo) Client(session int32) (identity.ClientInfo, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sub, ok := i.clients[session]
	return sub.Client, ok
}

// Outbox returns the mailbox of an attached session.
func (i *ChannelInfo) Outbox(session int32) (*Outbox, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sub, ok := i.clients[session]
	return sub.Mailbox, ok
}

// Sessions lists attached sessions in ascending order.
func (i *ChannelInfo) Sessions() []int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sessions := make([]int32, 0, len(i.clients))
	for s := range i.clients {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(a, b int) bool { return sessions[a] < sessions[b] })
	return sessions
}

// RegisterProcess routes Input commands for this channel straight to sink.
func (i *ChannelInfo) RegisterProcess(sink InputSink) {
	if i.procs != nil {
		i.procs.RegisterProcess(i.ID, sink)
	}
}

// UnregisterProcess removes the Input fast path for this channel.
func (i *ChannelInfo) UnregisterProcess() {
	if i.procs != nil {
		i.procs.UnregisterProcess(i.ID)
	}
}

func (i *ChannelInfo) addClient(session int32, sub Subscriber) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.clients[session] = sub
}

func (i *ChannelInfo) removeClient(session int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.clients, session)
}
