package socketserver

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/logger"
	"github.com/goval-community/homeval/internal/replspace"
)

// ServiceFactory builds the service behind a newly created channel.
type ServiceFactory func(service string) (actor.Service, error)

const openFailed = "Could not create / attach channel"

// inbound is one unit of work for the router loop.
type inbound struct {
	session *Session
	cmd     goval.Command
	closed  bool
}

type channelEntry struct {
	channel  *actor.Channel
	meta     actor.ServiceMetadata
	sessions map[int32]struct{}
}

// Router owns the channel registries. Every inbound command and every
// session close goes through a single queue, so a CloseChan and an
// OpenChan racing for the same channel are applied in arrival order.
type Router struct {
	sessions *SessionManager
	factory  ServiceFactory
	inbox    *actor.Mailbox[inbound]
	log      *logger.Logger

	mu          sync.Mutex
	nextChannel int32
	channels    map[int32]*channelEntry
	procs       map[int32]actor.InputSink
	lastSession map[int32]int32
}

// NewRouter creates a router creating services through factory.
func NewRouter(sessions *SessionManager, factory ServiceFactory) *Router {
	return &Router{
		sessions:    sessions,
		factory:     factory,
		inbox:       actor.NewMailbox[inbound](),
		log:         logger.Named("router"),
		channels:    make(map[int32]*channelEntry),
		procs:       make(map[int32]actor.InputSink),
		lastSession: make(map[int32]int32),
	}
}

// Dispatch queues a decoded command from s.
func (r *Router) Dispatch(s *Session, cmd goval.Command) {
	if err := r.inbox.Send(inbound{session: s, cmd: cmd}); err != nil {
		r.log.Debug("Dropping command from session %d: %v", s.ID, err)
	}
}

// CloseSession queues the teardown of s. Commands s sent earlier are
// routed first.
func (r *Router) CloseSession(s *Session) {
	if err := r.inbox.Send(inbound{session: s, closed: true}); err != nil {
		// router already stopped; nothing left to detach from
		r.sessions.Unregister(s.ID)
	}
}

// Run routes queued work until ctx is done, then shuts every channel down.
func (r *Router) Run(ctx context.Context) error {
	r.log.Info("Router started")
	defer r.shutdownAll()
	for {
		in, err := r.inbox.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, actor.ErrMailboxClosed) {
				return nil
			}
			return err
		}
		if in.closed {
			r.closeSession(in.session)
			continue
		}
		r.route(in.session, in.cmd)
	}
}

func (r *Router) route(s *Session, cmd goval.Command) {
	if cmd.Channel == 0 {
		r.control(s, cmd)
		return
	}

	if input, ok := cmd.Body.(goval.Input); ok {
		r.mu.Lock()
		sink := r.procs[cmd.Channel]
		r.mu.Unlock()
		if sink != nil {
			err := sink.Write(string(input))
			if err == nil {
				return
			}
			r.log.Debug("Input fast path for channel %d failed: %v", cmd.Channel, err)
		}
	}

	r.mu.Lock()
	entry, ok := r.channels[cmd.Channel]
	if ok {
		r.lastSession[cmd.Channel] = s.ID
	}
	r.mu.Unlock()
	if !ok {
		r.log.Warn("Session %d sent %s to unknown channel %d", s.ID, goval.BodyName(cmd.Body), cmd.Channel)
		return
	}
	if err := entry.channel.Send(actor.IPC{Command: cmd, Session: s.ID}); err != nil {
		r.log.Warn("Channel %d rejected command: %v", cmd.Channel, err)
	}
}

func (r *Router) control(s *Session, cmd goval.Command) {
	switch body := cmd.Body.(type) {
	case *goval.Ping:
		r.reply(s, cmd.Ref, &goval.Pong{})
	case *goval.OpenChan:
		r.openChan(s, cmd.Ref, body)
	case *goval.CloseChan:
		r.closeChan(s, cmd.Ref, body)
	case nil:
		r.log.Warn("Session %d sent a control command without body", s.ID)
	default:
		r.log.Debug("Ignoring control %s from session %d", goval.BodyName(body), s.ID)
	}
}

func (r *Router) reply(s *Session, ref string, body goval.Body) {
	if err := s.Outbox.Send(goval.Command{Ref: ref, Body: body}); err != nil {
		r.log.Debug("Session %d is gone: %v", s.ID, err)
	}
}

func (r *Router) openChan(s *Session, ref string, req *goval.OpenChan) {
	var entry *channelEntry
	if req.Action == goval.ActionAttach || req.Action == goval.ActionAttachOrCreate || req.Service == "git" {
		entry = r.lookup(req.Service, req.Name)
	}
	if entry == nil && (req.Action == goval.ActionCreate || req.Action == goval.ActionAttachOrCreate) {
		var err error
		entry, err = r.create(req.Service, req.Name)
		if err != nil {
			r.log.Warn("Session %d could not open %q: %v", s.ID, req.Service, err)
		}
	}
	if entry == nil {
		r.reply(s, ref, &goval.ProtocolError{Text: openFailed})
		return
	}

	r.reply(s, ref, &goval.OpenChanRes{State: goval.OpenChanCreated, ID: entry.meta.ID})

	r.mu.Lock()
	entry.sessions[s.ID] = struct{}{}
	s.channels[entry.meta.ID] = struct{}{}
	r.mu.Unlock()

	if err := entry.channel.Send(actor.Attach{Session: s.ID, Client: s.Client, Mailbox: s.Outbox}); err != nil {
		r.log.Warn("Channel %d rejected attach: %v", entry.meta.ID, err)
	}
	r.log.Debug("Session %d joined channel %d (%s %q)", s.ID, entry.meta.ID, entry.meta.Service, entry.meta.Name)
}

// lookup finds the lowest-id live channel with the given service and
// non-empty name.
func (r *Router) lookup(service, name string) *channelEntry {
	if name == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *channelEntry
	for id, entry := range r.channels {
		if entry.meta.Service != service || entry.meta.Name != name {
			continue
		}
		if found == nil || id < found.meta.ID {
			found = entry
		}
	}
	return found
}

func (r *Router) create(service, name string) (*channelEntry, error) {
	svc, err := r.factory(service)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.nextChannel++
	meta := actor.ServiceMetadata{ID: r.nextChannel, Service: service, Name: name}
	entry := &channelEntry{
		channel:  actor.NewChannel(meta, svc, r),
		meta:     meta,
		sessions: make(map[int32]struct{}),
	}
	r.channels[meta.ID] = entry
	r.mu.Unlock()

	entry.channel.Start()
	r.log.Info("Created channel %d (%s %q)", meta.ID, service, name)
	return entry, nil
}

func (r *Router) closeChan(s *Session, ref string, req *goval.CloseChan) {
	r.mu.Lock()
	entry, ok := r.channels[req.ID]
	member := false
	if ok {
		_, member = entry.sessions[s.ID]
	}
	r.mu.Unlock()

	if member {
		r.leave(s, entry)
	}
	r.reply(s, ref, &goval.CloseChanRes{Status: goval.CloseStatusClose, ID: req.ID})
}

// leave removes s from entry, shutting the channel down when s was the
// last session in it.
func (r *Router) leave(s *Session, entry *channelEntry) {
	id := entry.meta.ID

	r.mu.Lock()
	delete(entry.sessions, s.ID)
	delete(s.channels, id)
	last := len(entry.sessions) == 0
	if last {
		r.purgeLocked(id)
	}
	r.mu.Unlock()

	if err := entry.channel.Send(actor.Detach{Session: s.ID}); err != nil {
		r.log.Debug("Channel %d rejected detach: %v", id, err)
	}
	if last {
		r.log.Info("Last session left channel %d, shutting it down", id)
		_ = entry.channel.Send(actor.Shutdown{})
	}
}

func (r *Router) purgeLocked(id int32) {
	delete(r.channels, id)
	delete(r.procs, id)
	delete(r.lastSession, id)
}

func (r *Router) closeSession(s *Session) {
	r.mu.Lock()
	entries := make([]*channelEntry, 0, len(s.channels))
	for id := range s.channels {
		if entry, ok := r.channels[id]; ok {
			entries = append(entries, entry)
		}
	}
	r.mu.Unlock()

	for _, entry := range entries {
		r.leave(s, entry)
	}
	r.sessions.Unregister(s.ID)
}

func (r *Router) shutdownAll() {
	r.inbox.Close()

	r.mu.Lock()
	entries := make([]*channelEntry, 0, len(r.channels))
	for id, entry := range r.channels {
		entries = append(entries, entry)
		r.purgeLocked(id)
	}
	r.mu.Unlock()

	for _, entry := range entries {
		_ = entry.channel.Send(actor.Shutdown{})
	}
	timeout := time.After(5 * time.Second)
	for _, entry := range entries {
		select {
		case <-entry.channel.Done():
		case <-timeout:
			r.log.Warn("Channel %d did not shut down in time", entry.meta.ID)
			return
		}
	}
}

// RegisterProcess routes Input for channel straight to sink.
func (r *Router) RegisterProcess(channel int32, sink actor.InputSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.channels[channel]; ok {
		r.procs[channel] = sink
	}
}

// UnregisterProcess sends Input for channel back through its actor.
func (r *Router) UnregisterProcess(channel int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.procs, channel)
}

// LastSession returns the session that most recently messaged channel,
// or 0.
func (r *Router) LastSession(channel int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSession[channel]
}

// BroadcastReplspace hands a replspace request to every live channel.
func (r *Router) BroadcastReplspace(session int32, msg replspace.Message) {
	r.mu.Lock()
	targets := make([]*actor.Channel, 0, len(r.channels))
	for _, entry := range r.channels {
		targets = append(targets, entry.channel)
	}
	r.mu.Unlock()

	for _, ch := range targets {
		_ = ch.Send(actor.Replspace{Session: session, Message: msg})
	}
}

// Channels lists the live channels in id order.
func (r *Router) Channels() []actor.ServiceMetadata {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]actor.ServiceMetadata, 0, len(r.channels))
	for _, entry := range r.channels {
		out = append(out, entry.meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Members lists the sessions attached to channel in ascending order.
func (r *Router) Members(channel int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.channels[channel]
	if !ok {
		return nil
	}
	out := make([]int32, 0, len(entry.sessions))
	for id := range entry.sessions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasProcess reports whether channel is registered for the input fast path.
func (r *Router) HasProcess(channel int32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.procs[channel]
	return ok
}
