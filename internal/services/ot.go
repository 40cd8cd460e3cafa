package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/consts"
	hfs "github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/ot"
	"github.com/goval-community/homeval/internal/store"
)

const errNotLinked = goval.Error("Command sent before otLinkFile")

func errNotUTF8(path string) goval.Error {
	return goval.Error(path + ": not a UTF-8 text file")
}

// OT serves collaborative editing of a single linked file.
type OT struct {
	actor.BaseService

	deps    Deps
	doc     *ot.Document
	abs     string
	watcher *hfs.Watcher
}

func NewOT(deps Deps) *OT {
	return &OT{deps: deps}
}

func (s *OT) Attach(*actor.ChannelInfo, identity.ClientInfo, int32) (goval.Body, error) {
	if s.doc == nil {
		return &goval.Otstatus{}, nil
	}
	return &goval.Otstatus{
		Contents:   s.doc.Content(),
		Version:    s.doc.Version(),
		LinkedFile: &goval.File{Path: s.doc.Path()},
		Cursors:    s.doc.Cursors(),
	}, nil
}

func (s *OT) Message(info *actor.ChannelInfo, cmd goval.Command, session int32) (goval.Body, error) {
	if s.doc == nil {
		link, ok := cmd.Body.(*goval.OtLinkFile)
		if !ok {
			return errNotLinked, nil
		}
		return s.link(info, link)
	}

	switch body := cmd.Body.(type) {
	case *goval.OtLinkFile:
		info.Logger().Debug("already linked to %s", s.doc.Path())
		return s.linkResponse(), nil
	case *goval.OTPacket:
		return s.apply(info, body, session)
	case *goval.OtNewCursor:
		s.doc.SetCursor(body.OTCursor)
		return nil, info.Send(body, actor.EveryoneExcept(session))
	case *goval.OtDeleteCursor:
		s.doc.DeleteCursor(body.ID)
		return nil, info.Send(body, actor.EveryoneExcept(session))
	case *goval.Flush:
		return &goval.Ok{}, nil
	case *goval.OtFetchRequest:
		packets, err := s.doc.Fetch(body.VersionFrom, body.VersionTo)
		if err != nil {
			return goval.Error(err.Error()), nil
		}
		return &goval.OtFetchResponse{Packets: packets}, nil
	default:
		info.Logger().Warn("unknown ot command %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}

func (s *OT) link(info *actor.ChannelInfo, link *goval.OtLinkFile) (goval.Body, error) {
	var path string
	if link.File != nil {
		path = link.File.Path
	}

	ctx := context.Background()
	raw, err := s.deps.FS.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goval.Error(path + ": no such file or directory"), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(raw) {
		return errNotUTF8(path), nil
	}

	s.doc = s.restore(ctx, info, path, string(raw))
	s.abs = s.deps.FS.Abs(path)
	s.persist(info)

	watcher, err := hfs.NewWatcher(s.deps.Debounce, func(ev hfs.Event) {
		if err := info.Notify(actor.FSEvent{Event: ev}); err != nil {
			info.Logger().Debug("dropping fs event for closed channel: %v", err)
		}
	})
	if err != nil {
		info.Logger().Warn("external changes to %s will not be tracked: %v", path, err)
	} else if err := watcher.Add(s.abs); err != nil {
		info.Logger().Warn("failed to watch %s: %v", path, err)
		_ = watcher.Close()
	} else {
		s.watcher = watcher
	}

	info.Logger().Info("linked %s at version %d", path, s.doc.Version())
	return s.linkResponse(), nil
}

// restore picks up a cached history when it still matches the file on disk.
func (s *OT) restore(ctx context.Context, info *actor.ChannelInfo, path, content string) *ot.Document {
	if s.deps.Files == nil {
		return ot.NewDocument(path, content)
	}
	cached, err := s.deps.Files.GetFile(ctx, path)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		info.Logger().Warn("failed to load cached history for %s: %v", path, err)
	case cached.CRC32 == ot.Checksum(content):
		doc, err := ot.Restore(path, content, cached.History)
		if err == nil {
			return doc
		}
		info.Logger().Warn("discarding cached history for %s: %v", path, err)
	}
	return ot.NewDocument(path, content)
}

func (s *OT) linkResponse() *goval.OtLinkFileResponse {
	return &goval.OtLinkFileResponse{
		Version:    s.doc.Version(),
		LinkedFile: &goval.File{Path: s.doc.Path(), Content: []byte(s.doc.Content())},
	}
}

func (s *OT) apply(info *actor.ChannelInfo, packet *goval.OTPacket, session int32) (goval.Body, error) {
	client, _ := info.Client(session)
	recorded, err := s.doc.Apply(packet.Op, packet.Author, client.ID)
	if err != nil {
		if errors.Is(err, ot.ErrSkipPastBounds) || errors.Is(err, ot.ErrDeletePastBounds) {
			return goval.Error(err.Error()), nil
		}
		return nil, err
	}

	if err := info.Send(recorded, actor.Everyone); err != nil {
		info.Logger().Warn("failed to broadcast version %d: %v", recorded.Version, err)
	}
	if err := s.deps.FS.WriteFile(context.Background(), s.doc.Path(), []byte(s.doc.Content())); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", s.doc.Path(), err)
	}
	s.persist(info)
	return &goval.Ok{}, nil
}

func (s *OT) FSEvent(info *actor.ChannelInfo, ev hfs.Event) error {
	if s.doc == nil || ev.Path != s.abs {
		return nil
	}
	if ev.Op == hfs.OpRemove || ev.Op == hfs.OpRename {
		info.Logger().Warn("%s changed on disk (%s), keeping the in-memory copy", s.doc.Path(), ev.Op)
		return nil
	}

	raw, err := s.deps.FS.ReadFile(context.Background(), s.doc.Path())
	if err != nil {
		return fmt.Errorf("failed to re-read %s: %w", s.doc.Path(), err)
	}
	if !utf8.Valid(raw) {
		info.Logger().Warn("%s is no longer valid UTF-8, keeping the in-memory copy", s.doc.Path())
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), consts.DiffTimeout)
	defer cancel()

	old := s.doc.Content()
	packet := s.doc.Reconcile(ctx, string(raw))
	if packet == nil {
		return nil
	}

	if stats, err := ot.LineStats(s.doc.Path(), old, s.doc.Content()); err == nil {
		info.Logger().Info("external change to %s: +%d ~%d -%d lines, now version %d",
			s.doc.Path(), stats.Added, stats.Changed, stats.Deleted, packet.Version)
	}

	s.persist(info)
	return info.Send(packet, actor.Everyone)
}

func (s *OT) Shutdown(*actor.ChannelInfo) error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *OT) persist(info *actor.ChannelInfo) {
	if s.deps.Files == nil {
		return
	}
	f := &store.File{
		Name:     s.doc.Path(),
		CRC32:    s.doc.CRC(),
		Contents: s.doc.Content(),
		History:  s.doc.History(),
	}
	if err := s.deps.Files.PutFile(context.Background(), f); err != nil {
		info.Logger().Warn("failed to cache history for %s: %v", f.Name, err)
	}
}
