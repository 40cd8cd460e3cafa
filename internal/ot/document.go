// Package ot holds the server-side state of an operationally transformed
// text document: the buffer, its version history and collaborator cursors.
//
// A Document is not safe for concurrent use; it is owned by a single
// channel actor.
package ot

import (
	"context"
	"errors"
	"hash/crc32"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/goval-community/homeval/internal/goval"
)

// These messages are sent to clients verbatim.
var (
	ErrSkipPastBounds   = errors.New("Invalid skip past bounds")
	ErrDeletePastBounds = errors.New("Invalid delete past bounds")
	ErrVersionRange     = errors.New("Invalid version range")
	ErrBadHistory       = errors.New("stored history does not match content")
)

// Checksum is the IEEE crc32 of the UTF-8 encoding of s.
func Checksum(s string) uint32 {
	return crc32.ChecksumIEEE([]byte(s))
}

// Document is a linked text buffer.
type Document struct {
	path    string
	version uint32
	buf     []rune
	crc     uint32
	history []goval.OTPacket
	cursors map[string]goval.OTCursor
	now     func() time.Time
}

// NewDocument seeds a document at version 1 with a single packet inserting
// the full content. Invalid UTF-8 in content is replaced with U+FFFD and the
// checksum covers the replaced text.
func NewDocument(path, content string) *Document {
	buf := []rune(content)
	content = string(buf)
	d := &Document{
		path:    path,
		version: 1,
		buf:     buf,
		crc:     Checksum(content),
		cursors: make(map[string]goval.OTCursor),
		now:     time.Now,
	}
	d.history = []goval.OTPacket{{
		Version:   1,
		Op:        []goval.OTOp{goval.Insert(content)},
		Crc32:     d.crc,
		Committed: d.now().UTC(),
		Author:    goval.AuthorReplit,
	}}
	return d
}

// Restore rebuilds a document from a stored history. The history must be
// non-empty and its last packet must match content.
func Restore(path, content string, history []goval.OTPacket) (*Document, error) {
	if len(history) == 0 {
		return nil, ErrBadHistory
	}
	last := history[len(history)-1]
	buf := []rune(content)
	crc := Checksum(string(buf))
	if last.Crc32 != crc {
		return nil, ErrBadHistory
	}
	return &Document{
		path:    path,
		version: last.Version,
		buf:     buf,
		crc:     crc,
		history: append([]goval.OTPacket(nil), history...),
		cursors: make(map[string]goval.OTCursor),
		now:     time.Now,
	}, nil
}

func (d *Document) Path() string    { return d.path }
func (d *Document) Version() uint32 { return d.version }
func (d *Document) CRC() uint32     { return d.crc }
func (d *Document) Content() string { return string(d.buf) }
func (d *Document) Len() int        { return len(d.buf) }

// History returns the recorded packets, oldest first.
func (d *Document) History() []goval.OTPacket {
	return d.history
}

// validate walks ops without mutating anything. Inserts do not move the
// cursor.
func (d *Document) validate(ops []goval.OTOp) error {
	cursor, length := 0, len(d.buf)
	for _, op := range ops {
		switch op.Kind {
		case goval.OpSkip:
			if cursor+int(op.Count) > length {
				return ErrSkipPastBounds
			}
			cursor += int(op.Count)
		case goval.OpDelete:
			if cursor+int(op.Count) > length {
				return ErrDeletePastBounds
			}
			length -= int(op.Count)
		case goval.OpInsert:
			length += utf8.RuneCountInString(op.Text)
		}
	}
	return nil
}

// Apply applies a client operation batch and records it. On a bounds error
// nothing changes.
func (d *Document) Apply(ops []goval.OTOp, author goval.Author, userID uint32) (*goval.OTPacket, error) {
	if err := d.validate(ops); err != nil {
		return nil, err
	}

	cursor := 0
	for _, op := range ops {
		switch op.Kind {
		case goval.OpSkip:
			cursor += int(op.Count)
		case goval.OpDelete:
			d.buf = append(d.buf[:cursor], d.buf[cursor+int(op.Count):]...)
		case goval.OpInsert:
			ins := []rune(op.Text)
			buf := make([]rune, 0, len(d.buf)+len(ins))
			buf = append(buf, d.buf[:cursor]...)
			buf = append(buf, ins...)
			d.buf = append(buf, d.buf[cursor:]...)
		}
	}

	return d.record(ops, author, userID), nil
}

// Reconcile brings the buffer in line with content read from disk. It
// returns nil when the content is unchanged.
func (d *Document) Reconcile(ctx context.Context, content string) *goval.OTPacket {
	next := []rune(content)
	if Checksum(string(next)) == d.crc {
		return nil
	}
	ops := Diff(ctx, d.buf, next)
	d.buf = next
	return d.record(ops, goval.AuthorReplit, 0)
}

func (d *Document) record(ops []goval.OTOp, author goval.Author, userID uint32) *goval.OTPacket {
	d.version++
	d.crc = Checksum(string(d.buf))
	d.history = append(d.history, goval.OTPacket{
		Version:   d.version,
		Op:        ops,
		Crc32:     d.crc,
		Committed: d.now().UTC(),
		Author:    author,
		UserID:    userID,
	})
	packet := d.history[len(d.history)-1]
	return &packet
}

// Fetch returns history[from-1 : to+1]. from is a 1-based version while to
// is a zero-based history index, inclusive, so Fetch(1, N) after N applied
// batches returns all N+1 packets and Fetch(v, v) returns versions v and v+1.
func (d *Document) Fetch(from, to uint32) ([]goval.OTPacket, error) {
	if from < 1 || from-1 > to || int(to) >= len(d.history) {
		return nil, ErrVersionRange
	}
	return append([]goval.OTPacket(nil), d.history[from-1:to+1]...), nil
}

// SetCursor adds or replaces a cursor.
func (d *Document) SetCursor(c goval.OTCursor) {
	d.cursors[c.ID] = c
}

// DeleteCursor removes a cursor.
func (d *Document) DeleteCursor(id string) {
	delete(d.cursors, id)
}

// Cursors returns the live cursors ordered by id.
func (d *Document) Cursors() []goval.OTCursor {
	out := make([]goval.OTCursor, 0, len(d.cursors))
	for _, c := range d.cursors {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
