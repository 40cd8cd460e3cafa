package ot

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/goval"
)

// applyStandard applies ops with inserts advancing the cursor.
func applyStandard(t *testing.T, old string, ops []goval.OTOp) string {
	t.Helper()
	src := []rune(old)
	var out []rune
	cursor := 0
	for _, op := range ops {
		switch op.Kind {
		case goval.OpSkip:
			require.LessOrEqual(t, cursor+int(op.Count), len(src))
			out = append(out, src[cursor:cursor+int(op.Count)]...)
			cursor += int(op.Count)
		case goval.OpDelete:
			require.LessOrEqual(t, cursor+int(op.Count), len(src))
			cursor += int(op.Count)
		case goval.OpInsert:
			out = append(out, []rune(op.Text)...)
		}
	}
	return string(append(out, src[cursor:]...))
}

func TestNewDocumentSeedsVersionOne(t *testing.T) {
	d := NewDocument("a.txt", "hello")
	assert.Equal(t, uint32(1), d.Version())
	require.Len(t, d.History(), 1)
	seed := d.History()[0]
	assert.Equal(t, uint32(1), seed.Version)
	assert.Equal(t, []goval.OTOp{goval.Insert("hello")}, seed.Op)
	assert.Equal(t, Checksum("hello"), seed.Crc32)
}

func TestNewDocumentChecksumMatchesBuffer(t *testing.T) {
	d := NewDocument("a.txt", "ab\xffcd")
	seed := d.History()[0]
	assert.Equal(t, Checksum(d.Content()), seed.Crc32)
	assert.Equal(t, d.CRC(), seed.Crc32)
	assert.Equal(t, []goval.OTOp{goval.Insert(d.Content())}, seed.Op)

	// the same bytes read back from disk are not an external change
	assert.Nil(t, d.Reconcile(context.Background(), "ab\xffcd"))
	assert.Equal(t, uint32(1), d.Version())
}

func TestApplySkipInsert(t *testing.T) {
	d := NewDocument("a.txt", "hello")
	p, err := d.Apply([]goval.OTOp{goval.Skip(5), goval.Insert("!")}, goval.AuthorUser, 7)
	require.NoError(t, err)

	assert.Equal(t, "hello!", d.Content())
	assert.Equal(t, uint32(2), p.Version)
	assert.Equal(t, Checksum("hello!"), p.Crc32)
	assert.Equal(t, uint32(7), p.UserID)
}

func TestApplyInsertDoesNotAdvanceCursor(t *testing.T) {
	d := NewDocument("a.txt", "abc")
	_, err := d.Apply([]goval.OTOp{goval.Insert("X"), goval.Insert("Y")}, goval.AuthorUser, 0)
	require.NoError(t, err)
	assert.Equal(t, "YXabc", d.Content())

	_, err = d.Apply([]goval.OTOp{goval.Skip(1), goval.Delete(1), goval.Insert("-")}, goval.AuthorUser, 0)
	require.NoError(t, err)
	assert.Equal(t, "Y-abc", d.Content())

	// a delete right after an insert removes the inserted text
	_, err = d.Apply([]goval.OTOp{goval.Insert("+"), goval.Delete(1)}, goval.AuthorUser, 0)
	require.NoError(t, err)
	assert.Equal(t, "Y-abc", d.Content())
}

func TestApplyMultibyte(t *testing.T) {
	d := NewDocument("a.txt", "héllo wörld")
	_, err := d.Apply([]goval.OTOp{goval.Skip(6), goval.Delete(5), goval.Insert("ворлд")}, goval.AuthorUser, 0)
	require.NoError(t, err)
	assert.Equal(t, "héllo ворлд", d.Content())
	assert.Equal(t, Checksum("héllo ворлд"), d.CRC())
}

func TestApplyRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		ops  []goval.OTOp
		err  error
	}{
		{"skip", []goval.OTOp{goval.Skip(6)}, ErrSkipPastBounds},
		{"delete", []goval.OTOp{goval.Skip(3), goval.Delete(3)}, ErrDeletePastBounds},
		{"late skip", []goval.OTOp{goval.Delete(2), goval.Skip(4)}, ErrSkipPastBounds},
		{"after valid insert", []goval.OTOp{goval.Insert("xx"), goval.Skip(7), goval.Delete(1)}, ErrDeletePastBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument("a.txt", "hello")
			before := append([]goval.OTPacket(nil), d.History()...)

			_, err := d.Apply(tt.ops, goval.AuthorUser, 0)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, "hello", d.Content())
			assert.Equal(t, uint32(1), d.Version())
			assert.Equal(t, before, d.History())
			assert.Equal(t, Checksum("hello"), d.CRC())
		})
	}
}

func TestApplyVersionAndChecksumInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDocument("a.txt", "the quick brown fox")

	applied := 0
	for i := 0; i < 500; i++ {
		ops := randomOps(rng, d.Len())
		if _, err := d.Apply(ops, goval.AuthorUser, 1); err != nil {
			continue
		}
		applied++

		last := d.History()[len(d.History())-1]
		assert.Equal(t, Checksum(d.Content()), last.Crc32)
	}

	assert.Equal(t, uint32(applied+1), d.Version())
	for i, p := range d.History() {
		assert.Equal(t, uint32(i+1), p.Version)
	}
}

func randomOps(rng *rand.Rand, length int) []goval.OTOp {
	var ops []goval.OTOp
	cursor := 0
	for n := rng.Intn(4) + 1; n > 0; n-- {
		switch rng.Intn(3) {
		case 0:
			// occasionally overshoot
			k := rng.Intn(length-cursor+2) + 0
			ops = append(ops, goval.Skip(uint32(k)))
			cursor += k
		case 1:
			k := rng.Intn(length-cursor+2) + 0
			ops = append(ops, goval.Delete(uint32(k)))
			length -= k
		case 2:
			s := strings.Repeat(string(rune('a'+rng.Intn(26))), rng.Intn(3)+1)
			ops = append(ops, goval.Insert(s))
			length += len(s)
		}
		if cursor > length {
			break
		}
	}
	return ops
}

func TestFetch(t *testing.T) {
	d := NewDocument("a.txt", "")
	const n = 5
	for i := 0; i < n; i++ {
		_, err := d.Apply([]goval.OTOp{goval.Insert("x")}, goval.AuthorUser, 0)
		require.NoError(t, err)
	}

	packets, err := d.Fetch(1, n)
	require.NoError(t, err)
	require.Len(t, packets, n+1)
	for i, p := range packets {
		assert.Equal(t, uint32(i+1), p.Version)
	}

	packets, err = d.Fetch(3, 3)
	require.NoError(t, err)
	require.Len(t, packets, 2)
	assert.Equal(t, uint32(3), packets[0].Version)
	assert.Equal(t, uint32(4), packets[1].Version)

	packets, err = d.Fetch(n+1, n)
	require.NoError(t, err)
	require.Len(t, packets, 1)
	assert.Equal(t, uint32(n+1), packets[0].Version)

	for _, r := range [][2]uint32{{0, 1}, {1, n + 1}, {5, 2}} {
		_, err := d.Fetch(r[0], r[1])
		assert.ErrorIs(t, err, ErrVersionRange, "range %v", r)
	}
}

func TestReconcile(t *testing.T) {
	d := NewDocument("a.txt", "hello world")

	assert.Nil(t, d.Reconcile(context.Background(), "hello world"))
	assert.Equal(t, uint32(1), d.Version())

	p := d.Reconcile(context.Background(), "hello brave new world!")
	require.NotNil(t, p)
	assert.Equal(t, uint32(2), p.Version)
	assert.Equal(t, goval.AuthorReplit, p.Author)
	assert.Equal(t, "hello brave new world!", d.Content())
	assert.Equal(t, Checksum("hello brave new world!"), p.Crc32)
	assert.Equal(t, "hello brave new world!", applyStandard(t, "hello world", p.Op))
}

func TestRestore(t *testing.T) {
	d := NewDocument("a.txt", "hello")
	_, err := d.Apply([]goval.OTOp{goval.Skip(5), goval.Insert("!")}, goval.AuthorUser, 0)
	require.NoError(t, err)

	r, err := Restore("a.txt", "hello!", d.History())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), r.Version())
	assert.Len(t, r.History(), 2)

	_, err = Restore("a.txt", "changed on disk", d.History())
	assert.ErrorIs(t, err, ErrBadHistory)
	_, err = Restore("a.txt", "", nil)
	assert.ErrorIs(t, err, ErrBadHistory)
}

func TestCursors(t *testing.T) {
	d := NewDocument("a.txt", "")
	d.SetCursor(goval.OTCursor{ID: "b", Position: 2})
	d.SetCursor(goval.OTCursor{ID: "a", Position: 1})
	d.SetCursor(goval.OTCursor{ID: "b", Position: 3})

	cursors := d.Cursors()
	require.Len(t, cursors, 2)
	assert.Equal(t, "a", cursors[0].ID)
	assert.Equal(t, uint32(3), cursors[1].Position)

	d.DeleteCursor("a")
	assert.Len(t, d.Cursors(), 1)
}
