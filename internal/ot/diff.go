package ot

import (
	"context"

	"github.com/pmezard/go-difflib/difflib"
	godiff "github.com/sourcegraph/go-diff/diff"

	"github.com/goval-community/homeval/internal/goval"
)

// MaxDiffRunes caps the combined size of the inputs Diff hands to the
// matcher. Larger changes are sent as a full replace.
const MaxDiffRunes = 1 << 18

// Diff computes the operations turning old into new, in the usual OT
// convention where skips and inserts both advance the cursor. Runs of the
// same kind are merged and a trailing skip is dropped. If ctx ends before
// the diff is done, the result replaces the whole buffer.
//
// The matcher cannot be interrupted: after a timeout its goroutine keeps
// running until it finishes. MaxDiffRunes bounds that work.
func Diff(ctx context.Context, old, new []rune) []goval.OTOp {
	if len(old)+len(new) > MaxDiffRunes || ctx.Err() != nil {
		return replaceAll(old, new)
	}
	done := make(chan []goval.OTOp, 1)
	go func() {
		done <- diffRunes(old, new)
	}()

	select {
	case ops := <-done:
		return ops
	case <-ctx.Done():
		return replaceAll(old, new)
	}
}

func replaceAll(old, new []rune) []goval.OTOp {
	var ops []goval.OTOp
	if len(old) > 0 {
		ops = append(ops, goval.Delete(uint32(len(old))))
	}
	if len(new) > 0 {
		ops = append(ops, goval.Insert(string(new)))
	}
	return ops
}

func diffRunes(old, new []rune) []goval.OTOp {
	a, b := runeStrings(old), runeStrings(new)
	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	var ops []goval.OTOp
	push := func(op goval.OTOp) {
		if n := len(ops); n > 0 && ops[n-1].Kind == op.Kind {
			ops[n-1].Count += op.Count
			ops[n-1].Text += op.Text
			return
		}
		ops = append(ops, op)
	}

	for _, c := range matcher.GetOpCodes() {
		switch c.Tag {
		case 'e':
			push(goval.Skip(uint32(c.I2 - c.I1)))
		case 'd':
			push(goval.Delete(uint32(c.I2 - c.I1)))
		case 'i':
			push(goval.Insert(string(new[c.J1:c.J2])))
		case 'r':
			push(goval.Delete(uint32(c.I2 - c.I1)))
			push(goval.Insert(string(new[c.J1:c.J2])))
		}
	}

	if n := len(ops); n > 0 && ops[n-1].Kind == goval.OpSkip {
		ops = ops[:n-1]
	}
	return ops
}

func runeStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// Stats summarizes a change as line counts for logging.
type Stats struct {
	Added, Changed, Deleted int32
}

// LineStats renders a unified diff between old and new and counts the
// touched lines.
func LineStats(path, old, new string) (Stats, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(new),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  0,
	})
	if err != nil || text == "" {
		return Stats{}, err
	}

	fd, err := godiff.ParseFileDiff([]byte(text))
	if err != nil {
		return Stats{}, err
	}
	st := fd.Stat()
	return Stats{Added: st.Added, Changed: st.Changed, Deleted: st.Deleted}, nil
}
