package goval

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	pb "github.com/goval-community/homeval/internal/goval/govalpb"
)

func roundTrip(t *testing.T, in Command) Command {
	t.Helper()
	frame, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(frame)
	require.NoError(t, err)
	return out
}

func TestEncodeDecodeEnvelope(t *testing.T) {
	in := Command{
		Channel: 3,
		Session: -7,
		Ref:     "abc",
		Body:    &OpenChan{Service: "ot", Name: "a.txt", Action: ActionAttachOrCreate},
	}

	out := roundTrip(t, in)

	assert.Equal(t, int32(3), out.Channel)
	assert.Equal(t, int32(-7), out.Session)
	assert.Equal(t, "abc", out.Ref)
	assert.Equal(t, in.Body, out.Body)
}

func TestScalarBodiesKeepPresence(t *testing.T) {
	for _, body := range []Body{Error(""), Input("ls\r"), Output("hi"), StateStopped, StateRunning} {
		out := roundTrip(t, Command{Channel: 1, Body: body})
		assert.Equal(t, body, out.Body, BodyName(body))
	}
}

func TestEmptyBodiesKeepPresence(t *testing.T) {
	out := roundTrip(t, Command{Body: &Ping{}})
	_, ok := out.Body.(*Ping)
	assert.True(t, ok, "expected *Ping, got %T", out.Body)
}

func TestOTPacketRoundTrip(t *testing.T) {
	committed := time.Unix(1700000000, 500).UTC()
	in := &OTPacket{
		Version:   4,
		Op:        []OTOp{Skip(0), Delete(2), Insert("héllo")},
		Crc32:     0xdeadbeef,
		Committed: committed,
		Author:    AuthorUser,
		UserID:    23054564,
	}

	b, err := MarshalPacket(in)
	require.NoError(t, err)
	out, err := UnmarshalPacket(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestExecEnvRoundTrip(t *testing.T) {
	in := &Exec{
		Args:     []string{"sh", "-c", "echo hi"},
		Env:      map[string]string{"B": "2", "A": "1"},
		Blocking: true,
	}
	out := roundTrip(t, Command{Channel: 2, Body: in})
	assert.Equal(t, in, out.Body)
}

func TestNestedMessages(t *testing.T) {
	in := &Otstatus{
		Contents:   "hello",
		Version:    2,
		LinkedFile: &File{Path: "a.txt", Content: []byte("hello")},
		Cursors: []OTCursor{
			{Position: 1, ID: "c1", User: &User{ID: 9, Name: "bob"}},
		},
	}
	out := roundTrip(t, Command{Body: in})
	assert.Equal(t, in, out.Body)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte{0x0a, 0xff})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestDecodeUnknownBodyLeavesNil(t *testing.T) {
	// field 900, varint 1
	frame := []byte{0xa0, 0x38, 0x01}
	out, err := Decode(frame)
	require.NoError(t, err)
	assert.Nil(t, out.Body)
}

func TestBodyName(t *testing.T) {
	assert.Equal(t, "otLinkFile", BodyName(&OtLinkFile{}))
	assert.Equal(t, "<nil>", BodyName(nil))
	assert.Equal(t, "statRes", BodyName(&StatResult{}))
	assert.Equal(t, "output", BodyName(Output("x")))
}

// Frames must stay readable by any client built from goval.proto.
func TestEncodeMatchesGeneratedBindings(t *testing.T) {
	frame, err := Encode(Command{
		Channel: 4,
		Session: 2,
		Ref:     "r1",
		Body:    &OtLinkFile{File: &File{Path: "main.go"}, HighConsistency: true},
	})
	require.NoError(t, err)

	var m pb.Command
	require.NoError(t, proto.Unmarshal(frame, &m))
	assert.Equal(t, int32(4), m.GetChannel())
	assert.Equal(t, int32(2), m.GetSession())
	assert.Equal(t, "r1", m.GetRef())
	require.NotNil(t, m.GetOtLinkFile())
	assert.Equal(t, "main.go", m.GetOtLinkFile().GetFile().GetPath())
	assert.True(t, m.GetOtLinkFile().GetHighConsistency())
}

func TestEnvelopeFieldNumbers(t *testing.T) {
	frame, err := Encode(Command{Channel: 1, Ref: "x", Body: Input("a")})
	require.NoError(t, err)

	var nums []protowire.Number
	for len(frame) > 0 {
		num, typ, n := protowire.ConsumeTag(frame)
		require.GreaterOrEqual(t, n, 0)
		frame = frame[n:]
		n = protowire.ConsumeFieldValue(num, typ, frame)
		require.GreaterOrEqual(t, n, 0)
		frame = frame[n:]
		nums = append(nums, num)
	}
	assert.ElementsMatch(t, []protowire.Number{1, 16, 1000}, nums)
}

func TestOutputKeepsInvalidUTF8(t *testing.T) {
	// a three-byte rune cut after its first two bytes
	split := Output("ok \xe2\x82")
	out := roundTrip(t, Command{Channel: 1, Body: split})
	assert.Equal(t, split, out.Body)

	stderr := Error("\xff\xfe")
	out = roundTrip(t, Command{Channel: 1, Body: stderr})
	assert.Equal(t, stderr, out.Body)
}

func TestDecodeTruncatedPacket(t *testing.T) {
	_, err := UnmarshalPacket([]byte{0x1a, 0x05, 0x08})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}
