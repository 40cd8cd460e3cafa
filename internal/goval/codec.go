package goval

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	pb "github.com/goval-community/homeval/internal/goval/govalpb"
)

// ErrDecode is returned for frames that are not a valid Command encoding.
var ErrDecode = errors.New("goval: malformed command")

// Encode serializes a command into a single binary frame.
func Encode(c Command) ([]byte, error) {
	b, err := proto.Marshal(toPB(c))
	if err != nil {
		return nil, fmt.Errorf("goval: encode %s: %w", BodyName(c.Body), err)
	}
	return b, nil
}

// Decode parses a binary frame. Malformed input yields an error wrapping
// ErrDecode. Unknown body kinds decode to a command with a nil Body.
func Decode(frame []byte) (Command, error) {
	var m pb.Command
	if err := proto.Unmarshal(frame, &m); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Command{
		Channel: m.GetChannel(),
		Session: m.GetSession(),
		Ref:     m.GetRef(),
		Body:    fromPB(&m),
	}, nil
}

// BodyName returns the oneof field name of the body kind, used in logs.
func BodyName(b Body) string {
	if b == nil {
		return "<nil>"
	}
	m := toPB(Command{Body: b}).ProtoReflect()
	fd := m.WhichOneof(m.Descriptor().Oneofs().ByName("body"))
	if fd == nil {
		return "unknown"
	}
	return string(fd.Name())
}

// MarshalPacket encodes a single OT packet, as stored in the file cache.
func MarshalPacket(p *OTPacket) ([]byte, error) {
	return proto.Marshal(packetToPB(p))
}

// UnmarshalPacket is the inverse of MarshalPacket.
func UnmarshalPacket(b []byte) (*OTPacket, error) {
	var m pb.OTPacket
	if err := proto.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return packetFromPB(&m), nil
}
