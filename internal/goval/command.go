// Package goval defines the goval protocol command envelope and its bodies.
// Frames are encoded with the generated bindings in govalpb.
//
// Every WebSocket frame carries exactly one Command. Channel 0 is reserved
// for connection-level control traffic; every other channel id addresses an
// open service channel. The Session field doubles as a routing hint when a
// command is sent by a channel: 0 broadcasts, a positive value unicasts and
// a negative value broadcasts to everyone except that session.
package goval

// Command is the protocol envelope.
type Command struct {
	Channel int32
	Session int32
	Ref     string
	Body    Body
}

// Body is one of the command body kinds. A nil Body is a missing body.
//
// Bodies are treated as immutable once a command has been sent, which lets
// fan-out share them between recipients.
type Body interface {
	isBody()
}

// Clone returns a copy of the envelope suitable for delivery to another
// recipient.
func (c Command) Clone() Command {
	return c
}

// Reply builds a command on the same channel carrying body and ref.
func (c Command) Reply(body Body) Command {
	return Command{Channel: c.Channel, Session: c.Session, Ref: c.Ref, Body: body}
}
