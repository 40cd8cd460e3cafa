package goval

import "time"

// OpKind discriminates the three OT operation components.
type OpKind int

const (
	OpSkip OpKind = iota + 1
	OpDelete
	OpInsert
)

// OTOp is a single skip, delete or insert component.
type OTOp struct {
	Kind  OpKind
	Count uint32
	Text  string
}

func Skip(n uint32) OTOp      { return OTOp{Kind: OpSkip, Count: n} }
func Delete(n uint32) OTOp    { return OTOp{Kind: OpDelete, Count: n} }
func Insert(text string) OTOp { return OTOp{Kind: OpInsert, Text: text} }

// Author identifies who produced an OT packet.
type Author int32

const (
	AuthorUser Author = iota
	AuthorReplit
	AuthorModel
)

// OTPacket is one versioned, checksummed batch of operations. It is also
// the body of an Ot command.
type OTPacket struct {
	Version   uint32
	Op        []OTOp
	Crc32     uint32
	Committed time.Time
	Author    Author
	UserID    uint32
	Nonce     uint32
}

type OtLinkFile struct {
	File            *File
	HighConsistency bool
}

type OtLinkFileResponse struct {
	Version    uint32
	LinkedFile *File
}

// OTCursor is a collaborator's caret and selection.
type OTCursor struct {
	Position       uint32
	SelectionStart uint32
	SelectionEnd   uint32
	User           *User
	ID             string
}

type Otstatus struct {
	Contents   string
	Version    uint32
	LinkedFile *File
	Cursors    []OTCursor
}

type OtNewCursor struct{ OTCursor }

type OtDeleteCursor struct{ OTCursor }

type OtFetchRequest struct {
	VersionFrom uint32
	VersionTo   uint32
}

type OtFetchResponse struct {
	Packets []OTPacket
}

type Flush struct{}

func (*OTPacket) isBody()           {}
func (*OtLinkFile) isBody()         {}
func (*OtLinkFileResponse) isBody() {}
func (*Otstatus) isBody()           {}
func (*OtNewCursor) isBody()        {}
func (*OtDeleteCursor) isBody()     {}
func (*OtFetchRequest) isBody()     {}
func (*OtFetchResponse) isBody()    {}
func (*Flush) isBody()              {}
