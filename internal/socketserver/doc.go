// Package socketserver implements the goval websocket endpoint.
//
// # Architecture
//
//   - Server: upgrades GET /wsv2/:token, resolves the token to an identity
//     and starts a Client for the connection
//   - SessionManager: allocates session ids and owns each session's outbox
//   - Client: read and write pumps between the websocket and the router
//   - Router: owns the channel registries and routes every command
//
// # Message Protocol
//
// Every binary frame carries one protobuf encoded goval.Command. Channel 0
// carries control traffic (Ping, OpenChan, CloseChan), every other channel
// id addresses a channel actor:
//
//	client -> OpenChan{Service: "ot", Name: "a.txt", Action: CREATE}
//	server <- OpenChanRes{ID: 1}
//	client -> Command{Channel: 1, Body: OtLinkFile{...}}
//
// Inbound commands from all sessions pass through one router queue, so the
// order a session sends in is the order its channels see.
package socketserver
