// Package replspace implements the loopback HTTP API tools inside the
// workspace use to ask a connected client for something, such as a GitHub
// token for git, or to open a file in the editor. Requests are fanned out
// to channel actors and answered through a nonce table.
package replspace

// Message is a request fanned out to channel actors.
type Message interface {
	Nonce() string
}

// GitHubTokenRequest asks a client for a GitHub token.
type GitHubTokenRequest struct {
	ID string
}

// OpenFileRequest asks a client to open a file. When WaitForClose is set
// the requester blocks until the client reports the file closed.
type OpenFileRequest struct {
	ID           string
	File         string
	WaitForClose bool
}

func (m GitHubTokenRequest) Nonce() string { return m.ID }
func (m OpenFileRequest) Nonce() string    { return m.ID }

// Reply answers a pending request. Token is empty for file close replies.
type Reply struct {
	Token string
}
