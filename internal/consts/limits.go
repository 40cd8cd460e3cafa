package consts

import "time"

// Process bridge limits
const (
	// MaxScrollback is the number of PTY output bytes replayed to joining sessions
	MaxScrollback = 10000
	// ReadBufferSize is the chunk size process output is read in
	ReadBufferSize = 4 * 1024
	// PtyRows and PtyCols are the initial terminal size
	PtyRows = 24
	PtyCols = 80
)

// Polling intervals
const (
	// ReapInterval is how often process liveness is checked
	ReapInterval = 50 * time.Millisecond
	// NonceEvictInterval is how often expired replspace nonces are dropped
	NonceEvictInterval = 10 * time.Second
)

// Timeouts for various operations
const (
	// DiffTimeout bounds the diff computed for an external file change
	DiffTimeout = 1 * time.Second
	// WatchDebounce collapses bursts of filesystem events
	WatchDebounce = 1 * time.Second
	// ReplspaceTimeout is the default wait for a client reply
	ReplspaceTimeout = 60 * time.Second
)

// WebSocket connection tuning
const (
	// WriteWait is the time allowed to write a frame to the peer
	WriteWait = 10 * time.Second
	// PongWait is the time allowed to read the next pong from the peer
	PongWait = 60 * time.Second
	// PingPeriod must be less than PongWait
	PingPeriod = (PongWait * 9) / 10
	// MaxFrameSize bounds inbound frames
	MaxFrameSize = 16 * 1024 * 1024
)
