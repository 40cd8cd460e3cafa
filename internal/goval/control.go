package goval

import "time"

// OpenChanAction selects attach and create semantics for OpenChan.
type OpenChanAction int32

const (
	ActionCreate OpenChanAction = iota
	ActionAttach
	ActionAttachOrCreate
)

func (a OpenChanAction) String() string {
	switch a {
	case ActionCreate:
		return "CREATE"
	case ActionAttach:
		return "ATTACH"
	case ActionAttachOrCreate:
		return "ATTACH_OR_CREATE"
	default:
		return "UNKNOWN"
	}
}

// OpenChan asks the server to open or join a service channel.
type OpenChan struct {
	Service string
	Name    string
	Action  OpenChanAction
	ID      int32
}

// OpenChanState is the outcome reported by OpenChanRes.
type OpenChanState int32

const (
	OpenChanCreated OpenChanState = iota
	OpenChanAttached
	OpenChanError
	OpenChanUserError
)

type OpenChanRes struct {
	State OpenChanState
	ID    int32
	Error string
}

type CloseAction int32

const (
	CloseDisconnect CloseAction = iota
	CloseTryClose
	CloseClose
)

type CloseChan struct {
	Action CloseAction
	ID     int32
}

type CloseStatus int32

const (
	CloseStatusDisconnect CloseStatus = iota
	CloseStatusClose
	CloseStatusNotClose
)

type CloseChanRes struct {
	Status CloseStatus
	ID     int32
}

type ContainerStatus int32

const (
	ContainerSleep ContainerStatus = iota
	ContainerReady
)

type ContainerState struct {
	State ContainerStatus
}

type Ping struct{}

type Pong struct{}

type Ok struct{}

// Error is an in-band, client-visible failure.
type Error string

type ProtocolError struct {
	Text string
}

type Toast struct {
	Text string
}

type BootStage int32

const (
	BootHandshake BootStage = iota
	BootAcquiring
	BootComplete
	BootError
)

type BootStatus struct {
	Stage    BootStage
	Progress uint32
	Total    uint32
}

// Input is terminal or process input.
type Input string

// Output is terminal or process output. It may hold any bytes, including
// a rune split across two chunks.
type Output string

type ResizeTerm struct {
	Rows uint32
	Cols uint32
}

type ExecLifecycle int32

const (
	LifecycleNonBlocking ExecLifecycle = iota
	LifecycleBlocking
	LifecycleStdin
)

// Exec requests a plain (non-interactive) process run.
type Exec struct {
	Args      []string
	Env       map[string]string
	Blocking  bool
	Lifecycle ExecLifecycle
}

// State reports whether a process-backed channel is running.
type State int32

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "RUNNING"
	}
	return "STOPPED"
}

type RunMain struct{}

type Clear struct{}

// Execution modes of an output block.
const (
	ExecutionModeUnspecified int32 = iota
	ExecutionModeRun
)

type OutputBlockStartEvent struct {
	ExecutionMode    int32
	MeasureStartTime time.Time
}

type OutputBlockEndEvent struct {
	ExitCode       int32
	MeasureEndTime time.Time
}

func (*OpenChan) isBody()              {}
func (*OpenChanRes) isBody()           {}
func (*CloseChan) isBody()             {}
func (*CloseChanRes) isBody()          {}
func (*ContainerState) isBody()        {}
func (*Ping) isBody()                  {}
func (*Pong) isBody()                  {}
func (*Ok) isBody()                    {}
func (Error) isBody()                  {}
func (*ProtocolError) isBody()         {}
func (*Toast) isBody()                 {}
func (*BootStatus) isBody()            {}
func (Input) isBody()                  {}
func (Output) isBody()                 {}
func (*ResizeTerm) isBody()            {}
func (*Exec) isBody()                  {}
func (State) isBody()                  {}
func (*RunMain) isBody()               {}
func (*Clear) isBody()                 {}
func (*OutputBlockStartEvent) isBody() {}
func (*OutputBlockEndEvent) isBody()   {}
