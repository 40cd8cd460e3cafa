package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/goval"
)

// collectOutput receives until a non-Output command arrives, returning the
// concatenated output and that command.
func collectOutput(t *testing.T, box *actor.Outbox) (string, goval.Command) {
	t.Helper()
	var out strings.Builder
	for {
		cmd := recv(t, box)
		if o, ok := cmd.Body.(goval.Output); ok {
			out.WriteString(string(o))
			continue
		}
		return out.String(), cmd
	}
}

// waitOutput reports whether substr shows up in the output within d.
func waitOutput(box *actor.Outbox, substr string, d time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	var out strings.Builder
	for {
		cmd, err := box.Receive(ctx)
		if err != nil {
			return false
		}
		if o, ok := cmd.Body.(goval.Output); ok {
			out.WriteString(string(o))
			if strings.Contains(out.String(), substr) {
				return true
			}
		}
	}
}

func TestExecRunsAndReportsExit(t *testing.T) {
	h := newHarness(t, NewExec(Deps{}.withDefaults()))
	box := h.attach(1, "a")

	h.send(1, "run", &goval.Exec{Args: []string{"sh", "-c", "echo hi; echo oops >&2; exit 3"}})

	var stdout strings.Builder
	var stderr []goval.Error
	var states []goval.State
	final := recvUntil(t, box, func(cmd goval.Command) bool {
		switch b := cmd.Body.(type) {
		case goval.Output:
			stdout.WriteString(string(b))
		case goval.State:
			states = append(states, b)
		case goval.Error:
			if cmd.Ref != "run" {
				stderr = append(stderr, b)
			}
		}
		return cmd.Ref == "run"
	})

	assert.Equal(t, goval.Error("exit status 3"), final.Body)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Equal(t, []goval.Error{"oops\n"}, stderr)
	assert.Equal(t, []goval.State{goval.StateStopped, goval.StateRunning}, states)
	assert.Equal(t, goval.StateStopped, recvBody[goval.State](t, box))
}

func TestExecQueuesBlockingRequests(t *testing.T) {
	h := newHarness(t, NewExec(Deps{}.withDefaults()))
	box := h.attach(1, "a")

	h.send(1, "first", &goval.Exec{Args: []string{"sh", "-c", "sleep 0.3"}})
	h.send(1, "second", &goval.Exec{Args: []string{"true"}})
	h.send(1, "third", &goval.Exec{Args: []string{"sh", "-c", "echo queued"}, Blocking: true})

	refused := recvUntil(t, box, func(cmd goval.Command) bool { return cmd.Ref == "second" })
	assert.Equal(t, goval.Error("Already running"), refused.Body)

	first := recvUntil(t, box, func(cmd goval.Command) bool { return cmd.Ref == "first" })
	assert.Equal(t, &goval.Ok{}, first.Body)

	third := recvUntil(t, box, func(cmd goval.Command) bool { return cmd.Ref == "third" })
	assert.Equal(t, &goval.Ok{}, third.Body)
}

func TestOutputRunMain(t *testing.T) {
	deps := Deps{DotReplit: &config.DotReplit{Run: []string{"sh", "-c", "echo from-run; exit 2"}}}.withDefaults()
	h := newHarness(t, NewOutput(deps))
	box := h.attach(1, "a")
	assert.Equal(t, goval.StateStopped, recvBody[goval.State](t, box))

	h.send(1, "", &goval.RunMain{})
	start := recvBody[*goval.OutputBlockStartEvent](t, box)
	assert.Equal(t, goval.ExecutionModeRun, start.ExecutionMode)
	assert.False(t, start.MeasureStartTime.IsZero())
	assert.Equal(t, goval.StateRunning, recvBody[goval.State](t, box))

	out, next := collectOutput(t, box)
	assert.Contains(t, out, "from-run")
	end, ok := next.Body.(*goval.OutputBlockEndEvent)
	require.True(t, ok, "got %s", goval.BodyName(next.Body))
	assert.Equal(t, int32(2), end.ExitCode)

	assert.Equal(t, goval.Error("exit code 2"), recv(t, box).Body)
	assert.Equal(t, goval.StateStopped, recvBody[goval.State](t, box))
}

func TestOutputClearCancels(t *testing.T) {
	deps := Deps{DotReplit: &config.DotReplit{Run: []string{"sleep", "30"}}}.withDefaults()
	h := newHarness(t, NewOutput(deps))
	box := h.attach(1, "a")
	recv(t, box)

	h.send(1, "", &goval.RunMain{})
	recvBody[*goval.OutputBlockStartEvent](t, box)
	recvBody[goval.State](t, box)

	// a late joiner gets the start event and the running state
	late := h.attach(2, "b")
	recvBody[*goval.OutputBlockStartEvent](t, late)
	assert.Equal(t, goval.StateRunning, recvBody[goval.State](t, late))

	h.send(1, "", &goval.Clear{})
	end := recvUntil(t, box, func(cmd goval.Command) bool {
		_, ok := cmd.Body.(*goval.OutputBlockEndEvent)
		return ok
	})
	assert.Equal(t, int32(-1), end.Body.(*goval.OutputBlockEndEvent).ExitCode)
	assert.Equal(t, goval.Error("exit code -1"), recv(t, box).Body)
	assert.Equal(t, goval.StateStopped, recvBody[goval.State](t, box))
}

func TestShellEchoesAndRestarts(t *testing.T) {
	t.Setenv("SHELL", "/bin/sh")
	h := newHarness(t, NewShell(Deps{}.withDefaults()))
	box := h.attach(1, "a")

	h.send(1, "", goval.Input("echo marker$((40+2))\n"))
	require.True(t, waitOutput(box, "marker42", waitFor))

	h.send(1, "", &goval.ResizeTerm{Rows: 40, Cols: 120})
	h.send(1, "", goval.Input("exit\n"))

	// input sent before the restart lands is lost, so keep asking
	restarted := false
	for i := 0; i < 20 && !restarted; i++ {
		h.send(1, "", goval.Input("echo again$((2+3))\n"))
		restarted = waitOutput(box, "again5", 250*time.Millisecond)
	}
	assert.True(t, restarted, "shell was not restarted")
}
