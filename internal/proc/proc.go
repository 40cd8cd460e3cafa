package proc

import (
	"fmt"

	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/logger"
)

// Proc is a plain child process. Stdout chunks are emitted as Output
// bodies and stderr chunks as Error bodies; there is no scrollback.
type Proc struct {
	*process
	stdout *emitWriter
	stderr *emitWriter
}

// StartProc spawns args, handing every output chunk to emit. emit is called
// from the copier goroutines.
func StartProc(args []string, opts Options, emit func(goval.Body)) (*Proc, error) {
	cmd, err := command(args, opts)
	if err != nil {
		return nil, err
	}
	configureProcessGroup(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stderr: %w", err)
	}

	log := logger.Named(fmt.Sprintf("proc:%d", opts.Channel))
	p := &Proc{
		process: newProcess(cmd, opts, log),
		stdout:  &emitWriter{wrap: func(b []byte) goval.Body { return goval.Output(b) }, emit: emit},
		stderr:  &emitWriter{wrap: func(b []byte) goval.Body { return goval.Error(b) }, emit: emit},
	}
	p.stdin = stdin
	p.drainFirst = true
	p.closers = append(p.closers, stdin)
	p.onCancel = func() {
		p.stdout.cancel()
		p.stderr.cancel()
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", args[0], err)
	}

	p.copyOutput(stdout, p.stdout)
	p.copyOutput(stderr, p.stderr)
	p.run()
	log.Debug("started %q as pid %d", args, cmd.Process.Pid)
	return p, nil
}
