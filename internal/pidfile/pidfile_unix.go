//go:build !windows

package pidfile

import (
	"errors"
	"os"
	"strings"
	"syscall"
)

// isProcessRunning probes pid with signal 0.
func isProcessRunning(pid int) (bool, string) {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false, "process not found"
	}

	err = process.Signal(syscall.Signal(0))
	if err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return false, "process has finished"
		}
		// EPERM: it exists, it just isn't ours
		if strings.Contains(err.Error(), "operation not permitted") {
			return true, ""
		}
		return false, "cannot signal process"
	}
	return true, ""
}
