//go:build windows

package proc

import "os/exec"

func configureProcessGroup(cmd *exec.Cmd) {
	_ = cmd
}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
