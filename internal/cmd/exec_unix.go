//go:build unix

package cmd

import (
	"os/exec"
	"syscall"
)

// setProcGroup runs the shell in its own process group so a timeout also
// reaches anything the hook command spawned.
func setProcGroup(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminate sends SIGTERM to the command's process group.
func terminate(c *exec.Cmd) error {
	return signalGroup(c, syscall.SIGTERM)
}

// kill sends SIGKILL to the command's process group.
func kill(c *exec.Cmd) error {
	return signalGroup(c, syscall.SIGKILL)
}

func signalGroup(c *exec.Cmd, sig syscall.Signal) error {
	if c.Process == nil {
		return nil
	}
	return syscall.Kill(-c.Process.Pid, sig)
}
