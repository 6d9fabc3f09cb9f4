//go:build !unix

package cmd

import "os/exec"

func setProcGroup(*exec.Cmd) {}

func terminate(c *exec.Cmd) error {
	return kill(c)
}

func kill(c *exec.Cmd) error {
	if c.Process == nil {
		return nil
	}
	return c.Process.Kill()
}
