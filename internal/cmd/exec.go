package cmd

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/bretwardjames/ghp-sub000/internal/log"
)

// killGrace is how long a timed-out process gets to exit after SIGTERM
// before the whole process group is killed. It also bounds how long Wait
// keeps reading from pipes held open by orphaned grandchildren.
const killGrace = 500 * time.Millisecond

// ShellResult is the outcome of RunShell
type ShellResult struct {
	Stdout   string
	Stderr   string
	ExitCode *int // nil when killed by a signal or never started
	TimedOut bool
	Duration time.Duration
}

// RunShell runs command through "sh -c" in dir and captures both streams.
//
// The process exit races a timer of the given timeout; whichever fires
// first wins. On exit the timer is stopped. On timeout the process group
// receives SIGTERM (then SIGKILL after a grace period), TimedOut is set and
// ExitCode is whatever the process reports, normally nil. A timeout <= 0
// disables the timer.
//
// Failing to start the shell is not an error: it is reported as a nil
// ExitCode with the start error in Stderr.
//
// ctx only supplies the logger; a run is bounded by its timeout alone.
func RunShell(ctx context.Context, command string, timeout time.Duration, dir string) ShellResult {
	logDone := log.FromContext(ctx).Command(dir, "sh", "-c", command)
	start := time.Now()

	c := exec.Command("sh", "-c", command)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	c.WaitDelay = killGrace
	setProcGroup(c)

	if err := c.Start(); err != nil {
		d := time.Since(start)
		logDone(d)
		return ShellResult{Stderr: err.Error(), Duration: d}
	}

	exited := make(chan struct{})
	go func() {
		_ = c.Wait() // exit status is read from ProcessState
		close(exited)
	}()

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	var res ShellResult
	select {
	case <-exited:
	case <-timeoutC:
		res.TimedOut = true
		_ = terminate(c)
		select {
		case <-exited:
		case <-time.After(killGrace):
			_ = kill(c)
			<-exited
		}
	}

	res.Duration = time.Since(start)
	logDone(res.Duration)

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	if ps := c.ProcessState; ps != nil {
		// ExitCode is -1 when the process was terminated by a signal.
		if code := ps.ExitCode(); code >= 0 {
			res.ExitCode = &code
		}
	}
	return res
}
