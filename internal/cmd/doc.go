// Package cmd runs hook commands through the POSIX shell.
//
// [RunShell] is the only entry point. It never returns an error: every
// failure mode (non-zero exit, timeout, failure to start) is reported in
// the [ShellResult] so callers can classify it.
//
// # Usage
//
//	res := cmd.RunShell(ctx, "make test", 30*time.Second, worktreePath)
//	if res.TimedOut {
//	    // res.ExitCode is normally nil here
//	}
//
// # Design Notes
//
// Hooks are shell command strings written by the user, so they run through
// "sh -c" rather than being split into argv. Values substituted into them
// must be quoted beforehand (see the hooks package).
package cmd
