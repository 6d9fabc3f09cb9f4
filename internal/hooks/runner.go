package hooks

//go:generate go tool mockgen -source=runner.go -destination=mocks/runner.gen.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bretwardjames/ghp-sub000/internal/cmd"
	"github.com/bretwardjames/ghp-sub000/internal/log"
	"github.com/bretwardjames/ghp-sub000/internal/ui/interactive"
)

const (
	defaultContinuePrompt = "Continue?"
	noOutputPlaceholder   = "(no output)"
)

// Controller asks a person what to do after an interactive hook.
type Controller interface {
	Prompt(text string) interactive.Decision
	ShowFull(text string)
}

// Runner executes the hooks registered for an event.
type Runner struct {
	store   *Store
	ui      Controller
	stdout  io.Writer
	stderr  io.Writer
	tempDir string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithController sets the controller used by interactive hooks.
func WithController(c Controller) RunnerOption {
	return func(r *Runner) { r.ui = c }
}

// WithOutput sets where boxes are printed: interactive output goes to
// stdout, blocking failures to stderr.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithTempDir sets the directory for ${_event_file} files.
func WithTempDir(dir string) RunnerOption {
	return func(r *Runner) { r.tempDir = dir }
}

// NewRunner returns a Runner over store. Without options it prompts on the
// process's terminal, prints to os.Stdout/os.Stderr and shows full output
// without a pager.
func NewRunner(store *Store, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:  store,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.ui == nil {
		r.ui = interactive.NewController("")
	}
	return r
}

// RunOptions tunes a single ExecuteHooksForEvent call.
type RunOptions struct {
	// Dir is the working directory for hook commands; empty means the
	// current directory.
	Dir string
}

// HasHooksForEvent reports whether any enabled hook listens to event, so
// callers can skip building a payload.
func (r *Runner) HasHooksForEvent(event Event) bool {
	return r.store.HasEnabledForEvent(event)
}

// ExecuteHooksForEvent runs the enabled hooks for event one after another,
// in registry order, and returns their results. It stops after the first
// result with Aborted set; callers should treat that as "stop the
// workflow".
//
// Hook failures never surface as errors. An unreadable store is logged and
// treated as having no hooks.
func (r *Runner) ExecuteHooksForEvent(ctx context.Context, event Event, p Payload, opts RunOptions) []Result {
	l := log.FromContext(ctx)

	hooks, err := r.store.EnabledForEvent(event)
	if err != nil {
		l.Printf("Warning: skipping %s hooks: %v\n", event, err)
		return nil
	}
	if len(hooks) == 0 {
		return nil
	}

	p.Event = event
	l.Debug("running event hooks", "event", event, "count", len(hooks))

	results := make([]Result, 0, len(hooks))
	for _, h := range hooks {
		res := r.runHook(ctx, h, p, opts.Dir)
		results = append(results, res)

		l.Debug("hook finished", "hook", h.Name, "outcome", res.Outcome, "durationMs", res.DurationMs)
		if res.Aborted {
			l.Debug("hook aborted event", "hook", h.Name, "event", event)
			break
		}
	}
	return results
}

// runHook takes one hook from Pending through Executing and Classified to
// its mode-specific terminal state.
func (r *Runner) runHook(ctx context.Context, h Hook, p Payload, dir string) Result {
	sr := r.execute(ctx, h, p, dir)

	res := Result{
		HookName:    h.Name,
		DisplayName: h.DisplayName,
		Output:      strings.TrimSpace(sr.Stdout),
		Stderr:      strings.TrimSpace(sr.Stderr),
		DurationMs:  sr.Duration.Milliseconds(),
		ExitCode:    sr.ExitCode,
		Mode:        h.Mode,
		Outcome:     Classify(sr.ExitCode, h.ExitCodes),
	}

	switch {
	case sr.TimedOut:
		res.Outcome = OutcomeAbort
		res.Error = fmt.Sprintf("Hook timed out after %dms", h.TimeoutMs)
	case sr.ExitCode == nil:
		res.Error = res.Stderr
		if res.Error == "" {
			res.Error = "Hook was terminated by a signal"
		}
	case res.Outcome == OutcomeAbort:
		res.Error = fmt.Sprintf("Hook exited with code %d", *sr.ExitCode)
	}
	res.Success = res.Outcome == OutcomeSuccess || res.Outcome == OutcomeWarn

	switch h.Mode {
	case ModeBlocking:
		if !res.Success {
			title := fmt.Sprintf("Hook %q failed", h.DisplayName)
			fmt.Fprintln(r.stderr, interactive.FormatErrorBox(title, displayText(res), interactive.DefaultMaxLines))
			res.Aborted = true
		}
	case ModeInteractive:
		r.escalate(h, &res, sr.TimedOut)
	default:
		// fire-and-forget: the caller inspects results if it cares.
	}

	return res
}

// execute substitutes the payload into the command and runs it. The event
// file, when requested, lives exactly as long as this call.
func (r *Runner) execute(ctx context.Context, h Hook, p Payload, dir string) cmd.ShellResult {
	var opts SubstituteOptions
	if UsesEventFile(h.Command) {
		path, cleanup, err := WriteEventFile(r.tempDir, p)
		defer cleanup()
		if err != nil {
			return cmd.ShellResult{Stderr: err.Error()}
		}
		opts.EventFile = path
	}

	command := Substitute(h.Command, p, opts)
	return cmd.RunShell(ctx, command, h.Timeout(), dir)
}

// escalate shows an interactive hook's output and asks whether to go on,
// re-prompting after each "view".
func (r *Runner) escalate(h Hook, res *Result, timedOut bool) {
	text := displayText(*res)
	title := fmt.Sprintf("%s (%s)", h.DisplayName, exitLabel(*res, timedOut))
	fmt.Fprintln(r.stdout, interactive.FormatBox(title, text, interactive.DefaultMaxLines))

	prompt := h.ContinuePrompt
	if prompt == "" {
		prompt = defaultContinuePrompt
	}

	for {
		switch r.ui.Prompt(prompt) {
		case interactive.View:
			r.ui.ShowFull(text)
			continue
		case interactive.Continue:
			res.Outcome = OutcomeContinue
			res.Aborted = false
		default:
			res.Aborted = true
		}
		return
	}
}

// displayText prefers stderr, then stdout, then the error message.
func displayText(res Result) string {
	for _, s := range []string{res.Stderr, res.Output, res.Error} {
		if s != "" {
			return s
		}
	}
	return noOutputPlaceholder
}

func exitLabel(res Result, timedOut bool) string {
	switch {
	case timedOut:
		return "timed out"
	case res.ExitCode == nil:
		return "no exit code"
	default:
		return "exit " + strconv.Itoa(*res.ExitCode)
	}
}
