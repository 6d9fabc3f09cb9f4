package hooks

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Event identifies a lifecycle event hooks can subscribe to
type Event string

const (
	EventIssueCreated    Event = "issue-created"
	EventIssueStarted    Event = "issue-started"
	EventPRCreated       Event = "pr-created"
	EventPRMerged        Event = "pr-merged"
	EventWorktreeCreated Event = "worktree-created"
	EventWorktreeRemoved Event = "worktree-removed"
)

// Events lists every supported event in documentation order.
var Events = []Event{
	EventIssueCreated,
	EventIssueStarted,
	EventPRCreated,
	EventPRMerged,
	EventWorktreeCreated,
	EventWorktreeRemoved,
}

// Valid reports whether e is a known event.
func (e Event) Valid() bool {
	for _, known := range Events {
		if e == known {
			return true
		}
	}
	return false
}

// ParseEvent converts a user-supplied string into an Event.
func ParseEvent(s string) (Event, error) {
	e := Event(strings.TrimSpace(s))
	if !e.Valid() {
		return "", fmt.Errorf("%w: unknown event %q (valid: %s)", ErrInvalidHook, s, joinEvents())
	}
	return e, nil
}

func joinEvents() string {
	names := make([]string, len(Events))
	for i, e := range Events {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

// Mode controls how a hook's outcome affects the workflow that fired it
type Mode string

const (
	// ModeFireAndForget records the result and never stops the workflow.
	ModeFireAndForget Mode = "fire-and-forget"
	// ModeBlocking stops the workflow when the hook fails.
	ModeBlocking Mode = "blocking"
	// ModeInteractive shows the output and asks whether to continue.
	ModeInteractive Mode = "interactive"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeFireAndForget, ModeBlocking, ModeInteractive}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeFireAndForget || m == ModeBlocking || m == ModeInteractive
}

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown mode %q (valid: %s, %s, %s)", ErrInvalidHook, s, ModeFireAndForget, ModeBlocking, ModeInteractive)
	}
	return m, nil
}

// Outcome is the classification of a finished hook
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarn    Outcome = "warn"
	OutcomeAbort   Outcome = "abort"
	// OutcomeContinue is set when a user chose to go on after an
	// interactive hook.
	OutcomeContinue Outcome = "continue"
)

// ExitCodes overrides which exit codes count as success, abort or warn.
// A nil list keeps the default for that field.
type ExitCodes struct {
	Success []int `json:"success" yaml:"success"`
	Abort   []int `json:"abort" yaml:"abort"`
	Warn    []int `json:"warn" yaml:"warn"`
}

// DefaultTimeoutMs is used when a hook does not set timeoutMs.
const DefaultTimeoutMs = 30000

// Hook is a persisted rule binding an event to a shell command template
type Hook struct {
	Name           string     `json:"name" yaml:"name"`
	DisplayName    string     `json:"displayName" yaml:"displayName"`
	Event          Event      `json:"event" yaml:"event"`
	Command        string     `json:"command" yaml:"command"`
	Enabled        bool       `json:"enabled" yaml:"enabled"`
	TimeoutMs      int        `json:"timeoutMs" yaml:"timeoutMs"`
	Mode           Mode       `json:"mode" yaml:"mode"`
	ExitCodes      *ExitCodes `json:"exitCodes,omitempty" yaml:"exitCodes,omitempty"`
	ContinuePrompt string     `json:"continuePrompt,omitempty" yaml:"continuePrompt,omitempty"`
}

// NewHook returns an enabled fire-and-forget hook with default timeout.
func NewHook(name string, event Event, command string) Hook {
	h := Hook{
		Name:    name,
		Event:   event,
		Command: command,
		Enabled: true,
	}
	h.applyDefaults()
	return h
}

// UnmarshalJSON decodes a stored hook. A missing "enabled" field means
// enabled.
func (h *Hook) UnmarshalJSON(data []byte) error {
	type storedHook Hook
	raw := storedHook{Enabled: true}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*h = Hook(raw)
	return nil
}

// applyDefaults fills in the optional fields left empty.
func (h *Hook) applyDefaults() {
	if h.DisplayName == "" {
		h.DisplayName = h.Name
	}
	if h.TimeoutMs == 0 {
		h.TimeoutMs = DefaultTimeoutMs
	}
	if h.Mode == "" {
		h.Mode = ModeFireAndForget
	}
}

// Timeout returns the hook timeout as a duration.
func (h Hook) Timeout() time.Duration {
	return time.Duration(h.TimeoutMs) * time.Millisecond
}

// HookUpdate is a partial edit applied by Store.Update. Nil fields are left
// unchanged.
type HookUpdate struct {
	Name           *string
	DisplayName    *string
	Event          *Event
	Command        *string
	Enabled        *bool
	TimeoutMs      *int
	Mode           *Mode
	ExitCodes      *ExitCodes
	ContinuePrompt *string
}

// Apply copies the set fields of u onto h. Renaming a hook whose display
// name mirrored its old name renames the display name too.
func (u HookUpdate) Apply(h *Hook) {
	if u.Name != nil {
		if h.DisplayName == h.Name {
			h.DisplayName = *u.Name
		}
		h.Name = *u.Name
	}
	if u.DisplayName != nil {
		h.DisplayName = *u.DisplayName
	}
	if u.Event != nil {
		h.Event = *u.Event
	}
	if u.Command != nil {
		h.Command = *u.Command
	}
	if u.Enabled != nil {
		h.Enabled = *u.Enabled
	}
	if u.TimeoutMs != nil {
		h.TimeoutMs = *u.TimeoutMs
	}
	if u.Mode != nil {
		h.Mode = *u.Mode
	}
	if u.ExitCodes != nil {
		h.ExitCodes = u.ExitCodes
	}
	if u.ContinuePrompt != nil {
		h.ContinuePrompt = *u.ContinuePrompt
	}
}

// Result describes one hook execution
type Result struct {
	HookName    string  `json:"hookName"`
	DisplayName string  `json:"displayName"`
	Success     bool    `json:"success"`
	Output      string  `json:"output"`
	Stderr      string  `json:"stderr"`
	DurationMs  int64   `json:"durationMs"`
	ExitCode    *int    `json:"exitCode"` // nil when killed by a signal, timed out, or never started
	Mode        Mode    `json:"mode"`
	Outcome     Outcome `json:"outcome"`
	Aborted     bool    `json:"aborted"`
	Error       string  `json:"error,omitempty"`
}
