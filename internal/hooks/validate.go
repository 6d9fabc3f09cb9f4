package hooks

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,63}$`)

// ValidateName checks a hook name against [A-Za-z0-9_-]{1,63}.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: name %q must be 1-63 letters, digits, '-' or '_'", ErrInvalidHook, name)
	}
	return nil
}

// Validate checks a hook definition after defaults have been applied.
// Errors wrap ErrInvalidHook.
func (h Hook) Validate() error {
	if err := ValidateName(h.Name); err != nil {
		return err
	}
	if !h.Event.Valid() {
		return fmt.Errorf("%w: unknown event %q (valid: %s)", ErrInvalidHook, h.Event, joinEvents())
	}
	if !h.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidHook, h.Mode)
	}
	if strings.TrimSpace(h.Command) == "" {
		return fmt.Errorf("%w: command must not be empty", ErrInvalidHook)
	}
	if h.TimeoutMs <= 0 {
		return fmt.Errorf("%w: timeoutMs must be positive, got %d", ErrInvalidHook, h.TimeoutMs)
	}
	return nil
}
