package hooks

import "errors"

var (
	// ErrHookNotFound is returned when no hook has the requested name.
	ErrHookNotFound = errors.New("hook not found")
	// ErrHookExists is returned when adding or renaming onto a taken name.
	ErrHookExists = errors.New("hook already exists")
	// ErrInvalidHook is returned when a hook definition fails validation.
	ErrInvalidHook = errors.New("invalid hook")
)
