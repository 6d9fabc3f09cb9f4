package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidModes lists the accepted hooks.default_mode values.
var ValidModes = []string{"fire-and-forget", "blocking", "interactive"}

func (c *Config) validate() error {
	if err := ValidatePath(c.Hooks.File, "hooks.file"); err != nil {
		return err
	}
	if c.Hooks.DefaultTimeout < 0 {
		return fmt.Errorf("invalid hooks.default_timeout %d: must be a positive number of milliseconds", c.Hooks.DefaultTimeout)
	}
	return validateEnum(c.Hooks.DefaultMode, "hooks.default_mode", ValidModes)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, FormatOptions(allowed))
	}
	return nil
}

// FormatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func FormatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
