package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// eventFileVar is the engine-reserved variable holding the path of a
// temporary JSON file with the whole payload.
const eventFileVar = "_event_file"

// placeholderRegex matches ${name} where name may contain dots, e.g.
// ${issue.title}.
var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.]*)\}`)

// SubstituteOptions tunes Substitute.
type SubstituteOptions struct {
	// EventFile is substituted for ${_event_file} when non-empty.
	EventFile string
}

// shellQuote makes s a single POSIX shell word: it's -> 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Substitute replaces every ${variable} in command with the shell-quoted
// value from p. Variables whose backing field is absent from the payload,
// and names that are not variables at all, are left as literal text.
//
// Replacement is a single pass, so payload values containing "${...}" are
// never expanded a second time.
func Substitute(command string, p Payload, opts SubstituteOptions) string {
	vars := p.variables(opts)

	return placeholderRegex.ReplaceAllStringFunc(command, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := vars[name]; ok {
			return shellQuote(value)
		}
		return match
	})
}

// UsesEventFile reports whether command asks for ${_event_file}.
func UsesEventFile(command string) bool {
	return strings.Contains(command, "${"+eventFileVar+"}")
}

// WriteEventFile writes p as JSON to a new owner-only temp file in dir
// (os.TempDir() when empty). The returned cleanup removes the file and
// ignores removal errors; it is safe to call more than once.
func WriteEventFile(dir string, p Payload) (string, func(), error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", func() {}, fmt.Errorf("marshal event payload: %w", err)
	}

	f, err := os.CreateTemp(dir, "ghp-event-*.json")
	if err != nil {
		return "", func() {}, fmt.Errorf("create event file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if err := f.Chmod(0o600); err != nil {
		f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("chmod event file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("write event file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("write event file: %w", err)
	}

	return path, cleanup, nil
}
