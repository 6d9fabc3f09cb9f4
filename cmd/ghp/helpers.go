package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/hooks"
)

// errSilentExit makes the process exit 1 without printing anything more;
// the command has already explained itself.
var errSilentExit = errors.New("silent exit")

func isSilentExit(err error) bool {
	return errors.Is(err, errSilentExit)
}

// openStore returns the hook store configured for this invocation.
func openStore(ctx context.Context) *hooks.Store {
	return hooks.NewStore(config.FromContext(ctx).Hooks.File)
}

// withSuggestion decorates a not-found error with the closest hook name.
func withSuggestion(store *hooks.Store, name string, err error) error {
	if !errors.Is(err, hooks.ErrHookNotFound) {
		return err
	}
	names, loadErr := store.Names()
	if loadErr != nil || len(names) == 0 {
		return err
	}
	if s := suggest(name, names); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

// suggest returns the best fuzzy match for name among candidates. Both
// directions are tried so that a typo with a missing letter still matches.
func suggest(name string, candidates []string) string {
	if matches := fuzzy.Find(name, candidates); len(matches) > 0 {
		return matches[0].Str
	}
	for _, c := range candidates {
		if len(fuzzy.Find(c, []string{name})) > 0 {
			return c
		}
	}
	return ""
}

// parseCodes parses a comma-separated list of exit codes. An empty string
// is an empty, non-nil list.
func parseCodes(flag, s string) ([]int, error) {
	codes := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("--%s: %q is not an exit code", flag, part)
		}
		codes = append(codes, n)
	}
	return codes, nil
}

// openInput opens path for reading; "-" is stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// stdinIsTerminal reports whether the command reads from a terminal.
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
