package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		quiet bool
		want  string
	}{
		{"writes formatted output", false, "hook notify finished in 42ms"},
		{"suppressed when quiet", true, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, false, tt.quiet)
			l.Printf("hook %s finished in %dms", "notify", 42)
			if got := buf.String(); got != tt.want {
				t.Errorf("Printf output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Println("Warning:", "store unreadable")
	if got := buf.String(); got != "Warning: store unreadable\n" {
		t.Errorf("Println output = %q", got)
	}

	buf.Reset()
	New(&buf, true, true).Println("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Println wrote %q when quiet", buf.String())
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/tmp/wt", "sh", "-c", "echo hi")
		done(120 * time.Millisecond)
		got := buf.String()
		if !strings.Contains(got, "[/tmp/wt] $ sh -c echo hi") {
			t.Errorf("Command output = %q, want dir prefix and command", got)
		}
		if !strings.Contains(got, "120ms") {
			t.Errorf("Command output = %q, want to contain duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Command("", "less", "-R")(time.Millisecond)
		if got := buf.String(); !strings.HasPrefix(got, "$ less -R") {
			t.Errorf("Command output = %q, want prefix %q", got, "$ less -R")
		}
	})

	t.Run("silent unless verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Command("", "sh")(time.Second)
		New(&buf, true, true).Command("", "sh")(time.Second)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("key-val pairs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("running hook", "hook", "notify", "event", "pr-merged", "orphan")
		got := buf.String()
		for _, want := range []string{"running hook", "hook=notify", "event=pr-merged"} {
			if !strings.Contains(got, want) {
				t.Errorf("Debug output = %q, want to contain %q", got, want)
			}
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should drop unpaired key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf, false, false).Debug("hidden", "k", "v")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose, quiet, want bool
	}{
		{true, false, true},
		{false, true, false},
		{true, true, false},
		{false, false, false},
	}

	for _, tt := range tests {
		if got := New(io.Discard, tt.verbose, tt.quiet).IsVerbose(); got != tt.want {
			t.Errorf("IsVerbose(verbose=%v, quiet=%v) = %v, want %v", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	if got := FromContext(WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext did not return the stored logger")
	}

	fallback := FromContext(context.Background())
	if fallback == nil {
		t.Fatal("FromContext returned nil for empty context")
	}
	fallback.Printf("dropped")
	if fallback.Writer() != io.Discard {
		t.Error("fallback logger should write to io.Discard")
	}
}
