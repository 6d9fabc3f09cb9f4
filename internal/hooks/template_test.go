package hooks

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func testIssuePayload() Payload {
	return IssueStarted("octo/app", Issue{
		Number: 42,
		Title:  "Fix login",
		Body:   "Steps to reproduce",
		URL:    "https://github.com/octo/app/issues/42",
	}, "feature/42-login")
}

func TestSubstitute(t *testing.T) {
	p := testIssuePayload()

	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{
			name:     "single variable",
			command:  "echo ${issue.title}",
			expected: "echo 'Fix login'",
		},
		{
			name:     "number is quoted too",
			command:  "echo ${issue.number}",
			expected: "echo '42'",
		},
		{
			name:     "multiple variables",
			command:  "git log ${branch} && open ${issue.url}",
			expected: "git log 'feature/42-login' && open 'https://github.com/octo/app/issues/42'",
		},
		{
			name:     "repeated variable",
			command:  "${repo} ${repo}",
			expected: "'octo/app' 'octo/app'",
		},
		{
			name:     "no variables",
			command:  "echo hello",
			expected: "echo hello",
		},
		{
			name:     "absent field left literal",
			command:  "echo ${pr.number}",
			expected: "echo ${pr.number}",
		},
		{
			name:     "unknown name left literal",
			command:  "echo ${nope} ${HOME}",
			expected: "echo ${nope} ${HOME}",
		},
		{
			name:     "bare dollar untouched",
			command:  "echo $HOME ${issue.number}",
			expected: "echo $HOME '42'",
		},
		{
			name:     "issue json",
			command:  "jq . <<< ${issue.json}",
			expected: `jq . <<< '{"number":42,"title":"Fix login","body":"Steps to reproduce","url":"https://github.com/octo/app/issues/42"}'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Substitute(tt.command, p, SubstituteOptions{})
			if result != tt.expected {
				t.Errorf("Substitute(%q) = %q, want %q", tt.command, result, tt.expected)
			}
		})
	}
}

func TestSubstitute_ShellEscaping(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "single quote",
			title:    "fix it's broken",
			expected: `echo 'fix it'\''s broken'`,
		},
		{
			name:     "command substitution",
			title:    "$(rm -rf /)",
			expected: `echo '$(rm -rf /)'`,
		},
		{
			name:     "backticks and semicolon",
			title:    "`id`; echo pwned",
			expected: "echo '`id`; echo pwned'",
		},
		{
			name:     "placeholder in value is not expanded again",
			title:    "${repo}",
			expected: "echo '${repo}'",
		},
		{
			name:     "empty value",
			title:    "",
			expected: "echo ''",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := IssueCreated("octo/app", Issue{Number: 1, Title: tt.title})
			result := Substitute("echo ${issue.title}", p, SubstituteOptions{})
			if result != tt.expected {
				t.Errorf("Substitute() = %q, want %q", result, tt.expected)
			}
		})
	}
}

// The shell must see exactly the original value, whatever it contains.
func TestSubstitute_ShellRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	values := []string{
		"fix it's broken",
		"multi\nline\nbody",
		`back\slash "double" $HOME ${repo} $(id) ` + "`id`",
		"'''",
		"  leading and trailing  ",
		"",
	}

	for _, v := range values {
		p := IssueCreated("octo/app", Issue{Number: 1, Body: v})
		cmd := Substitute("printf '%s' ${issue.body}", p, SubstituteOptions{})

		out, err := exec.Command("sh", "-c", cmd).Output()
		if err != nil {
			t.Fatalf("sh -c %q: %v", cmd, err)
		}
		if string(out) != v {
			t.Errorf("round trip of %q gave %q", v, out)
		}
	}
}

func TestSubstitute_PresenceRules(t *testing.T) {
	wt := Worktree{Path: "/src/app-42", Name: "app-42"}

	t.Run("worktree without issue", func(t *testing.T) {
		p := WorktreeCreated("octo/app", "feat", wt, nil)
		got := Substitute("${worktree.path} ${worktree.name} ${issue.number}", p, SubstituteOptions{})
		want := "'/src/app-42' 'app-42' ${issue.number}"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("worktree with issue", func(t *testing.T) {
		p := WorktreeCreated("octo/app", "feat", wt, &Issue{Number: 7})
		got := Substitute("${issue.number}", p, SubstituteOptions{})
		if got != "'7'" {
			t.Errorf("got %q, want %q", got, "'7'")
		}
	})

	t.Run("unmerged pr has no merged_at", func(t *testing.T) {
		p := PRCreated("octo/app", PullRequest{Number: 3}, "feat", "main")
		got := Substitute("${pr.number} ${pr.merged_at} ${base}", p, SubstituteOptions{})
		want := "'3' ${pr.merged_at} 'main'"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("merged pr", func(t *testing.T) {
		p := PRMerged("octo/app", PullRequest{Number: 3, MergedAt: "2026-01-02T03:04:05Z"}, "feat", "main")
		got := Substitute("${pr.merged_at}", p, SubstituteOptions{})
		if got != "'2026-01-02T03:04:05Z'" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("event file only when given", func(t *testing.T) {
		p := testIssuePayload()
		if got := Substitute("cat ${_event_file}", p, SubstituteOptions{}); got != "cat ${_event_file}" {
			t.Errorf("got %q", got)
		}
		got := Substitute("cat ${_event_file}", p, SubstituteOptions{EventFile: "/tmp/e.json"})
		if got != "cat '/tmp/e.json'" {
			t.Errorf("got %q", got)
		}
	})
}

func TestUsesEventFile(t *testing.T) {
	if !UsesEventFile("jq .issue ${_event_file}") {
		t.Error("expected event file to be detected")
	}
	if UsesEventFile("echo ${issue.json}") {
		t.Error("did not expect event file")
	}
}

func TestWriteEventFile(t *testing.T) {
	dir := t.TempDir()
	p := testIssuePayload()

	path, cleanup, err := WriteEventFile(dir, p)
	if err != nil {
		t.Fatalf("WriteEventFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("file created in %s, want %s", filepath.Dir(path), dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "ghp-event-") {
		t.Errorf("unexpected file name %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("event file is not valid JSON: %v", err)
	}
	if decoded.Event != EventIssueStarted || decoded.Issue == nil || decoded.Issue.Number != 42 {
		t.Errorf("decoded payload = %+v", decoded)
	}

	cleanup()
	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("event file still exists after cleanup: %v", err)
	}
}

func TestWriteEventFile_BadDir(t *testing.T) {
	_, cleanup, err := WriteEventFile(filepath.Join(t.TempDir(), "missing"), testIssuePayload())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	cleanup()
}
