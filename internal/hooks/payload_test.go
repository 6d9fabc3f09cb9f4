package hooks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadConstructors(t *testing.T) {
	issue := Issue{Number: 1, Title: "t"}
	pr := PullRequest{Number: 2}
	wt := Worktree{Path: "/w", Name: "w"}

	tests := []struct {
		name    string
		payload Payload
		event   Event
	}{
		{"issue created", IssueCreated("o/r", issue), EventIssueCreated},
		{"issue started", IssueStarted("o/r", issue, "b"), EventIssueStarted},
		{"pr created", PRCreated("o/r", pr, "b", "main"), EventPRCreated},
		{"pr merged", PRMerged("o/r", pr, "b", "main"), EventPRMerged},
		{"worktree created", WorktreeCreated("o/r", "b", wt, nil), EventWorktreeCreated},
		{"worktree removed", WorktreeRemoved("o/r", "b", wt), EventWorktreeRemoved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.event, tt.payload.Event)
			assert.Equal(t, "o/r", tt.payload.Repo)
		})
	}
}

func TestPayloadJSON(t *testing.T) {
	p := PRMerged("octo/app", PullRequest{Number: 7, Title: "Fix", URL: "u", MergedAt: "2026-01-02T03:04:05Z"}, "feat", "main")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"event": "pr-merged",
		"repo": "octo/app",
		"pr": {"number": 7, "title": "Fix", "body": "", "url": "u", "merged_at": "2026-01-02T03:04:05Z"},
		"branch": "feat",
		"base": "main"
	}`, string(data))
}

func TestVariables(t *testing.T) {
	for _, e := range Events {
		vars := Variables(e)
		assert.Contains(t, vars, "${repo}", e)
		assert.Equal(t, "${_event_file}", vars[len(vars)-1], e)
	}
	assert.Contains(t, Variables(EventPRMerged), "${pr.merged_at}")
	assert.NotContains(t, Variables(EventPRCreated), "${pr.merged_at}")
	assert.Contains(t, Variables(EventWorktreeRemoved), "${worktree.path}")
}

func TestParseEventAndMode(t *testing.T) {
	e, err := ParseEvent(" pr-merged ")
	require.NoError(t, err)
	assert.Equal(t, EventPRMerged, e)

	_, err = ParseEvent("pr-closed")
	assert.ErrorIs(t, err, ErrInvalidHook)

	m, err := ParseMode("interactive")
	require.NoError(t, err)
	assert.Equal(t, ModeInteractive, m)

	_, err = ParseMode("loud")
	assert.ErrorIs(t, err, ErrInvalidHook)
}
