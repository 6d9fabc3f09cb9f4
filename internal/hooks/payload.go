package hooks

import (
	"encoding/json"
	"strconv"
)

// Issue is the issue part of an event payload
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
}

// PullRequest is the pull request part of an event payload
type PullRequest struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	URL      string `json:"url"`
	MergedAt string `json:"merged_at,omitempty"`
}

// Worktree is the worktree part of an event payload
type Worktree struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Payload describes one occurrence of an event. Which parts are set
// depends on Event; use the constructors below to build a well-formed
// payload for each event.
type Payload struct {
	Event    Event        `json:"event"`
	Repo     string       `json:"repo"`
	Issue    *Issue       `json:"issue,omitempty"`
	PR       *PullRequest `json:"pr,omitempty"`
	Branch   string       `json:"branch,omitempty"`
	Base     string       `json:"base,omitempty"`
	Worktree *Worktree    `json:"worktree,omitempty"`
}

// IssueCreated builds the payload for a newly created issue.
func IssueCreated(repo string, issue Issue) Payload {
	return Payload{Event: EventIssueCreated, Repo: repo, Issue: &issue}
}

// IssueStarted builds the payload for work starting on an issue.
func IssueStarted(repo string, issue Issue, branch string) Payload {
	return Payload{Event: EventIssueStarted, Repo: repo, Issue: &issue, Branch: branch}
}

// PRCreated builds the payload for a newly opened pull request.
func PRCreated(repo string, pr PullRequest, branch, base string) Payload {
	return Payload{Event: EventPRCreated, Repo: repo, PR: &pr, Branch: branch, Base: base}
}

// PRMerged builds the payload for a merged pull request.
func PRMerged(repo string, pr PullRequest, branch, base string) Payload {
	return Payload{Event: EventPRMerged, Repo: repo, PR: &pr, Branch: branch, Base: base}
}

// WorktreeCreated builds the payload for a new worktree. issue may be nil
// when the worktree was not created for an issue.
func WorktreeCreated(repo, branch string, wt Worktree, issue *Issue) Payload {
	return Payload{Event: EventWorktreeCreated, Repo: repo, Branch: branch, Worktree: &wt, Issue: issue}
}

// WorktreeRemoved builds the payload for a removed worktree.
func WorktreeRemoved(repo, branch string, wt Worktree) Payload {
	return Payload{Event: EventWorktreeRemoved, Repo: repo, Branch: branch, Worktree: &wt}
}

// variables returns the raw (unquoted) value of every template variable
// whose backing field is present.
func (p Payload) variables(opts SubstituteOptions) map[string]string {
	vars := make(map[string]string, 20)

	setIfPresent := func(name, value string) {
		if value != "" {
			vars[name] = value
		}
	}
	setIfPresent("repo", p.Repo)
	setIfPresent("branch", p.Branch)
	setIfPresent("base", p.Base)

	if p.Issue != nil {
		vars["issue.number"] = strconv.Itoa(p.Issue.Number)
		vars["issue.title"] = p.Issue.Title
		vars["issue.body"] = p.Issue.Body
		vars["issue.url"] = p.Issue.URL
		vars["issue.json"] = compactJSON(p.Issue)
	}

	if p.PR != nil {
		vars["pr.number"] = strconv.Itoa(p.PR.Number)
		vars["pr.title"] = p.PR.Title
		vars["pr.body"] = p.PR.Body
		vars["pr.url"] = p.PR.URL
		setIfPresent("pr.merged_at", p.PR.MergedAt)
		vars["pr.json"] = compactJSON(p.PR)
	}

	if p.Worktree != nil {
		vars["worktree.path"] = p.Worktree.Path
		vars["worktree.name"] = p.Worktree.Name
	}

	setIfPresent(eventFileVar, opts.EventFile)

	return vars
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// Plain structs of strings and ints always marshal.
		return "{}"
	}
	return string(data)
}

// Variables lists the template variables an event provides, for help output.
func Variables(e Event) []string {
	common := []string{"${repo}"}
	issue := []string{"${issue.number}", "${issue.title}", "${issue.body}", "${issue.url}", "${issue.json}"}
	pr := []string{"${pr.number}", "${pr.title}", "${pr.body}", "${pr.url}", "${pr.json}"}
	worktree := []string{"${branch}", "${worktree.path}", "${worktree.name}"}

	var vars []string
	switch e {
	case EventIssueCreated:
		vars = append(common, issue...)
	case EventIssueStarted:
		vars = append(append(common, issue...), "${branch}")
	case EventPRCreated:
		vars = append(append(common, pr...), "${branch}", "${base}")
	case EventPRMerged:
		vars = append(append(common, pr...), "${pr.merged_at}", "${branch}", "${base}")
	case EventWorktreeCreated:
		vars = append(append(common, worktree...), "${issue.*} (when created for an issue)")
	case EventWorktreeRemoved:
		vars = append(common, worktree...)
	}
	return append(vars, "${_event_file}")
}
