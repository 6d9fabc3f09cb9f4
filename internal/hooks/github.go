package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
)

// DecodeGitHubIssue reads an issue as returned by the GitHub REST API,
// e.g. the output of `gh api repos/OWNER/REPO/issues/N`.
func DecodeGitHubIssue(r io.Reader) (*github.Issue, error) {
	var issue github.Issue
	if err := json.NewDecoder(r).Decode(&issue); err != nil {
		return nil, fmt.Errorf("decode GitHub issue: %w", err)
	}
	if issue.GetNumber() == 0 {
		return nil, fmt.Errorf("decode GitHub issue: missing number")
	}
	return &issue, nil
}

// DecodeGitHubPullRequest reads a pull request as returned by the GitHub
// REST API.
func DecodeGitHubPullRequest(r io.Reader) (*github.PullRequest, error) {
	var pr github.PullRequest
	if err := json.NewDecoder(r).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode GitHub pull request: %w", err)
	}
	if pr.GetNumber() == 0 {
		return nil, fmt.Errorf("decode GitHub pull request: missing number")
	}
	return &pr, nil
}

// IssueFromGitHub converts a GitHub issue to the payload form.
func IssueFromGitHub(i *github.Issue) Issue {
	return Issue{
		Number: i.GetNumber(),
		Title:  i.GetTitle(),
		Body:   i.GetBody(),
		URL:    i.GetHTMLURL(),
	}
}

// IssueRepo returns "owner/name" for the issue's repository, or "" if the
// API response did not say.
func IssueRepo(i *github.Issue) string {
	if name := i.GetRepository().GetFullName(); name != "" {
		return name
	}
	// repository_url looks like https://api.github.com/repos/OWNER/NAME
	if _, after, ok := strings.Cut(i.GetRepositoryURL(), "/repos/"); ok {
		return strings.TrimSuffix(after, "/")
	}
	return ""
}

// PullRequestFromGitHub converts a GitHub pull request to the payload form.
// MergedAt is RFC 3339 in UTC, empty when the PR is not merged.
func PullRequestFromGitHub(pr *github.PullRequest) PullRequest {
	out := PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		URL:    pr.GetHTMLURL(),
	}
	if merged := pr.GetMergedAt(); !merged.IsZero() {
		out.MergedAt = merged.UTC().Format(time.RFC3339)
	}
	return out
}

// PullRequestRefs returns the repository, head branch and base branch of pr.
func PullRequestRefs(pr *github.PullRequest) (repo, branch, base string) {
	return pr.GetBase().GetRepo().GetFullName(), pr.GetHead().GetRef(), pr.GetBase().GetRef()
}
