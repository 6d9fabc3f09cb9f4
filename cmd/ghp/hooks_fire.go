package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/hooks"
	"github.com/bretwardjames/ghp-sub000/internal/log"
	"github.com/bretwardjames/ghp-sub000/internal/output"
	"github.com/bretwardjames/ghp-sub000/internal/ui/interactive"
	"github.com/bretwardjames/ghp-sub000/internal/ui/styles"
)

// fireFlags describe the payload of a manually fired event.
type fireFlags struct {
	payloadFile string
	githubIssue string
	githubPR    string
	dir         string
	jsonFlag    bool

	repo   string
	branch string
	base   string

	issueNumber int
	issueTitle  string
	issueBody   string
	issueURL    string

	prNumber int
	prTitle  string
	prBody   string
	prURL    string
	mergedAt string

	worktreePath string
	worktreeName string
}

func newHooksFireCmd() *cobra.Command {
	var f fireFlags

	cmd := &cobra.Command{
		Use:               "fire <event>",
		Short:             "Run the hooks for an event",
		ValidArgsFunction: completeEventArg,
		Args:              cobra.ExactArgs(1),
		Long: `Run the enabled hooks for an event, exactly as the workflow would.

The payload is assembled in layers: --payload (a JSON event document),
then --github-issue / --github-pr (GitHub REST API JSON, e.g. from
"gh api"), then the individual flags. Use "-" to read a file from stdin.

Exits non-zero if a blocking hook failed or an interactive hook was
declined.`,
		Example: `  ghp hooks fire issue-created --issue-number 42 --issue-title "Fix login"
  gh api repos/octo/app/pulls/7 | ghp hooks fire pr-merged --github-pr -
  ghp hooks fire worktree-created --worktree-path ~/src/app-42 --branch feat/42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			event, err := hooks.ParseEvent(args[0])
			if err != nil {
				return err
			}

			p, err := f.payload(cmd)
			if err != nil {
				return err
			}

			store := openStore(ctx)
			runner := hooks.NewRunner(store,
				hooks.WithController(interactive.NewController(cfg.PagerCommand())),
				hooks.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
			)

			if !runner.HasHooksForEvent(event) {
				l.Printf("No enabled hooks for %s\n", event)
				if f.jsonFlag {
					return output.FromContext(ctx).JSON([]hooks.Result{})
				}
				return nil
			}

			results := runner.ExecuteHooksForEvent(ctx, event, p, hooks.RunOptions{Dir: f.dir})

			if f.jsonFlag {
				if err := output.FromContext(ctx).JSON(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					l.Println(resultLine(r))
				}
			}

			if n := len(results); n > 0 && results[n-1].Aborted {
				l.Printf("%s aborted by hook %s\n", event, styles.Bold.Render(results[n-1].DisplayName))
				return errSilentExit
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.payloadFile, "payload", "", "JSON event payload file")
	fl.StringVar(&f.githubIssue, "github-issue", "", "GitHub API issue JSON file")
	fl.StringVar(&f.githubPR, "github-pr", "", "GitHub API pull request JSON file")
	fl.StringVarP(&f.dir, "dir", "C", "", "Working directory for hook commands")
	fl.BoolVar(&f.jsonFlag, "json", false, "Print results as JSON")

	fl.StringVar(&f.repo, "repo", "", "Repository (owner/name)")
	fl.StringVar(&f.branch, "branch", "", "Branch name")
	fl.StringVar(&f.base, "base", "", "Base branch")

	fl.IntVar(&f.issueNumber, "issue-number", 0, "Issue number")
	fl.StringVar(&f.issueTitle, "issue-title", "", "Issue title")
	fl.StringVar(&f.issueBody, "issue-body", "", "Issue body")
	fl.StringVar(&f.issueURL, "issue-url", "", "Issue URL")

	fl.IntVar(&f.prNumber, "pr-number", 0, "Pull request number")
	fl.StringVar(&f.prTitle, "pr-title", "", "Pull request title")
	fl.StringVar(&f.prBody, "pr-body", "", "Pull request body")
	fl.StringVar(&f.prURL, "pr-url", "", "Pull request URL")
	fl.StringVar(&f.mergedAt, "merged-at", "", "Merge time (RFC 3339)")

	fl.StringVar(&f.worktreePath, "worktree-path", "", "Worktree path")
	fl.StringVar(&f.worktreeName, "worktree-name", "", "Worktree name")

	cmd.MarkFlagDirname("dir")
	cmd.MarkFlagsMutuallyExclusive("github-issue", "github-pr")

	return cmd
}

// payload assembles the event payload from files and flags, later layers
// overriding earlier ones.
func (f *fireFlags) payload(cmd *cobra.Command) (hooks.Payload, error) {
	var p hooks.Payload
	stdin := cmd.InOrStdin()

	if f.payloadFile != "" {
		if err := readInput(f.payloadFile, stdin, func(r io.Reader) error {
			if err := json.NewDecoder(r).Decode(&p); err != nil {
				return fmt.Errorf("decode payload: %w", err)
			}
			return nil
		}); err != nil {
			return p, err
		}
	}

	if f.githubIssue != "" {
		if err := readInput(f.githubIssue, stdin, func(r io.Reader) error {
			gh, err := hooks.DecodeGitHubIssue(r)
			if err != nil {
				return err
			}
			issue := hooks.IssueFromGitHub(gh)
			p.Issue = &issue
			if repo := hooks.IssueRepo(gh); repo != "" {
				p.Repo = repo
			}
			return nil
		}); err != nil {
			return p, err
		}
	}

	if f.githubPR != "" {
		if err := readInput(f.githubPR, stdin, func(r io.Reader) error {
			gh, err := hooks.DecodeGitHubPullRequest(r)
			if err != nil {
				return err
			}
			pr := hooks.PullRequestFromGitHub(gh)
			p.PR = &pr
			repo, branch, base := hooks.PullRequestRefs(gh)
			setIfNotEmpty(&p.Repo, repo)
			setIfNotEmpty(&p.Branch, branch)
			setIfNotEmpty(&p.Base, base)
			return nil
		}); err != nil {
			return p, err
		}
	}

	changed := cmd.Flags().Changed
	setIfChanged := func(flag string, dst *string, value string) {
		if changed(flag) {
			*dst = value
		}
	}

	setIfChanged("repo", &p.Repo, f.repo)
	setIfChanged("branch", &p.Branch, f.branch)
	setIfChanged("base", &p.Base, f.base)

	if changed("issue-number") || changed("issue-title") || changed("issue-body") || changed("issue-url") {
		if p.Issue == nil {
			p.Issue = &hooks.Issue{}
		}
		if changed("issue-number") {
			p.Issue.Number = f.issueNumber
		}
		setIfChanged("issue-title", &p.Issue.Title, f.issueTitle)
		setIfChanged("issue-body", &p.Issue.Body, f.issueBody)
		setIfChanged("issue-url", &p.Issue.URL, f.issueURL)
	}

	if changed("pr-number") || changed("pr-title") || changed("pr-body") || changed("pr-url") || changed("merged-at") {
		if p.PR == nil {
			p.PR = &hooks.PullRequest{}
		}
		if changed("pr-number") {
			p.PR.Number = f.prNumber
		}
		setIfChanged("pr-title", &p.PR.Title, f.prTitle)
		setIfChanged("pr-body", &p.PR.Body, f.prBody)
		setIfChanged("pr-url", &p.PR.URL, f.prURL)
		setIfChanged("merged-at", &p.PR.MergedAt, f.mergedAt)
	}

	if changed("worktree-path") || changed("worktree-name") {
		if p.Worktree == nil {
			p.Worktree = &hooks.Worktree{}
		}
		setIfChanged("worktree-path", &p.Worktree.Path, f.worktreePath)
		setIfChanged("worktree-name", &p.Worktree.Name, f.worktreeName)
	}

	return p, nil
}

func readInput(path string, stdin io.Reader, fn func(io.Reader) error) error {
	r, err := openInput(path, stdin)
	if err != nil {
		return err
	}
	defer r.Close()
	return fn(r)
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// resultLine summarizes one hook result for the terminal.
func resultLine(r hooks.Result) string {
	var mark string
	switch r.Outcome {
	case hooks.OutcomeSuccess, hooks.OutcomeContinue:
		mark = styles.SuccessStyle.Render("✓")
	case hooks.OutcomeWarn:
		mark = styles.WarningStyle.Render("!")
	default:
		mark = styles.ErrorStyle.Render("✗")
	}

	line := fmt.Sprintf("%s %s %s", mark, r.DisplayName, styles.MutedStyle.Render(fmt.Sprintf("(%dms)", r.DurationMs)))
	if r.Error != "" {
		line += " " + styles.MutedStyle.Render(r.Error)
	}
	return line
}
