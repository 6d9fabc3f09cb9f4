// Package hooks runs user-defined shell commands when ghp workflow events
// happen.
//
// A hook subscribes to one [Event] and is stored by name in a JSON registry
// (see [Store]). When a workflow step completes, the caller builds a
// [Payload] with one of the event constructors and hands it to
// [Runner.ExecuteHooksForEvent], which runs the enabled hooks for that
// event one after another in registry order.
//
// # Templates
//
// Commands reference payload fields as ${name}:
//
//	${repo} ${branch} ${base}
//	${issue.number} ${issue.title} ${issue.body} ${issue.url} ${issue.json}
//	${pr.number} ${pr.title} ${pr.body} ${pr.url} ${pr.merged_at} ${pr.json}
//	${worktree.path} ${worktree.name}
//	${_event_file}
//
// Every substituted value is single-quoted for sh, so issue titles and PR
// bodies cannot inject shell syntax. The hook command itself is trusted:
// it is written by the user and runs with their privileges. Variables the
// payload does not provide are left untouched.
//
// ${_event_file} expands to a temporary 0600 file holding the whole
// payload as JSON. It is removed once the hook finishes.
//
// # Modes
//
//   - fire-and-forget: run, record the result, never stop the workflow.
//   - blocking: an aborting exit code prints an error box and stops the
//     workflow.
//   - interactive: the output is shown in a box and the user decides
//     whether to continue. Without a terminal the answer is always abort.
//
// Exit codes are mapped to success, warn or abort by a per-hook policy
// (see [Classify]). A timed-out hook always aborts.
package hooks
