package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/hooks"
	"github.com/bretwardjames/ghp-sub000/internal/log"
	"github.com/bretwardjames/ghp-sub000/internal/output"
	"github.com/bretwardjames/ghp-sub000/internal/ui/prompt"
	"github.com/bretwardjames/ghp-sub000/internal/ui/static"
	"github.com/bretwardjames/ghp-sub000/internal/ui/styles"
)

func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hooks",
		Short:   "Manage event hooks",
		Aliases: []string{"hook"},
		GroupID: GroupHooks,
		Long: `Manage event hooks.

A hook runs a shell command when a workflow event happens. Commands can
reference event data as ${variable}; run "ghp hooks events" for the list.
Every substituted value is shell-quoted.

Modes:
  fire-and-forget  run and move on (default)
  blocking         stop the workflow if the hook fails
  interactive      show the output and ask whether to continue`,
		Example: `  ghp hooks add notify --event pr-merged --command 'notify-send "Merged ${pr.title}"'
  ghp hooks list
  ghp hooks disable notify
  ghp hooks fire pr-merged --pr-number 7 --pr-title "Fix login"`,
	}

	cmd.AddCommand(newHooksAddCmd())
	cmd.AddCommand(newHooksEditCmd())
	cmd.AddCommand(newHooksRemoveCmd())
	cmd.AddCommand(newHooksEnableCmd())
	cmd.AddCommand(newHooksDisableCmd())
	cmd.AddCommand(newHooksListCmd())
	cmd.AddCommand(newHooksShowCmd())
	cmd.AddCommand(newHooksEventsCmd())
	cmd.AddCommand(newHooksFireCmd())

	return cmd
}

// hookFlags are the definition flags shared by add and edit.
type hookFlags struct {
	displayName  string
	event        string
	command      string
	mode         string
	timeout      int
	successCodes string
	abortCodes   string
	warnCodes    string
	prompt       string
	disabled     bool
}

func (f *hookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.event, "event", "e", "", "Event to listen to")
	cmd.Flags().StringVarP(&f.command, "command", "c", "", "Shell command template")
	cmd.Flags().StringVar(&f.displayName, "display-name", "", "Name shown in output (default: hook name)")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "fire-and-forget, blocking, or interactive")
	cmd.Flags().IntVarP(&f.timeout, "timeout", "t", 0, "Timeout in milliseconds")
	cmd.Flags().StringVar(&f.successCodes, "success-codes", "", "Exit codes that count as success (e.g. 0,3)")
	cmd.Flags().StringVar(&f.abortCodes, "abort-codes", "", "Exit codes that abort")
	cmd.Flags().StringVar(&f.warnCodes, "warn-codes", "", "Exit codes that warn but continue")
	cmd.Flags().StringVar(&f.prompt, "prompt", "", "Question asked after an interactive hook")
	cmd.Flags().BoolVar(&f.disabled, "disabled", false, "Create the hook disabled")

	cmd.RegisterFlagCompletionFunc("event", completeEvents)
	cmd.RegisterFlagCompletionFunc("mode", completeModes)
	for _, name := range []string{"command", "display-name", "timeout", "success-codes", "abort-codes", "warn-codes", "prompt"} {
		cmd.RegisterFlagCompletionFunc(name, cobra.NoFileCompletions)
	}
}

// update turns the flags the user actually set into a HookUpdate. All
// values are validated here so a bad flag never reaches the store.
// Exit-code flags are layered over base, the hook's current override.
func (f *hookFlags) update(cmd *cobra.Command, base *hooks.ExitCodes) (hooks.HookUpdate, error) {
	var u hooks.HookUpdate
	changed := cmd.Flags().Changed

	if changed("event") {
		e, err := hooks.ParseEvent(f.event)
		if err != nil {
			return u, err
		}
		u.Event = &e
	}
	if changed("command") {
		if strings.TrimSpace(f.command) == "" {
			return u, fmt.Errorf("--command must not be empty")
		}
		u.Command = &f.command
	}
	if changed("display-name") {
		u.DisplayName = &f.displayName
	}
	if changed("mode") {
		m, err := hooks.ParseMode(f.mode)
		if err != nil {
			return u, err
		}
		u.Mode = &m
	}
	if changed("timeout") {
		if f.timeout <= 0 {
			return u, fmt.Errorf("--timeout must be a positive number of milliseconds, got %d", f.timeout)
		}
		u.TimeoutMs = &f.timeout
	}
	if changed("prompt") {
		u.ContinuePrompt = &f.prompt
	}
	if changed("disabled") {
		enabled := !f.disabled
		u.Enabled = &enabled
	}

	if changed("success-codes") || changed("abort-codes") || changed("warn-codes") {
		codes := &hooks.ExitCodes{}
		if base != nil {
			*codes = *base
		}
		for _, c := range []struct {
			flag  string
			value string
			dest  *[]int
		}{
			{"success-codes", f.successCodes, &codes.Success},
			{"abort-codes", f.abortCodes, &codes.Abort},
			{"warn-codes", f.warnCodes, &codes.Warn},
		} {
			if !changed(c.flag) {
				continue
			}
			parsed, err := parseCodes(c.flag, c.value)
			if err != nil {
				return u, err
			}
			*c.dest = parsed
		}
		u.ExitCodes = codes
	}

	return u, nil
}

func newHooksAddCmd() *cobra.Command {
	var flags hookFlags

	cmd := &cobra.Command{
		Use:               "add <name>",
		Short:             "Add a hook",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		Example: `  ghp hooks add notify --event pr-merged --command 'notify-send "Merged ${pr.title}"'
  ghp hooks add tests --event worktree-created --mode blocking --timeout 600000 \
    --command 'cd ${worktree.path} && make test'
  ghp hooks add lint --event pr-created --mode interactive --warn-codes 2 \
    --command 'my-linter --event ${_event_file}' --prompt 'Open the PR anyway?'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			name := args[0]

			if err := hooks.ValidateName(name); err != nil {
				return err
			}
			u, err := flags.update(cmd, nil)
			if err != nil {
				return err
			}

			h := hooks.Hook{
				Name:      name,
				Enabled:   true,
				TimeoutMs: cfg.Hooks.DefaultTimeout,
				Mode:      hooks.Mode(cfg.Hooks.DefaultMode),
			}
			u.Apply(&h)

			store := openStore(ctx)
			if err := store.Add(h); err != nil {
				return err
			}

			l.Debug("hook added", "name", name, "file", store.Path())
			l.Printf("Added hook %s (%s, %s)\n", styles.Bold.Render(name), h.Event, h.Mode)
			return nil
		},
	}

	flags.register(cmd)
	cmd.MarkFlagRequired("event")
	cmd.MarkFlagRequired("command")

	return cmd
}

func newHooksEditCmd() *cobra.Command {
	var (
		flags  hookFlags
		rename string
	)

	cmd := &cobra.Command{
		Use:               "edit <name>",
		Short:             "Change an existing hook",
		Long:              "Change an existing hook. Only the flags you pass are updated.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookNames,
		Example: `  ghp hooks edit tests --timeout 120000
  ghp hooks edit tests --mode fire-and-forget --rename tests-bg
  ghp hooks edit lint --warn-codes 2,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			name := args[0]

			store := openStore(ctx)
			current, err := store.Get(name)
			if err != nil {
				return withSuggestion(store, name, err)
			}

			u, err := flags.update(cmd, current.ExitCodes)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rename") {
				if err := hooks.ValidateName(rename); err != nil {
					return err
				}
				u.Name = &rename
			}

			h, err := store.Update(name, u)
			if err != nil {
				return withSuggestion(store, name, err)
			}

			l.Printf("Updated hook %s\n", styles.Bold.Render(h.Name))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&rename, "rename", "", "New name for the hook")
	cmd.RegisterFlagCompletionFunc("rename", cobra.NoFileCompletions)

	return cmd
}

func newHooksRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "remove <name>",
		Short:             "Delete a hook",
		Long:              "Delete a hook. On a terminal you are asked to confirm unless --yes is given.",
		Aliases:           []string{"rm"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			name := args[0]

			store := openStore(ctx)
			if _, err := store.Get(name); err != nil {
				return withSuggestion(store, name, err)
			}

			if !yes && stdinIsTerminal(cmd) {
				res, err := prompt.Confirm(fmt.Sprintf("Remove hook %q?", name), cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if !res.Confirmed {
					l.Println("Cancelled")
					return nil
				}
			}

			if err := store.Remove(name); err != nil {
				return withSuggestion(store, name, err)
			}
			l.Printf("Removed hook %s\n", styles.Bold.Render(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Don't ask for confirmation")

	return cmd
}

func newHooksEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "enable <name>",
		Short:             "Enable a hook",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := openStore(ctx)
			if err := store.Enable(args[0]); err != nil {
				return withSuggestion(store, args[0], err)
			}
			log.FromContext(ctx).Printf("Enabled hook %s\n", styles.Bold.Render(args[0]))
			return nil
		},
	}
}

func newHooksDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "disable <name>",
		Short:             "Disable a hook without deleting it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := openStore(ctx)
			if err := store.Disable(args[0]); err != nil {
				return withSuggestion(store, args[0], err)
			}
			log.FromContext(ctx).Printf("Disabled hook %s\n", styles.Bold.Render(args[0]))
			return nil
		},
	}
}

func newHooksListCmd() *cobra.Command {
	var (
		event    string
		jsonFlag bool
	)

	cmd := &cobra.Command{
		Use:               "list",
		Short:             "List hooks",
		Aliases:           []string{"ls"},
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			list, err := openStore(ctx).List()
			if err != nil {
				return err
			}

			if event != "" {
				e, err := hooks.ParseEvent(event)
				if err != nil {
					return err
				}
				filtered := list[:0]
				for _, h := range list {
					if h.Event == e {
						filtered = append(filtered, h)
					}
				}
				list = filtered
			}

			if jsonFlag {
				return out.JSON(list)
			}

			if len(list) == 0 {
				log.FromContext(ctx).Println("No hooks configured. Add one with: ghp hooks add <name> --event <event> --command <cmd>")
				return nil
			}

			rows := make([][]string, len(list))
			for i, h := range list {
				rows[i] = static.HookTableRow(h)
			}
			out.Printf("%s", static.RenderTable(static.HookHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&event, "event", "e", "", "Only show hooks for this event")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")
	cmd.RegisterFlagCompletionFunc("event", completeEvents)

	return cmd
}

// hookDetails is what "hooks show" prints: the stored definition plus the
// exit-code policy actually in effect.
type hookDetails struct {
	hooks.Hook         `yaml:",inline"`
	EffectiveExitCodes hooks.ExitCodes `json:"effectiveExitCodes" yaml:"effectiveExitCodes"`
}

func newHooksShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "show <name>",
		Short:             "Show a hook definition",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			store := openStore(ctx)
			h, err := store.Get(args[0])
			if err != nil {
				return withSuggestion(store, args[0], err)
			}

			details := hookDetails{Hook: h, EffectiveExitCodes: hooks.EffectivePolicy(h.ExitCodes)}
			switch format {
			case "yaml":
				return out.YAML(details)
			case "json":
				return out.JSON(details)
			default:
				return fmt.Errorf("invalid --format %q (valid: %s)", format, config.FormatOptions([]string{"yaml", "json"}))
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"yaml", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newHooksEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events and their template variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			for i, e := range hooks.Events {
				if i > 0 {
					out.Println()
				}
				out.Println(styles.Bold.Render(string(e)))
				for _, v := range hooks.Variables(e) {
					out.Printf("  %s\n", v)
				}
			}
			return nil
		},
	}
}
