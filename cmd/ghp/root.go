package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/log"
	"github.com/bretwardjames/ghp-sub000/internal/output"
)

// Command group IDs for organizing help output
const (
	GroupHooks  = "hooks"
	GroupConfig = "config"
)

// newRootCmd builds the command tree. Global flags are bound per tree so
// tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		quiet      bool
		configPath string
		hooksFile  string
	)

	root := &cobra.Command{
		Use:   "ghp",
		Short: "GitHub project workflow helper",
		Long: `ghp streamlines the issue -> branch -> PR workflow.

Event hooks run your own shell commands when ghp creates or starts an
issue, opens or merges a PR, or creates or removes a worktree.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			// Diagnostics on stderr, primary data on stdout.
			ctx = log.WithLogger(ctx, log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			if configPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				configPath = p
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				log.FromContext(ctx).Printf("Warning: %v\n", err)
			}
			if hooksFile != "" {
				cfg.Hooks.File = hooksFile
			}
			ctx = config.WithConfig(ctx, &cfg)

			cmd.SetContext(ctx)
			return nil
		},
		// Run is not set - shows help when no subcommand provided
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show hook commands being executed")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/ghp/config.toml)")
	root.PersistentFlags().StringVar(&hooksFile, "hooks-file", "", "Hook store document (overrides config and $"+config.EnvHooksFile+")")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	root.AddCommand(newHooksCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if !isSilentExit(err) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'ghp -h' for help")
		}
		os.Exit(1)
	}
}
