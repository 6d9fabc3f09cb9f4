package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/hooks"
)

// completeHookNames completes the first argument with stored hook names.
// Completion runs before PersistentPreRunE, so config is loaded here.
func completeHookNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path := completionHooksFile(cmd)
	names, err := hooks.NewStore(path).Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, n := range names {
		if strings.HasPrefix(n, toComplete) {
			matches = append(matches, n)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

func completionHooksFile(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("hooks-file"); p != "" {
		return p
	}
	path, err := configPathFlag(cmd)
	if err != nil {
		return config.Default().Hooks.File
	}
	// Load falls back to defaults on error.
	cfg, _ := config.Load(path)
	return cfg.Hooks.File
}

// completeEventArg completes the single <event> argument.
func completeEventArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeEvents(cmd, args, toComplete)
}

// completeEvents completes event names for --event flags.
func completeEvents(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var events []string
	for _, e := range hooks.Events {
		if strings.HasPrefix(string(e), toComplete) {
			events = append(events, string(e))
		}
	}
	return events, cobra.ShellCompDirectiveNoFileComp
}

// completeModes completes mode names.
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var modes []string
	for _, m := range hooks.Modes {
		if strings.HasPrefix(string(m), toComplete) {
			modes = append(modes, string(m))
		}
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}
