package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bretwardjames/ghp-sub000/internal/config"
	"github.com/bretwardjames/ghp-sub000/internal/log"
	"github.com/bretwardjames/ghp-sub000/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage ghp configuration.

Config file: ~/.config/ghp/config.toml`,
		Example: `  ghp config init          # Create default config
  ghp config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  ghp config init       # Create config
  ghp config init -f    # Overwrite existing config
  ghp config init -s    # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if stdout {
				output.FromContext(ctx).Printf("%s", config.DefaultContent())
				return nil
			}

			path, err := configPathFlag(cmd)
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}

			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonFlag {
				return out.JSON(map[string]any{
					"hooks": map[string]any{
						"file":            cfg.Hooks.File,
						"default_timeout": cfg.Hooks.DefaultTimeout,
						"default_mode":    cfg.Hooks.DefaultMode,
						"pager":           cfg.PagerCommand(),
					},
				})
			}

			out.Println("[hooks]")
			out.Printf("file = %q\n", cfg.Hooks.File)
			out.Printf("default_timeout = %d\n", cfg.Hooks.DefaultTimeout)
			out.Printf("default_mode = %q\n", cfg.Hooks.DefaultMode)
			out.Printf("pager = %q\n", cfg.PagerCommand())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output as JSON")

	return cmd
}

// configPathFlag returns --config, or the default path when unset.
func configPathFlag(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}
