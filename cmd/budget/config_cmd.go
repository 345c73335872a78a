package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"budget/internal/cli"
	"budget/internal/config"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long: "Show the effective configuration. With --save, write it (including any " +
			"--name, --income, --budget and --plain values) to the config file so later " +
			"sessions skip those prompts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if save {
				logger, err := cli.SetupLogger(cfg.Log, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				path, err := cli.SaveConfig(logger, f.configPath, cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  Saved to %s\n\n", path)
			}
			printConfig(cmd, f.configPath, cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Write the effective configuration to the config file")
	return cmd
}

func printConfig(cmd *cobra.Command, path string, cfg *config.Config) {
	out := cmd.OutOrStdout()
	if path == "" {
		path = config.Path()
	}

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Profile]")
	fmt.Fprintf(out, "    Name:           %s\n", orUnset(cfg.Profile.Name))
	fmt.Fprintf(out, "    Income:         %s\n", orUnset(cfg.Profile.Income))
	fmt.Fprintf(out, "    Monthly budget: %s\n", orUnset(cfg.Profile.MonthlyBudget))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Display]")
	fmt.Fprintf(out, "    Currency:         %s\n", cfg.Display.Currency)
	fmt.Fprintf(out, "    Plain:            %v\n", cfg.Display.Plain)
	fmt.Fprintf(out, "    Suggest distance: %d\n", cfg.Display.SuggestDistance)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level:  %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "    Format: %s\n", cfg.Log.Format)
}

func orUnset(s string) string {
	if s == "" {
		return "not set (prompted)"
	}
	return s
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "budget %s\n", version)
		},
	}
}
