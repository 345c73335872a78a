package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"budget/internal/cli"
	"budget/internal/config"
	"budget/internal/console"
	"budget/internal/core"
	"budget/internal/log"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configPath string
	name       string
	income     string
	budget     string
	plain      bool
	form       bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "budget",
		Short:         "Personal budget tracker",
		Long:          "Record expenses against a monthly budget and print a summary by category.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Config file (default "+config.Path()+")")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVarP(&f.name, "name", "n", "", "Your name (skips the prompt)")
	pf.StringVarP(&f.income, "income", "i", "", "Monthly income (skips the prompt)")
	pf.StringVarP(&f.budget, "budget", "b", "", "Monthly budget (skips the prompt)")
	pf.BoolVar(&f.plain, "plain", false, "Print the summary as plain text")
	cmd.Flags().BoolVar(&f.form, "form", false, "Collect name, income and budget with an interactive form")

	cmd.AddCommand(newConfigCmd(&f), newVersionCmd())
	return cmd
}

// loadConfig reads config and layers the command-line flags on top.
// Failures are logged to stderr with default settings, since the configured
// logger does not exist yet.
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cli.LoadEnvFile()

	bootCfg := log.DefaultConfig()
	bootCfg.Output = cmd.ErrOrStderr()
	boot := log.New(bootCfg)

	return cli.LoadAndValidateConfig(boot, f.configPath, func(c *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("name") {
			c.Profile.Name = f.name
		}
		if flags.Changed("income") {
			c.Profile.Income = f.income
		}
		if flags.Changed("budget") {
			c.Profile.MonthlyBudget = f.budget
		}
		if flags.Changed("plain") {
			c.Display.Plain = f.plain
		}
		if f.logLevel != "" {
			c.Log.Level = f.logLevel
		}
	})
}

func runSession(cmd *cobra.Command, f rootFlags) error {
	cfg, err := loadConfig(cmd, &f)
	if err != nil {
		return err
	}

	logger, err := cli.SetupLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if f.form {
		if err := fillFromForm(cfg); err != nil {
			return err
		}
	}

	opts, err := sessionOptions(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	logger.Debug("Starting session", log.FieldSessionID, sess.ID(), log.FieldConfigPath, f.configPath)

	err = sess.Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.OutOrStdout())
		logger.Info("Session interrupted", log.FieldSessionID, sess.ID())
		return nil
	}
	return err
}

// fillFromForm asks for the profile values still missing from cfg.
func fillFromForm(cfg *config.Config) error {
	if !cli.IsTerminal(os.Stdin) {
		return errors.New("--form needs an interactive terminal")
	}
	v := cli.ProfileValues{
		Name:          cfg.Profile.Name,
		Income:        cfg.Profile.Income,
		MonthlyBudget: cfg.Profile.MonthlyBudget,
	}
	if err := cli.PromptProfile(&v); err != nil {
		return fmt.Errorf("profile form: %w", err)
	}
	cfg.Profile.Name = v.Name
	cfg.Profile.Income = v.Income
	cfg.Profile.MonthlyBudget = v.MonthlyBudget
	return nil
}

func sessionOptions(cfg *config.Config, logger *log.Logger) (console.Options, error) {
	opts := console.Options{
		Name:            cfg.Profile.Name,
		SuggestDistance: cfg.Display.SuggestDistance,
		Logger:          logger,
	}

	income, ok, err := cfg.Income()
	if err != nil {
		return opts, fmt.Errorf("income: %w", err)
	}
	if ok {
		opts.Income = &income
	}
	budget, ok, err := cfg.MonthlyBudget()
	if err != nil {
		return opts, fmt.Errorf("monthly budget: %w", err)
	}
	if ok {
		opts.MonthlyBudget = &budget
	}

	currency := cfg.Display.Currency
	if cfg.Display.Plain {
		opts.Render = console.PlainRenderer(currency)
	} else {
		opts.Render = func(s core.Summary, monthlyBudget core.Money) string {
			return cli.RenderSummary(s, monthlyBudget, currency)
		}
		opts.Notice = cli.RenderWarning
	}
	return opts, nil
}
