package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"

	"budget/internal/core"
	"budget/internal/log"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BUDGET_"

// Config holds all budget configuration.
type Config struct {
	Profile ProfileConfig `toml:"profile"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// ProfileConfig pre-fills the startup prompts. Empty fields are prompted for.
type ProfileConfig struct {
	Name          string `toml:"name,omitempty" env:"NAME"`
	Income        string `toml:"income,omitempty" env:"INCOME"`
	MonthlyBudget string `toml:"monthly_budget,omitempty" env:"MONTHLY"`
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	Currency string `toml:"currency" env:"CURRENCY"`
	Plain    bool   `toml:"plain" env:"PLAIN"`
	// SuggestDistance is the largest edit distance at which a new category is
	// reported as a possible typo of an existing one. 0 disables the hint.
	SuggestDistance int `toml:"suggest_distance" env:"SUGGEST_DISTANCE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Currency:        "$",
			SuggestDistance: 2,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budget")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budget")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load builds the configuration from defaults, the TOML file at path (a
// missing file is not an error) and BUDGET_* environment variables, in that
// order. An empty path means Path().
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	if path == "" {
		path = Path()
	}
	_, err := os.Stat(path)
	return err == nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Profile.Income != "" {
		if _, err := core.ParseNonNegativeAmount(c.Profile.Income); err != nil {
			errs = append(errs, fmt.Sprintf("invalid income '%s': %v", c.Profile.Income, err))
		}
	}
	if c.Profile.MonthlyBudget != "" {
		if _, err := core.ParseNonNegativeAmount(c.Profile.MonthlyBudget); err != nil {
			errs = append(errs, fmt.Sprintf("invalid monthly budget '%s': %v", c.Profile.MonthlyBudget, err))
		}
	}

	if strings.TrimSpace(c.Display.Currency) == "" {
		errs = append(errs, "currency symbol cannot be empty")
	}
	if c.Display.SuggestDistance < 0 || c.Display.SuggestDistance > 5 {
		errs = append(errs, fmt.Sprintf("invalid suggest distance %d: must be between 0 and 5", c.Display.SuggestDistance))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.Log.Level))
	}
	validFormats := []string{"text", "json"}
	isValidFormat := false
	for _, f := range validFormats {
		if c.Log.Format == f {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errs = append(errs, fmt.Sprintf("invalid log format '%s': must be one of %v", c.Log.Format, validFormats))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// Income returns the configured income, if any.
func (c *Config) Income() (core.Money, bool, error) {
	return optionalAmount(c.Profile.Income)
}

// MonthlyBudget returns the configured monthly budget, if any.
func (c *Config) MonthlyBudget() (core.Money, bool, error) {
	return optionalAmount(c.Profile.MonthlyBudget)
}

func optionalAmount(s string) (core.Money, bool, error) {
	if s == "" {
		return core.Zero, false, nil
	}
	m, err := core.ParseNonNegativeAmount(s)
	if err != nil {
		return core.Zero, false, err
	}
	return m, true, nil
}
