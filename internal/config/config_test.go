package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "valid profile values",
			mutate: func(c *Config) {
				c.Profile = ProfileConfig{Name: "Ana", Income: "3000", MonthlyBudget: "1000,50"}
			},
			wantErr: false,
		},
		{
			name:        "non-numeric income",
			mutate:      func(c *Config) { c.Profile.Income = "lots" },
			wantErr:     true,
			errorString: "invalid income 'lots'",
		},
		{
			name:        "negative monthly budget",
			mutate:      func(c *Config) { c.Profile.MonthlyBudget = "-5" },
			wantErr:     true,
			errorString: "invalid monthly budget '-5'",
		},
		{
			name:        "empty currency",
			mutate:      func(c *Config) { c.Display.Currency = "  " },
			wantErr:     true,
			errorString: "currency symbol cannot be empty",
		},
		{
			name:        "suggest distance too large",
			mutate:      func(c *Config) { c.Display.SuggestDistance = 9 },
			wantErr:     true,
			errorString: "invalid suggest distance 9: must be between 0 and 5",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.Log.Format = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml': must be one of [text json]",
		},
		{
			name: "multiple errors are combined",
			mutate: func(c *Config) {
				c.Log.Format = "xml"
				c.Display.Currency = ""
			},
			wantErr:     true,
			errorString: "\n- ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("expected error to contain '%s', got: %s", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.Currency != "$" || cfg.Log.Level != "info" || cfg.Display.SuggestDistance != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[profile]
name = "Ana"
income = "3000"
monthly_budget = "1000"

[display]
currency = "€"
plain = true

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BUDGET_MONTHLY", "1200")
	t.Setenv("BUDGET_LOG_FORMAT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Profile.Name != "Ana" || cfg.Profile.Income != "3000" {
		t.Errorf("file values not loaded: %+v", cfg.Profile)
	}
	if cfg.Profile.MonthlyBudget != "1200" {
		t.Errorf("env should override file, got %q", cfg.Profile.MonthlyBudget)
	}
	if cfg.Display.Currency != "€" || !cfg.Display.Plain {
		t.Errorf("display not loaded: %+v", cfg.Display)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log not loaded: %+v", cfg.Log)
	}
	// untouched keys keep their defaults
	if cfg.Display.SuggestDistance != 2 {
		t.Errorf("suggest distance = %d, want default 2", cfg.Display.SuggestDistance)
	}

	budget, ok, err := cfg.MonthlyBudget()
	if err != nil || !ok || budget.String() != "1200" {
		t.Errorf("MonthlyBudget() = %s, %v, %v", budget, ok, err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[profile\nname="), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BUDGET_SUGGEST_DISTANCE", "far")
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected environment parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Profile.Name = "Ana"
	cfg.Display.Currency = "£"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(path) {
		t.Fatal("config file was not created")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Profile.Name != "Ana" || got.Display.Currency != "£" {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Path(), filepath.Join(dir, "budget", "config.toml"); got != want {
		t.Errorf("Path() = %s, want %s", got, want)
	}
}

func TestOptionalAmounts(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok, err := cfg.Income(); ok || err != nil {
		t.Errorf("empty income should be absent, got ok=%v err=%v", ok, err)
	}
	cfg.Profile.Income = "x"
	if _, _, err := cfg.Income(); err == nil {
		t.Error("expected error for invalid income")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"NAME", "INCOME", "MONTHLY", "CURRENCY", "PLAIN", "SUGGEST_DISTANCE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
}
