// Package cli provides process bootstrap and terminal rendering helpers
// shared by the budget commands.
package cli

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"budget/internal/config"
	"budget/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from path, applies overrides
// (typically command-line flags) and validates the result. Failures are
// logged through logger before being returned.
func LoadAndValidateConfig(logger *log.Logger, path string, overrides ...func(*config.Config)) (*config.Config, error) {
	l := logger.WithComponent(log.ComponentConfig)

	cfg, err := config.Load(path)
	if err != nil {
		l.Error("Failed to load configuration", configFields(log.OpLoadConfig, path, err)...)
		return nil, err
	}
	for _, apply := range overrides {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		l.Error("Configuration validation failed", configFields(log.OpLoadConfig, path, err)...)
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, or to the default location when path is empty.
func SaveConfig(logger *log.Logger, path string, cfg *config.Config) (string, error) {
	if path == "" {
		path = config.Path()
	}
	l := logger.WithComponent(log.ComponentConfig)
	if err := config.Save(path, *cfg); err != nil {
		l.Error("Failed to save configuration", configFields(log.OpSaveConfig, path, err)...)
		return "", fmt.Errorf("save config: %w", err)
	}
	l.Info("Configuration saved", log.FieldOperation, log.OpSaveConfig, log.FieldConfigPath, path)
	return path, nil
}

func configFields(op, path string, err error) []any {
	f := log.NewFields().
		WithOperation(op).
		WithErrorType(log.ErrorTypeConfiguration).
		WithError(err)
	f[log.FieldConfigPath] = path
	return f.ToSlice()
}

// SetupLogger builds the application logger from cfg, writing to w, and sets
// it as the slog default.
func SetupLogger(cfg config.LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	logger := log.New(log.Config{
		Level:     level,
		Format:    cfg.Format,
		Component: log.ComponentApp,
		Output:    w,
	})
	log.SetDefault(logger)
	return logger, nil
}
