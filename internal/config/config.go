package config

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// Config carries the runtime configuration for the shell. Everything is
// sourced from environment variables; the shell has no flags and no
// configuration files.
type Config struct {
	// LogLevel selects the minimum level emitted: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// JSONLogs switches structured JSON output on instead of the console
	// writer.
	JSONLogs bool `env:"DESKSHELL_JSON_LOGS"`

	// Platform overrides the detected operating system for menu-strategy
	// selection. Empty means use the build target.
	Platform string `env:"DESKSHELL_PLATFORM"`

	// Debug forces debug-level logging regardless of LogLevel.
	Debug bool `env:"DESKSHELL_DEBUG"`
}

// Load reads configuration from the environment and applies defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Platform == "" {
		cfg.Platform = runtime.GOOS
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
