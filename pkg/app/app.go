// Package app provides the shared wiring used by every chatwrapped entry
// point: configuration loading, logger construction, and the archive → parse
// → analyze pipeline the CLI, HTTP server, and MCP server all run.
package app

import (
	"log/slog"
	"os"

	"github.com/flemzord/chatwrapped/internal/config"
)

// LoadConfig loads and validates the configuration. An explicit path must
// exist; with no path the standard locations are searched and the built-in
// defaults are used when nothing is found.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.ResolvePath()
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger builds the stderr text logger every entry point uses. Stdout is
// reserved for analysis output.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
