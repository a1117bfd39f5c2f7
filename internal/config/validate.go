package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
)

// Validate checks the structural validity of a Config.
// All problems are reported together via errors.Join.
func Validate(cfg *Config) error {
	var errs []error

	if _, err := ParseLogLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if cfg.Analysis.LeaderboardLimit < 0 {
		errs = append(errs, fmt.Errorf("config: analysis.leaderboard_limit must not be negative, got %d", cfg.Analysis.LeaderboardLimit))
	}
	for i, name := range cfg.Analysis.ExtraSystemSenders {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("config: analysis.extra_system_senders[%d] is empty", i))
		}
	}
	for i, word := range cfg.Analysis.ExtraStopWords {
		if strings.TrimSpace(word) == "" {
			errs = append(errs, fmt.Errorf("config: analysis.extra_stop_words[%d] is empty", i))
		}
	}

	if cfg.Serve.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
			errs = append(errs, fmt.Errorf("config: serve.addr %q is not host:port: %w", cfg.Serve.Addr, err))
		}
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps a config level string to a slog.Level.
// The empty string means info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q (supported: debug, info, warn, error)", level)
	}
}
