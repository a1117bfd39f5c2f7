// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for chatwrapped.
package config

// Config is the top-level configuration structure. Every field is optional;
// Default() supplies a usable zero configuration.
type Config struct {
	// Log controls diagnostic output on stderr.
	Log LogConfig `yaml:"log"`

	// Analysis tunes the statistics calculators.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Serve configures the local HTTP listener.
	Serve ServeConfig `yaml:"serve"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// AnalysisConfig tunes the statistics calculators.
type AnalysisConfig struct {
	// LeaderboardLimit caps the reaction leaderboards. 0 keeps the built-in
	// limit of 10.
	LeaderboardLimit int `yaml:"leaderboard_limit"`

	// ExtraSystemSenders names additional non-human senders to exclude,
	// on top of the built-in list ("Group photo", "Meta AI", ...).
	ExtraSystemSenders []string `yaml:"extra_system_senders,omitempty"`

	// ExtraStopWords extends the stop list used by most-used-word scoring.
	ExtraStopWords []string `yaml:"extra_stop_words,omitempty"`
}

// ServeConfig configures the local HTTP listener.
type ServeConfig struct {
	// Addr is the listen address, host:port.
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Serve: ServeConfig{Addr: "127.0.0.1:8490"},
	}
}
