// Package config defines run configuration and its loading.
package config

import (
	"runtime"
)

// Config contains everything a ranking run needs.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GuessesPath points at the guess vocabulary, one word per line.
	// When empty, the solution list doubles as the vocabulary.
	GuessesPath string `koanf:"guesses_path"`

	// SolutionsPath points at the solution set, one word per line.
	SolutionsPath string `koanf:"solutions_path"`

	// WorkerCount sets the number of evaluation workers.
	WorkerCount int `koanf:"worker_count"`

	// Trim keeps only the best and worst Trim rows of the table.
	// Zero prints every row.
	Trim int `koanf:"trim"`

	// CachePath points at a precomputed pattern table. Empty disables
	// the cache and patterns are computed in process.
	CachePath string `koanf:"cache_path"`

	// BreakdownWord, when set, prints the feedback group breakdown for
	// that guess after the table.
	BreakdownWord string `koanf:"breakdown_word"`

	// Color enables the tile colors in the breakdown output.
	Color bool `koanf:"color"`

	// Progress enables the progress bar during evaluation.
	Progress bool `koanf:"progress"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		WorkerCount: runtime.NumCPU(),
		Trim:        10,
		Color:       true,
		Progress:    true,
	}
}
