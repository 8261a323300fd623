// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep the struct flat with koanf tags; Load layers defaults, file, env.
// - Provide New() to build a Config with defaults.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FeedURL is the IOF XML v3 result document served by the timing
	// system, fetched on every poll cycle.
	FeedURL string `koanf:"feed_url"`

	// PollIntervalSeconds is the pause between feed fetches.
	PollIntervalSeconds int `koanf:"poll_interval_seconds"`

	// SnapshotPath is the directory of the on-disk snapshot store.
	SnapshotPath string `koanf:"snapshot_path"`

	// SnapshotInMemory keeps the snapshot store in memory only. The board
	// then starts empty after every restart.
	SnapshotInMemory bool `koanf:"snapshot_in_memory"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		FeedURL:             "http://localhost:8081/results-IOFv3.xml",
		PollIntervalSeconds: 30,
		SnapshotPath:        "snapshot.db",
		SnapshotInMemory:    false,
	}
}
