// Package config handles configuration for the terminal, including
// defaults, .env/environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the terminal.
//
// Fields:
//   - StoreDriver: database driver, "sqlite" (default) or "pgx".
//   - DatabaseDSN: database name or DSN, depending on the driver.
//   - MaxPinAttempts: consecutive wrong PINs before the card is seized.
//   - StoreTimeout: upper bound for every individual store call.
//   - SeedDemo: insert the demo accounts on startup (development only).
type Config struct {
	StoreDriver    string
	DatabaseDSN    string
	MaxPinAttempts int
	StoreTimeout   time.Duration
	SeedDemo       bool
}

// LoadDefaults populates Config with development defaults: a local
// single-file SQLite bank database.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.DatabaseDSN = "bankdb"
	c.MaxPinAttempts = 3
	c.StoreTimeout = 5 * time.Second
	c.SeedDemo = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file and finally command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
