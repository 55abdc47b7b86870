package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first if one is present. Unset or malformed values
// leave the current configuration untouched.
//
// Recognized variables:
//
//	ATM_STORE_DRIVER     "sqlite" or "pgx"
//	ATM_DATABASE_DSN     database name or DSN
//	ATM_MAX_PIN_ATTEMPTS integer
//	ATM_STORE_TIMEOUT    Go duration, e.g. "5s"
//	ATM_SEED_DEMO        boolean
func parseEnv(cfg *Config) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if v := os.Getenv("ATM_STORE_DRIVER"); v != "" {
		cfg.StoreDriver = v
	}
	if v := os.Getenv("ATM_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("ATM_MAX_PIN_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxPinAttempts = n
		}
	}
	if v := os.Getenv("ATM_STORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.StoreTimeout = d
		}
	}
	if v := os.Getenv("ATM_SEED_DEMO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedDemo = b
		}
	}
}
