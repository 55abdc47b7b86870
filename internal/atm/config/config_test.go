package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "bankdb", cfg.DatabaseDSN)
	assert.Equal(t, 3, cfg.MaxPinAttempts)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"atm", "-r", "pgx", "-d", "postgres://localhost/bank", "-p", "5", "-t", "10", "-demo"}

	cfg := LoadConfig()

	assert.Equal(t, "pgx", cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/bank", cfg.DatabaseDSN)
	assert.Equal(t, 5, cfg.MaxPinAttempts)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.SeedDemo)
}
