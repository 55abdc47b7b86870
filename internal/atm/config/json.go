package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/atmcore/internal/flagx"
	"github.com/dmitrijs2005/atmcore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the store timeout either as a string
// like "5s" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	StoreDriver    string         `json:"store_driver"`
	DatabaseDSN    string         `json:"database_dsn"`
	MaxPinAttempts int            `json:"max_pin_attempts"`
	StoreTimeout   timex.Duration `json:"store_timeout"`
	SeedDemo       bool           `json:"seed_demo"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is taken from the -c or -config command-line flags via
// flagx.JsonConfigFlags(); if neither is set, no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MaxPinAttempts > 0 {
		cfg.MaxPinAttempts = jc.MaxPinAttempts
	}
	if jc.StoreTimeout.Duration > 0 {
		cfg.StoreTimeout = time.Duration(jc.StoreTimeout.Duration)
	}
	cfg.SeedDemo = cfg.SeedDemo || jc.SeedDemo
}
