package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/atmcore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-r string   store driver ("sqlite" or "pgx")
//	-d string   database name or DSN
//	-p int      max PIN attempts before the card is seized
//	-t int      store call timeout, seconds
//	-demo       seed the demo accounts on startup
//
// os.Args is filtered to only the flags handled here, so the -c/-config
// flags consumed by the JSON overlay do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-r", "-d", "-p", "-t", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StoreDriver, "r", config.StoreDriver, "store driver (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database name or DSN")
	fs.IntVar(&config.MaxPinAttempts, "p", config.MaxPinAttempts, "max PIN attempts")

	storeTimeout := fs.Int("t", int(config.StoreTimeout.Seconds()), "store call timeout (in seconds)")

	fs.BoolVar(&config.SeedDemo, "demo", config.SeedDemo, "seed demo accounts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.StoreTimeout = time.Duration(*storeTimeout) * time.Second
}
