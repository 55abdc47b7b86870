// Package atm wires the terminal together: configuration, the SQL-backed
// account store, the console devices and the session, plus the input loop
// that feeds the session one event at a time.
package atm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrijs2005/atmcore/internal/atm/config"
	"github.com/dmitrijs2005/atmcore/internal/atm/console"
	"github.com/dmitrijs2005/atmcore/internal/atm/session"
	"github.com/dmitrijs2005/atmcore/internal/logging"
	"github.com/dmitrijs2005/atmcore/internal/store/sqlstore"
)

const dbInitTimeout = 30 * time.Second

type App struct {
	config  *config.Config
	console *console.Console
	store   *sqlstore.SQLStore
	session *session.Session
	logger  logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	slogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slogger)

	cons := console.New(os.Stdin, os.Stdout, os.Stdout)

	st := sqlstore.New(cfg.StoreDriver, cfg.DatabaseDSN)
	if err := prepareDatabase(cfg, st); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sess := session.New(
		session.Config{MaxPinAttempts: cfg.MaxPinAttempts, StoreTimeout: cfg.StoreTimeout},
		st,
		session.Devices{Display: cons, Printer: cons, Input: cons},
		logger,
	)

	return &App{config: cfg, console: cons, store: st, session: sess, logger: logger}, nil
}

// prepareDatabase migrates the schema (and optionally seeds demo data) on a
// short-lived connection; the session opens its own connection per card.
func prepareDatabase(cfg *config.Config, st *sqlstore.SQLStore) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbInitTimeout)
	defer cancel()

	if err := st.Open(ctx); err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.RunMigrations(ctx); err != nil {
		return err
	}
	if cfg.SeedDemo {
		if err := st.SeedDemo(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run powers the terminal on and processes console input until EOF, an
// "exit" command or a termination signal. Events are handled strictly one
// at a time, to completion.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	app.logger.Info(ctx, "terminal starting",
		"driver", app.config.StoreDriver, "max_pin_attempts", app.config.MaxPinAttempts)

	app.session.PowerOn(ctx)

loop:
	for ctx.Err() == nil {
		var line string
		var err error
		if app.session.State() == session.StateAwaitingPin {
			line, err = app.console.ReadSecret()
		} else {
			line, err = app.console.ReadLine()
		}
		if err != nil {
			break
		}

		switch strings.ToLower(line) {
		case "exit", "quit":
			break loop
		case "cancel":
			app.session.Cancel(ctx)
		default:
			app.session.HandleInput(ctx, line)
		}
	}

	app.session.PowerOff(context.Background())
	app.logger.Info(ctx, "terminal stopped")
}
