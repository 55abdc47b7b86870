// Package sqlstore implements the account store on top of a relational
// database. Two drivers are supported: modernc SQLite (the default, matching
// the bank's original single-file "bankdb") and pgx for a shared PostgreSQL
// instance. Queries use $N placeholders, which both engines accept.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/atmcore/internal/dbx"
	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
	"github.com/dmitrijs2005/atmcore/internal/store/migrations"
)

// DriverSQLite and DriverPgx are the database/sql driver names the store
// knows how to open and migrate.
const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

const (
	querySelectCard = `SELECT cards.card_number, cards.pin, cards.active, cards.balance_cents,
                clients.last_name, clients.gender_male
         FROM cards INNER JOIN clients ON cards.client_id = clients.id
         WHERE cards.card_number = $1`

	querySetActive = `UPDATE cards SET active = $1 WHERE card_number = $2`

	queryAdjustBalance = `UPDATE cards SET balance_cents = balance_cents + $1
         WHERE card_number = $2 AND balance_cents + $1 >= 0`

	queryCardExists = `SELECT EXISTS (SELECT 1 FROM cards WHERE card_number = $1)`
)

type SQLStore struct {
	driverName string
	dsn        string
	db         *sql.DB
}

func New(driverName, dsn string) *SQLStore {
	return &SQLStore{driverName: driverName, dsn: dsn}
}

// Open establishes and verifies the database connection. Opening an already
// open store is a no-op.
func (s *SQLStore) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open(s.driverName, s.dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("db ping error: %w", err)
	}

	s.db = db
	return nil
}

// Close releases the database connection. Safe to call when not connected.
func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// RunMigrations brings the schema up to date using the embedded goose
// scripts. The store must be open.
func (s *SQLStore) RunMigrations(ctx context.Context) error {
	if s.db == nil {
		return store.ErrNotConnected
	}

	goose.SetBaseFS(migrations.Migrations)

	dialect := "postgres"
	if s.driverName == DriverSQLite {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

func (s *SQLStore) FindAccount(ctx context.Context, cardNumber string) (*store.Account, error) {
	if s.db == nil {
		return nil, store.ErrNotConnected
	}

	acc := &store.Account{}
	var balanceCents int64

	err := s.db.QueryRowContext(ctx, querySelectCard, cardNumber).Scan(
		&acc.CardNumber, &acc.PIN, &acc.Active, &balanceCents,
		&acc.OwnerLastName, &acc.OwnerGenderMale)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	acc.Balance = money.FromCents(balanceCents)
	return acc, nil
}

func (s *SQLStore) SetActive(ctx context.Context, cardNumber string, active bool) error {
	if s.db == nil {
		return store.ErrNotConnected
	}

	res, err := s.db.ExecContext(ctx, querySetActive, active, cardNumber)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *SQLStore) AdjustBalance(ctx context.Context, cardNumber string, delta money.Amount) error {
	if s.db == nil {
		return store.ErrNotConnected
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		res, err := tx.ExecContext(ctx, queryAdjustBalance, delta.Cents(), cardNumber)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if n == 1 {
			return nil
		}

		// The guarded update matched nothing: either the card is unknown
		// or the delta would overdraw it.
		var exists bool
		if err := tx.QueryRowContext(ctx, queryCardExists, cardNumber).Scan(&exists); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if !exists {
			return store.ErrNotFound
		}
		return store.ErrNegativeBalance
	})
}

func (s *SQLStore) Exists(ctx context.Context, cardNumber string) (bool, error) {
	if s.db == nil {
		return false, store.ErrNotConnected
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx, queryCardExists, cardNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
