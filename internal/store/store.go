// Package store defines the boundary to the bank's persistent account
// records. The terminal core only ever talks to the Store interface; the
// connection it represents is opened when a card is inserted and closed on
// every ejection or seizure.
package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/atmcore/internal/money"
)

var (
	// ErrNotFound is returned when no account matches a card number.
	ErrNotFound = errors.New("account not found")

	// ErrNotConnected is returned when an operation is attempted before
	// Open succeeded or after Close.
	ErrNotConnected = errors.New("store not connected")

	// ErrNegativeBalance is returned when a balance adjustment would take
	// an account below zero. The store enforces this even though callers
	// check first, so concurrent terminals cannot overdraw an account.
	ErrNegativeBalance = errors.New("balance may not become negative")
)

// Account is the in-memory snapshot of a card's stored record, loaded for
// the duration of a session and never persisted back wholesale.
type Account struct {
	CardNumber      string
	PIN             string
	Active          bool
	Balance         money.Amount
	OwnerLastName   string
	OwnerGenderMale bool
}

// Title returns the formal salutation derived from the stored gender flag.
func (a *Account) Title() string {
	if a.OwnerGenderMale {
		return "Mr"
	}
	return "Ms"
}

// Store is the set of operations the terminal requires from the bank's
// record keeper. All calls are synchronous; callers bound them with a
// context deadline.
type Store interface {
	// Open establishes the connection. It is called on card insertion.
	Open(ctx context.Context) error

	// Close releases the connection. It is called on ejection, seizure
	// and power-off, and must be safe to call when not connected.
	Close() error

	// FindAccount loads the account snapshot for a card number.
	// Returns ErrNotFound if no such card exists.
	FindAccount(ctx context.Context, cardNumber string) (*Account, error)

	// SetActive flips the active flag of a card, e.g. to block it after
	// exhausted PIN attempts. Returns ErrNotFound for unknown cards.
	SetActive(ctx context.Context, cardNumber string, active bool) error

	// AdjustBalance applies a signed delta to a card's balance.
	// Returns ErrNotFound for unknown cards and ErrNegativeBalance if the
	// result would be negative.
	AdjustBalance(ctx context.Context, cardNumber string, delta money.Amount) error

	// Exists reports whether a card number is known to the bank.
	Exists(ctx context.Context, cardNumber string) (bool, error)
}
