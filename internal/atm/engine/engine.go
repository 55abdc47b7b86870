// Package engine implements the funds operations available to an
// authenticated session: balance inquiry, cash withdrawal and card-to-card
// transfer. Business-rule outcomes (insufficient funds, unknown recipient)
// are sentinel errors the menu flow handles inline; anything else is a store
// failure for the session's top-level dispatch to resolve.
package engine

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/atmcore/internal/logging"
	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidRecipient  = errors.New("invalid recipient")
)

type Engine struct {
	store store.Store
	log   logging.Logger
}

func New(st store.Store, log logging.Logger) *Engine {
	return &Engine{store: st, log: log}
}

// Balance re-reads the account's balance from the store so concurrent
// changes made elsewhere are reflected.
func (e *Engine) Balance(ctx context.Context, cardNumber string) (money.Amount, error) {
	acc, err := e.store.FindAccount(ctx, cardNumber)
	if err != nil {
		return money.Zero, err
	}
	return acc.Balance, nil
}

// Withdraw debits amount from the card if the current balance covers it and
// returns the confirmed balance after the debit.
func (e *Engine) Withdraw(ctx context.Context, cardNumber string, amount money.Amount) (money.Amount, error) {
	acc, err := e.store.FindAccount(ctx, cardNumber)
	if err != nil {
		return money.Zero, err
	}

	if amount.GreaterThan(acc.Balance) {
		return money.Zero, ErrInsufficientFunds
	}

	if err := e.store.AdjustBalance(ctx, cardNumber, amount.Neg()); err != nil {
		if errors.Is(err, store.ErrNegativeBalance) {
			// Another terminal drained the account between our read and
			// the debit; report it as an ordinary shortfall.
			return money.Zero, ErrInsufficientFunds
		}
		return money.Zero, err
	}

	return e.Balance(ctx, cardNumber)
}

// Transfer moves amount from the source card to the recipient card as a
// debit followed by a credit. If the credit fails after the debit went
// through, the source is credited back as a best-effort compensation; the
// two legs are NOT atomic, and a crash between them can leave the ledger
// unbalanced.
func (e *Engine) Transfer(ctx context.Context, cardNumber, recipient string, amount money.Amount) (money.Amount, error) {
	acc, err := e.store.FindAccount(ctx, cardNumber)
	if err != nil {
		return money.Zero, err
	}

	if amount.GreaterThan(acc.Balance) {
		return money.Zero, ErrInsufficientFunds
	}

	exists, err := e.store.Exists(ctx, recipient)
	if err != nil {
		return money.Zero, err
	}
	if !exists {
		return money.Zero, ErrInvalidRecipient
	}

	if err := e.store.AdjustBalance(ctx, cardNumber, amount.Neg()); err != nil {
		if errors.Is(err, store.ErrNegativeBalance) {
			return money.Zero, ErrInsufficientFunds
		}
		return money.Zero, err
	}

	if err := e.store.AdjustBalance(ctx, recipient, amount); err != nil {
		e.log.Error(ctx, "transfer credit failed, compensating source",
			"recipient", recipient, "amount", amount.String())

		if compErr := e.store.AdjustBalance(ctx, cardNumber, amount); compErr != nil {
			e.log.Error(ctx, "compensation failed, ledger may be unbalanced",
				"card_number", cardNumber, "amount", amount.String(), "error", compErr.Error())
		}
		return money.Zero, err
	}

	return e.Balance(ctx, cardNumber)
}
