package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/atmcore/internal/atm/device"
	"github.com/dmitrijs2005/atmcore/internal/atm/engine"
	"github.com/dmitrijs2005/atmcore/internal/atm/messages"
	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
)

// onCardInserted opens the bank connection, loads the account snapshot and
// asks for the PIN. The connection stays open until ejection or seizure.
func (s *Session) onCardInserted(ctx context.Context, cardNumber string) error {
	if cardNumber == "" {
		return nil
	}

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.store.Open(opCtx); err != nil {
		return errors.Join(errConnFailed, err)
	}

	s.dev.Display.ShowCardState(device.CardInserted)
	s.show(messages.Render(messages.PleaseWait))

	acc, err := s.store.FindAccount(opCtx, cardNumber)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errors.Join(errCardUnreadable, err)
		}
		return err
	}

	if !acc.Active {
		return errCardInactive
	}

	s.account = acc
	s.pinAttemptsLeft = s.cfg.MaxPinAttempts
	s.log.Info(ctx, "card accepted", "card_number", maskCard(cardNumber))

	s.setState(ctx, StateAwaitingPin)
	s.show(messages.Render(messages.PinRequest, acc.Title(), acc.OwnerLastName))
	return nil
}

// onPinEntered compares the attempt verbatim against the stored PIN. On the
// last failed attempt the card is deactivated in the store and seized; the
// seizure happens even if the deactivation itself fails.
func (s *Session) onPinEntered(ctx context.Context, pin string) error {
	if pin == s.account.PIN {
		s.setState(ctx, StateMenuTop)
		s.show(messages.Render(messages.Menu))
		return nil
	}

	if s.pinAttemptsLeft > 1 {
		s.pinAttemptsLeft--
		s.log.Warn(ctx, "wrong pin", "attempts_remaining", s.pinAttemptsLeft)
		s.show(messages.Render(messages.PinRetry, s.pinAttemptsLeft))
		return nil
	}

	s.pinAttemptsLeft = 0

	opCtx, cancel := s.opCtx(ctx)
	defer cancel()
	if err := s.store.SetActive(opCtx, s.account.CardNumber, false); err != nil {
		s.log.Error(ctx, "card deactivation failed",
			"card_number", maskCard(s.account.CardNumber), "error", err.Error())
	}

	return errPinExhausted
}

func (s *Session) onMenuSelection(ctx context.Context, selection string) error {
	switch selection {
	case "":
		return nil

	case "1":
		opCtx, cancel := s.opCtx(ctx)
		defer cancel()

		balance, err := s.engine.Balance(opCtx, s.account.CardNumber)
		if err != nil {
			return err
		}
		s.show(messages.Render(messages.BalanceIs, balance.String()))
		s.show(messages.Render(messages.Menu))
		return nil

	case "2":
		s.pendingIntent = intentWithdraw
		s.setState(ctx, StateAwaitingAmount)
		s.show(messages.Render(messages.PromptWithdrawAmount))
		return nil

	case "3":
		s.pendingIntent = intentTransfer
		s.setState(ctx, StateAwaitingAmount)
		s.show(messages.Render(messages.PromptTransferAmount))
		return nil

	case "0":
		s.eject(ctx, messages.Render(messages.EjectSuccess))
		return nil

	default:
		s.show(messages.Render(messages.NotImplemented))
		s.show(messages.Render(messages.Menu))
		return nil
	}
}

func (s *Session) onAmountEntered(ctx context.Context, input string) error {
	amount, err := money.Parse(input)
	if err != nil {
		s.show(messages.Render(messages.InvalidAmount))
		return nil
	}

	switch s.pendingIntent {
	case intentWithdraw:
		opCtx, cancel := s.opCtx(ctx)
		defer cancel()

		balance, err := s.engine.Withdraw(opCtx, s.account.CardNumber, amount)
		if errors.Is(err, engine.ErrInsufficientFunds) {
			s.report(ctx, messages.Render(messages.InsufficientFunds))
			return nil
		}
		if err != nil {
			return err
		}

		s.printReceipt("WITHDRAWAL", amount, balance)
		s.report(ctx, messages.Render(messages.WithdrawDone, amount.String(), balance.String()))
		return nil

	case intentTransfer:
		s.pendingAmount = amount
		s.setState(ctx, StateAwaitingRecipient)
		s.show(messages.Render(messages.PromptRecipient))
		return nil

	default:
		// No intent recorded; back to the menu rather than crashing.
		s.setState(ctx, StateMenuTop)
		s.show(messages.Render(messages.Menu))
		return nil
	}
}

func (s *Session) onRecipientEntered(ctx context.Context, recipient string) error {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	amount := s.pendingAmount
	balance, err := s.engine.Transfer(opCtx, s.account.CardNumber, recipient, amount)

	switch {
	case errors.Is(err, engine.ErrInsufficientFunds):
		s.report(ctx, messages.Render(messages.InsufficientFunds))
		return nil
	case errors.Is(err, engine.ErrInvalidRecipient):
		s.report(ctx, messages.Render(messages.InvalidRecipient))
		return nil
	case err != nil:
		return err
	}

	s.printReceipt("TRANSFER", amount, balance)
	s.report(ctx, messages.Render(messages.TransferDone, amount.String(), maskCard(recipient), balance.String()))
	return nil
}

func (s *Session) onAcknowledge(ctx context.Context, input string) error {
	if input != "0" {
		s.show(messages.Render(messages.PressZero))
		return nil
	}
	s.setState(ctx, StateMenuTop)
	s.show(messages.Render(messages.Menu))
	return nil
}

// report shows an operation outcome and waits for acknowledgement.
func (s *Session) report(ctx context.Context, text string) {
	s.pendingIntent = intentNone
	s.pendingAmount = money.Zero
	s.setState(ctx, StateReportingResult)
	s.show(text)
	s.show(messages.Render(messages.PressZero))
}

func (s *Session) printReceipt(operation string, amount, balance money.Amount) {
	if s.dev.Printer == nil {
		return
	}
	receipt := fmt.Sprintf("%s\nref: %s\ncard: %s\n%s: %s\nbalance: %s",
		time.Now().Format(time.RFC3339),
		uuid.NewString(),
		maskCard(s.account.CardNumber),
		operation,
		amount.String(),
		balance.String(),
	)
	s.dev.Printer.Print(receipt)
}

// maskCard hides all but the last two digits of a card number in logs and
// receipts.
func maskCard(cardNumber string) string {
	if len(cardNumber) <= 2 {
		return "**"
	}
	return "**" + cardNumber[len(cardNumber)-2:]
}
