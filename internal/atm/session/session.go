// Package session implements the control logic of a terminal session: the
// state machine that interprets raw input according to the current state,
// the PIN retry and card seizure policy, and the ejection/seizure cleanup
// that scopes the bank connection to a single card's lifetime.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/atmcore/internal/atm/device"
	"github.com/dmitrijs2005/atmcore/internal/atm/engine"
	"github.com/dmitrijs2005/atmcore/internal/atm/messages"
	"github.com/dmitrijs2005/atmcore/internal/logging"
	"github.com/dmitrijs2005/atmcore/internal/money"
	"github.com/dmitrijs2005/atmcore/internal/store"
)

const (
	DefaultMaxPinAttempts = 3
	DefaultStoreTimeout   = 5 * time.Second
)

// failure classification for the top-level dispatch; see Session.fail.
var (
	errConnFailed     = errors.New("bank connection failed")
	errCardUnreadable = errors.New("card unreadable")
	errCardInactive   = errors.New("card inactive")
	errPinExhausted   = errors.New("pin attempts exhausted")
)

type Config struct {
	// MaxPinAttempts is how many consecutive wrong PINs block the card.
	MaxPinAttempts int

	// StoreTimeout bounds every individual store call.
	StoreTimeout time.Duration
}

// Devices are the terminal capabilities the session drives. Display is
// required; Printer and Input are optional.
type Devices struct {
	Display device.Display
	Printer device.Printer
	Input   device.InputControl
}

// Session is created once per powered-on terminal and lives across many
// card cycles. It owns the loaded account snapshot exclusively and resets
// itself on every ejection or seizure.
type Session struct {
	cfg    Config
	store  store.Store
	engine *engine.Engine
	dev    Devices
	log    logging.Logger

	state           State
	account         *store.Account
	pinAttemptsLeft int
	pendingIntent   intent
	pendingAmount   money.Amount
}

func New(cfg Config, st store.Store, dev Devices, log logging.Logger) *Session {
	if cfg.MaxPinAttempts <= 0 {
		cfg.MaxPinAttempts = DefaultMaxPinAttempts
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}

	log = log.With("session_id", uuid.NewString())

	return &Session{
		cfg:             cfg,
		store:           st,
		engine:          engine.New(st, log),
		dev:             dev,
		log:             log,
		state:           StatePowerOff,
		pinAttemptsLeft: cfg.MaxPinAttempts,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// PinAttemptsRemaining returns how many PIN attempts are left before the
// card is seized.
func (s *Session) PinAttemptsRemaining() int {
	return s.pinAttemptsLeft
}

// PowerOn brings the terminal from the powered-off state to Idle.
func (s *Session) PowerOn(ctx context.Context) {
	if s.state != StatePowerOff {
		return
	}
	s.setState(ctx, StateIdle)
	s.dev.Display.ShowCardState(device.CardAbsent)
	s.show(messages.Render(messages.InsertCard))
	if s.dev.Input != nil {
		s.dev.Input.EnableInput()
	}
}

// PowerOff discards any loaded account, releases the bank connection and
// disables input. Safe to call in any state.
func (s *Session) PowerOff(ctx context.Context) {
	if s.state == StatePowerOff {
		return
	}
	s.cleanup(ctx)
	s.show(messages.Render(messages.NoPower))
	if s.dev.Input != nil {
		s.dev.Input.DisableInput()
	}
	s.setState(ctx, StatePowerOff)
}

// HandleInput processes one input event to completion. Events are expected
// to arrive strictly sequentially; the session is not safe for concurrent
// calls.
func (s *Session) HandleInput(ctx context.Context, input string) {
	input = strings.TrimSpace(input)

	var h func(context.Context, string) error
	switch s.state {
	case StatePowerOff:
		return
	case StateIdle:
		h = s.onCardInserted
	case StateAwaitingPin:
		h = s.onPinEntered
	case StateMenuTop:
		h = s.onMenuSelection
	case StateAwaitingAmount:
		h = s.onAmountEntered
	case StateAwaitingRecipient:
		h = s.onRecipientEntered
	case StateReportingResult:
		h = s.onAcknowledge
	default:
		return
	}

	if err := h(ctx, input); err != nil {
		s.fail(ctx, err)
	}
}

// Cancel handles the cancel key. During amount or recipient entry it
// returns to the top menu; during PIN entry or at the menu it ejects the
// card; in other states it is ignored.
func (s *Session) Cancel(ctx context.Context) {
	switch s.state {
	case StateAwaitingAmount, StateAwaitingRecipient:
		s.pendingIntent = intentNone
		s.pendingAmount = money.Zero
		s.setState(ctx, StateMenuTop)
		s.show(messages.Render(messages.Menu))
	case StateAwaitingPin, StateMenuTop:
		s.eject(ctx, messages.Render(messages.EjectSuccess))
	}
}

// fail is the single place where store failures become user-visible
// outcomes: each kind maps to either an eject or a seizure plus a message.
func (s *Session) fail(ctx context.Context, err error) {
	s.log.Error(ctx, "session failure", "state", s.state.String(), "error", err.Error())

	switch {
	case errors.Is(err, errConnFailed):
		s.eject(ctx, messages.Render(messages.EjectErrConn))
	case errors.Is(err, errCardUnreadable):
		s.eject(ctx, messages.Render(messages.EjectErrRead))
	case errors.Is(err, errCardInactive):
		s.seize(ctx, messages.Render(messages.SeizedInactive))
	case errors.Is(err, errPinExhausted):
		s.seize(ctx, messages.Render(messages.SeizedPinExhausted))
	default:
		s.eject(ctx, messages.Render(messages.EjectErrFail))
	}
}

// eject returns the card to the user: message, connection released, account
// discarded, PIN counter restored. The same card may be inserted again.
func (s *Session) eject(ctx context.Context, message string) {
	s.show(message)
	s.cleanup(ctx)
	s.dev.Display.ShowCardState(device.CardEjected)
	s.setState(ctx, StateIdle)
}

// seize retains the card. Cleanup is identical to ejection; the difference
// is the indicator and that the account was already deactivated upstream.
func (s *Session) seize(ctx context.Context, message string) {
	s.show(message)
	s.cleanup(ctx)
	s.dev.Display.ShowCardState(device.CardSeized)
	s.setState(ctx, StateIdle)
}

func (s *Session) cleanup(ctx context.Context) {
	if err := s.store.Close(); err != nil {
		s.log.Warn(ctx, "store close failed", "error", err.Error())
	}
	s.account = nil
	s.pendingIntent = intentNone
	s.pendingAmount = money.Zero
	s.pinAttemptsLeft = s.cfg.MaxPinAttempts
}

func (s *Session) setState(ctx context.Context, next State) {
	if s.state == next {
		return
	}
	s.log.Debug(ctx, "state transition", "from", s.state.String(), "to", next.String())
	s.state = next
}

func (s *Session) show(text string) {
	s.dev.Display.ShowText(text)
}

// opCtx bounds a single store operation with the configured timeout.
func (s *Session) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}
