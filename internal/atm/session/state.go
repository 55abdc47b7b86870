package session

// State is the terminal session's position in its input-handling cycle.
type State int

const (
	// StatePowerOff: the terminal is switched off; input is ignored.
	StatePowerOff State = iota

	// StateIdle: no card inside; the next input line is a card number.
	StateIdle

	// StateAwaitingPin: a card is loaded; the next input is a PIN attempt.
	StateAwaitingPin

	// StateMenuTop: authenticated; the next input is a menu selection.
	StateMenuTop

	// StateAwaitingAmount: an operation was selected; the next input is
	// the amount for it.
	StateAwaitingAmount

	// StateAwaitingRecipient: a transfer amount is pending; the next input
	// is the recipient card number.
	StateAwaitingRecipient

	// StateReportingResult: an operation result is on screen; "0"
	// acknowledges it and returns to the menu.
	StateReportingResult
)

func (s State) String() string {
	switch s {
	case StatePowerOff:
		return "power_off"
	case StateIdle:
		return "idle"
	case StateAwaitingPin:
		return "awaiting_pin"
	case StateMenuTop:
		return "menu_top"
	case StateAwaitingAmount:
		return "awaiting_amount"
	case StateAwaitingRecipient:
		return "awaiting_recipient"
	case StateReportingResult:
		return "reporting_result"
	default:
		return "unknown"
	}
}

// intent records which operation an entered amount belongs to.
type intent int

const (
	intentNone intent = iota
	intentWithdraw
	intentTransfer
)
