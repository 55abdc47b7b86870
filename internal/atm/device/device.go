// Package device declares the capability interfaces of the physical
// terminal. The session composes them individually; a full terminal is
// simply a value that implements all of them.
package device

// CardState is what the card slot indicator shows.
type CardState int

const (
	CardAbsent CardState = iota
	CardInserted
	CardEjected
	CardSeized
)

func (s CardState) String() string {
	switch s {
	case CardAbsent:
		return "absent"
	case CardInserted:
		return "inserted"
	case CardEjected:
		return "ejected"
	case CardSeized:
		return "seized"
	default:
		return "unknown"
	}
}

// Display shows text and the card-slot indicator. Output is best effort;
// nothing in the session's control flow depends on it.
type Display interface {
	ShowText(text string)
	ShowCardState(state CardState)
}

// Printer prints receipts.
type Printer interface {
	Print(text string)
}

// InputControl advises the input device whether the session is ready for
// input. Purely advisory; the session does not rely on it being honored.
type InputControl interface {
	EnableInput()
	DisableInput()
}

// Terminal bundles all terminal capabilities.
type Terminal interface {
	Display
	Printer
	InputControl
}
