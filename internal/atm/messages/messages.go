// Package messages is the catalog of user-facing terminal texts. Keeping
// them in one enumerated table keeps wording out of the state machine and
// makes the session tests independent of phrasing.
package messages

import "fmt"

type Kind int

const (
	InsertCard Kind = iota
	PleaseWait
	NoPower

	// Ejection messages, one per outcome.
	EjectSuccess
	EjectErrConn
	EjectErrRead
	EjectErrFail

	// Seizure messages.
	SeizedInactive
	SeizedPinExhausted

	// Authentication.
	PinRequest // args: title, last name
	PinRetry   // args: attempts remaining

	// Menu flow.
	Menu
	NotImplemented
	PromptWithdrawAmount
	PromptTransferAmount
	PromptRecipient
	PressZero

	// Transaction results.
	BalanceIs      // args: amount
	WithdrawDone   // args: amount, new balance
	TransferDone   // args: amount, recipient, new balance
	InsufficientFunds
	InvalidRecipient
	InvalidAmount
)

var templates = map[Kind]string{
	InsertCard: "Please insert your card",
	PleaseWait: "Please wait...",
	NoPower:    "(no power)",

	EjectSuccess: "Thank you for using our ATM! Good bye.",
	EjectErrConn: "Sorry! ATM failed to connect to bank. Please try again later.",
	EjectErrRead: "Failed to read the card. It may be damaged. Please contact our bank for a replacement.",
	EjectErrFail: "Sorry! An error occured during processing. Please try again.",

	SeizedInactive:     "This card has been blocked by owner and will be seized.",
	SeizedPinExhausted: "Too many incorrect PIN attempts. The card has been blocked and will be seized.",

	PinRequest: "Hello, %s %s! Please enter your PIN.",
	PinRetry:   "Incorrect PIN. Attempts remaining: %d.",

	Menu:           "Please select:\n1 - Balance\n2 - Withdraw cash\n3 - Transfer funds\n0 - Finish and eject card",
	NotImplemented: "NOT IMPLEMENTED",

	PromptWithdrawAmount: "Enter the amount to withdraw.",
	PromptTransferAmount: "Enter the amount to transfer.",
	PromptRecipient:      "Enter the recipient card number.",
	PressZero:            "Press 0 to return to the menu.",

	BalanceIs:         "Your balance is %s.",
	WithdrawDone:      "Please take your %s. New balance: %s.",
	TransferDone:      "Transferred %s to card %s. New balance: %s.",
	InsufficientFunds: "Insufficient funds for this operation.",
	InvalidRecipient:  "No such recipient. Please check the card number.",
	InvalidAmount:     "Invalid amount. Please try again.",
}

// Render formats the template of the given kind with args.
func Render(kind Kind, args ...any) string {
	t, ok := templates[kind]
	if !ok {
		return ""
	}
	if len(args) == 0 {
		return t
	}
	return fmt.Sprintf(t, args...)
}
