package model

import "errors"

// Domain errors shared by the ledger, rule table, and interest calculator.
// All are recoverable bad-input conditions; callers dispatch with errors.Is
// and the shell reports the message and re-prompts.
var (
	// ErrFormat reports malformed input: a bad date, a bad number, or the
	// wrong number of tokens.
	ErrFormat = errors.New("incorrect format")

	// ErrValidation reports an out-of-range value or an unsupported
	// transaction type.
	ErrValidation = errors.New("invalid value")

	// ErrNotFound reports an operation referencing an unknown account.
	ErrNotFound = errors.New("account not found")

	// ErrInsufficientFunds reports a withdrawal exceeding the balance.
	ErrInsufficientFunds = errors.New("insufficient balance")
)
