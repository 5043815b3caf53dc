package ledger

import "errors"

// Set of conditions the ledger reports to its caller. All of them are
// recoverable and none of them leaves the chain in a partial state.
var (
	// ErrUnknownStudent is returned when an award or transfer references a
	// student that was never registered.
	ErrUnknownStudent = errors.New("student is not registered")

	// ErrInsufficientFunds is returned when a transfer amount exceeds the
	// sender's current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when a transfer amount is zero.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrEmptyPending is returned when mining is requested with no staged
	// certificates. The chain is left unchanged.
	ErrEmptyPending = errors.New("no pending records to mine")
)
