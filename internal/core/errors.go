package core

import "errors"

var (
	// ErrTransferFailure marks a value-transfer leg that could not
	// complete. The operation's ledger changes are rolled back.
	ErrTransferFailure = errors.New("lending: value transfer failed")

	// ErrReentrancy marks an operation attempted while a flash loan
	// callback holds the core.
	ErrReentrancy = errors.New("lending: reentrant operation rejected")

	// ErrUnauthorized marks a privileged operation from a caller the
	// access policy does not recognize.
	ErrUnauthorized = errors.New("lending: unauthorized")

	// ErrPaused marks an operation family the operator has paused.
	ErrPaused = errors.New("lending: feature paused")

	// ErrBlacklisted marks a flagged account opening new exposure.
	ErrBlacklisted = errors.New("lending: account blacklisted")
)
