package state

import "errors"

// Error classes for operation outcomes. Specific failures wrap one of
// these sentinels so callers can classify with errors.Is.
var (
	// ErrValidation marks a rejected request: bad amounts, missing
	// records, policy caps. The ledger is unchanged.
	ErrValidation = errors.New("lending: validation failed")

	// ErrInvariant marks a request that would break a solvency rule:
	// undercollateralized borrow, non-liquidatable target, insufficient
	// liquidity. The ledger is unchanged.
	ErrInvariant = errors.New("lending: invariant violation")

	// ErrArithmetic marks an int64 overflow in amount math.
	ErrArithmetic = errors.New("lending: arithmetic overflow")
)
