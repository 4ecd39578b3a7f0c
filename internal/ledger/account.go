package ledger

import (
	"github.com/google/uuid"
)

// User is the authoritative per-account record. Accounts are created on
// first interaction and never deleted; a fully unwound account keeps its
// zeroed record.
type User struct {
	AccountID           uuid.UUID
	CollateralDeposited int64 // amount scale
	DepositedSavings    int64
	StakedCollateral    int64
	Borrowed            int64
	RewardAccumulated   int64
	LastCheckpoint      int64 // unix seconds, 0 = uninitialized
	LastCooldown        int64 // unix seconds of last collateral withdrawal
	Referrer            *uuid.UUID
	Blacklisted         bool
}

// Clone returns a deep copy of the user record.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Referrer != nil {
		ref := *u.Referrer
		c.Referrer = &ref
	}
	return &c
}

// Loan is the single active loan of an account. It is closed (Active =
// false, components zeroed) rather than removed.
type Loan struct {
	AccountID       uuid.UUID
	Principal       int64
	InterestAccrued int64
	Collateral      int64 // snapshot of collateral at borrow time
	StartTime       int64 // unix seconds; accrual checkpoint
	OriginatedAt    int64 // unix seconds; set at open, rolled forward on extend
	Active          bool
}

// Clone returns a copy of the loan record.
func (l *Loan) Clone() *Loan {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// Outstanding returns principal plus accrued interest.
func (l *Loan) Outstanding() int64 {
	if l == nil || !l.Active {
		return 0
	}
	return l.Principal + l.InterestAccrued
}

// FixedDeposit is a term deposit locked until UnlockTime in exchange for
// a reward-rate multiplier (percent of base rate, >= 100).
type FixedDeposit struct {
	AccountID      uuid.UUID
	Amount         int64
	UnlockTime     int64 // unix seconds
	RateMultiplier int64 // percent of base reward rate
	Active         bool
}

// Clone returns a copy of the fixed deposit record.
func (fd *FixedDeposit) Clone() *FixedDeposit {
	if fd == nil {
		return nil
	}
	c := *fd
	return &c
}

// Aggregates are the global sums maintained in lockstep with per-account
// fields. After every committed operation each aggregate must equal the
// sum of the corresponding field across all accounts.
type Aggregates struct {
	TotalCollateral int64 // CollateralDeposited + StakedCollateral
	TotalBorrowed   int64 // active loan principal
	TotalDeposits   int64 // DepositedSavings + active fixed deposits
	ProtocolFees    int64 // treasury
}
