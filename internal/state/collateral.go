package state

import (
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

// CollateralManager handles collateral deposits, withdrawals, and the
// stake sub-balance. Staked collateral still backs loans; it only
// becomes non-withdrawable until unstaked.
type CollateralManager struct {
	store  *ledger.Store
	params *ParamsManager
}

func NewCollateralManager(store *ledger.Store, params *ParamsManager) *CollateralManager {
	return &CollateralManager{store: store, params: params}
}

// Deposit credits collateral received from the caller. The caller's
// funds have already been accepted into the pool when this runs.
func (m *CollateralManager) Deposit(id uuid.UUID, amount, now int64, batch *ledger.Batch) error {
	if amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}
	u := m.store.EnsureAccount(id)
	p := m.params.Get()
	if p.MaxDepositPerAccount > 0 {
		total, err := fpmath.CheckedAdd(u.CollateralDeposited+u.StakedCollateral, amount)
		if err != nil {
			return fmt.Errorf("%w: collateral total", ErrArithmetic)
		}
		if total > p.MaxDepositPerAccount {
			return fmt.Errorf("%w: collateral cap %d exceeded", ErrValidation, p.MaxDepositPerAccount)
		}
	}
	m.store.AddCollateral(u, amount)
	batch.Add(ledger.MovementCollateralDeposit,
		ledger.ExternalBucket(), ledger.UserBucket(id, ledger.BucketCollateral), amount)
	return nil
}

// Withdraw releases free collateral back to the caller. It enforces the
// withdrawal cooldown and, when a loan is open, keeps the remaining
// collateral above the required ratio. Returns the amount to pay out.
func (m *CollateralManager) Withdraw(id uuid.UUID, amount, now int64, batch *ledger.Batch) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: withdraw amount must be positive", ErrValidation)
	}
	u := m.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if amount > u.CollateralDeposited {
		return 0, fmt.Errorf("%w: withdraw %d exceeds free collateral %d", ErrValidation, amount, u.CollateralDeposited)
	}
	p := m.params.Get()
	if p.CooldownPeriod > 0 && u.LastCooldown != 0 && now < u.LastCooldown+p.CooldownPeriod {
		return 0, fmt.Errorf("%w: cooldown active until %d", ErrValidation, u.LastCooldown+p.CooldownPeriod)
	}
	if loan := m.store.ActiveLoan(id); loan != nil {
		remaining := u.CollateralDeposited - amount
		if fpmath.MaxBorrow(remaining, p.CollateralRatioPercent) < loan.Outstanding() {
			return 0, fmt.Errorf("%w: withdrawal would undercollateralize loan", ErrInvariant)
		}
	}
	m.store.SubCollateral(u, amount)
	u.LastCooldown = now
	batch.Add(ledger.MovementCollateralWithdraw,
		ledger.UserBucket(id, ledger.BucketCollateral), ledger.ExternalBucket(), amount)
	return amount, nil
}

// Stake locks free collateral into the staked sub-balance.
func (m *CollateralManager) Stake(id uuid.UUID, amount int64, batch *ledger.Batch) error {
	if amount <= 0 {
		return fmt.Errorf("%w: stake amount must be positive", ErrValidation)
	}
	u := m.store.Account(id)
	if u == nil {
		return fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if amount > u.CollateralDeposited {
		return fmt.Errorf("%w: stake %d exceeds free collateral %d", ErrValidation, amount, u.CollateralDeposited)
	}
	m.store.StakeCollateral(u, amount)
	batch.Add(ledger.MovementStakeLock,
		ledger.UserBucket(id, ledger.BucketCollateral), ledger.UserBucket(id, ledger.BucketStaked), amount)
	return nil
}

// Unstake returns staked collateral to the free balance.
func (m *CollateralManager) Unstake(id uuid.UUID, amount int64, batch *ledger.Batch) error {
	if amount <= 0 {
		return fmt.Errorf("%w: unstake amount must be positive", ErrValidation)
	}
	u := m.store.Account(id)
	if u == nil {
		return fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if amount > u.StakedCollateral {
		return fmt.Errorf("%w: unstake %d exceeds staked balance %d", ErrValidation, amount, u.StakedCollateral)
	}
	m.store.UnstakeCollateral(u, amount)
	batch.Add(ledger.MovementStakeRelease,
		ledger.UserBucket(id, ledger.BucketStaked), ledger.UserBucket(id, ledger.BucketCollateral), amount)
	return nil
}
