package state

import (
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

// RewardEngine owns the savings side of the pool: deposits and
// withdrawals, reward claims, fixed deposits, and referral credits.
// Rewards accumulate via the accrual engine; this type only moves the
// accumulated balances.
type RewardEngine struct {
	store  *ledger.Store
	params *ParamsManager
}

func NewRewardEngine(store *ledger.Store, params *ParamsManager) *RewardEngine {
	return &RewardEngine{store: store, params: params}
}

// DepositSavings credits a savings deposit. The first deposit may name
// a referrer; the binding is permanent and later deposits keep
// crediting the same referrer. Funds have already been accepted when
// this runs.
func (e *RewardEngine) DepositSavings(id uuid.UUID, amount int64, referrer *uuid.UUID, batch *ledger.Batch) error {
	if amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}
	u := e.store.EnsureAccount(id)
	p := e.params.Get()
	if p.MaxDepositPerAccount > 0 {
		total, err := fpmath.CheckedAdd(u.DepositedSavings, amount)
		if err != nil {
			return fmt.Errorf("%w: savings total", ErrArithmetic)
		}
		if total > p.MaxDepositPerAccount {
			return fmt.Errorf("%w: savings cap %d exceeded", ErrValidation, p.MaxDepositPerAccount)
		}
	}
	if u.Referrer == nil && referrer != nil && *referrer != id {
		ref := *referrer
		u.Referrer = &ref
	}
	e.store.AddSavings(u, amount)
	batch.Add(ledger.MovementSavingsDeposit,
		ledger.ExternalBucket(), ledger.UserBucket(id, ledger.BucketSavings), amount)
	e.creditReferral(u, amount, batch)
	return nil
}

// creditReferral pays the bound referrer their cut of a deposit. The
// credit lands in the referrer's accumulated rewards, claimable like
// any other reward.
func (e *RewardEngine) creditReferral(u *ledger.User, amount int64, batch *ledger.Batch) {
	if u.Referrer == nil {
		return
	}
	p := e.params.Get()
	credit := fpmath.PercentOf(amount, p.ReferralRatePercent)
	if credit <= 0 {
		return
	}
	ref := e.store.EnsureAccount(*u.Referrer)
	ref.RewardAccumulated += credit
	batch.Add(ledger.MovementReferralCredit,
		ledger.SystemBucket(ledger.BucketLiquidity), ledger.UserBucket(ref.AccountID, ledger.BucketReward), credit)
}

// WithdrawSavings releases savings back to the caller. The pool must
// hold enough unlent liquidity to honor the withdrawal. Returns the
// amount to pay out.
func (e *RewardEngine) WithdrawSavings(id uuid.UUID, amount int64, batch *ledger.Batch) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: withdraw amount must be positive", ErrValidation)
	}
	u := e.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if amount > u.DepositedSavings {
		return 0, fmt.Errorf("%w: withdraw %d exceeds savings %d", ErrValidation, amount, u.DepositedSavings)
	}
	if amount > e.store.LendableLiquidity() {
		return 0, fmt.Errorf("%w: insufficient pool liquidity", ErrInvariant)
	}
	e.store.SubSavings(u, amount)
	batch.Add(ledger.MovementSavingsWithdraw,
		ledger.UserBucket(id, ledger.BucketSavings), ledger.ExternalBucket(), amount)
	return amount, nil
}

// Claim pays out all accumulated rewards. Returns the payout.
func (e *RewardEngine) Claim(id uuid.UUID, batch *ledger.Batch) (int64, error) {
	u := e.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if u.RewardAccumulated <= 0 {
		return 0, fmt.Errorf("%w: no rewards to claim", ErrValidation)
	}
	payout := u.RewardAccumulated
	u.RewardAccumulated = 0
	batch.Add(ledger.MovementRewardPayout,
		ledger.UserBucket(id, ledger.BucketReward), ledger.ExternalBucket(), payout)
	return payout, nil
}

// Compound folds all accumulated rewards into the savings balance
// instead of paying them out. Compounded rewards do not earn referral
// credit.
func (e *RewardEngine) Compound(id uuid.UUID, batch *ledger.Batch) (int64, error) {
	u := e.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	if u.RewardAccumulated <= 0 {
		return 0, fmt.Errorf("%w: no rewards to compound", ErrValidation)
	}
	amount := u.RewardAccumulated
	u.RewardAccumulated = 0
	e.store.AddSavings(u, amount)
	batch.Add(ledger.MovementRewardCompound,
		ledger.UserBucket(id, ledger.BucketReward), ledger.UserBucket(id, ledger.BucketSavings), amount)
	return amount, nil
}

// CreateFixedDeposit locks a term deposit until now + lockDuration at a
// boosted reward rate. Returns the new deposit's index.
func (e *RewardEngine) CreateFixedDeposit(id uuid.UUID, amount, lockDuration, rateMultiplier, now int64, batch *ledger.Batch) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: deposit amount must be positive", ErrValidation)
	}
	p := e.params.Get()
	if lockDuration < p.MinLockDuration {
		return 0, fmt.Errorf("%w: lock %ds below minimum %ds", ErrValidation, lockDuration, p.MinLockDuration)
	}
	if rateMultiplier < 100 {
		return 0, fmt.Errorf("%w: rate multiplier %d%% below 100%%", ErrValidation, rateMultiplier)
	}
	u := e.store.EnsureAccount(id)
	if p.MaxDepositPerAccount > 0 {
		locked := int64(0)
		for _, fd := range e.store.FixedDeposits(id) {
			if fd.Active {
				locked += fd.Amount
			}
		}
		total, err := fpmath.CheckedAdd(u.DepositedSavings+locked, amount)
		if err != nil {
			return 0, fmt.Errorf("%w: deposit total", ErrArithmetic)
		}
		if total > p.MaxDepositPerAccount {
			return 0, fmt.Errorf("%w: savings cap %d exceeded", ErrValidation, p.MaxDepositPerAccount)
		}
	}
	index := e.store.AppendFixedDeposit(&ledger.FixedDeposit{
		AccountID:      id,
		Amount:         amount,
		UnlockTime:     now + lockDuration,
		RateMultiplier: rateMultiplier,
		Active:         true,
	})
	batch.Add(ledger.MovementFixedLock,
		ledger.ExternalBucket(), ledger.UserBucket(id, ledger.BucketFixed), amount)
	e.creditReferral(u, amount, batch)
	return index, nil
}

// WithdrawFixedDeposit releases a matured fixed deposit. Returns the
// amount to pay out.
func (e *RewardEngine) WithdrawFixedDeposit(id uuid.UUID, index int, now int64, batch *ledger.Batch) (int64, error) {
	u := e.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	deposits := e.store.FixedDeposits(id)
	if index < 0 || index >= len(deposits) {
		return 0, fmt.Errorf("%w: fixed deposit index %d out of range", ErrValidation, index)
	}
	fd := deposits[index]
	if !fd.Active {
		return 0, fmt.Errorf("%w: fixed deposit %d already withdrawn", ErrValidation, index)
	}
	if now < fd.UnlockTime {
		return 0, fmt.Errorf("%w: fixed deposit locked until %d", ErrValidation, fd.UnlockTime)
	}
	amount, err := e.store.CloseFixedDeposit(id, index)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	batch.Add(ledger.MovementFixedRelease,
		ledger.UserBucket(id, ledger.BucketFixed), ledger.ExternalBucket(), amount)
	return amount, nil
}
