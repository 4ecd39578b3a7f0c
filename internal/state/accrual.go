package state

import (
	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

// AccrualEngine folds time-weighted interest and rewards into the
// ledger. Every operation touching an account runs accrual for that
// account first, so downstream checks always see current balances.
type AccrualEngine struct {
	store  *ledger.Store
	params *ParamsManager
}

func NewAccrualEngine(store *ledger.Store, params *ParamsManager) *AccrualEngine {
	return &AccrualEngine{store: store, params: params}
}

// AccrueLoan posts interest accumulated since the loan's last accrual
// checkpoint. The treasury takes its cut off the top and the loan
// carries the remainder. The checkpoint always advances, even when the
// computed interest floors to zero; a second accrual at the same
// timestamp posts nothing.
func (e *AccrualEngine) AccrueLoan(loan *ledger.Loan, now int64) (interest, fee int64) {
	if loan == nil || !loan.Active || now <= loan.StartTime {
		return 0, 0
	}
	p := e.params.Get()
	agg := e.store.Aggregates()
	rate := BorrowRate(p, agg.TotalBorrowed, agg.TotalDeposits)
	gross := fpmath.LoanInterest(loan.Principal, rate, now-loan.StartTime)
	fee = fpmath.BasisPointsOf(gross, p.InterestFeeBP)
	loan.InterestAccrued += gross - fee
	loan.StartTime = now
	if fee > 0 {
		e.store.CreditTreasury(fee)
	}
	return gross - fee, fee
}

// AccrueRewards posts savings and fixed-deposit rewards accumulated
// since the account's last checkpoint. The first touch of an account
// only initializes the checkpoint; rewards begin accumulating from
// there.
func (e *AccrualEngine) AccrueRewards(u *ledger.User, now int64) int64 {
	if u == nil {
		return 0
	}
	if u.LastCheckpoint == 0 {
		u.LastCheckpoint = now
		return 0
	}
	elapsed := now - u.LastCheckpoint
	if elapsed <= 0 {
		return 0
	}
	p := e.params.Get()
	reward := fpmath.RewardAccrual(u.DepositedSavings, p.RewardRatePercent, elapsed)
	for _, fd := range e.store.FixedDeposits(u.AccountID) {
		if !fd.Active {
			continue
		}
		reward += fpmath.FixedRewardAccrual(fd.Amount, p.RewardRatePercent, fd.RateMultiplier, elapsed)
	}
	u.RewardAccumulated += reward
	u.LastCheckpoint = now
	return reward
}

// AccrueAccount runs both reward and loan accrual for one account.
func (e *AccrualEngine) AccrueAccount(id uuid.UUID, now int64) {
	if u := e.store.Account(id); u != nil {
		e.AccrueRewards(u, now)
	}
	if loan := e.store.ActiveLoan(id); loan != nil {
		e.AccrueLoan(loan, now)
	}
}
