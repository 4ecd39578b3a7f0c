package state

import (
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

// RepayResult reports how a payment was split across the waterfall.
type RepayResult struct {
	InterestPaid  int64
	LateFeePaid   int64
	PrincipalPaid int64
	Refund        int64
	Closed        bool
}

// LoanManager opens, services, and transfers loans. Interest is assumed
// current when these methods run; accrual happens upstream.
type LoanManager struct {
	store  *ledger.Store
	params *ParamsManager
}

func NewLoanManager(store *ledger.Store, params *ParamsManager) *LoanManager {
	return &LoanManager{store: store, params: params}
}

// Borrow opens a loan or tops up the active one. Returns the amount to
// pay out, net of the origination fee.
func (m *LoanManager) Borrow(id uuid.UUID, amount, now int64, batch *ledger.Batch) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: borrow amount must be positive", ErrValidation)
	}
	u := m.store.Account(id)
	if u == nil {
		return 0, fmt.Errorf("%w: unknown account %s", ErrValidation, id)
	}
	p := m.params.Get()
	loan := m.store.EnsureLoan(id)
	newDebt, err := fpmath.CheckedAdd(loan.Outstanding(), amount)
	if err != nil {
		return 0, fmt.Errorf("%w: loan size", ErrArithmetic)
	}
	// Only free collateral backs a loan; the staked sub-balance is a
	// separate bucket and never counts toward borrow capacity.
	if newDebt > fpmath.MaxBorrow(u.CollateralDeposited, p.CollateralRatioPercent) {
		return 0, fmt.Errorf("%w: insufficient collateral for debt %d", ErrInvariant, newDebt)
	}
	if p.MaxBorrowPerAccount > 0 && newDebt > p.MaxBorrowPerAccount {
		return 0, fmt.Errorf("%w: borrow cap %d exceeded", ErrValidation, p.MaxBorrowPerAccount)
	}
	fee := fpmath.PercentOf(amount, p.ProtocolFeePercent)
	if !loan.Active {
		loan.Active = true
		loan.Principal = amount
		loan.Collateral = u.CollateralDeposited
		loan.StartTime = now
		loan.OriginatedAt = now
	} else {
		loan.Principal += amount
		loan.Collateral = u.CollateralDeposited
	}
	m.store.AddBorrowed(u, amount)
	if fee > 0 {
		m.store.CreditTreasury(fee)
		batch.Add(ledger.MovementProtocolFee,
			ledger.UserBucket(id, ledger.BucketDebt), ledger.SystemBucket(ledger.BucketTreasury), fee)
	}
	batch.Add(ledger.MovementBorrow,
		ledger.SystemBucket(ledger.BucketLiquidity), ledger.ExternalBucket(), amount-fee)
	return amount - fee, nil
}

// Repay applies a payment through the waterfall: accrued interest
// first, then late fees, then principal. Any excess is refunded and
// the loan closes when nothing remains owed.
func (m *LoanManager) Repay(id uuid.UUID, payment, now int64, batch *ledger.Batch) (RepayResult, error) {
	var res RepayResult
	if payment <= 0 {
		return res, fmt.Errorf("%w: payment must be positive", ErrValidation)
	}
	u := m.store.Account(id)
	loan := m.store.ActiveLoan(id)
	if u == nil || loan == nil {
		return res, fmt.Errorf("%w: no active loan for %s", ErrValidation, id)
	}
	p := m.params.Get()
	lateFee := int64(0)
	if p.LateFeesEnabled {
		lateFee = fpmath.LateFee(loan.Principal, p.PenaltyRatePercent,
			now-loan.OriginatedAt, p.GracePeriod, p.PenaltyInterval)
	}

	remaining := payment
	res.InterestPaid = min64(remaining, loan.InterestAccrued)
	loan.InterestAccrued -= res.InterestPaid
	remaining -= res.InterestPaid

	res.LateFeePaid = min64(remaining, lateFee)
	remaining -= res.LateFeePaid

	res.PrincipalPaid = min64(remaining, loan.Principal)
	loan.Principal -= res.PrincipalPaid
	remaining -= res.PrincipalPaid
	res.Refund = remaining

	m.store.SubBorrowed(u, res.PrincipalPaid)
	if res.LateFeePaid > 0 {
		m.store.CreditTreasury(res.LateFeePaid)
	}

	if res.InterestPaid > 0 {
		batch.Add(ledger.MovementRepayInterest,
			ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketLiquidity), res.InterestPaid)
	}
	if res.LateFeePaid > 0 {
		batch.Add(ledger.MovementRepayLateFee,
			ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketTreasury), res.LateFeePaid)
	}
	if res.PrincipalPaid > 0 {
		batch.Add(ledger.MovementRepayPrincipal,
			ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketLiquidity), res.PrincipalPaid)
	}
	if res.Refund > 0 {
		batch.Add(ledger.MovementOverpayRefund,
			ledger.SystemBucket(ledger.BucketLiquidity), ledger.ExternalBucket(), res.Refund)
	}

	if loan.Principal == 0 && loan.InterestAccrued == 0 {
		loan.Active = false
		loan.Collateral = 0
		loan.StartTime = 0
		loan.OriginatedAt = 0
		res.Closed = true
	}
	return res, nil
}

// Extend settles all accrued interest and restarts the loan clock. The
// payment must cover the interest in full; the surplus is refunded.
func (m *LoanManager) Extend(id uuid.UUID, payment, now int64, batch *ledger.Batch) (refund int64, err error) {
	loan := m.store.ActiveLoan(id)
	if loan == nil {
		return 0, fmt.Errorf("%w: no active loan for %s", ErrValidation, id)
	}
	if payment < loan.InterestAccrued {
		return 0, fmt.Errorf("%w: payment %d below accrued interest %d", ErrValidation, payment, loan.InterestAccrued)
	}
	settled := loan.InterestAccrued
	refund = payment - settled
	loan.InterestAccrued = 0
	loan.StartTime = now
	loan.OriginatedAt = now
	if settled > 0 {
		batch.Add(ledger.MovementRepayInterest,
			ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketLiquidity), settled)
	}
	if refund > 0 {
		batch.Add(ledger.MovementOverpayRefund,
			ledger.SystemBucket(ledger.BucketLiquidity), ledger.ExternalBucket(), refund)
	}
	return refund, nil
}

// Transfer moves the active loan to another account. The recipient must
// be clean: not blacklisted, no active loan, and holding enough
// collateral to carry the debt. When the policy moves collateral with
// the loan, the sender's backing travels too.
func (m *LoanManager) Transfer(from, to uuid.UUID, batch *ledger.Batch) error {
	if from == to {
		return fmt.Errorf("%w: cannot transfer loan to self", ErrValidation)
	}
	sender := m.store.Account(from)
	loan := m.store.ActiveLoan(from)
	if sender == nil || loan == nil {
		return fmt.Errorf("%w: no active loan for %s", ErrValidation, from)
	}
	recipient := m.store.EnsureAccount(to)
	if recipient.Blacklisted {
		return fmt.Errorf("%w: recipient %s is blacklisted", ErrValidation, to)
	}
	if m.store.ActiveLoan(to) != nil {
		return fmt.Errorf("%w: recipient %s already has an active loan", ErrValidation, to)
	}
	p := m.params.Get()
	if p.CollateralFollowsTransfer {
		moved := sender.CollateralDeposited
		if moved > 0 {
			m.store.SubCollateral(sender, moved)
			m.store.AddCollateral(recipient, moved)
			batch.Add(ledger.MovementLoanTransfer,
				ledger.UserBucket(from, ledger.BucketCollateral),
				ledger.UserBucket(to, ledger.BucketCollateral), moved)
		}
	}
	if fpmath.MaxBorrow(recipient.CollateralDeposited, p.CollateralRatioPercent) < loan.Outstanding() {
		return fmt.Errorf("%w: recipient collateral cannot carry debt %d", ErrInvariant, loan.Outstanding())
	}
	m.store.SubBorrowed(sender, loan.Principal)
	m.store.AddBorrowed(recipient, loan.Principal)
	if err := m.store.MoveLoan(from, to); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	batch.Add(ledger.MovementLoanTransfer,
		ledger.UserBucket(from, ledger.BucketDebt), ledger.UserBucket(to, ledger.BucketDebt), loan.Principal)
	return nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
