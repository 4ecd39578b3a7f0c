package state

import (
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

// LiquidationResult reports what a liquidation moved.
type LiquidationResult struct {
	Seized       int64 // collateral taken from the borrower
	Bonus        int64 // liquidator's cut, paid out
	ToTreasury   int64 // seized remainder kept by the protocol
	DebtCleared  int64 // principal removed from the pool
	LoanClosed   bool
	HealthBefore int64
}

// LiquidationEngine seizes collateral from unhealthy loans. A loan is
// liquidatable once its health factor drops below the liquidation
// threshold.
type LiquidationEngine struct {
	store  *ledger.Store
	params *ParamsManager
}

func NewLiquidationEngine(store *ledger.Store, params *ParamsManager) *LiquidationEngine {
	return &LiquidationEngine{store: store, params: params}
}

// HealthFactor is collateral over debt in percent. Accounts with no
// debt report the infinite sentinel.
func (e *LiquidationEngine) HealthFactor(id uuid.UUID) int64 {
	u := e.store.Account(id)
	loan := e.store.ActiveLoan(id)
	if u == nil || loan == nil {
		return fpmath.InfiniteHealthFactor
	}
	return fpmath.HealthFactor(u.CollateralDeposited, loan.Outstanding())
}

// Liquidate seizes the borrower's entire free collateral and closes
// the loan. Staked collateral is a separate bucket and survives. The
// liquidator earns the bonus cut of the seized amount; the remainder
// goes to the treasury. Returns the bonus to pay out.
func (e *LiquidationEngine) Liquidate(liquidator, borrower uuid.UUID, now int64, batch *ledger.Batch) (LiquidationResult, error) {
	var res LiquidationResult
	if liquidator == borrower {
		return res, fmt.Errorf("%w: cannot liquidate own loan", ErrValidation)
	}
	u := e.store.Account(borrower)
	loan := e.store.ActiveLoan(borrower)
	if u == nil || loan == nil {
		return res, fmt.Errorf("%w: no active loan for %s", ErrValidation, borrower)
	}
	p := e.params.Get()
	res.HealthBefore = fpmath.HealthFactor(u.CollateralDeposited, loan.Outstanding())
	if res.HealthBefore >= p.LiquidationThresholdPercent {
		return res, fmt.Errorf("%w: health factor %d%% above threshold %d%%",
			ErrInvariant, res.HealthBefore, p.LiquidationThresholdPercent)
	}

	res.Seized = u.CollateralDeposited
	res.Bonus = fpmath.PercentOf(res.Seized, p.LiquidationBonusPercent)
	if res.Bonus > res.Seized {
		res.Bonus = res.Seized
	}
	res.ToTreasury = res.Seized - res.Bonus
	res.DebtCleared = loan.Principal

	e.store.SubCollateral(u, u.CollateralDeposited)
	e.store.SubBorrowed(u, loan.Principal)
	if res.ToTreasury > 0 {
		e.store.CreditTreasury(res.ToTreasury)
	}
	loan.Active = false
	loan.Principal = 0
	loan.InterestAccrued = 0
	loan.Collateral = 0
	loan.StartTime = 0
	loan.OriginatedAt = 0
	res.LoanClosed = true

	batch.Add(ledger.MovementLiquidationSeize,
		ledger.UserBucket(borrower, ledger.BucketCollateral), ledger.SystemBucket(ledger.BucketTreasury), res.Seized)
	if res.Bonus > 0 {
		batch.Add(ledger.MovementLiquidationBonus,
			ledger.SystemBucket(ledger.BucketTreasury), ledger.ExternalBucket(), res.Bonus)
	}
	return res, nil
}

// PartialLiquidate repays part of an unhealthy loan and seizes a
// proportional share of the collateral, all of which goes to the
// liquidator. The liquidator's attached payment must equal repayAmount
// exactly; the core enforces that match. When the policy grants a
// partial bonus the proportional seize is grossed up by the bonus rate,
// capped at the available collateral.
func (e *LiquidationEngine) PartialLiquidate(liquidator, borrower uuid.UUID, repayAmount, now int64, batch *ledger.Batch) (LiquidationResult, error) {
	var res LiquidationResult
	if liquidator == borrower {
		return res, fmt.Errorf("%w: cannot liquidate own loan", ErrValidation)
	}
	if repayAmount <= 0 {
		return res, fmt.Errorf("%w: repay amount must be positive", ErrValidation)
	}
	u := e.store.Account(borrower)
	loan := e.store.ActiveLoan(borrower)
	if u == nil || loan == nil {
		return res, fmt.Errorf("%w: no active loan for %s", ErrValidation, borrower)
	}
	if repayAmount > loan.Principal {
		return res, fmt.Errorf("%w: repay %d exceeds principal %d", ErrValidation, repayAmount, loan.Principal)
	}
	p := e.params.Get()
	res.HealthBefore = fpmath.HealthFactor(u.CollateralDeposited, loan.Outstanding())
	if res.HealthBefore >= p.LiquidationThresholdPercent {
		return res, fmt.Errorf("%w: health factor %d%% above threshold %d%%",
			ErrInvariant, res.HealthBefore, p.LiquidationThresholdPercent)
	}

	available := u.CollateralDeposited
	res.Seized = fpmath.MulDiv(available, repayAmount, loan.Principal)
	if p.PartialLiquidationBonus {
		res.Seized += fpmath.PercentOf(res.Seized, p.LiquidationBonusPercent)
	}
	if res.Seized > available {
		res.Seized = available
	}
	res.DebtCleared = repayAmount

	e.store.SubCollateral(u, res.Seized)
	loan.Principal -= repayAmount
	e.store.SubBorrowed(u, repayAmount)

	if loan.Principal == 0 {
		loan.InterestAccrued = 0
		loan.Active = false
		loan.Collateral = 0
		loan.StartTime = 0
		loan.OriginatedAt = 0
		res.LoanClosed = true
	}

	batch.Add(ledger.MovementRepayPrincipal,
		ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketLiquidity), repayAmount)
	batch.Add(ledger.MovementLiquidationSeize,
		ledger.UserBucket(borrower, ledger.BucketCollateral), ledger.ExternalBucket(), res.Seized)
	return res, nil
}
