package math

import "math"

// SecondsPerYear is the accrual year: 365 days.
const SecondsPerYear int64 = 31_536_000

// InfiniteHealthFactor is the sentinel for accounts with no debt.
const InfiniteHealthFactor int64 = math.MaxInt64

// LoanInterest computes simple time-weighted interest:
// principal * ratePercent * elapsed / SecondsPerYear / 100, floored.
func LoanInterest(principal, ratePercent, elapsed int64) int64 {
	if principal <= 0 || ratePercent <= 0 || elapsed <= 0 {
		return 0
	}
	return MulDiv3(principal, ratePercent, elapsed, SecondsPerYear*100)
}

// RewardAccrual computes base reward growth over elapsed seconds:
// base * ratePercent * elapsed / SecondsPerYear / 100, floored.
func RewardAccrual(base, ratePercent, elapsed int64) int64 {
	return LoanInterest(base, ratePercent, elapsed)
}

// FixedRewardAccrual computes reward growth for a fixed deposit whose
// multiplier is expressed as percent of the base rate (hence the extra
// division by 100):
// amount * ratePercent * multiplier * elapsed / SecondsPerYear / 100 / 100.
func FixedRewardAccrual(amount, ratePercent, multiplier, elapsed int64) int64 {
	if amount <= 0 || ratePercent <= 0 || multiplier <= 0 || elapsed <= 0 {
		return 0
	}
	product := MultiplyInt128(amount, ratePercent)
	second := MultiplyInt128(multiplier, elapsed)
	product.Mul(product, second)
	putInt128(second)
	result := DivideInt128(product, SecondsPerYear*100*100, RoundDown)
	putInt128(product)
	return result
}

// LateFee computes the overdue penalty. Zero within the grace period;
// beyond it, one penalty per full penaltyInterval elapsed:
// principal * penaltyRatePercent * overdueUnits / 100.
func LateFee(principal, penaltyRatePercent, elapsed, gracePeriod, penaltyInterval int64) int64 {
	if principal <= 0 || penaltyRatePercent <= 0 || elapsed <= gracePeriod || penaltyInterval <= 0 {
		return 0
	}
	overdueUnits := (elapsed - gracePeriod) / penaltyInterval
	if overdueUnits == 0 {
		return 0
	}
	return MulDiv3(principal, penaltyRatePercent, overdueUnits, 100)
}

// Utilization is borrowed * 100 / deposits as an integer percent. The
// caller handles the deposits == 0 case (base rate applies).
func Utilization(totalBorrowed, totalDeposits int64) int64 {
	if totalDeposits <= 0 {
		return 0
	}
	return MulDiv(totalBorrowed, 100, totalDeposits)
}

// MaxBorrow is the borrow ceiling for a collateral balance at the given
// required ratio: collateral * 100 / collateralRatioPercent.
func MaxBorrow(collateral, collateralRatioPercent int64) int64 {
	if collateral <= 0 || collateralRatioPercent <= 0 {
		return 0
	}
	return MulDiv(collateral, 100, collateralRatioPercent)
}

// HealthFactor is collateral * 100 / debt, or the infinite sentinel when
// there is no debt.
func HealthFactor(collateral, debt int64) int64 {
	if debt <= 0 {
		return InfiniteHealthFactor
	}
	return MulDiv(collateral, 100, debt)
}

// PercentOf returns amount * percent / 100, floored.
func PercentOf(amount, percent int64) int64 {
	if amount <= 0 || percent <= 0 {
		return 0
	}
	return MulDiv(amount, percent, 100)
}

// BasisPointsOf returns amount * bps / 10_000, floored.
func BasisPointsOf(amount, bps int64) int64 {
	if amount <= 0 || bps <= 0 {
		return 0
	}
	return MulDiv(amount, bps, 10_000)
}
