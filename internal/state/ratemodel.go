package state

import (
	fpmath "LendLedger/internal/math"
)

// BorrowRate resolves the current borrow rate from pool utilization.
// With no deposits the pool has no utilization signal and the base rate
// applies. Otherwise the first tier whose bound covers the utilization
// supplies the rate; utilization above every bound pays the top tier.
func BorrowRate(p ProtocolParams, totalBorrowed, totalDeposits int64) int64 {
	if totalDeposits <= 0 || len(p.InterestTiers) == 0 {
		return p.BaseInterestRatePercent
	}
	u := fpmath.Utilization(totalBorrowed, totalDeposits)
	for _, t := range p.InterestTiers {
		if u <= t.UtilizationPercent {
			return t.RatePercent
		}
	}
	return p.InterestTiers[len(p.InterestTiers)-1].RatePercent
}
