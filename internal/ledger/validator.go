package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// InvariantValidator checks the post-operation ledger invariants: the
// global aggregates must equal the per-account sums, and no balance may
// be negative. Violations after a commit are fatal — the core panics
// rather than continuing on corrupted state.
type InvariantValidator struct {
	store *Store
}

func NewInvariantValidator(store *Store) *InvariantValidator {
	return &InvariantValidator{store: store}
}

// ValidateAggregates verifies every aggregate against its per-account sum.
func (v *InvariantValidator) ValidateAggregates() error {
	agg := v.store.Aggregates()

	if sum := v.store.SumCollateral(); sum != agg.TotalCollateral {
		return fmt.Errorf("total collateral %d != per-account sum %d", agg.TotalCollateral, sum)
	}
	if sum := v.store.SumBorrowedPrincipal(); sum != agg.TotalBorrowed {
		return fmt.Errorf("total borrowed %d != active principal sum %d", agg.TotalBorrowed, sum)
	}
	if sum := v.store.SumDeposits(); sum != agg.TotalDeposits {
		return fmt.Errorf("total deposits %d != per-account sum %d", agg.TotalDeposits, sum)
	}
	if agg.ProtocolFees < 0 {
		return fmt.Errorf("protocol fees negative: %d", agg.ProtocolFees)
	}
	return nil
}

// ValidateAccountNonNegative checks every balance of one account.
func (v *InvariantValidator) ValidateAccountNonNegative(id uuid.UUID) error {
	u := v.store.Account(id)
	if u == nil {
		return nil
	}
	if u.CollateralDeposited < 0 {
		return fmt.Errorf("account %s has negative collateral: %d", id, u.CollateralDeposited)
	}
	if u.StakedCollateral < 0 {
		return fmt.Errorf("account %s has negative staked collateral: %d", id, u.StakedCollateral)
	}
	if u.DepositedSavings < 0 {
		return fmt.Errorf("account %s has negative savings: %d", id, u.DepositedSavings)
	}
	if u.Borrowed < 0 {
		return fmt.Errorf("account %s has negative borrowed balance: %d", id, u.Borrowed)
	}
	if u.RewardAccumulated < 0 {
		return fmt.Errorf("account %s has negative reward balance: %d", id, u.RewardAccumulated)
	}
	return nil
}

// ValidateLoanConsistency checks the loan record against the account's
// borrowed balance: an active loan's principal must equal Borrowed, and
// a closed loan must have zeroed components.
func (v *InvariantValidator) ValidateLoanConsistency(id uuid.UUID) error {
	loan := v.store.Loan(id)
	u := v.store.Account(id)

	if loan == nil || !loan.Active {
		if loan != nil && (loan.Principal != 0 || loan.InterestAccrued != 0) {
			return fmt.Errorf("closed loan for %s has non-zero components: principal=%d interest=%d",
				id, loan.Principal, loan.InterestAccrued)
		}
		if u != nil && u.Borrowed != 0 {
			return fmt.Errorf("account %s has borrowed=%d with no active loan", id, u.Borrowed)
		}
		return nil
	}
	if u == nil {
		return fmt.Errorf("active loan for unknown account %s", id)
	}
	if loan.Principal != u.Borrowed {
		return fmt.Errorf("account %s loan principal %d != borrowed %d", id, loan.Principal, u.Borrowed)
	}
	if loan.Principal <= 0 {
		return fmt.Errorf("active loan for %s has non-positive principal: %d", id, loan.Principal)
	}
	if loan.InterestAccrued < 0 {
		return fmt.Errorf("active loan for %s has negative interest: %d", id, loan.InterestAccrued)
	}
	return nil
}

// ValidateBatch verifies a movement batch is well-formed.
func (v *InvariantValidator) ValidateBatch(batch *Batch) error {
	return batch.Validate()
}
