package ledger

import (
	"testing"

	"github.com/google/uuid"
)

func TestStore_PairedMutatorsKeepAggregates(t *testing.T) {
	s := NewStore()
	a := s.EnsureAccount(uuid.New())
	b := s.EnsureAccount(uuid.New())

	s.AddCollateral(a, 10_000_000)
	s.AddCollateral(b, 4_000_000)
	s.StakeCollateral(a, 3_000_000)
	s.AddSavings(b, 5_000_000)
	s.AddBorrowed(a, 6_000_000)

	agg := s.Aggregates()
	if agg.TotalCollateral != 14_000_000 {
		t.Errorf("TotalCollateral = %d, want 14000000", agg.TotalCollateral)
	}
	if agg.TotalDeposits != 5_000_000 {
		t.Errorf("TotalDeposits = %d, want 5000000", agg.TotalDeposits)
	}
	if agg.TotalBorrowed != 6_000_000 {
		t.Errorf("TotalBorrowed = %d, want 6000000", agg.TotalBorrowed)
	}
	if a.CollateralDeposited != 7_000_000 || a.StakedCollateral != 3_000_000 {
		t.Errorf("stake split wrong: free %d staked %d", a.CollateralDeposited, a.StakedCollateral)
	}

	v := NewInvariantValidator(s)
	if err := v.ValidateAggregates(); err != nil {
		t.Fatalf("aggregates out of sync: %v", err)
	}
}

func TestStore_LendableLiquidity(t *testing.T) {
	s := NewStore()
	u := s.EnsureAccount(uuid.New())
	s.AddSavings(u, 10_000_000)
	b := s.EnsureAccount(uuid.New())
	s.AddBorrowed(b, 4_000_000)
	if got := s.LendableLiquidity(); got != 6_000_000 {
		t.Fatalf("LendableLiquidity = %d, want 6000000", got)
	}
	s.AddBorrowed(b, 8_000_000)
	if got := s.LendableLiquidity(); got != 0 {
		t.Fatalf("overextended pool should report zero liquidity, got %d", got)
	}
}

func TestStore_CashDebitRejectsOverdraw(t *testing.T) {
	s := NewStore()
	s.CreditCash(1_000_000)
	if err := s.DebitCash(2_000_000); err == nil {
		t.Fatal("expected overdraw error")
	}
	if err := s.DebitCash(1_000_000); err != nil {
		t.Fatalf("full debit should succeed: %v", err)
	}
	if s.CashBalance() != 0 {
		t.Fatalf("cash = %d, want 0", s.CashBalance())
	}
}

func TestStore_CaptureRestore(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	u := s.EnsureAccount(id)
	s.AddCollateral(u, 10_000_000)
	s.CreditCash(10_000_000)
	loan := s.EnsureLoan(id)
	loan.Active = true
	loan.Principal = 2_000_000
	s.AddBorrowed(u, 2_000_000)

	cp := s.Capture(id)

	s.SubCollateral(u, 4_000_000)
	loan.Principal = 9_000_000
	s.AddBorrowed(u, 7_000_000)
	s.CreditTreasury(500_000)
	if err := s.DebitCash(3_000_000); err != nil {
		t.Fatalf("debit: %v", err)
	}

	s.Restore(cp)

	u = s.Account(id)
	if u.CollateralDeposited != 10_000_000 || u.Borrowed != 2_000_000 {
		t.Errorf("account not restored: collateral %d borrowed %d", u.CollateralDeposited, u.Borrowed)
	}
	if got := s.ActiveLoan(id); got == nil || got.Principal != 2_000_000 {
		t.Errorf("loan not restored: %+v", got)
	}
	agg := s.Aggregates()
	if agg.TotalCollateral != 10_000_000 || agg.TotalBorrowed != 2_000_000 || agg.ProtocolFees != 0 {
		t.Errorf("aggregates not restored: %+v", agg)
	}
	if s.CashBalance() != 10_000_000 {
		t.Errorf("cash not restored: %d", s.CashBalance())
	}
}

func TestStore_RestoreDropsAccountsCreatedMidOperation(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	cp := s.Capture(id)
	s.EnsureAccount(id)
	s.Restore(cp)
	if s.Account(id) != nil {
		t.Fatal("account created after capture should vanish on restore")
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	u := s.EnsureAccount(id)
	s.AddCollateral(u, 10_000_000)
	s.AddSavings(u, 2_000_000)
	s.AppendFixedDeposit(&FixedDeposit{AccountID: id, Amount: 1_000_000, UnlockTime: 100, RateMultiplier: 150, Active: true})
	loan := s.EnsureLoan(id)
	loan.Active = true
	loan.Principal = 3_000_000
	s.AddBorrowed(u, 3_000_000)
	s.CreditCash(12_000_000)
	s.CreditTreasury(42)

	snap := s.Snapshot()

	s2 := NewStore()
	s2.RestoreSnapshot(snap)

	if got := s2.Account(id); got == nil || got.CollateralDeposited != 10_000_000 || got.DepositedSavings != 2_000_000 {
		t.Fatalf("account mismatch after restore: %+v", got)
	}
	if got := s2.ActiveLoan(id); got == nil || got.Principal != 3_000_000 {
		t.Fatalf("loan mismatch after restore: %+v", got)
	}
	if len(s2.FixedDeposits(id)) != 1 {
		t.Fatalf("fixed deposits missing after restore")
	}
	if s2.Aggregates() != s.Aggregates() {
		t.Fatalf("aggregates mismatch: %+v vs %+v", s2.Aggregates(), s.Aggregates())
	}
	if s2.CashBalance() != 12_000_000 {
		t.Fatalf("cash mismatch: %d", s2.CashBalance())
	}

	// Mutating the restored store must not touch the snapshot source.
	s2.AddCollateral(s2.Account(id), 1)
	if s.Account(id).CollateralDeposited != 10_000_000 {
		t.Fatal("snapshot restore aliased live records")
	}
}

func TestBatch_Validate(t *testing.T) {
	id := uuid.New()
	t.Run("accepts well formed batch", func(t *testing.T) {
		b := NewBatch("evt-1", 1, 1000)
		b.Add(MovementCollateralDeposit, ExternalBucket(), UserBucket(id, BucketCollateral), 5_000_000)
		if err := b.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("rejects non positive amount", func(t *testing.T) {
		b := NewBatch("evt-2", 1, 1000)
		b.Add(MovementBorrow, SystemBucket(BucketLiquidity), ExternalBucket(), 0)
		if err := b.Validate(); err == nil {
			t.Fatal("expected error for zero amount")
		}
	})
	t.Run("rejects self transfer", func(t *testing.T) {
		b := NewBatch("evt-3", 1, 1000)
		b.Add(MovementStakeLock, UserBucket(id, BucketStaked), UserBucket(id, BucketStaked), 100)
		if err := b.Validate(); err == nil {
			t.Fatal("expected error for self transfer")
		}
	})
	t.Run("empty batch is valid", func(t *testing.T) {
		b := NewBatch("evt-4", 1, 1000)
		if err := b.Validate(); err != nil {
			t.Fatalf("state-only operations carry empty batches: %v", err)
		}
	})
}

func TestInvariantValidator_LoanConsistency(t *testing.T) {
	s := NewStore()
	id := uuid.New()
	u := s.EnsureAccount(id)
	loan := s.EnsureLoan(id)
	loan.Active = true
	loan.Principal = 5_000_000
	s.AddBorrowed(u, 5_000_000)

	v := NewInvariantValidator(s)
	if err := v.ValidateLoanConsistency(id); err != nil {
		t.Fatalf("consistent loan flagged: %v", err)
	}

	u.Borrowed = 4_000_000
	if err := v.ValidateLoanConsistency(id); err == nil {
		t.Fatal("principal/borrowed drift not detected")
	}
}
