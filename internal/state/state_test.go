package state

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
)

type fixture struct {
	store      *ledger.Store
	params     *ParamsManager
	accrual    *AccrualEngine
	collateral *CollateralManager
	loans      *LoanManager
	liq        *LiquidationEngine
	rewards    *RewardEngine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, DefaultParams())
}

func newFixtureWith(t *testing.T, p ProtocolParams) *fixture {
	t.Helper()
	store := ledger.NewStore()
	pm, err := NewParamsManager(p)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	return &fixture{
		store:      store,
		params:     pm,
		accrual:    NewAccrualEngine(store, pm),
		collateral: NewCollateralManager(store, pm),
		loans:      NewLoanManager(store, pm),
		liq:        NewLiquidationEngine(store, pm),
		rewards:    NewRewardEngine(store, pm),
	}
}

func batch() *ledger.Batch {
	return ledger.NewBatch(uuid.NewString(), 1, 1000)
}

func TestBorrow_CollateralCeiling(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	if err := f.collateral.Deposit(id, 10_000_000, 1000, batch()); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	// 10 units at 150% supports at most 6.666666 of debt.
	payout, err := f.loans.Borrow(id, 6_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("borrow within limit: %v", err)
	}
	if payout != 6_000_000 {
		t.Fatalf("payout = %d, want 6000000", payout)
	}

	_, err = f.loans.Borrow(id, 1_000_000, 1000, batch())
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("borrow past ceiling should fail with ErrInvariant, got %v", err)
	}

	// Top-up within the remaining headroom extends the same loan.
	if _, err := f.loans.Borrow(id, 600_000, 2000, batch()); err != nil {
		t.Fatalf("top-up: %v", err)
	}
	loan := f.store.ActiveLoan(id)
	if loan == nil || loan.Principal != 6_600_000 {
		t.Fatalf("expected single loan with principal 6600000, got %+v", loan)
	}
	if f.store.Aggregates().TotalBorrowed != 6_600_000 {
		t.Fatalf("TotalBorrowed = %d", f.store.Aggregates().TotalBorrowed)
	}
}

func TestBorrow_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	_, err := f.loans.Borrow(uuid.New(), 1_000_000, 1000, batch())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRepay_Waterfall(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 5_000_000, 1000)

	// Force a known accrued interest without running the clock.
	loan := f.store.ActiveLoan(id)
	loan.InterestAccrued = 3_000_000

	res, err := f.loans.Repay(id, 6_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if res.InterestPaid != 3_000_000 || res.PrincipalPaid != 3_000_000 || res.Refund != 0 {
		t.Fatalf("waterfall split wrong: %+v", res)
	}
	if res.Closed {
		t.Fatal("loan should stay open with principal remaining")
	}
	if loan.Principal != 2_000_000 || loan.InterestAccrued != 0 {
		t.Fatalf("loan after repay: %+v", loan)
	}
}

func TestRepay_OverpayRefundsAndCloses(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 5_000_000, 1000)
	f.store.ActiveLoan(id).InterestAccrued = 250_000

	res, err := f.loans.Repay(id, 10_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if !res.Closed {
		t.Fatal("full repayment should close the loan")
	}
	if res.Refund != 4_750_000 {
		t.Fatalf("refund = %d, want 4750000", res.Refund)
	}
	if f.store.ActiveLoan(id) != nil {
		t.Fatal("closed loan still reported active")
	}
	if got := f.store.Account(id).Borrowed; got != 0 {
		t.Fatalf("borrowed after close = %d", got)
	}
}

func TestRepay_LateFeeSlot(t *testing.T) {
	p := DefaultParams()
	p.LateFeesEnabled = true
	f := newFixtureWith(t, p)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 6_000_000, 0)

	// Two years in: one year past grace, twelve full penalty intervals.
	now := 2 * fpmath.SecondsPerYear
	wantFee := fpmath.LateFee(6_000_000, p.PenaltyRatePercent, now, p.GracePeriod, p.PenaltyInterval)
	if wantFee == 0 {
		t.Fatal("test premise: loan must be overdue")
	}
	feesBefore := f.store.Aggregates().ProtocolFees

	res, err := f.loans.Repay(id, wantFee, now, batch())
	if err != nil {
		t.Fatalf("repay: %v", err)
	}
	if res.LateFeePaid != wantFee {
		t.Fatalf("LateFeePaid = %d, want %d", res.LateFeePaid, wantFee)
	}
	if got := f.store.Aggregates().ProtocolFees - feesBefore; got != wantFee {
		t.Fatalf("treasury credit = %d, want %d", got, wantFee)
	}
	if res.PrincipalPaid != 0 {
		t.Fatalf("payment should be consumed by the late fee, principal paid %d", res.PrincipalPaid)
	}
}

func TestExtend_SettlesInterestAndRestartsClock(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 6_000_000, 1000)
	loan := f.store.ActiveLoan(id)
	loan.InterestAccrued = 300_000

	if _, err := f.loans.Extend(id, 200_000, 5000, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("short payment should fail: %v", err)
	}

	refund, err := f.loans.Extend(id, 350_000, 5000, batch())
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if refund != 50_000 {
		t.Fatalf("refund = %d, want 50000", refund)
	}
	if loan.InterestAccrued != 0 || loan.StartTime != 5000 || loan.OriginatedAt != 5000 {
		t.Fatalf("loan after extend: %+v", loan)
	}
}

func TestTransfer_LoanMovesDebtNotCollateral(t *testing.T) {
	f := newFixture(t)
	from, to := uuid.New(), uuid.New()
	mustDeposit(t, f, from, 20_000_000)
	mustDeposit(t, f, to, 20_000_000)
	mustBorrow(t, f, from, 6_000_000, 1000)

	if err := f.loans.Transfer(from, to, batch()); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if f.store.ActiveLoan(from) != nil {
		t.Fatal("sender still holds the loan")
	}
	loan := f.store.ActiveLoan(to)
	if loan == nil || loan.Principal != 6_000_000 {
		t.Fatalf("recipient loan: %+v", loan)
	}
	if f.store.Account(from).CollateralDeposited != 20_000_000 {
		t.Fatal("collateral moved despite policy default")
	}
	if f.store.Account(from).Borrowed != 0 || f.store.Account(to).Borrowed != 6_000_000 {
		t.Fatal("borrowed balances did not follow the loan")
	}
	if f.store.Aggregates().TotalBorrowed != 6_000_000 {
		t.Fatalf("TotalBorrowed drifted: %d", f.store.Aggregates().TotalBorrowed)
	}
}

func TestTransfer_RejectsBareRecipient(t *testing.T) {
	f := newFixture(t)
	from, to := uuid.New(), uuid.New()
	mustDeposit(t, f, from, 20_000_000)
	mustBorrow(t, f, from, 6_000_000, 1000)

	if err := f.loans.Transfer(from, to, batch()); !errors.Is(err, ErrInvariant) {
		t.Fatalf("recipient without collateral should be rejected: %v", err)
	}
}

func TestWithdrawCollateral_RatioAndCooldown(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 10_000_000)
	mustBorrow(t, f, id, 6_000_000, 1000)

	// 6 of debt needs 9 of collateral at 150%; only 1 is free.
	if _, err := f.collateral.Withdraw(id, 2_000_000, 1000, batch()); !errors.Is(err, ErrInvariant) {
		t.Fatalf("undercollateralizing withdrawal should fail: %v", err)
	}
	released, err := f.collateral.Withdraw(id, 1_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if released != 1_000_000 {
		t.Fatalf("released = %d", released)
	}

	// Second withdrawal inside the cooldown window is rejected.
	p := f.params.Get()
	if _, err := f.collateral.Withdraw(id, 1, 1000+p.CooldownPeriod-1, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("cooldown not enforced: %v", err)
	}
}

func TestStakeUnstake_SeparateBucket(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 10_000_000)
	if err := f.collateral.Stake(id, 9_000_000, batch()); err != nil {
		t.Fatalf("stake: %v", err)
	}

	// Staked collateral never backs loans: 1 free at 150% caps the
	// loan at 0.666.
	if _, err := f.loans.Borrow(id, 6_000_000, 1000, batch()); !errors.Is(err, ErrInvariant) {
		t.Fatalf("borrow against staked balance should fail: %v", err)
	}
	if _, err := f.loans.Borrow(id, 666_666, 1000, batch()); err != nil {
		t.Fatalf("borrow within free collateral: %v", err)
	}
	// Nor is it withdrawable until unstaked.
	if _, err := f.collateral.Withdraw(id, 7_000_000, 1000, batch()); !errors.Is(err, ErrValidation) {
		t.Fatal("withdrawal should be limited to the free balance")
	}
	if err := f.collateral.Unstake(id, 9_000_000, batch()); err != nil {
		t.Fatalf("unstake: %v", err)
	}
	if u := f.store.Account(id); u.StakedCollateral != 0 || u.CollateralDeposited != 10_000_000 {
		t.Fatalf("balances after unstake: %+v", u)
	}
	// With everything unstaked, the same borrow now fits the ceiling.
	if _, err := f.loans.Borrow(id, 5_000_000, 1000, batch()); err != nil {
		t.Fatalf("borrow after unstake: %v", err)
	}
}

func TestLiquidate_StakedCollateralSurvives(t *testing.T) {
	f := newFixture(t)
	borrower, liquidator := uuid.New(), uuid.New()
	mustDeposit(t, f, borrower, 13_000_000)
	if err := f.collateral.Stake(borrower, 3_000_000, batch()); err != nil {
		t.Fatalf("stake: %v", err)
	}
	mustBorrow(t, f, borrower, 6_000_000, 1000)
	f.store.ActiveLoan(borrower).InterestAccrued = 2_500_000

	res, err := f.liq.Liquidate(liquidator, borrower, 1000, batch())
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	// Only the free collateral is seized.
	if res.Seized != 10_000_000 {
		t.Fatalf("seized = %d, want free collateral only", res.Seized)
	}
	u := f.store.Account(borrower)
	if u.CollateralDeposited != 0 || u.StakedCollateral != 3_000_000 {
		t.Fatalf("staked balance should survive liquidation: %+v", u)
	}
	agg := f.store.Aggregates()
	if agg.TotalCollateral != 3_000_000 {
		t.Fatalf("aggregate collateral = %d, want the surviving stake", agg.TotalCollateral)
	}
}

func TestLiquidate_FullPath(t *testing.T) {
	f := newFixture(t)
	borrower, liquidator := uuid.New(), uuid.New()
	mustDeposit(t, f, borrower, 10_000_000)
	mustBorrow(t, f, borrower, 6_000_000, 1000)

	// Healthy loan (health 166%) cannot be liquidated.
	if _, err := f.liq.Liquidate(liquidator, borrower, 1000, batch()); !errors.Is(err, ErrInvariant) {
		t.Fatalf("healthy loan liquidated: %v", err)
	}

	// Push debt past the threshold: 10 / 8.5 = 117% < 120%.
	f.store.ActiveLoan(borrower).InterestAccrued = 2_500_000

	res, err := f.liq.Liquidate(liquidator, borrower, 1000, batch())
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	if res.Seized != 10_000_000 {
		t.Fatalf("seized = %d, want all collateral", res.Seized)
	}
	if res.Bonus != 500_000 {
		t.Fatalf("bonus = %d, want 5%% of seized", res.Bonus)
	}
	if res.ToTreasury != 9_500_000 {
		t.Fatalf("treasury take = %d", res.ToTreasury)
	}
	u := f.store.Account(borrower)
	if u.CollateralDeposited != 0 || u.Borrowed != 0 {
		t.Fatalf("borrower not zeroed: %+v", u)
	}
	if f.store.ActiveLoan(borrower) != nil {
		t.Fatal("loan still active after liquidation")
	}
	agg := f.store.Aggregates()
	if agg.TotalCollateral != 0 || agg.TotalBorrowed != 0 {
		t.Fatalf("aggregates after liquidation: %+v", agg)
	}
}

func TestPartialLiquidate_ProportionalSeize(t *testing.T) {
	f := newFixture(t)
	borrower, liquidator := uuid.New(), uuid.New()
	mustDeposit(t, f, borrower, 10_000_000)
	mustBorrow(t, f, borrower, 6_000_000, 1000)
	f.store.ActiveLoan(borrower).InterestAccrued = 2_500_000

	// Repay half the principal, seize half the collateral.
	res, err := f.liq.PartialLiquidate(liquidator, borrower, 3_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("partial liquidate: %v", err)
	}
	if res.Seized != 5_000_000 {
		t.Fatalf("seized = %d, want 5000000", res.Seized)
	}
	if res.LoanClosed {
		t.Fatal("half the principal remains, loan must stay open")
	}
	loan := f.store.ActiveLoan(borrower)
	if loan.Principal != 3_000_000 {
		t.Fatalf("principal = %d", loan.Principal)
	}
	if f.store.Account(borrower).CollateralDeposited != 5_000_000 {
		t.Fatalf("collateral = %d", f.store.Account(borrower).CollateralDeposited)
	}

	// Clearing the rest closes the loan even with interest outstanding.
	res, err = f.liq.PartialLiquidate(liquidator, borrower, 3_000_000, 1000, batch())
	if err != nil {
		t.Fatalf("second partial: %v", err)
	}
	if !res.LoanClosed {
		t.Fatal("zero principal should close the loan")
	}
}

func TestPartialLiquidate_RejectsOversizedRepay(t *testing.T) {
	f := newFixture(t)
	borrower, liquidator := uuid.New(), uuid.New()
	mustDeposit(t, f, borrower, 10_000_000)
	mustBorrow(t, f, borrower, 6_000_000, 1000)
	f.store.ActiveLoan(borrower).InterestAccrued = 2_500_000

	if _, err := f.liq.PartialLiquidate(liquidator, borrower, 7_000_000, 1000, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("repay above principal should fail: %v", err)
	}
}

func TestAccrual_InterestAndCheckpoint(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 6_000_000, 0)

	loan := f.store.ActiveLoan(id)
	now := fpmath.SecondsPerYear
	interest, fee := f.accrual.AccrueLoan(loan, now)
	// No deposits in the pool, so the base rate (5%) applies.
	if interest != 300_000 || fee != 0 {
		t.Fatalf("accrued %d fee %d, want 300000/0", interest, fee)
	}
	if loan.StartTime != now {
		t.Fatal("accrual checkpoint did not advance")
	}

	// Re-accrual at the same timestamp posts nothing.
	interest, _ = f.accrual.AccrueLoan(loan, now)
	if interest != 0 || loan.InterestAccrued != 300_000 {
		t.Fatalf("idempotent re-accrual violated: interest %d total %d", interest, loan.InterestAccrued)
	}
}

func TestAccrual_InterestFeeSplit(t *testing.T) {
	p := DefaultParams()
	p.InterestFeeBP = 1_000 // 10% of interest to treasury
	f := newFixtureWith(t, p)
	id := uuid.New()
	mustDeposit(t, f, id, 20_000_000)
	mustBorrow(t, f, id, 6_000_000, 0)

	loan := f.store.ActiveLoan(id)
	interest, fee := f.accrual.AccrueLoan(loan, fpmath.SecondsPerYear)
	if fee != 30_000 || interest != 270_000 {
		t.Fatalf("split = %d/%d, want 270000/30000", interest, fee)
	}
	if loan.InterestAccrued != 270_000 {
		t.Fatalf("loan carries %d, want net of fee", loan.InterestAccrued)
	}
	if f.store.Aggregates().ProtocolFees != 30_000 {
		t.Fatalf("treasury = %d", f.store.Aggregates().ProtocolFees)
	}
}

func TestAccrual_TieredRateFollowsUtilization(t *testing.T) {
	f := newFixture(t)
	saver, borrower := uuid.New(), uuid.New()
	mustSavings(t, f, saver, 10_000_000)
	mustDeposit(t, f, borrower, 20_000_000)
	mustBorrow(t, f, borrower, 7_000_000, 0)

	// Utilization 70% lands in the second tier (10%).
	loan := f.store.ActiveLoan(borrower)
	interest, _ := f.accrual.AccrueLoan(loan, fpmath.SecondsPerYear)
	if interest != 700_000 {
		t.Fatalf("interest = %d, want 700000 at 10%%", interest)
	}
}

func TestAccrual_RewardsFirstTouchInitializes(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustSavings(t, f, id, 10_000_000)
	u := f.store.Account(id)
	u.LastCheckpoint = 0

	if got := f.accrual.AccrueRewards(u, 1000); got != 0 {
		t.Fatalf("first touch accrued %d, want 0", got)
	}
	if u.LastCheckpoint != 1000 {
		t.Fatal("first touch should initialize the checkpoint")
	}
	got := f.accrual.AccrueRewards(u, 1000+fpmath.SecondsPerYear)
	if got != 300_000 {
		t.Fatalf("one year of rewards = %d, want 300000 at 3%%", got)
	}
}

func TestAccrual_FixedDepositBoost(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	u := f.store.EnsureAccount(id)
	u.LastCheckpoint = 1000
	p := f.params.Get()
	if _, err := f.rewards.CreateFixedDeposit(id, 10_000_000, p.MinLockDuration, 150, 1000, batch()); err != nil {
		t.Fatalf("fixed deposit: %v", err)
	}

	got := f.accrual.AccrueRewards(u, 1000+fpmath.SecondsPerYear)
	if got != 450_000 {
		t.Fatalf("boosted reward = %d, want 450000 at 3%%x1.5", got)
	}
}

func TestRewards_ClaimAndCompound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	mustSavings(t, f, id, 10_000_000)
	u := f.store.Account(id)

	if _, err := f.rewards.Claim(id, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty claim should fail: %v", err)
	}

	u.RewardAccumulated = 250_000
	payout, err := f.rewards.Claim(id, batch())
	if err != nil || payout != 250_000 {
		t.Fatalf("claim = %d, %v", payout, err)
	}
	if u.RewardAccumulated != 0 {
		t.Fatal("claim did not zero the balance")
	}

	u.RewardAccumulated = 100_000
	if _, err := f.rewards.Compound(id, batch()); err != nil {
		t.Fatalf("compound: %v", err)
	}
	if u.DepositedSavings != 10_100_000 || u.RewardAccumulated != 0 {
		t.Fatalf("after compound: savings %d rewards %d", u.DepositedSavings, u.RewardAccumulated)
	}
	if f.store.Aggregates().TotalDeposits != 10_100_000 {
		t.Fatalf("TotalDeposits = %d", f.store.Aggregates().TotalDeposits)
	}
}

func TestReferral_FirstWriteWins(t *testing.T) {
	f := newFixture(t)
	user, refA, refB := uuid.New(), uuid.New(), uuid.New()

	if err := f.rewards.DepositSavings(user, 10_000_000, &refA, batch()); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	// Referral cut is 1% of the deposit.
	if got := f.store.Account(refA).RewardAccumulated; got != 100_000 {
		t.Fatalf("referrer credit = %d, want 100000", got)
	}

	// Later deposits cannot rebind, and keep paying the original referrer.
	if err := f.rewards.DepositSavings(user, 5_000_000, &refB, batch()); err != nil {
		t.Fatalf("second deposit: %v", err)
	}
	if got := *f.store.Account(user).Referrer; got != refA {
		t.Fatalf("referrer rebound to %s", got)
	}
	if got := f.store.Account(refA).RewardAccumulated; got != 150_000 {
		t.Fatalf("referrer total = %d, want 150000", got)
	}
	if f.store.Account(refB) != nil && f.store.Account(refB).RewardAccumulated != 0 {
		t.Fatal("second referrer should earn nothing")
	}
}

func TestReferral_SelfReferralIgnored(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	if err := f.rewards.DepositSavings(id, 10_000_000, &id, batch()); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if f.store.Account(id).Referrer != nil {
		t.Fatal("self-referral should not bind")
	}
}

func TestSavings_WithdrawBoundedByLiquidity(t *testing.T) {
	f := newFixture(t)
	saver, borrower := uuid.New(), uuid.New()
	mustSavings(t, f, saver, 10_000_000)
	mustDeposit(t, f, borrower, 20_000_000)
	mustBorrow(t, f, borrower, 8_000_000, 1000)

	if _, err := f.rewards.WithdrawSavings(saver, 5_000_000, batch()); !errors.Is(err, ErrInvariant) {
		t.Fatalf("withdrawal above unlent liquidity should fail: %v", err)
	}
	released, err := f.rewards.WithdrawSavings(saver, 2_000_000, batch())
	if err != nil || released != 2_000_000 {
		t.Fatalf("withdraw = %d, %v", released, err)
	}
}

func TestFixedDeposit_Lifecycle(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	p := f.params.Get()

	if _, err := f.rewards.CreateFixedDeposit(id, 5_000_000, p.MinLockDuration-1, 150, 1000, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("short lock accepted: %v", err)
	}
	if _, err := f.rewards.CreateFixedDeposit(id, 5_000_000, p.MinLockDuration, 99, 1000, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("sub-100%% multiplier accepted: %v", err)
	}

	index, err := f.rewards.CreateFixedDeposit(id, 5_000_000, p.MinLockDuration, 150, 1000, batch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.store.Aggregates().TotalDeposits != 5_000_000 {
		t.Fatalf("TotalDeposits = %d", f.store.Aggregates().TotalDeposits)
	}

	unlock := 1000 + p.MinLockDuration
	if _, err := f.rewards.WithdrawFixedDeposit(id, index, unlock-1, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("early withdrawal accepted: %v", err)
	}
	amount, err := f.rewards.WithdrawFixedDeposit(id, index, unlock, batch())
	if err != nil || amount != 5_000_000 {
		t.Fatalf("withdraw = %d, %v", amount, err)
	}
	if _, err := f.rewards.WithdrawFixedDeposit(id, index, unlock, batch()); !errors.Is(err, ErrValidation) {
		t.Fatalf("double withdrawal accepted: %v", err)
	}
	if f.store.Aggregates().TotalDeposits != 0 {
		t.Fatalf("TotalDeposits after close = %d", f.store.Aggregates().TotalDeposits)
	}
}

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProtocolParams)
		ok     bool
	}{
		{"defaults", func(*ProtocolParams) {}, true},
		{"ratio below 100", func(p *ProtocolParams) { p.CollateralRatioPercent = 99 }, false},
		{"threshold above ratio", func(p *ProtocolParams) { p.LiquidationThresholdPercent = 200 }, false},
		{"threshold equals ratio", func(p *ProtocolParams) { p.LiquidationThresholdPercent = p.CollateralRatioPercent }, false},
		{"tiers not ascending", func(p *ProtocolParams) {
			p.InterestTiers = []RateTier{{UtilizationPercent: 80, RatePercent: 5}, {UtilizationPercent: 50, RatePercent: 10}}
		}, false},
		{"referral rate above cap", func(p *ProtocolParams) { p.ReferralRatePercent = 30 }, false},
		{"flash fee above 100%", func(p *ProtocolParams) { p.FlashLoanFeeBP = 10_001 }, false},
		{"penalty without interval", func(p *ProtocolParams) { p.PenaltyRatePercent = 2; p.PenaltyInterval = 0 }, false},
		{"no tiers is fine", func(p *ProtocolParams) { p.InterestTiers = nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := ValidateParams(p)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParamsManager_FailedUpdateKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	bad := DefaultParams()
	bad.CollateralRatioPercent = 10
	if err := f.params.Update(bad); err == nil {
		t.Fatal("expected rejection")
	}
	if got := f.params.Get().CollateralRatioPercent; got != 150 {
		t.Fatalf("previous params lost: ratio %d", got)
	}
}

func TestBorrowRate_Tiers(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name     string
		borrowed int64
		deposits int64
		want     int64
	}{
		{"no deposits uses base", 5, 0, 5},
		{"low utilization first tier", 3_000_000, 10_000_000, 5},
		{"mid utilization second tier", 7_000_000, 10_000_000, 10},
		{"full utilization top tier", 10_000_000, 10_000_000, 20},
		{"above every bound pays top tier", 15_000_000, 10_000_000, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorrowRate(p, tt.borrowed, tt.deposits); got != tt.want {
				t.Errorf("BorrowRate(%d/%d) = %d, want %d", tt.borrowed, tt.deposits, got, tt.want)
			}
		})
	}
}

// --- helpers ---

func mustDeposit(t *testing.T, f *fixture, id uuid.UUID, amount int64) {
	t.Helper()
	if err := f.collateral.Deposit(id, amount, 0, batch()); err != nil {
		t.Fatalf("deposit collateral: %v", err)
	}
	f.store.CreditCash(amount)
}

func mustSavings(t *testing.T, f *fixture, id uuid.UUID, amount int64) {
	t.Helper()
	if err := f.rewards.DepositSavings(id, amount, nil, batch()); err != nil {
		t.Fatalf("deposit savings: %v", err)
	}
	f.store.CreditCash(amount)
}

func mustBorrow(t *testing.T, f *fixture, id uuid.UUID, amount, now int64) {
	t.Helper()
	if _, err := f.loans.Borrow(id, amount, now, batch()); err != nil {
		t.Fatalf("borrow: %v", err)
	}
}
