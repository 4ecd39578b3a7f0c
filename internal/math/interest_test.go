package math

import (
	"math"
	"testing"
)

func TestLoanInterest_OneYear(t *testing.T) {
	// 6.000000 units at 5% for a full year accrues 0.300000.
	got := LoanInterest(6_000_000, 5, SecondsPerYear)
	if got != 300_000 {
		t.Fatalf("expected 300000, got %d", got)
	}
}

func TestLoanInterest_Partial(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      int64
		elapsed   int64
		want      int64
	}{
		{"half year", 6_000_000, 5, SecondsPerYear / 2, 150_000},
		{"zero elapsed", 6_000_000, 5, 0, 0},
		{"negative elapsed", 6_000_000, 5, -100, 0},
		{"zero rate", 6_000_000, 0, SecondsPerYear, 0},
		{"zero principal", 0, 5, SecondsPerYear, 0},
		{"one second floors to zero", 1_000, 5, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoanInterest(tt.principal, tt.rate, tt.elapsed); got != tt.want {
				t.Errorf("LoanInterest(%d, %d, %d) = %d, want %d",
					tt.principal, tt.rate, tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestFixedRewardAccrual_Multiplier(t *testing.T) {
	base := RewardAccrual(10_000_000, 3, SecondsPerYear)
	boosted := FixedRewardAccrual(10_000_000, 3, 150, SecondsPerYear)
	if base != 300_000 {
		t.Fatalf("base reward: expected 300000, got %d", base)
	}
	if boosted != 450_000 {
		t.Fatalf("boosted reward: expected 450000, got %d", boosted)
	}
	plain := FixedRewardAccrual(10_000_000, 3, 100, SecondsPerYear)
	if plain != base {
		t.Fatalf("100%% multiplier should match base: %d vs %d", plain, base)
	}
}

func TestLateFee(t *testing.T) {
	year := SecondsPerYear
	month := int64(30 * 24 * 3600)
	tests := []struct {
		name    string
		elapsed int64
		want    int64
	}{
		{"within grace", year - 1, 0},
		{"exactly at grace", year, 0},
		{"one interval overdue", year + month, 120_000},
		{"partial interval not yet charged", year + 1, 0},
		{"three intervals", year + 3*month, 360_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LateFee(6_000_000, 2, tt.elapsed, year, month)
			if got != tt.want {
				t.Errorf("LateFee(elapsed=%d) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestUtilization(t *testing.T) {
	if got := Utilization(0, 0); got != 0 {
		t.Errorf("empty pool utilization = %d, want 0", got)
	}
	if got := Utilization(5_000_000, 10_000_000); got != 50 {
		t.Errorf("half-borrowed utilization = %d, want 50", got)
	}
	if got := Utilization(12_000_000, 10_000_000); got != 120 {
		t.Errorf("overextended utilization = %d, want 120", got)
	}
}

func TestMaxBorrow(t *testing.T) {
	// 10 units of collateral at 150% ratio supports 6.666666 of debt.
	if got := MaxBorrow(10_000_000, 150); got != 6_666_666 {
		t.Fatalf("expected 6666666, got %d", got)
	}
	if got := MaxBorrow(0, 150); got != 0 {
		t.Fatalf("no collateral should support no debt, got %d", got)
	}
}

func TestHealthFactor(t *testing.T) {
	if got := HealthFactor(10_000_000, 0); got != InfiniteHealthFactor {
		t.Fatalf("debt-free account should report the sentinel, got %d", got)
	}
	if got := HealthFactor(10_000_000, 6_000_000); got != 166 {
		t.Fatalf("expected 166, got %d", got)
	}
	if got := HealthFactor(10_000_000, 9_000_000); got != 111 {
		t.Fatalf("expected 111, got %d", got)
	}
}

func TestCheckedAdd(t *testing.T) {
	if _, err := CheckedAdd(math.MaxInt64, 1); err == nil {
		t.Fatal("expected overflow error")
	}
	got, err := CheckedAdd(math.MaxInt64-1, 1)
	if err != nil || got != math.MaxInt64 {
		t.Fatalf("expected MaxInt64, got %d, err %v", got, err)
	}
	if _, err := CheckedSub(math.MinInt64, 1); err == nil {
		t.Fatal("expected underflow error")
	}
}

func TestMulDiv_NoIntermediateOverflow(t *testing.T) {
	// a*b overflows int64 but the quotient fits.
	a := int64(4_000_000_000_000)
	b := int64(4_000_000_000)
	got := MulDiv(a, b, b)
	if got != a {
		t.Fatalf("expected %d, got %d", a, got)
	}
}

func TestDivideInt128_Rounding(t *testing.T) {
	tests := []struct {
		name string
		num  int64
		den  int64
		mode RoundingMode
		want int64
	}{
		{"floor positive", 7, 2, RoundDown, 3},
		{"floor negative", -7, 2, RoundDown, -4},
		{"half even up", 5, 2, RoundHalfEven, 2},
		{"half even down", 3, 2, RoundHalfEven, 2},
		{"ceil", 7, 2, RoundUp, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DivideInt128(MultiplyInt128(tt.num, 1), tt.den, tt.mode)
			if got != tt.want {
				t.Errorf("DivideInt128(%d/%d, %v) = %d, want %d", tt.num, tt.den, tt.mode, got, tt.want)
			}
		})
	}
}
