package state

import "fmt"

// RateTier maps a utilization bound to a borrow rate. Tiers are ordered
// ascending by bound; the first tier whose bound covers current
// utilization supplies the rate.
type RateTier struct {
	UtilizationPercent int64
	RatePercent        int64
}

// ProtocolParams are the governed knobs of the lending pool. All rates
// are plain integer percents unless named BP (basis points). Durations
// are seconds. A zero cap means unlimited.
type ProtocolParams struct {
	CollateralRatioPercent      int64 // minimum collateral/debt, >= 100
	LiquidationThresholdPercent int64 // health factor floor, < ratio
	LiquidationBonusPercent     int64 // liquidator cut of seized collateral

	BaseInterestRatePercent int64
	InterestTiers           []RateTier

	RewardRatePercent   int64
	ReferralRatePercent int64 // of each referred savings deposit
	MinLockDuration     int64 // fixed deposit floor
	CooldownPeriod      int64 // between collateral withdrawals

	PenaltyRatePercent int64 // late fee rate, applied per penalty interval
	GracePeriod        int64 // loan age before late fees start
	PenaltyInterval    int64 // late fee compounding step

	FlashLoanFeeBP     int64
	InterestFeeBP      int64 // treasury cut of accrued interest
	ProtocolFeePercent int64 // borrow-time origination fee

	MaxDepositPerAccount int64
	MaxBorrowPerAccount  int64

	LateFeesEnabled           bool
	CollateralFollowsTransfer bool
	PartialLiquidationBonus   bool
}

// maxReferralRatePercent caps the referral cut so a deposit can never
// mint more reward than a quarter of itself.
const maxReferralRatePercent = 25

// DefaultParams returns the genesis parameter set.
func DefaultParams() ProtocolParams {
	return ProtocolParams{
		CollateralRatioPercent:      150,
		LiquidationThresholdPercent: 120,
		LiquidationBonusPercent:     5,
		BaseInterestRatePercent:     5,
		InterestTiers: []RateTier{
			{UtilizationPercent: 50, RatePercent: 5},
			{UtilizationPercent: 80, RatePercent: 10},
			{UtilizationPercent: 100, RatePercent: 20},
		},
		RewardRatePercent:   3,
		ReferralRatePercent: 1,
		MinLockDuration:     30 * 24 * 3600,
		CooldownPeriod:      24 * 3600,
		PenaltyRatePercent:  2,
		GracePeriod:         31_536_000,
		PenaltyInterval:     30 * 24 * 3600,
		FlashLoanFeeBP:      9,
	}
}

// ValidateParams rejects parameter sets that would leave the pool
// unsound. Called on every update; a failed update leaves the previous
// set in force.
func ValidateParams(p ProtocolParams) error {
	if p.CollateralRatioPercent < 100 {
		return fmt.Errorf("%w: collateral ratio %d%% below 100%%", ErrValidation, p.CollateralRatioPercent)
	}
	if p.LiquidationThresholdPercent <= 0 || p.LiquidationThresholdPercent >= p.CollateralRatioPercent {
		return fmt.Errorf("%w: liquidation threshold %d%% must sit below collateral ratio %d%%",
			ErrValidation, p.LiquidationThresholdPercent, p.CollateralRatioPercent)
	}
	if p.LiquidationBonusPercent < 0 || p.LiquidationBonusPercent > 100 {
		return fmt.Errorf("%w: liquidation bonus %d%% outside [0,100]", ErrValidation, p.LiquidationBonusPercent)
	}
	if p.BaseInterestRatePercent < 0 {
		return fmt.Errorf("%w: negative base interest rate", ErrValidation)
	}
	prev := int64(0)
	for i, t := range p.InterestTiers {
		if t.UtilizationPercent <= prev {
			return fmt.Errorf("%w: interest tier %d bound %d%% not ascending", ErrValidation, i, t.UtilizationPercent)
		}
		if t.RatePercent < 0 {
			return fmt.Errorf("%w: interest tier %d has negative rate", ErrValidation, i)
		}
		prev = t.UtilizationPercent
	}
	if p.RewardRatePercent < 0 {
		return fmt.Errorf("%w: negative reward rate", ErrValidation)
	}
	if p.ReferralRatePercent < 0 || p.ReferralRatePercent > maxReferralRatePercent {
		return fmt.Errorf("%w: referral rate %d%% outside [0,%d]", ErrValidation, p.ReferralRatePercent, maxReferralRatePercent)
	}
	if p.MinLockDuration < 0 || p.CooldownPeriod < 0 {
		return fmt.Errorf("%w: negative duration", ErrValidation)
	}
	if p.PenaltyRatePercent < 0 || p.GracePeriod < 0 {
		return fmt.Errorf("%w: negative late fee parameter", ErrValidation)
	}
	if p.PenaltyRatePercent > 0 && p.PenaltyInterval <= 0 {
		return fmt.Errorf("%w: penalty interval must be positive when late fees carry a rate", ErrValidation)
	}
	if p.FlashLoanFeeBP < 0 || p.FlashLoanFeeBP > 10_000 {
		return fmt.Errorf("%w: flash loan fee %dbp outside [0,10000]", ErrValidation, p.FlashLoanFeeBP)
	}
	if p.InterestFeeBP < 0 || p.InterestFeeBP > 10_000 {
		return fmt.Errorf("%w: interest fee %dbp outside [0,10000]", ErrValidation, p.InterestFeeBP)
	}
	if p.ProtocolFeePercent < 0 || p.ProtocolFeePercent >= 100 {
		return fmt.Errorf("%w: protocol fee %d%% outside [0,100)", ErrValidation, p.ProtocolFeePercent)
	}
	if p.MaxDepositPerAccount < 0 || p.MaxBorrowPerAccount < 0 {
		return fmt.Errorf("%w: negative account cap", ErrValidation)
	}
	return nil
}

// ParamsManager holds the active parameter set. Updates are applied by
// the single writer, so no locking is needed on the hot path.
type ParamsManager struct {
	params ProtocolParams
}

// NewParamsManager validates and installs the initial set.
func NewParamsManager(p ProtocolParams) (*ParamsManager, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}
	return &ParamsManager{params: cloneParams(p)}, nil
}

// Get returns a copy of the active parameters.
func (m *ParamsManager) Get() ProtocolParams {
	return cloneParams(m.params)
}

// Update validates and swaps in a new parameter set.
func (m *ParamsManager) Update(p ProtocolParams) error {
	if err := ValidateParams(p); err != nil {
		return err
	}
	m.params = cloneParams(p)
	return nil
}

func cloneParams(p ProtocolParams) ProtocolParams {
	c := p
	c.InterestTiers = make([]RateTier, len(p.InterestTiers))
	copy(c.InterestTiers, p.InterestTiers)
	return c
}
