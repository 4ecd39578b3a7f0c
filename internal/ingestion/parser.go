package ingestion

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/state"
)

// ParseRawEvent converts a RawEvent (JSON bytes + event type string) into a
// typed event.Event. The ingestion shell validates, parses, and converts raw
// events before sending to the deterministic core.
func ParseRawEvent(raw RawEvent, eventType string) (event.Event, error) {
	switch eventType {
	case "CollateralDeposit":
		return parseCollateralDeposit(raw.Data)
	case "CollateralWithdraw":
		return parseCollateralWithdraw(raw.Data)
	case "CollateralStake":
		return parseCollateralStake(raw.Data)
	case "CollateralUnstake":
		return parseCollateralUnstake(raw.Data)
	case "SavingsDeposit":
		return parseSavingsDeposit(raw.Data)
	case "SavingsWithdraw":
		return parseSavingsWithdraw(raw.Data)
	case "LoanBorrow":
		return parseLoanBorrow(raw.Data)
	case "LoanRepay":
		return parseLoanRepay(raw.Data)
	case "LoanExtend":
		return parseLoanExtend(raw.Data)
	case "LoanTransfer":
		return parseLoanTransfer(raw.Data)
	case "Liquidate":
		return parseLiquidate(raw.Data)
	case "PartialLiquidate":
		return parsePartialLiquidate(raw.Data)
	case "RewardClaim":
		return parseRewardClaim(raw.Data)
	case "RewardCompound":
		return parseRewardCompound(raw.Data)
	case "FixedDepositCreate":
		return parseFixedDepositCreate(raw.Data)
	case "FixedDepositWithdraw":
		return parseFixedDepositWithdraw(raw.Data)
	case "ParamUpdate":
		return parseParamUpdate(raw.Data)
	case "AccountFlagUpdate":
		return parseAccountFlagUpdate(raw.Data)
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers. Amounts are
// fixed-point with 6 decimals; timestamps are unix seconds.

type accountOpJSON struct {
	RequestID string `json:"request_id"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

func (j *accountOpJSON) ids() (requestID, accountID uuid.UUID, err error) {
	requestID, err = uuid.Parse(j.RequestID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err = uuid.Parse(j.AccountID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("parse account_id: %w", err)
	}
	return requestID, accountID, nil
}

func parseCollateralDeposit(data []byte) (*event.CollateralDeposit, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse CollateralDeposit: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.CollateralDeposit{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseCollateralWithdraw(data []byte) (*event.CollateralWithdraw, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse CollateralWithdraw: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.CollateralWithdraw{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseCollateralStake(data []byte) (*event.CollateralStake, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse CollateralStake: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.CollateralStake{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseCollateralUnstake(data []byte) (*event.CollateralUnstake, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse CollateralUnstake: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.CollateralUnstake{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type savingsDepositJSON struct {
	RequestID string `json:"request_id"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Referrer  string `json:"referrer,omitempty"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

func parseSavingsDeposit(data []byte) (*event.SavingsDeposit, error) {
	var j savingsDepositJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse SavingsDeposit: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	var referrer *uuid.UUID
	if j.Referrer != "" {
		r, err := uuid.Parse(j.Referrer)
		if err != nil {
			return nil, fmt.Errorf("parse referrer: %w", err)
		}
		referrer = &r
	}
	return &event.SavingsDeposit{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Referrer:  referrer,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseSavingsWithdraw(data []byte) (*event.SavingsWithdraw, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse SavingsWithdraw: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.SavingsWithdraw{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseLoanBorrow(data []byte) (*event.LoanBorrow, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse LoanBorrow: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.LoanBorrow{
		RequestID: requestID,
		AccountID: accountID,
		Amount:    j.Amount,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type loanPaymentJSON struct {
	RequestID string `json:"request_id"`
	AccountID string `json:"account_id"`
	Payment   int64  `json:"payment"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

func parseLoanRepay(data []byte) (*event.LoanRepay, error) {
	var j loanPaymentJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse LoanRepay: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.LoanRepay{
		RequestID: requestID,
		AccountID: accountID,
		Payment:   j.Payment,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseLoanExtend(data []byte) (*event.LoanExtend, error) {
	var j loanPaymentJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse LoanExtend: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.LoanExtend{
		RequestID: requestID,
		AccountID: accountID,
		Payment:   j.Payment,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type loanTransferJSON struct {
	RequestID string `json:"request_id"`
	FromID    string `json:"from_id"`
	ToID      string `json:"to_id"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

func parseLoanTransfer(data []byte) (*event.LoanTransfer, error) {
	var j loanTransferJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse LoanTransfer: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	fromID, err := uuid.Parse(j.FromID)
	if err != nil {
		return nil, fmt.Errorf("parse from_id: %w", err)
	}
	toID, err := uuid.Parse(j.ToID)
	if err != nil {
		return nil, fmt.Errorf("parse to_id: %w", err)
	}
	return &event.LoanTransfer{
		RequestID: requestID,
		FromID:    fromID,
		ToID:      toID,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type liquidateJSON struct {
	RequestID    string `json:"request_id"`
	LiquidatorID string `json:"liquidator_id"`
	BorrowerID   string `json:"borrower_id"`
	RepayAmount  int64  `json:"repay_amount,omitempty"`
	Payment      int64  `json:"payment,omitempty"`
	Sequence     int64  `json:"sequence"`
	Timestamp    int64  `json:"timestamp"`
}

func (j *liquidateJSON) ids() (requestID, liquidatorID, borrowerID uuid.UUID, err error) {
	requestID, err = uuid.Parse(j.RequestID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("parse request_id: %w", err)
	}
	liquidatorID, err = uuid.Parse(j.LiquidatorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("parse liquidator_id: %w", err)
	}
	borrowerID, err = uuid.Parse(j.BorrowerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, fmt.Errorf("parse borrower_id: %w", err)
	}
	return requestID, liquidatorID, borrowerID, nil
}

func parseLiquidate(data []byte) (*event.Liquidate, error) {
	var j liquidateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Liquidate: %w", err)
	}
	requestID, liquidatorID, borrowerID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.Liquidate{
		RequestID:    requestID,
		LiquidatorID: liquidatorID,
		BorrowerID:   borrowerID,
		Sequence:     j.Sequence,
		Timestamp:    j.Timestamp,
	}, nil
}

func parsePartialLiquidate(data []byte) (*event.PartialLiquidate, error) {
	var j liquidateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PartialLiquidate: %w", err)
	}
	requestID, liquidatorID, borrowerID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.PartialLiquidate{
		RequestID:    requestID,
		LiquidatorID: liquidatorID,
		BorrowerID:   borrowerID,
		RepayAmount:  j.RepayAmount,
		Payment:      j.Payment,
		Sequence:     j.Sequence,
		Timestamp:    j.Timestamp,
	}, nil
}

func parseRewardClaim(data []byte) (*event.RewardClaim, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RewardClaim: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.RewardClaim{
		RequestID: requestID,
		AccountID: accountID,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

func parseRewardCompound(data []byte) (*event.RewardCompound, error) {
	var j accountOpJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RewardCompound: %w", err)
	}
	requestID, accountID, err := j.ids()
	if err != nil {
		return nil, err
	}
	return &event.RewardCompound{
		RequestID: requestID,
		AccountID: accountID,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type fixedDepositCreateJSON struct {
	RequestID      string `json:"request_id"`
	AccountID      string `json:"account_id"`
	Amount         int64  `json:"amount"`
	LockDuration   int64  `json:"lock_duration"`
	RateMultiplier int64  `json:"rate_multiplier"`
	Sequence       int64  `json:"sequence"`
	Timestamp      int64  `json:"timestamp"`
}

func parseFixedDepositCreate(data []byte) (*event.FixedDepositCreate, error) {
	var j fixedDepositCreateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse FixedDepositCreate: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.FixedDepositCreate{
		RequestID:      requestID,
		AccountID:      accountID,
		Amount:         j.Amount,
		LockDuration:   j.LockDuration,
		RateMultiplier: j.RateMultiplier,
		Sequence:       j.Sequence,
		Timestamp:      j.Timestamp,
	}, nil
}

type fixedDepositWithdrawJSON struct {
	RequestID string `json:"request_id"`
	AccountID string `json:"account_id"`
	Index     int32  `json:"index"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

func parseFixedDepositWithdraw(data []byte) (*event.FixedDepositWithdraw, error) {
	var j fixedDepositWithdrawJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse FixedDepositWithdraw: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.FixedDepositWithdraw{
		RequestID: requestID,
		AccountID: accountID,
		Index:     j.Index,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type rateTierJSON struct {
	UtilizationPercent int64 `json:"utilization_percent"`
	RatePercent        int64 `json:"rate_percent"`
}

type paramUpdateJSON struct {
	CallerID  string `json:"caller_id"`
	Version   int64  `json:"version"`
	Sequence  int64  `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
	Params    struct {
		CollateralRatioPercent      int64          `json:"collateral_ratio_percent"`
		LiquidationThresholdPercent int64          `json:"liquidation_threshold_percent"`
		LiquidationBonusPercent     int64          `json:"liquidation_bonus_percent"`
		BaseInterestRatePercent     int64          `json:"base_interest_rate_percent"`
		InterestTiers               []rateTierJSON `json:"interest_tiers"`
		RewardRatePercent           int64          `json:"reward_rate_percent"`
		ReferralRatePercent         int64          `json:"referral_rate_percent"`
		MinLockDuration             int64          `json:"min_lock_duration"`
		CooldownPeriod              int64          `json:"cooldown_period"`
		PenaltyRatePercent          int64          `json:"penalty_rate_percent"`
		GracePeriod                 int64          `json:"grace_period"`
		PenaltyInterval             int64          `json:"penalty_interval"`
		FlashLoanFeeBP              int64          `json:"flash_loan_fee_bp"`
		InterestFeeBP               int64          `json:"interest_fee_bp"`
		ProtocolFeePercent          int64          `json:"protocol_fee_percent"`
		MaxDepositPerAccount        int64          `json:"max_deposit_per_account"`
		MaxBorrowPerAccount         int64          `json:"max_borrow_per_account"`
		LateFeesEnabled             bool           `json:"late_fees_enabled"`
		CollateralFollowsTransfer   bool           `json:"collateral_follows_transfer"`
		PartialLiquidationBonus     bool           `json:"partial_liquidation_bonus"`
	} `json:"params"`
}

func parseParamUpdate(data []byte) (*event.ParamUpdate, error) {
	var j paramUpdateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse ParamUpdate: %w", err)
	}
	callerID, err := uuid.Parse(j.CallerID)
	if err != nil {
		return nil, fmt.Errorf("parse caller_id: %w", err)
	}

	tiers := make([]state.RateTier, 0, len(j.Params.InterestTiers))
	for _, t := range j.Params.InterestTiers {
		tiers = append(tiers, state.RateTier{
			UtilizationPercent: t.UtilizationPercent,
			RatePercent:        t.RatePercent,
		})
	}

	return &event.ParamUpdate{
		CallerID: callerID,
		Params: state.ProtocolParams{
			CollateralRatioPercent:      j.Params.CollateralRatioPercent,
			LiquidationThresholdPercent: j.Params.LiquidationThresholdPercent,
			LiquidationBonusPercent:     j.Params.LiquidationBonusPercent,
			BaseInterestRatePercent:     j.Params.BaseInterestRatePercent,
			InterestTiers:               tiers,
			RewardRatePercent:           j.Params.RewardRatePercent,
			ReferralRatePercent:         j.Params.ReferralRatePercent,
			MinLockDuration:             j.Params.MinLockDuration,
			CooldownPeriod:              j.Params.CooldownPeriod,
			PenaltyRatePercent:          j.Params.PenaltyRatePercent,
			GracePeriod:                 j.Params.GracePeriod,
			PenaltyInterval:             j.Params.PenaltyInterval,
			FlashLoanFeeBP:              j.Params.FlashLoanFeeBP,
			InterestFeeBP:               j.Params.InterestFeeBP,
			ProtocolFeePercent:          j.Params.ProtocolFeePercent,
			MaxDepositPerAccount:        j.Params.MaxDepositPerAccount,
			MaxBorrowPerAccount:         j.Params.MaxBorrowPerAccount,
			LateFeesEnabled:             j.Params.LateFeesEnabled,
			CollateralFollowsTransfer:   j.Params.CollateralFollowsTransfer,
			PartialLiquidationBonus:     j.Params.PartialLiquidationBonus,
		},
		Version:   j.Version,
		Sequence:  j.Sequence,
		Timestamp: j.Timestamp,
	}, nil
}

type accountFlagJSON struct {
	RequestID   string `json:"request_id"`
	CallerID    string `json:"caller_id"`
	AccountID   string `json:"account_id"`
	Blacklisted bool   `json:"blacklisted"`
	Sequence    int64  `json:"sequence"`
	Timestamp   int64  `json:"timestamp"`
}

func parseAccountFlagUpdate(data []byte) (*event.AccountFlagUpdate, error) {
	var j accountFlagJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AccountFlagUpdate: %w", err)
	}
	requestID, err := uuid.Parse(j.RequestID)
	if err != nil {
		return nil, fmt.Errorf("parse request_id: %w", err)
	}
	callerID, err := uuid.Parse(j.CallerID)
	if err != nil {
		return nil, fmt.Errorf("parse caller_id: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}
	return &event.AccountFlagUpdate{
		RequestID:   requestID,
		CallerID:    callerID,
		AccountID:   accountID,
		Blacklisted: j.Blacklisted,
		Sequence:    j.Sequence,
		Timestamp:   j.Timestamp,
	}, nil
}
