package ingestion

import (
	"encoding/json"
	"fmt"

	"LendLedger/internal/event"
)

// EncodeEvent serializes a typed event back into its wire JSON, the
// same shape ParseRawEvent consumes. The core stores this in the event
// log so replay can reconstruct the event stream byte for byte.
func EncodeEvent(evt event.Event) ([]byte, error) {
	switch e := evt.(type) {
	case *event.CollateralDeposit:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.CollateralWithdraw:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.CollateralStake:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.CollateralUnstake:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.SavingsDeposit:
		j := savingsDepositJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
		if e.Referrer != nil {
			j.Referrer = e.Referrer.String()
		}
		return json.Marshal(j)
	case *event.SavingsWithdraw:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.LoanBorrow:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Amount:    e.Amount,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.LoanRepay:
		return json.Marshal(loanPaymentJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Payment:   e.Payment,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.LoanExtend:
		return json.Marshal(loanPaymentJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Payment:   e.Payment,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.LoanTransfer:
		return json.Marshal(loanTransferJSON{
			RequestID: e.RequestID.String(),
			FromID:    e.FromID.String(),
			ToID:      e.ToID.String(),
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.Liquidate:
		return json.Marshal(liquidateJSON{
			RequestID:    e.RequestID.String(),
			LiquidatorID: e.LiquidatorID.String(),
			BorrowerID:   e.BorrowerID.String(),
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		})
	case *event.PartialLiquidate:
		return json.Marshal(liquidateJSON{
			RequestID:    e.RequestID.String(),
			LiquidatorID: e.LiquidatorID.String(),
			BorrowerID:   e.BorrowerID.String(),
			RepayAmount:  e.RepayAmount,
			Payment:      e.Payment,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		})
	case *event.RewardClaim:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.RewardCompound:
		return json.Marshal(accountOpJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.FixedDepositCreate:
		return json.Marshal(fixedDepositCreateJSON{
			RequestID:      e.RequestID.String(),
			AccountID:      e.AccountID.String(),
			Amount:         e.Amount,
			LockDuration:   e.LockDuration,
			RateMultiplier: e.RateMultiplier,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
		})
	case *event.FixedDepositWithdraw:
		return json.Marshal(fixedDepositWithdrawJSON{
			RequestID: e.RequestID.String(),
			AccountID: e.AccountID.String(),
			Index:     e.Index,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	case *event.ParamUpdate:
		return encodeParamUpdate(e)
	case *event.AccountFlagUpdate:
		return json.Marshal(accountFlagJSON{
			RequestID:   e.RequestID.String(),
			CallerID:    e.CallerID.String(),
			AccountID:   e.AccountID.String(),
			Blacklisted: e.Blacklisted,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
		})
	default:
		return nil, fmt.Errorf("encode: unknown event type %T", evt)
	}
}

func encodeParamUpdate(e *event.ParamUpdate) ([]byte, error) {
	var j paramUpdateJSON
	j.CallerID = e.CallerID.String()
	j.Version = e.Version
	j.Sequence = e.Sequence
	j.Timestamp = e.Timestamp

	p := e.Params
	j.Params.CollateralRatioPercent = p.CollateralRatioPercent
	j.Params.LiquidationThresholdPercent = p.LiquidationThresholdPercent
	j.Params.LiquidationBonusPercent = p.LiquidationBonusPercent
	j.Params.BaseInterestRatePercent = p.BaseInterestRatePercent
	j.Params.InterestTiers = make([]rateTierJSON, 0, len(p.InterestTiers))
	for _, t := range p.InterestTiers {
		j.Params.InterestTiers = append(j.Params.InterestTiers, rateTierJSON{
			UtilizationPercent: t.UtilizationPercent,
			RatePercent:        t.RatePercent,
		})
	}
	j.Params.RewardRatePercent = p.RewardRatePercent
	j.Params.ReferralRatePercent = p.ReferralRatePercent
	j.Params.MinLockDuration = p.MinLockDuration
	j.Params.CooldownPeriod = p.CooldownPeriod
	j.Params.PenaltyRatePercent = p.PenaltyRatePercent
	j.Params.GracePeriod = p.GracePeriod
	j.Params.PenaltyInterval = p.PenaltyInterval
	j.Params.FlashLoanFeeBP = p.FlashLoanFeeBP
	j.Params.InterestFeeBP = p.InterestFeeBP
	j.Params.ProtocolFeePercent = p.ProtocolFeePercent
	j.Params.MaxDepositPerAccount = p.MaxDepositPerAccount
	j.Params.MaxBorrowPerAccount = p.MaxBorrowPerAccount
	j.Params.LateFeesEnabled = p.LateFeesEnabled
	j.Params.CollateralFollowsTransfer = p.CollateralFollowsTransfer
	j.Params.PartialLiquidationBonus = p.PartialLiquidationBonus
	return json.Marshal(j)
}
