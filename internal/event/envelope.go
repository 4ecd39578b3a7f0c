package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType discriminator for event payloads
type EventType int32

const (
	EventTypeUnknown EventType = iota
	EventTypeCollateralDeposit
	EventTypeCollateralWithdraw
	EventTypeCollateralStake
	EventTypeCollateralUnstake
	EventTypeSavingsDeposit
	EventTypeSavingsWithdraw
	EventTypeLoanBorrow
	EventTypeLoanRepay
	EventTypeLoanExtend
	EventTypeLoanTransfer
	EventTypeLiquidate
	EventTypePartialLiquidate
	EventTypeRewardClaim
	EventTypeRewardCompound
	EventTypeFixedDepositCreate
	EventTypeFixedDepositWithdraw
	EventTypeParamUpdate
	EventTypeAccountFlagUpdate
	// EventTypeFlashLoan never arrives from ingestion; the core logs it
	// for committed direct flash loans.
	EventTypeFlashLoan
)

// GlobalPartition orders events that touch no single account.
const GlobalPartition = "global"

// AccountPartition is the per-account ordering domain.
func AccountPartition(id uuid.UUID) string {
	return fmt.Sprintf("account:%s", id)
}

// EventEnvelope wraps every event in the log
type EventEnvelope struct {
	// Global monotonic sequence assigned by core
	Sequence int64

	// Stable idempotency key from upstream
	IdempotencyKey string

	// Event type discriminator
	EventType EventType

	// Ordering partition ("account:<id>" or "global")
	Partition string

	// Versioned input timestamp (NOT wall-clock)
	Timestamp time.Time

	// Upstream sequence for ordering validation
	SourceSequence int64

	// Wire JSON of the event, as the ingestion codec produces it
	Payload []byte

	// SHA-256 of state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

// Event is the interface all event payloads must implement
type Event interface {
	// IdempotencyKey returns the stable dedup key
	IdempotencyKey() string

	// EventType returns the discriminator
	EventType() EventType

	// Partition returns the ordering domain
	Partition() string

	// SourceSequence returns upstream ordering key
	SourceSequence() int64

	// EffectiveAt returns the versioned operation time (unix seconds)
	EffectiveAt() int64
}

func (et EventType) String() string {
	switch et {
	case EventTypeCollateralDeposit:
		return "CollateralDeposit"
	case EventTypeCollateralWithdraw:
		return "CollateralWithdraw"
	case EventTypeCollateralStake:
		return "CollateralStake"
	case EventTypeCollateralUnstake:
		return "CollateralUnstake"
	case EventTypeSavingsDeposit:
		return "SavingsDeposit"
	case EventTypeSavingsWithdraw:
		return "SavingsWithdraw"
	case EventTypeLoanBorrow:
		return "LoanBorrow"
	case EventTypeLoanRepay:
		return "LoanRepay"
	case EventTypeLoanExtend:
		return "LoanExtend"
	case EventTypeLoanTransfer:
		return "LoanTransfer"
	case EventTypeLiquidate:
		return "Liquidate"
	case EventTypePartialLiquidate:
		return "PartialLiquidate"
	case EventTypeRewardClaim:
		return "RewardClaim"
	case EventTypeRewardCompound:
		return "RewardCompound"
	case EventTypeFixedDepositCreate:
		return "FixedDepositCreate"
	case EventTypeFixedDepositWithdraw:
		return "FixedDepositWithdraw"
	case EventTypeParamUpdate:
		return "ParamUpdate"
	case EventTypeAccountFlagUpdate:
		return "AccountFlagUpdate"
	case EventTypeFlashLoan:
		return "FlashLoan"
	default:
		return "Unknown"
	}
}
