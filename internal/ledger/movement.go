package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// MovementKind classifies a value movement.
type MovementKind int32

const (
	MovementCollateralDeposit MovementKind = iota
	MovementCollateralWithdraw
	MovementStakeLock
	MovementStakeRelease
	MovementSavingsDeposit
	MovementSavingsWithdraw
	MovementFixedLock
	MovementFixedRelease
	MovementBorrow
	MovementRepayInterest
	MovementRepayLateFee
	MovementRepayPrincipal
	MovementOverpayRefund
	MovementProtocolFee
	MovementLiquidationSeize
	MovementLiquidationBonus
	MovementRewardPayout
	MovementRewardCompound
	MovementReferralCredit
	MovementFlashLoanOut
	MovementFlashLoanReturn
	MovementFlashLoanFee
	MovementLoanTransfer
)

// BucketScope is the top-level namespace of a bucket reference.
type BucketScope uint8

const (
	ScopeUser BucketScope = iota
	ScopeSystem
	ScopeExternal
)

// Bucket identifies which balance within a scope a movement touches.
type Bucket uint8

const (
	BucketCollateral Bucket = iota
	BucketStaked
	BucketSavings
	BucketFixed
	BucketDebt
	BucketReward
	BucketTreasury
	BucketLiquidity
	BucketExternal
)

// BucketRef addresses one side of a movement.
type BucketRef struct {
	Scope     BucketScope
	AccountID uuid.UUID // zero for system/external buckets
	Bucket    Bucket
}

// UserBucket builds a reference to a user-scoped bucket.
func UserBucket(accountID uuid.UUID, bucket Bucket) BucketRef {
	return BucketRef{Scope: ScopeUser, AccountID: accountID, Bucket: bucket}
}

// SystemBucket builds a reference to a system-scoped bucket.
func SystemBucket(bucket Bucket) BucketRef {
	return BucketRef{Scope: ScopeSystem, Bucket: bucket}
}

// ExternalBucket is the boundary with the value-transfer subsystem.
func ExternalBucket() BucketRef {
	return BucketRef{Scope: ScopeExternal, Bucket: BucketExternal}
}

// Path returns the string form used in storage and logs.
func (r BucketRef) Path() string {
	switch r.Scope {
	case ScopeUser:
		return fmt.Sprintf("user:%s:%s", r.AccountID, r.Bucket.name())
	case ScopeSystem:
		return fmt.Sprintf("system:%s", r.Bucket.name())
	case ScopeExternal:
		return "external"
	}
	return "unknown"
}

func (b Bucket) name() string {
	switch b {
	case BucketCollateral:
		return "collateral"
	case BucketStaked:
		return "staked"
	case BucketSavings:
		return "savings"
	case BucketFixed:
		return "fixed"
	case BucketDebt:
		return "debt"
	case BucketReward:
		return "reward"
	case BucketTreasury:
		return "treasury"
	case BucketLiquidity:
		return "liquidity"
	case BucketExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Movement is one value transfer recorded for an operation: Amount moves
// from From to To. Amounts are always positive.
type Movement struct {
	MovementID uuid.UUID
	BatchID    uuid.UUID
	EventRef   string // idempotency key of the source event
	Sequence   int64
	From       BucketRef
	To         BucketRef
	Amount     int64
	Kind       MovementKind
	Timestamp  int64 // unix seconds (versioned input, not wall clock)
}

// Batch groups the movements of one committed operation. It is the
// structured notification record persisted with the event and published
// for off-chain observers.
type Batch struct {
	BatchID   uuid.UUID
	EventRef  string
	Sequence  int64
	Timestamp int64
	Movements []Movement
}

// NewBatch starts an empty batch for one operation. State-only events
// (parameter updates, flag toggles) commit with zero movements.
func NewBatch(eventRef string, sequence, timestamp int64) *Batch {
	return &Batch{
		BatchID:   uuid.New(),
		EventRef:  eventRef,
		Sequence:  sequence,
		Timestamp: timestamp,
	}
}

// Add appends a movement to the batch.
func (b *Batch) Add(kind MovementKind, from, to BucketRef, amount int64) {
	b.Movements = append(b.Movements, Movement{
		MovementID: uuid.New(),
		BatchID:    b.BatchID,
		EventRef:   b.EventRef,
		Sequence:   b.Sequence,
		From:       from,
		To:         to,
		Amount:     amount,
		Kind:       kind,
		Timestamp:  b.Timestamp,
	})
}

// Validate ensures the batch is well-formed: positive amounts, matching
// batch ids, no self-transfers. Empty batches are valid (state-only
// operations record no movements).
func (b *Batch) Validate() error {
	for _, m := range b.Movements {
		if m.Amount <= 0 {
			return fmt.Errorf("movement %s has non-positive amount: %d", m.MovementID, m.Amount)
		}
		if m.BatchID != b.BatchID {
			return fmt.Errorf("movement %s has mismatched batch_id", m.MovementID)
		}
		if m.From == m.To {
			return fmt.Errorf("movement %s has same source and destination bucket", m.MovementID)
		}
	}
	return nil
}
