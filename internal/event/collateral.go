package event

import "github.com/google/uuid"

type CollateralDeposit struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64 // fixed-point, 6 decimals
	Sequence  int64
	Timestamp int64 // unix seconds, versioned input
}

func (e *CollateralDeposit) IdempotencyKey() string { return e.RequestID.String() }
func (e *CollateralDeposit) EventType() EventType   { return EventTypeCollateralDeposit }
func (e *CollateralDeposit) Partition() string      { return AccountPartition(e.AccountID) }
func (e *CollateralDeposit) SourceSequence() int64  { return e.Sequence }
func (e *CollateralDeposit) EffectiveAt() int64     { return e.Timestamp }

type CollateralWithdraw struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Sequence  int64
	Timestamp int64
}

func (e *CollateralWithdraw) IdempotencyKey() string { return e.RequestID.String() }
func (e *CollateralWithdraw) EventType() EventType   { return EventTypeCollateralWithdraw }
func (e *CollateralWithdraw) Partition() string      { return AccountPartition(e.AccountID) }
func (e *CollateralWithdraw) SourceSequence() int64  { return e.Sequence }
func (e *CollateralWithdraw) EffectiveAt() int64     { return e.Timestamp }

type CollateralStake struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Sequence  int64
	Timestamp int64
}

func (e *CollateralStake) IdempotencyKey() string { return e.RequestID.String() }
func (e *CollateralStake) EventType() EventType   { return EventTypeCollateralStake }
func (e *CollateralStake) Partition() string      { return AccountPartition(e.AccountID) }
func (e *CollateralStake) SourceSequence() int64  { return e.Sequence }
func (e *CollateralStake) EffectiveAt() int64     { return e.Timestamp }

type CollateralUnstake struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Sequence  int64
	Timestamp int64
}

func (e *CollateralUnstake) IdempotencyKey() string { return e.RequestID.String() }
func (e *CollateralUnstake) EventType() EventType   { return EventTypeCollateralUnstake }
func (e *CollateralUnstake) Partition() string      { return AccountPartition(e.AccountID) }
func (e *CollateralUnstake) SourceSequence() int64  { return e.Sequence }
func (e *CollateralUnstake) EffectiveAt() int64     { return e.Timestamp }
