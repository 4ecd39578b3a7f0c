package event

import "github.com/google/uuid"

type RewardClaim struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Sequence  int64
	Timestamp int64
}

func (e *RewardClaim) IdempotencyKey() string { return e.RequestID.String() }
func (e *RewardClaim) EventType() EventType   { return EventTypeRewardClaim }
func (e *RewardClaim) Partition() string      { return AccountPartition(e.AccountID) }
func (e *RewardClaim) SourceSequence() int64  { return e.Sequence }
func (e *RewardClaim) EffectiveAt() int64     { return e.Timestamp }

type RewardCompound struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Sequence  int64
	Timestamp int64
}

func (e *RewardCompound) IdempotencyKey() string { return e.RequestID.String() }
func (e *RewardCompound) EventType() EventType   { return EventTypeRewardCompound }
func (e *RewardCompound) Partition() string      { return AccountPartition(e.AccountID) }
func (e *RewardCompound) SourceSequence() int64  { return e.Sequence }
func (e *RewardCompound) EffectiveAt() int64     { return e.Timestamp }

type FixedDepositCreate struct {
	RequestID      uuid.UUID
	AccountID      uuid.UUID
	Amount         int64
	LockDuration   int64 // seconds
	RateMultiplier int64 // percent of base reward rate, >= 100
	Sequence       int64
	Timestamp      int64
}

func (e *FixedDepositCreate) IdempotencyKey() string { return e.RequestID.String() }
func (e *FixedDepositCreate) EventType() EventType   { return EventTypeFixedDepositCreate }
func (e *FixedDepositCreate) Partition() string      { return AccountPartition(e.AccountID) }
func (e *FixedDepositCreate) SourceSequence() int64  { return e.Sequence }
func (e *FixedDepositCreate) EffectiveAt() int64     { return e.Timestamp }

type FixedDepositWithdraw struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Index     int32 // position in the account's fixed deposit list
	Sequence  int64
	Timestamp int64
}

func (e *FixedDepositWithdraw) IdempotencyKey() string { return e.RequestID.String() }
func (e *FixedDepositWithdraw) EventType() EventType   { return EventTypeFixedDepositWithdraw }
func (e *FixedDepositWithdraw) Partition() string      { return AccountPartition(e.AccountID) }
func (e *FixedDepositWithdraw) SourceSequence() int64  { return e.Sequence }
func (e *FixedDepositWithdraw) EffectiveAt() int64     { return e.Timestamp }
