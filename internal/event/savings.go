package event

import "github.com/google/uuid"

type SavingsDeposit struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Referrer  *uuid.UUID // optional, binds on first deposit only
	Sequence  int64
	Timestamp int64
}

func (e *SavingsDeposit) IdempotencyKey() string { return e.RequestID.String() }
func (e *SavingsDeposit) EventType() EventType   { return EventTypeSavingsDeposit }
func (e *SavingsDeposit) Partition() string      { return AccountPartition(e.AccountID) }
func (e *SavingsDeposit) SourceSequence() int64  { return e.Sequence }
func (e *SavingsDeposit) EffectiveAt() int64     { return e.Timestamp }

type SavingsWithdraw struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Sequence  int64
	Timestamp int64
}

func (e *SavingsWithdraw) IdempotencyKey() string { return e.RequestID.String() }
func (e *SavingsWithdraw) EventType() EventType   { return EventTypeSavingsWithdraw }
func (e *SavingsWithdraw) Partition() string      { return AccountPartition(e.AccountID) }
func (e *SavingsWithdraw) SourceSequence() int64  { return e.Sequence }
func (e *SavingsWithdraw) EffectiveAt() int64     { return e.Timestamp }
