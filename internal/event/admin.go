package event

import (
	"fmt"

	"github.com/google/uuid"

	"LendLedger/internal/state"
)

// ParamUpdate replaces the protocol parameter set. Rides the global
// partition; gaps in its source sequence are tolerated since upstream
// governance streams may skip proposals.
type ParamUpdate struct {
	CallerID  uuid.UUID
	Params    state.ProtocolParams
	Version   int64 // parameter set version, drives the dedup key
	Sequence  int64
	Timestamp int64
}

func (e *ParamUpdate) IdempotencyKey() string { return fmt.Sprintf("params:%d", e.Version) }
func (e *ParamUpdate) EventType() EventType   { return EventTypeParamUpdate }
func (e *ParamUpdate) Partition() string      { return GlobalPartition }
func (e *ParamUpdate) SourceSequence() int64  { return e.Sequence }
func (e *ParamUpdate) EffectiveAt() int64     { return e.Timestamp }

// AccountFlagUpdate blacklists or reinstates an account.
type AccountFlagUpdate struct {
	RequestID   uuid.UUID
	CallerID    uuid.UUID
	AccountID   uuid.UUID
	Blacklisted bool
	Sequence    int64
	Timestamp   int64
}

func (e *AccountFlagUpdate) IdempotencyKey() string { return e.RequestID.String() }
func (e *AccountFlagUpdate) EventType() EventType   { return EventTypeAccountFlagUpdate }
func (e *AccountFlagUpdate) Partition() string      { return AccountPartition(e.AccountID) }
func (e *AccountFlagUpdate) SourceSequence() int64  { return e.Sequence }
func (e *AccountFlagUpdate) EffectiveAt() int64     { return e.Timestamp }
