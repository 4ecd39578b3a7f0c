package event

import "github.com/google/uuid"

// Liquidate seizes all collateral of an unhealthy loan and closes it.
// Ordered on the borrower's partition since that is the record at risk.
type Liquidate struct {
	RequestID    uuid.UUID
	LiquidatorID uuid.UUID
	BorrowerID   uuid.UUID
	Sequence     int64
	Timestamp    int64
}

func (e *Liquidate) IdempotencyKey() string { return e.RequestID.String() }
func (e *Liquidate) EventType() EventType   { return EventTypeLiquidate }
func (e *Liquidate) Partition() string      { return AccountPartition(e.BorrowerID) }
func (e *Liquidate) SourceSequence() int64  { return e.Sequence }
func (e *Liquidate) EffectiveAt() int64     { return e.Timestamp }

// PartialLiquidate repays part of an unhealthy loan. Payment must equal
// RepayAmount exactly; a mismatch rejects the whole operation.
type PartialLiquidate struct {
	RequestID    uuid.UUID
	LiquidatorID uuid.UUID
	BorrowerID   uuid.UUID
	RepayAmount  int64
	Payment      int64 // attached value
	Sequence     int64
	Timestamp    int64
}

func (e *PartialLiquidate) IdempotencyKey() string { return e.RequestID.String() }
func (e *PartialLiquidate) EventType() EventType   { return EventTypePartialLiquidate }
func (e *PartialLiquidate) Partition() string      { return AccountPartition(e.BorrowerID) }
func (e *PartialLiquidate) SourceSequence() int64  { return e.Sequence }
func (e *PartialLiquidate) EffectiveAt() int64     { return e.Timestamp }
