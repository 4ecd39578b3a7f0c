package event

import "github.com/google/uuid"

type LoanBorrow struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Amount    int64
	Sequence  int64
	Timestamp int64
}

func (e *LoanBorrow) IdempotencyKey() string { return e.RequestID.String() }
func (e *LoanBorrow) EventType() EventType   { return EventTypeLoanBorrow }
func (e *LoanBorrow) Partition() string      { return AccountPartition(e.AccountID) }
func (e *LoanBorrow) SourceSequence() int64  { return e.Sequence }
func (e *LoanBorrow) EffectiveAt() int64     { return e.Timestamp }

type LoanRepay struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Payment   int64 // attached value, split by the waterfall
	Sequence  int64
	Timestamp int64
}

func (e *LoanRepay) IdempotencyKey() string { return e.RequestID.String() }
func (e *LoanRepay) EventType() EventType   { return EventTypeLoanRepay }
func (e *LoanRepay) Partition() string      { return AccountPartition(e.AccountID) }
func (e *LoanRepay) SourceSequence() int64  { return e.Sequence }
func (e *LoanRepay) EffectiveAt() int64     { return e.Timestamp }

type LoanExtend struct {
	RequestID uuid.UUID
	AccountID uuid.UUID
	Payment   int64 // must cover all accrued interest
	Sequence  int64
	Timestamp int64
}

func (e *LoanExtend) IdempotencyKey() string { return e.RequestID.String() }
func (e *LoanExtend) EventType() EventType   { return EventTypeLoanExtend }
func (e *LoanExtend) Partition() string      { return AccountPartition(e.AccountID) }
func (e *LoanExtend) SourceSequence() int64  { return e.Sequence }
func (e *LoanExtend) EffectiveAt() int64     { return e.Timestamp }

// LoanTransfer moves the sender's active loan to the recipient. It is
// ordered on the sender's partition; the recipient's record changes
// inside the same atomic operation.
type LoanTransfer struct {
	RequestID uuid.UUID
	FromID    uuid.UUID
	ToID      uuid.UUID
	Sequence  int64
	Timestamp int64
}

func (e *LoanTransfer) IdempotencyKey() string { return e.RequestID.String() }
func (e *LoanTransfer) EventType() EventType   { return EventTypeLoanTransfer }
func (e *LoanTransfer) Partition() string      { return AccountPartition(e.FromID) }
func (e *LoanTransfer) SourceSequence() int64  { return e.Sequence }
func (e *LoanTransfer) EffectiveAt() int64     { return e.Timestamp }
