package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/ledger"
	fpmath "LendLedger/internal/math"
	"LendLedger/internal/state"
)

// FlashLoan lends pool cash for the duration of a single callback. The
// borrowed amount plus the fee must be back in the pool when the
// callback returns, or the whole operation unwinds.
//
// FlashLoan is a direct API rather than an ingested event: the callback
// is a closure, which cannot ride the message bus. It still commits an
// envelope to the event log so replays and audits see it. The core is
// locked for the duration; callbacks that try to dispatch further
// operations get ErrReentrancy.
func (c *LedgerCore) FlashLoan(requestID, borrower uuid.UUID, amount, now int64, fn func() error) (fee int64, err error) {
	start := time.Now()
	if c.inFlashLoan {
		return 0, fmt.Errorf("%w: nested flash loan", ErrReentrancy)
	}
	if err := c.gate(state.FeatureFlashLoan); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: flash loan amount must be positive", state.ErrValidation)
	}
	idempotencyKey := requestID.String()
	eventType := event.EventTypeFlashLoan.String()
	if !c.replaying && c.idempotency.IsDuplicate(eventType, idempotencyKey) {
		return 0, fmt.Errorf("%w: duplicate flash loan %s", state.ErrValidation, requestID)
	}

	balanceBefore := c.store.CashBalance()
	if amount > balanceBefore {
		return 0, fmt.Errorf("%w: flash loan %d exceeds pool cash %d", state.ErrInvariant, amount, balanceBefore)
	}
	p := c.params.Get()
	fee = fpmath.BasisPointsOf(amount, p.FlashLoanFeeBP)

	checkpoint := c.store.Capture(borrower)
	c.inFlashLoan = true
	defer func() { c.inFlashLoan = false }()

	fail := func(cause error) (int64, error) {
		c.store.Restore(checkpoint)
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, rejectReason(cause)).Inc()
		}
		return 0, cause
	}

	if err := c.payOut(borrower, amount); err != nil {
		return fail(err)
	}
	if err := fn(); err != nil {
		return fail(fmt.Errorf("%w: callback: %v", ErrTransferFailure, err))
	}
	if err := c.acceptFunds(borrower, amount+fee); err != nil {
		return fail(err)
	}
	if c.store.CashBalance() < balanceBefore+fee {
		return fail(fmt.Errorf("%w: pool cash %d below required %d after repayment",
			ErrTransferFailure, c.store.CashBalance(), balanceBefore+fee))
	}
	if fee > 0 {
		c.store.CreditTreasury(fee)
	}

	batch := ledger.NewBatch(idempotencyKey, c.sequence, now)
	batch.Add(ledger.MovementFlashLoanOut, ledger.SystemBucket(ledger.BucketLiquidity), ledger.ExternalBucket(), amount)
	batch.Add(ledger.MovementFlashLoanReturn, ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketLiquidity), amount)
	if fee > 0 {
		batch.Add(ledger.MovementFlashLoanFee, ledger.ExternalBucket(), ledger.SystemBucket(ledger.BucketTreasury), fee)
	}

	stateDigest := c.computeStateDigest(batch)
	prevHash := c.hasher.GetPrevHash()
	stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)
	payload, _ := json.Marshal(event.FlashLoanRecord{
		RequestID: requestID,
		AccountID: borrower,
		Amount:    amount,
		Fee:       fee,
		Timestamp: now,
	})
	envelope := &event.EventEnvelope{
		Sequence:       c.sequence,
		IdempotencyKey: idempotencyKey,
		EventType:      event.EventTypeFlashLoan,
		Partition:      event.AccountPartition(borrower),
		Timestamp:      time.Unix(now, 0).UTC(),
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}
	c.sequence++

	c.emit(CoreOutput{Envelope: envelope, Batch: batch, StateDelta: stateDigest})
	c.idempotency.MarkProcessed(eventType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		c.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
	}
	return fee, nil
}
