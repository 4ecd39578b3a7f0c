package core

import (
	"testing"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/ingestion"
	"LendLedger/internal/state"
)

func runWarmup(t *testing.T, c *LedgerCore, account uuid.UUID, seqs seqCounter) {
	t.Helper()
	part := event.AccountPartition(account)
	steps := []event.Event{
		&event.CollateralDeposit{RequestID: uuid.New(), AccountID: account, Amount: 5_000_000, Sequence: seqs.next(part), Timestamp: 1000},
		&event.LoanBorrow{RequestID: uuid.New(), AccountID: account, Amount: 1_000_000, Sequence: seqs.next(part), Timestamp: 1000},
		&event.SavingsDeposit{RequestID: uuid.New(), AccountID: account, Amount: 3_000_000, Sequence: seqs.next(part), Timestamp: 1000},
	}
	for i, evt := range steps {
		if err := c.ProcessEvent(evt); err != nil {
			t.Fatalf("warmup step %d: %v", i, err)
		}
	}
}

func TestRecovery_SnapshotRoundTrip(t *testing.T) {
	source, _ := newTestCore(t, nil)
	account := uuid.New()
	seqs := seqCounter{}
	runWarmup(t, source, account, seqs)

	rs := source.CaptureRecoveryState()
	if rs.Sequence != 3 {
		t.Fatalf("captured sequence = %d, want 3", rs.Sequence)
	}
	if len(rs.IdempotencyKeys) != 3 {
		t.Fatalf("captured %d idempotency keys, want 3", len(rs.IdempotencyKeys))
	}

	restored, _ := newTestCore(t, nil)
	if err := restored.RestoreFromSnapshot(rs); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.Sequence() != source.Sequence() {
		t.Fatalf("sequence = %d, want %d", restored.Sequence(), source.Sequence())
	}
	if restored.StateHash() != source.StateHash() {
		t.Fatal("hash chain tip diverges after restore")
	}
	u := restored.Store().Account(account)
	if u == nil || u.CollateralDeposited != 5_000_000 || u.Borrowed != 1_000_000 || u.DepositedSavings != 3_000_000 {
		t.Fatalf("restored account state wrong: %+v", u)
	}

	// Both cores must stay in lockstep on the next event.
	part := event.AccountPartition(account)
	next := func() event.Event {
		return &event.SavingsWithdraw{RequestID: uuid.New(), AccountID: account, Amount: 500_000, Sequence: seqs[part], Timestamp: 2000}
	}
	evtA, evtB := next(), next()
	if err := source.ProcessEvent(evtA); err != nil {
		t.Fatalf("source next event: %v", err)
	}
	if err := restored.ProcessEvent(evtB); err != nil {
		t.Fatalf("restored next event: %v", err)
	}
	// Different request ids feed only the dedup key, not the digest.
	if restored.StateHash() != source.StateHash() {
		t.Fatal("cores diverge after restore")
	}
}

func TestRecovery_RestoredDedupRejectsOldKeys(t *testing.T) {
	source, _ := newTestCore(t, nil)
	account := uuid.New()
	seqs := seqCounter{}
	part := event.AccountPartition(account)

	dup := &event.CollateralDeposit{RequestID: uuid.New(), AccountID: account, Amount: 5_000_000, Sequence: seqs.next(part), Timestamp: 1000}
	if err := source.ProcessEvent(dup); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	restored, _ := newTestCore(t, nil)
	if err := restored.RestoreFromSnapshot(source.CaptureRecoveryState()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// Redelivery of a pre-snapshot event must be dropped silently.
	if err := restored.ProcessEvent(dup); err != nil {
		t.Fatalf("duplicate after restore: %v", err)
	}
	if got := restored.Store().Account(account).CollateralDeposited; got != 5_000_000 {
		t.Fatalf("duplicate applied twice: collateral = %d", got)
	}
}

func TestRecovery_ReplayFromEnvelopes(t *testing.T) {
	source, persist := newTestCore(t, nil)
	source.SetPayloadEncoder(ingestion.EncodeEvent)
	account := uuid.New()
	runWarmup(t, source, account, seqCounter{})

	replayed, replayPersist := newTestCore(t, nil)
	replayed.SetPayloadEncoder(ingestion.EncodeEvent)
	replayed.SetReplaying(true)

	for len(persist) > 0 {
		out := <-persist
		evt, err := ingestion.ParseRawEvent(
			ingestion.RawEvent{Data: out.Envelope.Payload},
			out.Envelope.EventType.String(),
		)
		if err != nil {
			t.Fatalf("parse stored payload: %v", err)
		}
		if err := replayed.ProcessEvent(evt); err != nil {
			t.Fatalf("replay seq %d: %v", out.Envelope.Sequence, err)
		}
		if replayed.StateHash() != out.Envelope.StateHash {
			t.Fatalf("replay hash diverges at seq %d", out.Envelope.Sequence)
		}
	}
	replayed.SetReplaying(false)

	if replayed.StateHash() != source.StateHash() {
		t.Fatal("replayed chain tip differs from source")
	}
	if len(replayPersist) != 0 {
		t.Fatalf("replay emitted %d outputs, want 0", len(replayPersist))
	}
}

func TestRecovery_RestoreRejectsInvalidParams(t *testing.T) {
	c, _ := newTestCore(t, nil)
	rs := c.CaptureRecoveryState()
	rs.Params = state.ProtocolParams{} // zero collateral ratio is invalid
	if err := c.RestoreFromSnapshot(rs); err == nil {
		t.Fatal("expected restore to reject invalid params")
	}
}
