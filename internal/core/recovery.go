package core

import (
	"LendLedger/internal/ledger"
	"LendLedger/internal/state"
)

// RecoveryState carries everything the core needs to resume from a
// snapshot, or captures for one: the ledger store copy, the hash chain
// tip, the active parameter set, the per-partition source cursors, and
// recent idempotency keys for LRU warming.
type RecoveryState struct {
	Sequence        int64
	StateHash       [32]byte
	Ledger          *ledger.SnapshotState
	Params          state.ProtocolParams
	ParamsVersion   int64
	SequenceState   map[string]int64
	IdempotencyKeys []string
}

// snapshotKeyLimit caps how many dedup keys ride along in a snapshot.
const snapshotKeyLimit = 100_000

// CaptureRecoveryState deep-copies the core's state for a snapshot.
// Must be called from the core goroutine between events.
func (c *LedgerCore) CaptureRecoveryState() *RecoveryState {
	return &RecoveryState{
		Sequence:        c.sequence,
		StateHash:       c.hasher.GetPrevHash(),
		Ledger:          c.store.Snapshot(),
		Params:          c.params.Get(),
		ParamsVersion:   c.paramsVersion,
		SequenceState:   c.sequenceValidator.Cursors(),
		IdempotencyKeys: c.idempotency.RecentKeys(snapshotKeyLimit),
	}
}

// RestoreFromSnapshot rebuilds in-memory state before replay. The
// core's next assigned sequence becomes rs.Sequence, and the hash
// chain continues from rs.StateHash.
func (c *LedgerCore) RestoreFromSnapshot(rs *RecoveryState) error {
	if err := c.params.Update(rs.Params); err != nil {
		return err
	}
	c.paramsVersion = rs.ParamsVersion
	c.store.RestoreSnapshot(rs.Ledger)
	c.hasher.SetPrevHash(rs.StateHash)
	c.sequence = rs.Sequence
	for partition, seq := range rs.SequenceState {
		c.sequenceValidator.SetExpectedSequence(partition, seq)
	}
	c.idempotency.Warm(rs.IdempotencyKeys)
	return nil
}

// SetReplaying toggles log replay mode. While replaying, the dedup
// check is skipped and outputs are not emitted; the event log already
// holds every replayed event.
func (c *LedgerCore) SetReplaying(replaying bool) {
	c.replaying = replaying
}

// StateHash returns the hash chain tip (the state hash of the last
// committed event).
func (c *LedgerCore) StateHash() [32]byte {
	return c.hasher.GetPrevHash()
}

// ParamsVersion returns the version of the active parameter set.
func (c *LedgerCore) ParamsVersion() int64 {
	return c.paramsVersion
}
