package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
	"LendLedger/internal/state"
)

// SnapshotManager handles creating and loading state snapshots for
// recovery. Snapshots contain accounts, loans, fixed deposits, pool
// aggregates, governed parameters, sequence cursors, the idempotency LRU
// contents, and the last state hash. On warm restart the process loads
// the latest snapshot and replays events from snapshot.sequence+1.
type SnapshotManager struct {
	db *sql.DB
}

// SnapshotData contains the full in-memory state at a point in time.
type SnapshotData struct {
	Sequence        int64                  `json:"sequence"`
	StateHash       []byte                 `json:"state_hash"`
	PrevHash        []byte                 `json:"prev_hash"`
	Accounts        []AccountSnapshot      `json:"accounts"`
	Loans           []LoanSnapshot         `json:"loans"`
	FixedDeposits   []FixedDepositSnapshot `json:"fixed_deposits"`
	TotalCollateral int64                  `json:"total_collateral"`
	TotalBorrowed   int64                  `json:"total_borrowed"`
	TotalDeposits   int64                  `json:"total_deposits"`
	ProtocolFees    int64                  `json:"protocol_fees"`
	Cash            int64                  `json:"cash"`
	Params          state.ProtocolParams   `json:"params"`
	ParamsVersion   int64                  `json:"params_version"`
	SequenceState   map[string]int64       `json:"sequence_state"`   // partition -> next expected seq
	IdempotencyKeys []string               `json:"idempotency_keys"` // Recent keys for LRU warming
	CreatedAt       time.Time              `json:"created_at"`
}

// AccountSnapshot is a serializable user record.
type AccountSnapshot struct {
	AccountID           string  `json:"account_id"`
	CollateralDeposited int64   `json:"collateral_deposited"`
	DepositedSavings    int64   `json:"deposited_savings"`
	StakedCollateral    int64   `json:"staked_collateral"`
	Borrowed            int64   `json:"borrowed"`
	RewardAccumulated   int64   `json:"reward_accumulated"`
	LastCheckpoint      int64   `json:"last_checkpoint"`
	LastCooldown        int64   `json:"last_cooldown"`
	Referrer            *string `json:"referrer,omitempty"`
	Blacklisted         bool    `json:"blacklisted"`
}

// LoanSnapshot is a serializable loan record.
type LoanSnapshot struct {
	AccountID       string `json:"account_id"`
	Principal       int64  `json:"principal"`
	InterestAccrued int64  `json:"interest_accrued"`
	Collateral      int64  `json:"collateral"`
	StartTime       int64  `json:"start_time"`
	OriginatedAt    int64  `json:"originated_at"`
	Active          bool   `json:"active"`
}

// FixedDepositSnapshot is a serializable fixed deposit record.
type FixedDepositSnapshot struct {
	AccountID      string `json:"account_id"`
	Amount         int64  `json:"amount"`
	UnlockTime     int64  `json:"unlock_time"`
	RateMultiplier int64  `json:"rate_multiplier"`
	Active         bool   `json:"active"`
}

func NewSnapshotManager(db *sql.DB) *SnapshotManager {
	return &SnapshotManager{db: db}
}

// BuildSnapshot converts a deep-copied store state into snapshot form.
func BuildSnapshot(
	snap *ledger.SnapshotState,
	sequence int64,
	stateHash, prevHash []byte,
	params state.ProtocolParams,
	paramsVersion int64,
	sequenceState map[string]int64,
	idempotencyKeys []string,
) *SnapshotData {
	out := &SnapshotData{
		Sequence:        sequence,
		StateHash:       stateHash,
		PrevHash:        prevHash,
		TotalCollateral: snap.Aggregates.TotalCollateral,
		TotalBorrowed:   snap.Aggregates.TotalBorrowed,
		TotalDeposits:   snap.Aggregates.TotalDeposits,
		ProtocolFees:    snap.Aggregates.ProtocolFees,
		Cash:            snap.Cash,
		Params:          params,
		ParamsVersion:   paramsVersion,
		SequenceState:   sequenceState,
		IdempotencyKeys: idempotencyKeys,
		CreatedAt:       time.Now(),
	}

	for id, u := range snap.Accounts {
		acc := AccountSnapshot{
			AccountID:           id.String(),
			CollateralDeposited: u.CollateralDeposited,
			DepositedSavings:    u.DepositedSavings,
			StakedCollateral:    u.StakedCollateral,
			Borrowed:            u.Borrowed,
			RewardAccumulated:   u.RewardAccumulated,
			LastCheckpoint:      u.LastCheckpoint,
			LastCooldown:        u.LastCooldown,
			Blacklisted:         u.Blacklisted,
		}
		if u.Referrer != nil {
			r := u.Referrer.String()
			acc.Referrer = &r
		}
		out.Accounts = append(out.Accounts, acc)
	}

	for id, l := range snap.Loans {
		out.Loans = append(out.Loans, LoanSnapshot{
			AccountID:       id.String(),
			Principal:       l.Principal,
			InterestAccrued: l.InterestAccrued,
			Collateral:      l.Collateral,
			StartTime:       l.StartTime,
			OriginatedAt:    l.OriginatedAt,
			Active:          l.Active,
		})
	}

	for id, deposits := range snap.FixedDeposits {
		for _, fd := range deposits {
			out.FixedDeposits = append(out.FixedDeposits, FixedDepositSnapshot{
				AccountID:      id.String(),
				Amount:         fd.Amount,
				UnlockTime:     fd.UnlockTime,
				RateMultiplier: fd.RateMultiplier,
				Active:         fd.Active,
			})
		}
	}

	return out
}

// RestoreStore rebuilds a ledger snapshot from persisted snapshot data.
func (snap *SnapshotData) RestoreStore() (*ledger.SnapshotState, error) {
	out := &ledger.SnapshotState{
		Accounts:      make(map[uuid.UUID]*ledger.User, len(snap.Accounts)),
		Loans:         make(map[uuid.UUID]*ledger.Loan, len(snap.Loans)),
		FixedDeposits: make(map[uuid.UUID][]*ledger.FixedDeposit),
		Aggregates: ledger.Aggregates{
			TotalCollateral: snap.TotalCollateral,
			TotalBorrowed:   snap.TotalBorrowed,
			TotalDeposits:   snap.TotalDeposits,
			ProtocolFees:    snap.ProtocolFees,
		},
		Cash: snap.Cash,
	}

	for _, a := range snap.Accounts {
		id, err := uuid.Parse(a.AccountID)
		if err != nil {
			return nil, fmt.Errorf("parse account_id %q: %w", a.AccountID, err)
		}
		u := &ledger.User{
			AccountID:           id,
			CollateralDeposited: a.CollateralDeposited,
			DepositedSavings:    a.DepositedSavings,
			StakedCollateral:    a.StakedCollateral,
			Borrowed:            a.Borrowed,
			RewardAccumulated:   a.RewardAccumulated,
			LastCheckpoint:      a.LastCheckpoint,
			LastCooldown:        a.LastCooldown,
			Blacklisted:         a.Blacklisted,
		}
		if a.Referrer != nil {
			r, err := uuid.Parse(*a.Referrer)
			if err != nil {
				return nil, fmt.Errorf("parse referrer %q: %w", *a.Referrer, err)
			}
			u.Referrer = &r
		}
		out.Accounts[id] = u
	}

	for _, l := range snap.Loans {
		id, err := uuid.Parse(l.AccountID)
		if err != nil {
			return nil, fmt.Errorf("parse loan account_id %q: %w", l.AccountID, err)
		}
		out.Loans[id] = &ledger.Loan{
			AccountID:       id,
			Principal:       l.Principal,
			InterestAccrued: l.InterestAccrued,
			Collateral:      l.Collateral,
			StartTime:       l.StartTime,
			OriginatedAt:    l.OriginatedAt,
			Active:          l.Active,
		}
	}

	for _, fd := range snap.FixedDeposits {
		id, err := uuid.Parse(fd.AccountID)
		if err != nil {
			return nil, fmt.Errorf("parse fixed deposit account_id %q: %w", fd.AccountID, err)
		}
		out.FixedDeposits[id] = append(out.FixedDeposits[id], &ledger.FixedDeposit{
			AccountID:      id,
			Amount:         fd.Amount,
			UnlockTime:     fd.UnlockTime,
			RateMultiplier: fd.RateMultiplier,
			Active:         fd.Active,
		})
	}

	return out, nil
}

// SaveSnapshot persists a snapshot to Postgres. Snapshots are taken
// periodically and verified by replaying events from the snapshot
// sequence forward before being trusted for recovery.
func (sm *SnapshotManager) SaveSnapshot(ctx context.Context, snap *SnapshotData) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snapshotID := uuid.New()
	sizeBytes := len(data)
	formatVersion := int32(1) // v1: JSON-encoded SnapshotData

	_, err = sm.db.ExecContext(ctx, `
		INSERT INTO event_log.snapshots
			(snapshot_id, sequence, data, state_hash, format_version, size_bytes, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (sequence) DO UPDATE SET data = $3, state_hash = $4, size_bytes = $6
	`, snapshotID, snap.Sequence, data, snap.StateHash, formatVersion, sizeBytes, snap.CreatedAt)

	return err
}

// LoadLatestSnapshot loads the most recent verified snapshot.
func (sm *SnapshotManager) LoadLatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	row := sm.db.QueryRowContext(ctx, `
		SELECT data FROM event_log.snapshots
		WHERE verified = TRUE
		ORDER BY sequence DESC
		LIMIT 1
	`)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No snapshot, cold start
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// MarkVerified marks a snapshot as verified after integrity check.
func (sm *SnapshotManager) MarkVerified(ctx context.Context, sequence int64) error {
	_, err := sm.db.ExecContext(ctx, `
		UPDATE event_log.snapshots SET verified = TRUE WHERE sequence = $1
	`, sequence)
	return err
}

// LoadEventsFrom loads events from a given sequence for replay. Used for
// warm restart (replay from snapshot) and cold restart (replay all).
func (sm *SnapshotManager) LoadEventsFrom(ctx context.Context, fromSequence int64, limit int) ([]EventRow, error) {
	rows, err := sm.db.QueryContext(ctx, `
		SELECT sequence, event_type, idempotency_key, partition, payload,
		       state_hash, prev_hash, timestamp, source_sequence
		FROM event_log.events
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []EventRow
	for rows.Next() {
		var e EventRow
		if err := rows.Scan(
			&e.Sequence, &e.EventType, &e.IdempotencyKey, &e.Partition,
			&e.Payload, &e.StateHash, &e.PrevHash, &e.Timestamp, &e.SourceSequence,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// GetLatestSequence returns the highest sequence in the event log.
func (sm *SnapshotManager) GetLatestSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := sm.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM event_log.events
	`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil // Empty event log
	}
	return seq.Int64, nil
}
