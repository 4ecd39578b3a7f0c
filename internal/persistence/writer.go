package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"LendLedger/internal/event"
	"LendLedger/internal/ledger"
)

// execer is satisfied by both *sql.DB and *sql.Tx so batch writes can run
// inside or outside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// EventLogWriter writes events and movements to Postgres using multi-row
// INSERT. Switch to pgx CopyFrom if batch sizes grow past a few hundred.
type EventLogWriter struct {
	db           *sql.DB
	batchSize    int
	flushTimeout time.Duration
}

// EventRow represents a row in event_log.events.
type EventRow struct {
	Sequence       int64
	EventType      string
	IdempotencyKey string
	Partition      string
	Payload        []byte // JSON-encoded event payload
	StateHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
	SourceSequence int64
}

// MovementRow represents a row in event_log.movements.
type MovementRow struct {
	MovementID string
	BatchID    string
	EventRef   string
	Sequence   int64
	FromBucket string
	ToBucket   string
	Amount     int64
	Kind       int32
	Timestamp  int64
}

func NewEventLogWriter(db *sql.DB, batchSize int, flushTimeout time.Duration) *EventLogWriter {
	return &EventLogWriter{
		db:           db,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
	}
}

// WriteEventBatch writes a batch of events to event_log.events.
func (w *EventLogWriter) WriteEventBatch(ctx context.Context, ex execer, events []EventRow) error {
	if len(events) == 0 {
		return nil
	}

	query := `INSERT INTO event_log.events
		(sequence, event_type, idempotency_key, partition, payload, state_hash, prev_hash, timestamp, source_sequence)
		VALUES `

	values := make([]string, 0, len(events))
	args := make([]interface{}, 0, len(events)*9)

	for i, e := range events {
		base := i * 9
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		args = append(args,
			e.Sequence, e.EventType, e.IdempotencyKey, e.Partition,
			e.Payload, e.StateHash, e.PrevHash, e.Timestamp, e.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING" // Idempotent writes

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// WriteMovementBatch writes a batch of movements to event_log.movements.
func (w *EventLogWriter) WriteMovementBatch(ctx context.Context, ex execer, movements []MovementRow) error {
	if len(movements) == 0 {
		return nil
	}

	query := `INSERT INTO event_log.movements
		(movement_id, batch_id, event_ref, sequence, from_bucket, to_bucket, amount, kind, timestamp)
		VALUES `

	values := make([]string, 0, len(movements))
	args := make([]interface{}, 0, len(movements)*9)

	for i, m := range movements {
		base := i * 9
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		args = append(args,
			m.MovementID, m.BatchID, m.EventRef, m.Sequence,
			m.FromBucket, m.ToBucket, m.Amount, m.Kind, m.Timestamp,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (movement_id) DO NOTHING"

	_, err := ex.ExecContext(ctx, query, args...)
	return err
}

// EventRowFromEnvelope converts a core envelope into its storage row.
func EventRowFromEnvelope(env *event.EventEnvelope) EventRow {
	return EventRow{
		Sequence:       env.Sequence,
		EventType:      env.EventType.String(),
		IdempotencyKey: env.IdempotencyKey,
		Partition:      env.Partition,
		Payload:        env.Payload,
		StateHash:      env.StateHash[:],
		PrevHash:       env.PrevHash[:],
		Timestamp:      env.Timestamp,
		SourceSequence: env.SourceSequence,
	}
}

// MovementRowsFromBatch flattens a movement batch into storage rows.
func MovementRowsFromBatch(batch *ledger.Batch) []MovementRow {
	if batch == nil || len(batch.Movements) == 0 {
		return nil
	}
	rows := make([]MovementRow, 0, len(batch.Movements))
	for _, m := range batch.Movements {
		rows = append(rows, MovementRow{
			MovementID: m.MovementID.String(),
			BatchID:    m.BatchID.String(),
			EventRef:   m.EventRef,
			Sequence:   m.Sequence,
			FromBucket: m.From.Path(),
			ToBucket:   m.To.Path(),
			Amount:     m.Amount,
			Kind:       int32(m.Kind),
			Timestamp:  m.Timestamp,
		})
	}
	return rows
}

// MarshalEventPayload serializes an event payload to JSON for storage.
func MarshalEventPayload(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}
