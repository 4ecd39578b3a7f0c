package projection

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"LendLedger/internal/ledger"
)

// ProjectionOutput mirrors the data needed by projection workers.
// The orchestrator bridges between core.CoreOutput and this.
type ProjectionOutput struct {
	Sequence  int64
	EventType string
	Partition string
	Movements []MovementEntry
	Payload   []byte // event wire JSON, for payload-derived projections
	Timestamp int64
}

// MovementEntry is a simplified movement for projection consumption.
type MovementEntry struct {
	FromBucket string
	ToBucket   string
	Amount     int64
	Kind       int32
}

// ProjectionWorker updates projection tables from processed events.
// The projection channel is non-blocking with drop: if projections fall
// behind, they can be rebuilt from the event log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			if err := pw.processOutput(ctx, output); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", output.Sequence, err)
				// Continue: projections are eventually consistent
				// and can be rebuilt from the event log
			}

			pw.lastSeq = output.Sequence
		}
	}
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Update bucket balance projections from movements
	for _, m := range output.Movements {
		if err := pw.updateBalanceProjection(ctx, tx, output.Sequence, m); err != nil {
			return fmt.Errorf("balance projection: %w", err)
		}
	}

	if output.EventType == "Liquidate" || output.EventType == "PartialLiquidate" {
		if err := pw.recordLiquidation(ctx, tx, output); err != nil {
			return fmt.Errorf("liquidation history: %w", err)
		}
	}

	// Update projection watermark
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	return tx.Commit()
}

func (pw *ProjectionWorker) updateBalanceProjection(ctx context.Context, tx *sql.Tx, seq int64, m MovementEntry) error {
	// Source bucket: decrease balance
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (bucket_path, balance, last_sequence)
		VALUES ($1, -$2, $3)
		ON CONFLICT (bucket_path)
		DO UPDATE SET balance = projections.balances.balance - $2, last_sequence = $3
	`, m.FromBucket, m.Amount, seq); err != nil {
		return err
	}

	// Destination bucket: increase balance
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (bucket_path, balance, last_sequence)
		VALUES ($1, $2, $3)
		ON CONFLICT (bucket_path)
		DO UPDATE SET balance = projections.balances.balance + $2, last_sequence = $3
	`, m.ToBucket, m.Amount, seq); err != nil {
		return err
	}

	return nil
}

// RebuildProjections rebuilds all projection tables from the event log.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.liquidation_history`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	// Rebuild from movements: credits first
	_, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (bucket_path, balance, last_sequence)
		SELECT
			to_bucket AS bucket_path,
			SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.movements
		GROUP BY to_bucket
		ON CONFLICT (bucket_path) DO UPDATE
			SET balance = EXCLUDED.balance, last_sequence = EXCLUDED.last_sequence
	`)
	if err != nil {
		return fmt.Errorf("rebuild credit balances: %w", err)
	}

	// Subtract debits
	_, err = db.ExecContext(ctx, `
		INSERT INTO projections.balances (bucket_path, balance, last_sequence)
		SELECT
			from_bucket AS bucket_path,
			-SUM(amount) AS balance,
			MAX(sequence) AS last_sequence
		FROM event_log.movements
		GROUP BY from_bucket
		ON CONFLICT (bucket_path) DO UPDATE
			SET balance = projections.balances.balance + EXCLUDED.balance,
			    last_sequence = GREATEST(projections.balances.last_sequence, EXCLUDED.last_sequence)
	`)
	if err != nil {
		return fmt.Errorf("rebuild debit balances: %w", err)
	}

	// Liquidation history comes from the stored event payloads plus the
	// movement sums of each liquidation batch.
	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO projections.liquidation_history
			(sequence, borrower_id, liquidator_id, seized, bonus, debt_cleared, partial, timestamp)
		SELECT
			e.sequence,
			convert_from(e.payload, 'UTF8')::jsonb->>'borrower_id',
			convert_from(e.payload, 'UTF8')::jsonb->>'liquidator_id',
			COALESCE(SUM(m.amount) FILTER (WHERE m.kind = %d), 0),
			COALESCE(SUM(m.amount) FILTER (WHERE m.kind = %d), 0),
			COALESCE(SUM(m.amount) FILTER (WHERE m.kind IN (%d, %d, %d)), 0),
			e.event_type = 'PartialLiquidate',
			EXTRACT(EPOCH FROM e.timestamp)::BIGINT
		FROM event_log.events e
		JOIN event_log.movements m ON m.sequence = e.sequence
		WHERE e.event_type IN ('Liquidate', 'PartialLiquidate')
		GROUP BY e.sequence, e.payload, e.event_type, e.timestamp
		ON CONFLICT (sequence) DO NOTHING
	`,
		ledger.MovementLiquidationSeize,
		ledger.MovementLiquidationBonus,
		ledger.MovementRepayInterest,
		ledger.MovementRepayLateFee,
		ledger.MovementRepayPrincipal,
	))
	if err != nil {
		return fmt.Errorf("rebuild liquidation history: %w", err)
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}
