package projection

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"LendLedger/internal/ledger"
)

// LiquidationHistoryEntry records one executed liquidation.
type LiquidationHistoryEntry struct {
	BorrowerID   uuid.UUID
	LiquidatorID uuid.UUID
	Seized       int64
	Bonus        int64
	DebtCleared  int64
	Partial      bool
	Sequence     int64
	Timestamp    int64
}

// liquidationPayload is the slice of the event wire JSON the history
// projection needs; the rest of the payload is ignored.
type liquidationPayload struct {
	LiquidatorID string `json:"liquidator_id"`
	BorrowerID   string `json:"borrower_id"`
}

// liquidationEntry derives a history row from a committed liquidation's
// payload and movements. Full liquidations write the debt off rather
// than repaying it, so DebtCleared stays zero there.
func liquidationEntry(output ProjectionOutput) (LiquidationHistoryEntry, bool) {
	entry := LiquidationHistoryEntry{
		Sequence:  output.Sequence,
		Timestamp: output.Timestamp,
		Partial:   output.EventType == "PartialLiquidate",
	}

	var p liquidationPayload
	if err := json.Unmarshal(output.Payload, &p); err != nil {
		return entry, false
	}
	borrower, err := uuid.Parse(p.BorrowerID)
	if err != nil {
		return entry, false
	}
	liquidator, err := uuid.Parse(p.LiquidatorID)
	if err != nil {
		return entry, false
	}
	entry.BorrowerID = borrower
	entry.LiquidatorID = liquidator

	for _, m := range output.Movements {
		switch ledger.MovementKind(m.Kind) {
		case ledger.MovementLiquidationSeize:
			entry.Seized += m.Amount
		case ledger.MovementLiquidationBonus:
			entry.Bonus += m.Amount
		case ledger.MovementRepayPrincipal, ledger.MovementRepayInterest, ledger.MovementRepayLateFee:
			entry.DebtCleared += m.Amount
		}
	}
	return entry, true
}

// recordLiquidation appends a row to projections.liquidation_history
// inside the projection transaction.
func (pw *ProjectionWorker) recordLiquidation(ctx context.Context, tx *sql.Tx, output ProjectionOutput) error {
	entry, ok := liquidationEntry(output)
	if !ok {
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.liquidation_history
			(sequence, borrower_id, liquidator_id, seized, bonus, debt_cleared, partial, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sequence) DO NOTHING
	`, entry.Sequence, entry.BorrowerID.String(), entry.LiquidatorID.String(),
		entry.Seized, entry.Bonus, entry.DebtCleared, entry.Partial, entry.Timestamp)
	return err
}

// QueryLiquidationsByBorrower returns liquidation history for a
// borrower, newest first.
func QueryLiquidationsByBorrower(ctx context.Context, db *sql.DB, borrowerID uuid.UUID, limit int) ([]LiquidationHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.QueryContext(ctx, `
		SELECT sequence, borrower_id, liquidator_id, seized, bonus, debt_cleared, partial, timestamp
		FROM projections.liquidation_history
		WHERE borrower_id = $1
		ORDER BY sequence DESC
		LIMIT $2
	`, borrowerID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LiquidationHistoryEntry
	for rows.Next() {
		var e LiquidationHistoryEntry
		var borrower, liquidator string
		if err := rows.Scan(&e.Sequence, &borrower, &liquidator, &e.Seized, &e.Bonus, &e.DebtCleared, &e.Partial, &e.Timestamp); err != nil {
			return nil, err
		}
		if e.BorrowerID, err = uuid.Parse(borrower); err != nil {
			return nil, err
		}
		if e.LiquidatorID, err = uuid.Parse(liquidator); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
