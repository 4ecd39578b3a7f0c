package query

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	ledgermath "LendLedger/internal/math"
)

// QueryService provides read-only access to projection tables. Queries
// are served via gRPC and HTTP/JSON (gRPC-Gateway), reading from
// PostgreSQL projection tables. All responses include as_of_sequence for
// freshness semantics.
type QueryService struct {
	db *sql.DB
}

func NewQueryService(db *sql.DB) *QueryService {
	return &QueryService{db: db}
}

// GetAccount returns an account's projected balances plus a derived
// health factor.
func (qs *QueryService) GetAccount(
	ctx context.Context,
	accountID uuid.UUID,
) (*AccountResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	collateral, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:collateral", accountID))
	if err != nil {
		return nil, err
	}
	staked, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:staked", accountID))
	if err != nil {
		return nil, err
	}
	savings, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:savings", accountID))
	if err != nil {
		return nil, err
	}
	fixed, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:fixed", accountID))
	if err != nil {
		return nil, err
	}
	debt, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:debt", accountID))
	if err != nil {
		return nil, err
	}
	reward, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:reward", accountID))
	if err != nil {
		return nil, err
	}

	hf := ledgermath.HealthFactor(collateral+staked, debt)

	return &AccountResponse{
		AccountID:    accountID,
		Collateral:   collateral,
		Staked:       staked,
		Savings:      savings,
		Fixed:        fixed,
		Debt:         debt,
		Reward:       reward,
		HealthFactor: hf,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetLoan returns the projected state of an account's loan.
func (qs *QueryService) GetLoan(
	ctx context.Context,
	accountID uuid.UUID,
) (*LoanResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	debt, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:debt", accountID))
	if err != nil {
		return nil, err
	}
	collateral, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:collateral", accountID))
	if err != nil {
		return nil, err
	}
	staked, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:staked", accountID))
	if err != nil {
		return nil, err
	}

	backing := collateral + staked
	hf := ledgermath.HealthFactor(backing, debt)

	return &LoanResponse{
		AccountID:    accountID,
		Principal:    debt,
		Backing:      backing,
		HealthFactor: hf,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetPoolStats returns aggregate pool state from projections.
func (qs *QueryService) GetPoolStats(ctx context.Context) (*PoolStatsResponse, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	sumBuckets := func(suffix string) (int64, error) {
		var total sql.NullInt64
		err := qs.db.QueryRowContext(ctx, `
			SELECT SUM(balance) FROM projections.balances
			WHERE bucket_path LIKE 'user:%:' || $1
		`, suffix).Scan(&total)
		if err != nil {
			return 0, err
		}
		return total.Int64, nil
	}

	collateral, err := sumBuckets("collateral")
	if err != nil {
		return nil, err
	}
	staked, err := sumBuckets("staked")
	if err != nil {
		return nil, err
	}
	savings, err := sumBuckets("savings")
	if err != nil {
		return nil, err
	}
	fixed, err := sumBuckets("fixed")
	if err != nil {
		return nil, err
	}
	debt, err := sumBuckets("debt")
	if err != nil {
		return nil, err
	}
	treasury, err := qs.getProjectedBalance(ctx, "system:treasury")
	if err != nil {
		return nil, err
	}

	totalDeposits := savings + fixed
	lendable := totalDeposits - debt
	if lendable < 0 {
		lendable = 0
	}

	util := ledgermath.Utilization(debt, totalDeposits)

	return &PoolStatsResponse{
		TotalCollateral:    collateral + staked,
		TotalBorrowed:      debt,
		TotalDeposits:      totalDeposits,
		LendableLiquidity:  lendable,
		UtilizationPercent: util,
		Treasury:           treasury,
		AsOfSequence:       asOfSeq,
	}, nil
}

// GetHealthFactor returns only the derived health factor for an account.
func (qs *QueryService) GetHealthFactor(
	ctx context.Context,
	accountID uuid.UUID,
) (int64, int64, error) {
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return 0, 0, err
	}

	collateral, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:collateral", accountID))
	if err != nil {
		return 0, 0, err
	}
	staked, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:staked", accountID))
	if err != nil {
		return 0, 0, err
	}
	debt, err := qs.getProjectedBalance(ctx, fmt.Sprintf("user:%s:debt", accountID))
	if err != nil {
		return 0, 0, err
	}

	return ledgermath.HealthFactor(collateral+staked, debt), asOfSeq, nil
}

// ListMovements returns movements touching an account, with cursor-based
// pagination over the sequence.
func (qs *QueryService) ListMovements(
	ctx context.Context,
	accountID uuid.UUID,
	limit int,
	afterSequence *int64,
) ([]MovementHistoryEntry, error) {
	bucketPrefix := fmt.Sprintf("user:%s:%%", accountID)

	query := `
		SELECT movement_id, batch_id, event_ref, sequence,
		       from_bucket, to_bucket, amount, kind, timestamp
		FROM event_log.movements
		WHERE from_bucket LIKE $1 OR to_bucket LIKE $1
	`
	args := []interface{}{bucketPrefix}
	argIdx := 2

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []MovementHistoryEntry
	for rows.Next() {
		var e MovementHistoryEntry
		if err := rows.Scan(
			&e.MovementID, &e.BatchID, &e.EventRef, &e.Sequence,
			&e.FromBucket, &e.ToBucket, &e.Amount, &e.Kind, &e.Timestamp,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity and the global zero-sum
// invariant of the balance projections.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	// Check hash chain continuity
	rows, err := qs.db.QueryContext(ctx, `
		SELECT e1.sequence, e1.prev_hash, e2.state_hash
		FROM event_log.events e1
		LEFT JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.sequence > 0 AND e1.prev_hash != COALESCE(e2.state_hash, e1.prev_hash)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		var prevHash, expectedHash []byte
		if err := rows.Scan(&seq, &prevHash, &expectedHash); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}

	// Every movement debits one bucket and credits another, so the global
	// sum across all buckets (external included) must be zero.
	var total sql.NullInt64
	if err := qs.db.QueryRowContext(ctx, `
		SELECT SUM(balance) FROM projections.balances
	`).Scan(&total); err != nil {
		return nil, err
	}
	report.Imbalance = total.Int64

	report.IsHealthy = len(report.HashChainBreaks) == 0 && report.Imbalance == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}

func (qs *QueryService) getProjectedBalance(ctx context.Context, bucketPath string) (int64, error) {
	var balance int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(balance, 0) FROM projections.balances
		WHERE bucket_path = $1
	`, bucketPath).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return balance, err
}
