package query

import "github.com/google/uuid"

// AccountResponse represents an account's balances for API queries.
// Balances come from the projection tables; HealthFactor is derived at
// query time from the projected backing and debt.
type AccountResponse struct {
	AccountID uuid.UUID `json:"account_id"`

	Collateral int64 `json:"collateral"`
	Staked     int64 `json:"staked"`
	Savings    int64 `json:"savings"`
	Fixed      int64 `json:"fixed"`
	Debt       int64 `json:"debt"`
	Reward     int64 `json:"reward"`

	HealthFactor int64 `json:"health_factor"` // integer percent; MaxInt64 when debt-free

	AsOfSequence int64 `json:"as_of_sequence"` // last applied event sequence
}

// LoanResponse represents a loan's projected state for API queries.
// Principal is net of committed repayments; interest accrued since the
// last core touch is not reflected until the next operation commits.
type LoanResponse struct {
	AccountID    uuid.UUID `json:"account_id"`
	Principal    int64     `json:"principal"`
	Backing      int64     `json:"backing"` // collateral + staked
	HealthFactor int64     `json:"health_factor"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// PoolStatsResponse represents aggregate pool state for API queries.
type PoolStatsResponse struct {
	TotalCollateral    int64 `json:"total_collateral"`
	TotalBorrowed      int64 `json:"total_borrowed"`
	TotalDeposits      int64 `json:"total_deposits"`
	LendableLiquidity  int64 `json:"lendable_liquidity"`
	UtilizationPercent int64 `json:"utilization_percent"`
	Treasury           int64 `json:"treasury"`
	AsOfSequence       int64 `json:"as_of_sequence"`
}

// MovementHistoryEntry represents a movement for API queries.
type MovementHistoryEntry struct {
	MovementID string `json:"movement_id"`
	BatchID    string `json:"batch_id"`
	EventRef   string `json:"event_ref"`
	Sequence   int64  `json:"sequence"`
	FromBucket string `json:"from_bucket"`
	ToBucket   string `json:"to_bucket"`
	Amount     int64  `json:"amount"`
	Kind       int32  `json:"kind"`
	Timestamp  int64  `json:"timestamp"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy       bool    `json:"is_healthy"`
	HashChainBreaks []int64 `json:"hash_chain_breaks,omitempty"`
	Imbalance       int64   `json:"imbalance,omitempty"` // non-zero global bucket sum
}
