package event

import "github.com/google/uuid"

// FlashLoanRecord is the logged payload of a committed flash loan.
// Flash loans never arrive from ingestion, so this is a log record
// rather than an Event: replay reapplies it through the flash loan
// path with a no-op callback, which reproduces the fee effect.
type FlashLoanRecord struct {
	RequestID uuid.UUID `json:"request_id"`
	AccountID uuid.UUID `json:"account_id"`
	Amount    int64     `json:"amount"`
	Fee       int64     `json:"fee"`
	Timestamp int64     `json:"timestamp"`
}
