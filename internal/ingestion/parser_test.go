package ingestion_test

import (
	"encoding/json"
	"testing"
	"time"

	"LendLedger/internal/event"
	"LendLedger/internal/ingestion"
)

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawEvent {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawEvent{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParseCollateralDeposit(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"account_id": "660e8400-e29b-41d4-a716-446655440001",
		"amount":     int64(10_000_000),
		"sequence":   int64(42),
		"timestamp":  int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "CollateralDeposit")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	cd, ok := evt.(*event.CollateralDeposit)
	if !ok {
		t.Fatalf("expected *event.CollateralDeposit, got %T", evt)
	}

	if cd.Amount != 10_000_000 {
		t.Errorf("amount: got %d, want 10_000_000", cd.Amount)
	}
	if cd.Sequence != 42 {
		t.Errorf("sequence: got %d, want 42", cd.Sequence)
	}
	if cd.EffectiveAt() != 1700000000 {
		t.Errorf("timestamp: got %d, want 1700000000", cd.EffectiveAt())
	}
	if cd.EventType() != event.EventTypeCollateralDeposit {
		t.Errorf("event type: got %v, want CollateralDeposit", cd.EventType())
	}
}

func TestParseSavingsDeposit_WithReferrer(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"account_id": "660e8400-e29b-41d4-a716-446655440001",
		"amount":     int64(5_000_000),
		"referrer":   "770e8400-e29b-41d4-a716-446655440002",
		"sequence":   int64(1),
		"timestamp":  int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "SavingsDeposit")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sd, ok := evt.(*event.SavingsDeposit)
	if !ok {
		t.Fatalf("expected *event.SavingsDeposit, got %T", evt)
	}

	if sd.Amount != 5_000_000 {
		t.Errorf("amount: got %d, want 5_000_000", sd.Amount)
	}
	if sd.Referrer == nil {
		t.Fatal("referrer: got nil, want set")
	}
	if sd.Referrer.String() != "770e8400-e29b-41d4-a716-446655440002" {
		t.Errorf("referrer: got %s", sd.Referrer)
	}
}

func TestParseSavingsDeposit_NoReferrer(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"account_id": "660e8400-e29b-41d4-a716-446655440001",
		"amount":     int64(5_000_000),
		"sequence":   int64(1),
		"timestamp":  int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "SavingsDeposit")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sd := evt.(*event.SavingsDeposit)
	if sd.Referrer != nil {
		t.Errorf("referrer: got %s, want nil", sd.Referrer)
	}
}

func TestParseLoanRepay(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"account_id": "660e8400-e29b-41d4-a716-446655440001",
		"payment":    int64(6_000_000),
		"sequence":   int64(7),
		"timestamp":  int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "LoanRepay")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	lr, ok := evt.(*event.LoanRepay)
	if !ok {
		t.Fatalf("expected *event.LoanRepay, got %T", evt)
	}

	if lr.Payment != 6_000_000 {
		t.Errorf("payment: got %d, want 6_000_000", lr.Payment)
	}
	if lr.EventType() != event.EventTypeLoanRepay {
		t.Errorf("event type: got %v, want LoanRepay", lr.EventType())
	}
}

func TestParseLoanTransfer(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "550e8400-e29b-41d4-a716-446655440000",
		"from_id":    "660e8400-e29b-41d4-a716-446655440001",
		"to_id":      "770e8400-e29b-41d4-a716-446655440002",
		"sequence":   int64(3),
		"timestamp":  int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "LoanTransfer")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	lt, ok := evt.(*event.LoanTransfer)
	if !ok {
		t.Fatalf("expected *event.LoanTransfer, got %T", evt)
	}

	if lt.FromID.String() != "660e8400-e29b-41d4-a716-446655440001" {
		t.Errorf("from_id: got %s", lt.FromID)
	}
	if lt.Partition() != event.AccountPartition(lt.FromID) {
		t.Errorf("partition: got %s, want sender partition", lt.Partition())
	}
}

func TestParsePartialLiquidate(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":    "550e8400-e29b-41d4-a716-446655440000",
		"liquidator_id": "660e8400-e29b-41d4-a716-446655440001",
		"borrower_id":   "770e8400-e29b-41d4-a716-446655440002",
		"repay_amount":  int64(5_000_000),
		"payment":       int64(5_000_000),
		"sequence":      int64(9),
		"timestamp":     int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "PartialLiquidate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pl, ok := evt.(*event.PartialLiquidate)
	if !ok {
		t.Fatalf("expected *event.PartialLiquidate, got %T", evt)
	}

	if pl.RepayAmount != 5_000_000 {
		t.Errorf("repay_amount: got %d, want 5_000_000", pl.RepayAmount)
	}
	if pl.Partition() != event.AccountPartition(pl.BorrowerID) {
		t.Errorf("partition: got %s, want borrower partition", pl.Partition())
	}
}

func TestParseFixedDepositCreate(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":      "550e8400-e29b-41d4-a716-446655440000",
		"account_id":      "660e8400-e29b-41d4-a716-446655440001",
		"amount":          int64(20_000_000),
		"lock_duration":   int64(7_776_000),
		"rate_multiplier": int64(150),
		"sequence":        int64(2),
		"timestamp":       int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "FixedDepositCreate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	fd, ok := evt.(*event.FixedDepositCreate)
	if !ok {
		t.Fatalf("expected *event.FixedDepositCreate, got %T", evt)
	}

	if fd.LockDuration != 7_776_000 {
		t.Errorf("lock_duration: got %d, want 7_776_000", fd.LockDuration)
	}
	if fd.RateMultiplier != 150 {
		t.Errorf("rate_multiplier: got %d, want 150", fd.RateMultiplier)
	}
}

func TestParseParamUpdate(t *testing.T) {
	payload := map[string]interface{}{
		"caller_id": "550e8400-e29b-41d4-a716-446655440000",
		"version":   int64(2),
		"sequence":  int64(1),
		"timestamp": int64(1700000000),
		"params": map[string]interface{}{
			"collateral_ratio_percent":      int64(160),
			"liquidation_threshold_percent": int64(125),
			"liquidation_bonus_percent":     int64(5),
			"base_interest_rate_percent":    int64(4),
			"interest_tiers": []map[string]interface{}{
				{"utilization_percent": int64(50), "rate_percent": int64(4)},
				{"utilization_percent": int64(100), "rate_percent": int64(12)},
			},
			"reward_rate_percent":   int64(3),
			"referral_rate_percent": int64(1),
			"min_lock_duration":     int64(2_592_000),
			"cooldown_period":       int64(86_400),
			"flash_loan_fee_bp":     int64(9),
		},
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "ParamUpdate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	pu, ok := evt.(*event.ParamUpdate)
	if !ok {
		t.Fatalf("expected *event.ParamUpdate, got %T", evt)
	}

	if pu.Params.CollateralRatioPercent != 160 {
		t.Errorf("collateral ratio: got %d, want 160", pu.Params.CollateralRatioPercent)
	}
	if len(pu.Params.InterestTiers) != 2 {
		t.Fatalf("tiers: got %d, want 2", len(pu.Params.InterestTiers))
	}
	if pu.Params.InterestTiers[1].RatePercent != 12 {
		t.Errorf("tier rate: got %d, want 12", pu.Params.InterestTiers[1].RatePercent)
	}
	if pu.Partition() != event.GlobalPartition {
		t.Errorf("partition: got %s, want global", pu.Partition())
	}
	if pu.IdempotencyKey() != "params:2" {
		t.Errorf("idempotency key: got %s, want params:2", pu.IdempotencyKey())
	}
}

func TestParseAccountFlagUpdate(t *testing.T) {
	payload := map[string]interface{}{
		"request_id":  "550e8400-e29b-41d4-a716-446655440000",
		"caller_id":   "660e8400-e29b-41d4-a716-446655440001",
		"account_id":  "770e8400-e29b-41d4-a716-446655440002",
		"blacklisted": true,
		"sequence":    int64(1),
		"timestamp":   int64(1700000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, "AccountFlagUpdate")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	af, ok := evt.(*event.AccountFlagUpdate)
	if !ok {
		t.Fatalf("expected *event.AccountFlagUpdate, got %T", evt)
	}

	if !af.Blacklisted {
		t.Error("blacklisted: got false, want true")
	}
}

func TestParseUnknownEventType_Fails(t *testing.T) {
	raw := ingestion.RawEvent{Data: []byte(`{}`)}
	_, err := ingestion.ParseRawEvent(raw, "NonExistentType")
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestParseInvalidJSON_Fails(t *testing.T) {
	raw := ingestion.RawEvent{Data: []byte(`{invalid json`)}
	_, err := ingestion.ParseRawEvent(raw, "CollateralDeposit")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseInvalidUUID_Fails(t *testing.T) {
	payload := map[string]interface{}{
		"request_id": "not-a-uuid",
		"account_id": "also-not-a-uuid",
		"amount":     int64(1),
		"sequence":   int64(0),
		"timestamp":  int64(0),
	}

	raw := rawFromJSON(t, payload)
	_, err := ingestion.ParseRawEvent(raw, "CollateralDeposit")
	if err == nil {
		t.Fatal("expected error for invalid UUID")
	}
}
