package ingestion_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/ingestion"
	"LendLedger/internal/state"
)

// roundTrip encodes a typed event and feeds the bytes back through the
// parser, the way replay reconstructs the stream from the event log.
func roundTrip(t *testing.T, evt event.Event) event.Event {
	t.Helper()
	data, err := ingestion.EncodeEvent(evt)
	if err != nil {
		t.Fatalf("encode %s: %v", evt.EventType(), err)
	}
	parsed, err := ingestion.ParseRawEvent(
		ingestion.RawEvent{Data: data},
		evt.EventType().String(),
	)
	if err != nil {
		t.Fatalf("parse %s: %v", evt.EventType(), err)
	}
	return parsed
}

func TestEncodeRoundTrip(t *testing.T) {
	requestID := uuid.New()
	accountID := uuid.New()
	otherID := uuid.New()
	referrer := uuid.New()

	cases := []event.Event{
		&event.CollateralDeposit{RequestID: requestID, AccountID: accountID, Amount: 10_000_000, Sequence: 1, Timestamp: 1700000000},
		&event.CollateralWithdraw{RequestID: requestID, AccountID: accountID, Amount: 2_500_000, Sequence: 2, Timestamp: 1700000001},
		&event.CollateralStake{RequestID: requestID, AccountID: accountID, Amount: 3_000_000, Sequence: 3, Timestamp: 1700000002},
		&event.CollateralUnstake{RequestID: requestID, AccountID: accountID, Amount: 3_000_000, Sequence: 4, Timestamp: 1700000003},
		&event.SavingsDeposit{RequestID: requestID, AccountID: accountID, Amount: 5_000_000, Referrer: &referrer, Sequence: 5, Timestamp: 1700000004},
		&event.SavingsDeposit{RequestID: requestID, AccountID: accountID, Amount: 5_000_000, Sequence: 6, Timestamp: 1700000005},
		&event.SavingsWithdraw{RequestID: requestID, AccountID: accountID, Amount: 1_000_000, Sequence: 7, Timestamp: 1700000006},
		&event.LoanBorrow{RequestID: requestID, AccountID: accountID, Amount: 6_000_000, Sequence: 8, Timestamp: 1700000007},
		&event.LoanRepay{RequestID: requestID, AccountID: accountID, Payment: 6_300_000, Sequence: 9, Timestamp: 1700000008},
		&event.LoanExtend{RequestID: requestID, AccountID: accountID, Payment: 300_000, Sequence: 10, Timestamp: 1700000009},
		&event.LoanTransfer{RequestID: requestID, FromID: accountID, ToID: otherID, Sequence: 11, Timestamp: 1700000010},
		&event.Liquidate{RequestID: requestID, LiquidatorID: otherID, BorrowerID: accountID, Sequence: 12, Timestamp: 1700000011},
		&event.PartialLiquidate{RequestID: requestID, LiquidatorID: otherID, BorrowerID: accountID, RepayAmount: 2_000_000, Payment: 2_000_000, Sequence: 13, Timestamp: 1700000012},
		&event.RewardClaim{RequestID: requestID, AccountID: accountID, Sequence: 14, Timestamp: 1700000013},
		&event.RewardCompound{RequestID: requestID, AccountID: accountID, Sequence: 15, Timestamp: 1700000014},
		&event.FixedDepositCreate{RequestID: requestID, AccountID: accountID, Amount: 4_000_000, LockDuration: 90 * 24 * 3600, RateMultiplier: 150, Sequence: 16, Timestamp: 1700000015},
		&event.FixedDepositWithdraw{RequestID: requestID, AccountID: accountID, Index: 0, Sequence: 17, Timestamp: 1700000016},
		&event.AccountFlagUpdate{RequestID: requestID, CallerID: otherID, AccountID: accountID, Blacklisted: true, Sequence: 18, Timestamp: 1700000017},
	}

	for _, evt := range cases {
		t.Run(evt.EventType().String(), func(t *testing.T) {
			parsed := roundTrip(t, evt)
			if !reflect.DeepEqual(parsed, evt) {
				t.Errorf("round trip changed event:\n got %+v\nwant %+v", parsed, evt)
			}
		})
	}
}

func TestEncodeRoundTrip_ParamUpdate(t *testing.T) {
	evt := &event.ParamUpdate{
		CallerID:  uuid.New(),
		Params:    state.DefaultParams(),
		Version:   7,
		Sequence:  3,
		Timestamp: 1700000000,
	}
	evt.Params.LateFeesEnabled = true
	evt.Params.MaxBorrowPerAccount = 50_000_000

	parsed := roundTrip(t, evt)
	pu, ok := parsed.(*event.ParamUpdate)
	if !ok {
		t.Fatalf("expected *event.ParamUpdate, got %T", parsed)
	}
	if pu.Version != 7 || pu.CallerID != evt.CallerID {
		t.Errorf("header: got version=%d caller=%s", pu.Version, pu.CallerID)
	}
	if !reflect.DeepEqual(pu.Params, evt.Params) {
		t.Errorf("params changed:\n got %+v\nwant %+v", pu.Params, evt.Params)
	}
	if len(pu.Params.InterestTiers) != len(evt.Params.InterestTiers) {
		t.Fatalf("tiers: got %d, want %d", len(pu.Params.InterestTiers), len(evt.Params.InterestTiers))
	}
}

type unknownEvent struct{}

func (unknownEvent) IdempotencyKey() string     { return "x" }
func (unknownEvent) EventType() event.EventType { return event.EventTypeUnknown }
func (unknownEvent) Partition() string          { return "x" }
func (unknownEvent) SourceSequence() int64      { return 0 }
func (unknownEvent) EffectiveAt() int64         { return 0 }

func TestEncodeUnknownType(t *testing.T) {
	if _, err := ingestion.EncodeEvent(unknownEvent{}); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}
