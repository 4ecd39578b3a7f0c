package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/state"
)

// GRPCIngestService provides admin/manual event injection via gRPC. It is
// for governance operations and operator intervention, not for
// high-throughput ingestion (use NATS for that).
type GRPCIngestService struct {
	eventChan chan<- event.Event
}

func NewGRPCIngestService(eventChan chan<- event.Event) *GRPCIngestService {
	return &GRPCIngestService{eventChan: eventChan}
}

// EventChan exposes the injection channel for the gRPC server layer.
func (s *GRPCIngestService) EventChan() chan<- event.Event {
	return s.eventChan
}

// InjectCollateralDeposit manually injects a CollateralDeposit event.
func (s *GRPCIngestService) InjectCollateralDeposit(
	ctx context.Context,
	accountID uuid.UUID,
	amount int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	now := time.Now()
	evt := &event.CollateralDeposit{
		RequestID: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Sequence:  now.UnixMicro(), // Admin-injected: use timestamp as sequence
		Timestamp: now.Unix(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectSavingsDeposit manually injects a SavingsDeposit event.
func (s *GRPCIngestService) InjectSavingsDeposit(
	ctx context.Context,
	accountID uuid.UUID,
	amount int64,
	referrer *uuid.UUID,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	now := time.Now()
	evt := &event.SavingsDeposit{
		RequestID: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Referrer:  referrer,
		Sequence:  now.UnixMicro(),
		Timestamp: now.Unix(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectParamUpdate manually injects a ParamUpdate event.
func (s *GRPCIngestService) InjectParamUpdate(
	ctx context.Context,
	callerID uuid.UUID,
	params state.ProtocolParams,
	version int64,
) error {
	if version <= 0 {
		return fmt.Errorf("version must be positive")
	}

	now := time.Now()
	evt := &event.ParamUpdate{
		CallerID:  callerID,
		Params:    params,
		Version:   version,
		Sequence:  now.UnixMicro(),
		Timestamp: now.Unix(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InjectAccountFlag manually injects an AccountFlagUpdate event.
func (s *GRPCIngestService) InjectAccountFlag(
	ctx context.Context,
	callerID uuid.UUID,
	accountID uuid.UUID,
	blacklisted bool,
) error {
	now := time.Now()
	evt := &event.AccountFlagUpdate{
		RequestID:   uuid.New(),
		CallerID:    callerID,
		AccountID:   accountID,
		Blacklisted: blacklisted,
		Sequence:    now.UnixMicro(),
		Timestamp:   now.Unix(),
	}

	select {
	case s.eventChan <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
