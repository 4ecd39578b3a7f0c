package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSSubscriber subscribes to NATS JetStream subjects and feeds events
// into the deterministic core via the eventChan. NATS is the primary
// high-throughput ingestion surface; each subject maps to one event type.
type NATSSubscriber struct {
	js        jetstream.JetStream
	eventChan chan<- RawEvent
	consumers []jetstream.ConsumeContext
}

// RawEvent is the parsed-but-untyped event from NATS, ready for the shell
// to validate and convert into a typed event.Event before sending to the core.
type RawEvent struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	AckFunc   func() // Call to ACK the NATS message after successful processing
	NakFunc   func() // Call to NAK on failure (will be redelivered)
}

// SubjectConfig maps NATS subjects to event types.
type SubjectConfig struct {
	Subject      string
	EventType    string
	ConsumerName string
	StreamName   string
}

// DefaultSubjects returns the standard subject configuration. Each event
// type has its own durable consumer for independent scaling.
func DefaultSubjects() []SubjectConfig {
	return []SubjectConfig{
		{Subject: "lend.collateral.deposit.>", EventType: "CollateralDeposit", ConsumerName: "ledger-coll-deposit", StreamName: "LEND_COLLATERAL"},
		{Subject: "lend.collateral.withdraw.>", EventType: "CollateralWithdraw", ConsumerName: "ledger-coll-withdraw", StreamName: "LEND_COLLATERAL"},
		{Subject: "lend.collateral.stake.>", EventType: "CollateralStake", ConsumerName: "ledger-coll-stake", StreamName: "LEND_COLLATERAL"},
		{Subject: "lend.collateral.unstake.>", EventType: "CollateralUnstake", ConsumerName: "ledger-coll-unstake", StreamName: "LEND_COLLATERAL"},
		{Subject: "lend.savings.deposit.>", EventType: "SavingsDeposit", ConsumerName: "ledger-savings-deposit", StreamName: "LEND_SAVINGS"},
		{Subject: "lend.savings.withdraw.>", EventType: "SavingsWithdraw", ConsumerName: "ledger-savings-withdraw", StreamName: "LEND_SAVINGS"},
		{Subject: "lend.loans.borrow.>", EventType: "LoanBorrow", ConsumerName: "ledger-loan-borrow", StreamName: "LEND_LOANS"},
		{Subject: "lend.loans.repay.>", EventType: "LoanRepay", ConsumerName: "ledger-loan-repay", StreamName: "LEND_LOANS"},
		{Subject: "lend.loans.extend.>", EventType: "LoanExtend", ConsumerName: "ledger-loan-extend", StreamName: "LEND_LOANS"},
		{Subject: "lend.loans.transfer.>", EventType: "LoanTransfer", ConsumerName: "ledger-loan-transfer", StreamName: "LEND_LOANS"},
		{Subject: "lend.liquidation.full.>", EventType: "Liquidate", ConsumerName: "ledger-liq-full", StreamName: "LEND_LIQUIDATION"},
		{Subject: "lend.liquidation.partial.>", EventType: "PartialLiquidate", ConsumerName: "ledger-liq-partial", StreamName: "LEND_LIQUIDATION"},
		{Subject: "lend.rewards.claim.>", EventType: "RewardClaim", ConsumerName: "ledger-reward-claim", StreamName: "LEND_REWARDS"},
		{Subject: "lend.rewards.compound.>", EventType: "RewardCompound", ConsumerName: "ledger-reward-compound", StreamName: "LEND_REWARDS"},
		{Subject: "lend.rewards.fixed.create.>", EventType: "FixedDepositCreate", ConsumerName: "ledger-fixed-create", StreamName: "LEND_REWARDS"},
		{Subject: "lend.rewards.fixed.withdraw.>", EventType: "FixedDepositWithdraw", ConsumerName: "ledger-fixed-withdraw", StreamName: "LEND_REWARDS"},
		{Subject: "lend.admin.params.>", EventType: "ParamUpdate", ConsumerName: "ledger-admin-params", StreamName: "LEND_ADMIN"},
		{Subject: "lend.admin.flags.>", EventType: "AccountFlagUpdate", ConsumerName: "ledger-admin-flags", StreamName: "LEND_ADMIN"},
	}
}

func NewNATSSubscriber(js jetstream.JetStream, eventChan chan<- RawEvent) *NATSSubscriber {
	return &NATSSubscriber{
		js:        js,
		eventChan: eventChan,
	}
}

// Subscribe creates JetStream consumers for all configured subjects.
// Consumers use explicit ACK, max_deliver=5, ack_wait=30s.
func (ns *NATSSubscriber) Subscribe(ctx context.Context, subjects []SubjectConfig) error {
	for _, cfg := range subjects {
		consumer, err := ns.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
			Durable:       cfg.ConsumerName,
			FilterSubject: cfg.Subject,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    5,
			DeliverPolicy: jetstream.DeliverAllPolicy,
		})
		if err != nil {
			return fmt.Errorf("create consumer %s: %w", cfg.ConsumerName, err)
		}

		consumerContext, err := consumer.Consume(func(msg jetstream.Msg) {
			raw := RawEvent{
				Subject:   msg.Subject(),
				Data:      msg.Data(),
				Timestamp: time.Now(),
				AckFunc:   func() { msg.Ack() },
				NakFunc:   func() { msg.Nak() },
			}

			select {
			case ns.eventChan <- raw:
				// Successfully queued for processing
			case <-ctx.Done():
				msg.Nak()
			}
		})
		if err != nil {
			return fmt.Errorf("consume %s: %w", cfg.ConsumerName, err)
		}

		ns.consumers = append(ns.consumers, consumerContext)
		log.Printf("INFO: subscribed to %s (consumer=%s)", cfg.Subject, cfg.ConsumerName)
	}

	return nil
}

// EnsureStreams creates the required JetStream streams if they don't exist.
// Streams use FileStorage, retention=Limits, max_age=72h.
func EnsureStreams(ctx context.Context, js jetstream.JetStream) error {
	streams := []jetstream.StreamConfig{
		{
			Name:      "LEND_COLLATERAL",
			Subjects:  []string{"lend.collateral.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "LEND_SAVINGS",
			Subjects:  []string{"lend.savings.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "LEND_LOANS",
			Subjects:  []string{"lend.loans.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "LEND_LIQUIDATION",
			Subjects:  []string{"lend.liquidation.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "LEND_REWARDS",
			Subjects:  []string{"lend.rewards.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
		{
			Name:      "LEND_ADMIN",
			Subjects:  []string{"lend.admin.>"},
			Storage:   jetstream.FileStorage,
			Retention: jetstream.LimitsPolicy,
			MaxAge:    72 * time.Hour,
			Replicas:  1,
		},
	}

	for _, cfg := range streams {
		if _, err := js.CreateOrUpdateStream(ctx, cfg); err != nil {
			return fmt.Errorf("create stream %s: %w", cfg.Name, err)
		}
		log.Printf("INFO: ensured stream %s", cfg.Name)
	}

	return nil
}

// Stop gracefully stops all consumers.
func (ns *NATSSubscriber) Stop() {
	for _, cc := range ns.consumers {
		cc.Stop()
	}
	log.Println("INFO: NATS subscribers stopped")
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("WARN: NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Println("INFO: NATS reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}
