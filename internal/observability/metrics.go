package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for LendLedger.
type Metrics struct {
	// --- Core Processing ---
	CoreEventsApplied  *prometheus.CounterVec
	CoreEventsRejected *prometheus.CounterVec
	CoreEventDuration  *prometheus.HistogramVec
	CoreMovements      *prometheus.CounterVec
	CoreStateHashDur   prometheus.Histogram
	CoreSequence       prometheus.Gauge

	// --- Latency ---
	IngestToApply       *prometheus.HistogramVec
	ApplyToPersist      prometheus.Histogram
	QueryFreshnessLag   *prometheus.HistogramVec
	NATSPullLatency     *prometheus.HistogramVec
	PersistBatchDur     prometheus.Histogram
	ProjectionUpdateDur *prometheus.HistogramVec

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ChannelUtilization  *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PublishDrops        prometheus.Counter
	PersistBackpressure prometheus.Counter

	// --- Idempotency & Ordering ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge
	DedupLRUEvictions     prometheus.Counter
	DedupTier2Duration    prometheus.Histogram
	EventSequenceGap      *prometheus.CounterVec
	EventOutOfOrder       *prometheus.CounterVec

	// --- Lending Pool ---
	PoolTotalCollateral prometheus.Gauge
	PoolTotalBorrowed   prometheus.Gauge
	PoolTotalDeposits   prometheus.Gauge
	PoolUtilization     prometheus.Gauge
	PoolTreasury        prometheus.Gauge
	LoansOpened         prometheus.Counter
	LoansClosed         *prometheus.CounterVec
	InterestAccrued     prometheus.Counter
	LateFeesCharged     prometheus.Counter
	RewardsPaid         *prometheus.CounterVec

	// --- Liquidation ---
	LiquidationsTotal    *prometheus.CounterVec
	LiquidationSeized    prometheus.Counter
	LiquidationBonusPaid prometheus.Counter

	// --- Flash Loans ---
	FlashLoansTotal  *prometheus.CounterVec
	FlashLoanVolume  prometheus.Counter
	FlashLoanFees    prometheus.Counter

	// --- Persistence ---
	PersistEventsWritten    prometheus.Counter
	PersistMovementsWritten prometheus.Counter
	PersistBatchSize        prometheus.Histogram
	PersistErrors           *prometheus.CounterVec
	PersistRetry            prometheus.Counter
	PersistLastSequence     prometheus.Gauge

	// --- Snapshot ---
	SnapshotTaken     prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayEventsTotal prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	ingestBuckets := []float64{
		0.00001, 0.000025, 0.00005, 0.0001, 0.00025,
		0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Core Processing
		CoreEventsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_core_events_applied_total",
			Help: "Events successfully applied by core",
		}, []string{"event_type"}),

		CoreEventsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_core_events_rejected_total",
			Help: "Events rejected (dedup, gap, validation, transfer failure)",
		}, []string{"event_type", "reason"}),

		CoreEventDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_core_event_apply_duration_seconds",
			Help:    "Time to apply a single event in core",
			Buckets: latencyBuckets,
		}, []string{"event_type"}),

		CoreMovements: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_core_movements_generated_total",
			Help: "Value movements generated",
		}, []string{"movement_kind"}),

		CoreStateHashDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_core_state_hash_duration_seconds",
			Help:    "Time to compute state hash",
			Buckets: latencyBuckets,
		}),

		CoreSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_core_sequence",
			Help: "Current global sequence number",
		}),

		// Latency
		IngestToApply: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_ingest_to_apply_seconds",
			Help:    "NATS receive to core apply complete",
			Buckets: ingestBuckets,
		}, []string{"event_type"}),

		ApplyToPersist: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_apply_to_persist_seconds",
			Help:    "Core emit to Postgres commit",
			Buckets: latencyBuckets,
		}),

		QueryFreshnessLag: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_query_freshness_lag_seconds",
			Help:    "Core sequence minus projection sequence (in time)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1.0},
		}, []string{"endpoint"}),

		NATSPullLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_nats_pull_latency_seconds",
			Help:    "NATS pull request latency",
			Buckets: ingestBuckets,
		}, []string{"subject"}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		ProjectionUpdateDur: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_projection_update_duration_seconds",
			Help:    "Projection table update duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"projection"}),

		// Channel & Backpressure
		ChannelSize: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lend_channel_size",
			Help: "Current items in channel",
		}, []string{"name"}),

		ChannelCapacity: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lend_channel_capacity",
			Help: "Channel capacity",
		}, []string{"name"}),

		ChannelUtilization: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lend_channel_utilization",
			Help: "Channel fill ratio",
		}, []string{"name"}),

		ProjectionDrops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_projection_drops_total",
			Help: "Outputs dropped on the projection channel",
		}, []string{"projection"}),

		PublishDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_publish_drops_total",
			Help: "Outbound event publishes dropped",
		}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_persist_backpressure_total",
			Help: "Core stalls on the persist channel",
		}),

		// Idempotency & Ordering
		IdempotencyDuplicates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_idempotency_duplicates_total",
			Help: "Duplicate events detected",
		}, []string{"event_type", "tier"}),

		DedupLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_dedup_lru_size",
			Help: "Idempotency LRU entries",
		}),

		DedupLRUEvictions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_dedup_lru_evictions_total",
			Help: "Idempotency LRU evictions",
		}),

		DedupTier2Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_dedup_tier2_duration_seconds",
			Help:    "Postgres dedup lookup latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),

		EventSequenceGap: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_event_sequence_gap_total",
			Help: "Sequence gap rejections",
		}, []string{"partition"}),

		EventOutOfOrder: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_event_out_of_order_total",
			Help: "Out-of-order rejections",
		}, []string{"partition"}),

		// Lending Pool
		PoolTotalCollateral: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_pool_total_collateral",
			Help: "Sum of all collateral (free + staked), amount scale",
		}),

		PoolTotalBorrowed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_pool_total_borrowed",
			Help: "Sum of active loan principal, amount scale",
		}),

		PoolTotalDeposits: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_pool_total_deposits",
			Help: "Sum of savings and fixed deposits, amount scale",
		}),

		PoolUtilization: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_pool_utilization_percent",
			Help: "Borrowed over deposits, integer percent",
		}),

		PoolTreasury: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_pool_treasury",
			Help: "Accumulated protocol fees, amount scale",
		}),

		LoansOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_loans_opened_total",
			Help: "Loans opened (first borrow)",
		}),

		LoansClosed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_loans_closed_total",
			Help: "Loans closed by reason",
		}, []string{"reason"}),

		InterestAccrued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_interest_accrued_total",
			Help: "Interest posted to loans, amount scale",
		}),

		LateFeesCharged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_late_fees_charged_total",
			Help: "Late fees collected, amount scale",
		}),

		RewardsPaid: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_rewards_paid_total",
			Help: "Rewards claimed or compounded, amount scale",
		}, []string{"mode"}),

		// Liquidation
		LiquidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_liquidations_total",
			Help: "Liquidations executed",
		}, []string{"kind"}),

		LiquidationSeized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_liquidation_seized_total",
			Help: "Collateral seized, amount scale",
		}),

		LiquidationBonusPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_liquidation_bonus_paid_total",
			Help: "Liquidator bonuses paid, amount scale",
		}),

		// Flash Loans
		FlashLoansTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_flash_loans_total",
			Help: "Flash loans by outcome",
		}, []string{"outcome"}),

		FlashLoanVolume: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_flash_loan_volume_total",
			Help: "Flash loan principal lent, amount scale",
		}),

		FlashLoanFees: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_flash_loan_fees_total",
			Help: "Flash loan fees collected, amount scale",
		}),

		// Persistence
		PersistEventsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_persist_events_written_total",
			Help: "Events written to Postgres",
		}),

		PersistMovementsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_persist_movements_written_total",
			Help: "Movements written to Postgres",
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_persist_batch_size",
			Help:    "Events per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_persist_last_sequence",
			Help: "Last persisted sequence",
		}),

		// Snapshot
		SnapshotTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_snapshot_taken_total",
			Help: "Snapshots created",
		}),

		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lend_snapshot_duration_seconds",
			Help:    "Snapshot creation time",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		}),

		SnapshotSizeBytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_snapshot_size_bytes",
			Help: "Last snapshot size",
		}),

		SnapshotLastSeq: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_snapshot_last_sequence",
			Help: "Sequence of last snapshot",
		}),

		ReplayEventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lend_replay_events_total",
			Help: "Events replayed on startup",
		}),

		ReplayDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lend_replay_duration_seconds",
			Help: "Total replay time",
		}),

		// Query API
		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lend_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lend_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}

// SetChannelMetrics updates channel utilization metrics.
func (m *Metrics) SetChannelMetrics(name string, size, capacity int) {
	m.ChannelSize.WithLabelValues(name).Set(float64(size))
	m.ChannelCapacity.WithLabelValues(name).Set(float64(capacity))
	if capacity > 0 {
		m.ChannelUtilization.WithLabelValues(name).Set(float64(size) / float64(capacity))
	}
}

// SetPoolGauges publishes the aggregate pool state.
func (m *Metrics) SetPoolGauges(totalCollateral, totalBorrowed, totalDeposits, treasury, utilizationPercent int64) {
	m.PoolTotalCollateral.Set(float64(totalCollateral))
	m.PoolTotalBorrowed.Set(float64(totalBorrowed))
	m.PoolTotalDeposits.Set(float64(totalDeposits))
	m.PoolTreasury.Set(float64(treasury))
	m.PoolUtilization.Set(float64(utilizationPercent))
}
