package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"LendLedger/internal/event"
	"LendLedger/internal/ledger"
	"LendLedger/internal/observability"
	"LendLedger/internal/state"
)

// LedgerCore is the single-threaded event processor. All mutations of
// pool state flow through ProcessEvent (or FlashLoan) on one goroutine;
// every other component sees state only through emitted CoreOutputs.
type LedgerCore struct {
	sequence          int64
	hasher            *StateHasher
	store             *ledger.Store
	validator         *ledger.InvariantValidator
	params            *state.ParamsManager
	accrual           *state.AccrualEngine
	collateral        *state.CollateralManager
	loans             *state.LoanManager
	liquidation       *state.LiquidationEngine
	rewards           *state.RewardEngine
	access            state.AccessPolicy
	transferer        Transferer
	idempotency       *IdempotencyChecker
	sequenceValidator *SequenceValidator
	paramsVersion     int64
	metrics           *observability.Metrics

	persistChan    chan<- CoreOutput
	projectionChan chan<- CoreOutput

	// Serializes events back to wire JSON for the event log; nil means
	// envelopes carry no payload (unit tests, replay-less setups).
	encodePayload func(event.Event) ([]byte, error)

	// Set while a flash loan callback runs; rejects nested operations.
	inFlashLoan bool

	// Set during log replay: skips the dedup check (replayed events are
	// already in the log, so tier 2 would reject all of them) and
	// suppresses emission so recovery does not re-persist or re-publish.
	replaying bool
}

// CoreOutput is one committed operation: the envelope for the event
// log, the movement batch, and the canonical state delta bytes.
type CoreOutput struct {
	Envelope   *event.EventEnvelope
	Batch      *ledger.Batch
	StateDelta []byte
}

func NewLedgerCore(
	startSequence int64,
	params state.ProtocolParams,
	access state.AccessPolicy,
	transferer Transferer,
	persistChan, projectionChan chan<- CoreOutput,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) (*LedgerCore, error) {
	store := ledger.NewStore()
	pm, err := state.NewParamsManager(params)
	if err != nil {
		return nil, err
	}
	if access == nil {
		access = state.OpenPolicy{}
	}
	if transferer == nil {
		transferer = NoopTransferer{}
	}

	return &LedgerCore{
		sequence:          startSequence,
		hasher:            NewStateHasher(),
		store:             store,
		validator:         ledger.NewInvariantValidator(store),
		params:            pm,
		accrual:           state.NewAccrualEngine(store, pm),
		collateral:        state.NewCollateralManager(store, pm),
		loans:             state.NewLoanManager(store, pm),
		liquidation:       state.NewLiquidationEngine(store, pm),
		rewards:           state.NewRewardEngine(store, pm),
		access:            access,
		transferer:        transferer,
		idempotency:       NewIdempotencyChecker(1_000_000, dbChecker),
		sequenceValidator: NewSequenceValidator(),
		metrics:           metrics,
		persistChan:       persistChan,
		projectionChan:    projectionChan,
	}, nil
}

// Store exposes read access for recovery and the query layer. Reads
// outside the core goroutine must go through projections instead.
func (c *LedgerCore) Store() *ledger.Store { return c.store }

// Params exposes the active parameter set for the query layer.
func (c *LedgerCore) Params() state.ProtocolParams { return c.params.Get() }

// Sequence returns the next sequence the core will assign.
func (c *LedgerCore) Sequence() int64 { return c.sequence }

// SequenceValidator exposes partition cursors for recovery.
func (c *LedgerCore) SequenceValidator() *SequenceValidator { return c.sequenceValidator }

// SetPayloadEncoder installs the wire codec used to persist event
// payloads in the log. Must be set before processing begins.
func (c *LedgerCore) SetPayloadEncoder(fn func(event.Event) ([]byte, error)) {
	c.encodePayload = fn
}

// ProcessEvent is the main processing pipeline
func (c *LedgerCore) ProcessEvent(evt event.Event) error {
	start := time.Now()
	eventType := evt.EventType().String()
	idempotencyKey := evt.IdempotencyKey()

	if c.inFlashLoan {
		return fmt.Errorf("%w: %s during flash loan callback", ErrReentrancy, eventType)
	}

	// Step 1: Idempotency check (two-tier)
	isDuplicate := false
	if !c.replaying {
		isDuplicate = c.idempotency.IsDuplicate(eventType, idempotencyKey)
	}

	// Step 2: Sequence validation. Parameter updates ride a governance
	// stream that may skip proposals, so gaps are tolerated there.
	partition := evt.Partition()
	sourceSequence := evt.SourceSequence()

	if _, ok := evt.(*event.ParamUpdate); ok {
		if stale := c.sequenceValidator.ValidateGapTolerant(partition, sourceSequence); stale {
			return nil
		}
	} else {
		if err := c.sequenceValidator.ValidateSequence(partition, sourceSequence, idempotencyKey, isDuplicate); err != nil {
			return fmt.Errorf("sequence validation failed: %w", err)
		}
	}

	// If duplicate, skip processing
	if isDuplicate {
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, "duplicate").Inc()
		}
		return nil
	}

	// Step 3: Checkpoint every record the event may touch, so a failed
	// dispatch (including a failed transfer leg) leaves no trace.
	checkpoint := c.store.Capture(c.touchedAccounts(evt)...)

	// Step 4: Dispatch - accrue, validate, mutate, transfer
	batch := ledger.NewBatch(idempotencyKey, c.sequence, evt.EffectiveAt())
	if err := c.dispatchEvent(evt, batch); err != nil {
		c.store.Restore(checkpoint)
		if c.metrics != nil {
			c.metrics.CoreEventsRejected.WithLabelValues(eventType, rejectReason(err)).Inc()
		}
		return fmt.Errorf("dispatch failed: %w", err)
	}

	// Step 5: Batch sanity. A malformed batch out of our own handlers
	// is a bug, not an input error.
	if err := c.validator.ValidateBatch(batch); err != nil {
		panic(fmt.Sprintf("FATAL: malformed batch: %v", err))
	}

	// Step 6: Post-checks
	if err := c.postCheckInvariants(evt); err != nil {
		panic(fmt.Sprintf("FATAL: invariant violated: %v", err))
	}

	// Step 7: State digest and hash chain
	stateDigest := c.computeStateDigest(batch)
	prevHash := c.hasher.GetPrevHash()
	stateHash := c.hasher.ComputeHash(c.sequence, stateDigest)

	var payload []byte
	if c.encodePayload != nil {
		data, encErr := c.encodePayload(evt)
		if encErr != nil {
			panic(fmt.Sprintf("FATAL: encode event payload: %v", encErr))
		}
		payload = data
	}

	envelope := &event.EventEnvelope{
		Sequence:       c.sequence,
		IdempotencyKey: idempotencyKey,
		EventType:      evt.EventType(),
		Partition:      partition,
		Timestamp:      time.Unix(evt.EffectiveAt(), 0).UTC(),
		SourceSequence: sourceSequence,
		Payload:        payload,
		StateHash:      stateHash,
		PrevHash:       prevHash,
	}
	c.sequence++

	// Step 8: Emit. Persistence gets a blocking send so no committed
	// operation is lost; projections get a non-blocking send and can
	// rebuild from the event log if they fall behind.
	c.emit(CoreOutput{Envelope: envelope, Batch: batch, StateDelta: stateDigest})

	// Step 9: Mark as processed (add to LRU)
	c.idempotency.MarkProcessed(eventType, idempotencyKey)

	if c.metrics != nil {
		c.metrics.CoreEventsApplied.WithLabelValues(eventType).Inc()
		c.metrics.CoreEventDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
		c.metrics.CoreSequence.Set(float64(c.sequence))
	}

	return nil
}

func (c *LedgerCore) emit(output CoreOutput) {
	if c.replaying {
		return
	}
	if c.persistChan != nil {
		c.persistChan <- output
	}
	if c.projectionChan != nil {
		select {
		case c.projectionChan <- output:
		default:
			// Dropped; projection catches up via rebuild.
		}
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrTransferFailure):
		return "transfer_failure"
	case errors.Is(err, ErrPaused):
		return "paused"
	case errors.Is(err, ErrBlacklisted):
		return "blacklisted"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, state.ErrInvariant):
		return "invariant"
	case errors.Is(err, state.ErrArithmetic):
		return "arithmetic"
	default:
		return "validation"
	}
}

// touchedAccounts lists every account a dispatch may mutate, including
// indirect records like a bound referrer.
func (c *LedgerCore) touchedAccounts(evt event.Event) []uuid.UUID {
	switch e := evt.(type) {
	case *event.CollateralDeposit:
		return []uuid.UUID{e.AccountID}
	case *event.CollateralWithdraw:
		return []uuid.UUID{e.AccountID}
	case *event.CollateralStake:
		return []uuid.UUID{e.AccountID}
	case *event.CollateralUnstake:
		return []uuid.UUID{e.AccountID}
	case *event.SavingsDeposit:
		ids := []uuid.UUID{e.AccountID}
		ids = c.appendReferrer(ids, e.AccountID)
		if e.Referrer != nil && *e.Referrer != e.AccountID {
			ids = append(ids, *e.Referrer)
		}
		return ids
	case *event.SavingsWithdraw:
		return []uuid.UUID{e.AccountID}
	case *event.LoanBorrow:
		return []uuid.UUID{e.AccountID}
	case *event.LoanRepay:
		return []uuid.UUID{e.AccountID}
	case *event.LoanExtend:
		return []uuid.UUID{e.AccountID}
	case *event.LoanTransfer:
		return []uuid.UUID{e.FromID, e.ToID}
	case *event.Liquidate:
		return []uuid.UUID{e.BorrowerID, e.LiquidatorID}
	case *event.PartialLiquidate:
		return []uuid.UUID{e.BorrowerID, e.LiquidatorID}
	case *event.RewardClaim:
		return []uuid.UUID{e.AccountID}
	case *event.RewardCompound:
		return []uuid.UUID{e.AccountID}
	case *event.FixedDepositCreate:
		ids := []uuid.UUID{e.AccountID}
		return c.appendReferrer(ids, e.AccountID)
	case *event.FixedDepositWithdraw:
		return []uuid.UUID{e.AccountID}
	case *event.AccountFlagUpdate:
		return []uuid.UUID{e.AccountID}
	default:
		return nil
	}
}

func (c *LedgerCore) appendReferrer(ids []uuid.UUID, accountID uuid.UUID) []uuid.UUID {
	if u := c.store.Account(accountID); u != nil && u.Referrer != nil {
		ids = append(ids, *u.Referrer)
	}
	return ids
}

// dispatchEvent routes an event to its handler. Each handler follows
// the same shape: gate, accrue, mutate through a manager, then settle
// the external value legs. Any error unwinds to the caller, which
// restores the pre-dispatch checkpoint.
func (c *LedgerCore) dispatchEvent(evt event.Event, batch *ledger.Batch) error {
	switch e := evt.(type) {
	case *event.CollateralDeposit:
		return c.handleCollateralDeposit(e, batch)
	case *event.CollateralWithdraw:
		return c.handleCollateralWithdraw(e, batch)
	case *event.CollateralStake:
		return c.handleCollateralStake(e, batch)
	case *event.CollateralUnstake:
		return c.handleCollateralUnstake(e, batch)
	case *event.SavingsDeposit:
		return c.handleSavingsDeposit(e, batch)
	case *event.SavingsWithdraw:
		return c.handleSavingsWithdraw(e, batch)
	case *event.LoanBorrow:
		return c.handleLoanBorrow(e, batch)
	case *event.LoanRepay:
		return c.handleLoanRepay(e, batch)
	case *event.LoanExtend:
		return c.handleLoanExtend(e, batch)
	case *event.LoanTransfer:
		return c.handleLoanTransfer(e, batch)
	case *event.Liquidate:
		return c.handleLiquidate(e, batch)
	case *event.PartialLiquidate:
		return c.handlePartialLiquidate(e, batch)
	case *event.RewardClaim:
		return c.handleRewardClaim(e, batch)
	case *event.RewardCompound:
		return c.handleRewardCompound(e, batch)
	case *event.FixedDepositCreate:
		return c.handleFixedDepositCreate(e, batch)
	case *event.FixedDepositWithdraw:
		return c.handleFixedDepositWithdraw(e, batch)
	case *event.ParamUpdate:
		return c.handleParamUpdate(e)
	case *event.AccountFlagUpdate:
		return c.handleAccountFlagUpdate(e)
	default:
		return fmt.Errorf("%w: unhandled event type %T", state.ErrValidation, evt)
	}
}

// acceptFunds pulls attached value into the pool.
func (c *LedgerCore) acceptFunds(accountID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := c.transferer.Accept(accountID, amount); err != nil {
		return fmt.Errorf("%w: accept %d from %s: %v", ErrTransferFailure, amount, accountID, err)
	}
	c.store.CreditCash(amount)
	return nil
}

// payOut releases pool funds to an account.
func (c *LedgerCore) payOut(accountID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := c.store.DebitCash(amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailure, err)
	}
	if err := c.transferer.Release(accountID, amount); err != nil {
		return fmt.Errorf("%w: release %d to %s: %v", ErrTransferFailure, amount, accountID, err)
	}
	return nil
}

func (c *LedgerCore) gate(feature state.Feature) error {
	if c.access.IsPaused(feature) {
		return fmt.Errorf("%w: %s", ErrPaused, feature)
	}
	return nil
}

func (c *LedgerCore) rejectBlacklisted(id uuid.UUID) error {
	if u := c.store.Account(id); u != nil && u.Blacklisted {
		return fmt.Errorf("%w: %s", ErrBlacklisted, id)
	}
	return nil
}

func (c *LedgerCore) handleCollateralDeposit(e *event.CollateralDeposit, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureDeposit); err != nil {
		return err
	}
	if err := c.rejectBlacklisted(e.AccountID); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	if err := c.collateral.Deposit(e.AccountID, e.Amount, e.Timestamp, batch); err != nil {
		return err
	}
	return c.acceptFunds(e.AccountID, e.Amount)
}

func (c *LedgerCore) handleCollateralWithdraw(e *event.CollateralWithdraw, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureWithdraw); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	released, err := c.collateral.Withdraw(e.AccountID, e.Amount, e.Timestamp, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.AccountID, released)
}

func (c *LedgerCore) handleCollateralStake(e *event.CollateralStake, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureDeposit); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	return c.collateral.Stake(e.AccountID, e.Amount, batch)
}

func (c *LedgerCore) handleCollateralUnstake(e *event.CollateralUnstake, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureWithdraw); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	return c.collateral.Unstake(e.AccountID, e.Amount, batch)
}

func (c *LedgerCore) handleSavingsDeposit(e *event.SavingsDeposit, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureDeposit); err != nil {
		return err
	}
	if err := c.rejectBlacklisted(e.AccountID); err != nil {
		return err
	}
	// Accrue before the balance change so the new principal only earns
	// from this timestamp forward.
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	if err := c.rewards.DepositSavings(e.AccountID, e.Amount, e.Referrer, batch); err != nil {
		return err
	}
	return c.acceptFunds(e.AccountID, e.Amount)
}

func (c *LedgerCore) handleSavingsWithdraw(e *event.SavingsWithdraw, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureWithdraw); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	released, err := c.rewards.WithdrawSavings(e.AccountID, e.Amount, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.AccountID, released)
}

func (c *LedgerCore) handleLoanBorrow(e *event.LoanBorrow, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureBorrow); err != nil {
		return err
	}
	if err := c.rejectBlacklisted(e.AccountID); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	payout, err := c.loans.Borrow(e.AccountID, e.Amount, e.Timestamp, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.AccountID, payout)
}

func (c *LedgerCore) handleLoanRepay(e *event.LoanRepay, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureRepay); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	res, err := c.loans.Repay(e.AccountID, e.Payment, e.Timestamp, batch)
	if err != nil {
		return err
	}
	if err := c.acceptFunds(e.AccountID, e.Payment); err != nil {
		return err
	}
	return c.payOut(e.AccountID, res.Refund)
}

func (c *LedgerCore) handleLoanExtend(e *event.LoanExtend, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureRepay); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	refund, err := c.loans.Extend(e.AccountID, e.Payment, e.Timestamp, batch)
	if err != nil {
		return err
	}
	if err := c.acceptFunds(e.AccountID, e.Payment); err != nil {
		return err
	}
	return c.payOut(e.AccountID, refund)
}

func (c *LedgerCore) handleLoanTransfer(e *event.LoanTransfer, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureBorrow); err != nil {
		return err
	}
	if err := c.rejectBlacklisted(e.FromID); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.FromID, e.Timestamp)
	c.accrual.AccrueAccount(e.ToID, e.Timestamp)
	return c.loans.Transfer(e.FromID, e.ToID, batch)
}

func (c *LedgerCore) handleLiquidate(e *event.Liquidate, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureLiquidate); err != nil {
		return err
	}
	// Interest must be current: unaccrued interest could hide an
	// unhealthy loan.
	c.accrual.AccrueAccount(e.BorrowerID, e.Timestamp)
	res, err := c.liquidation.Liquidate(e.LiquidatorID, e.BorrowerID, e.Timestamp, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.LiquidatorID, res.Bonus)
}

func (c *LedgerCore) handlePartialLiquidate(e *event.PartialLiquidate, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureLiquidate); err != nil {
		return err
	}
	if e.Payment != e.RepayAmount {
		return fmt.Errorf("%w: payment %d must equal repay amount %d",
			state.ErrValidation, e.Payment, e.RepayAmount)
	}
	c.accrual.AccrueAccount(e.BorrowerID, e.Timestamp)
	res, err := c.liquidation.PartialLiquidate(e.LiquidatorID, e.BorrowerID, e.RepayAmount, e.Timestamp, batch)
	if err != nil {
		return err
	}
	if err := c.acceptFunds(e.LiquidatorID, e.Payment); err != nil {
		return err
	}
	return c.payOut(e.LiquidatorID, res.Seized)
}

func (c *LedgerCore) handleRewardClaim(e *event.RewardClaim, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureReward); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	payout, err := c.rewards.Claim(e.AccountID, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.AccountID, payout)
}

func (c *LedgerCore) handleRewardCompound(e *event.RewardCompound, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureReward); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	_, err := c.rewards.Compound(e.AccountID, batch)
	return err
}

func (c *LedgerCore) handleFixedDepositCreate(e *event.FixedDepositCreate, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureDeposit); err != nil {
		return err
	}
	if err := c.rejectBlacklisted(e.AccountID); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	if _, err := c.rewards.CreateFixedDeposit(e.AccountID, e.Amount, e.LockDuration, e.RateMultiplier, e.Timestamp, batch); err != nil {
		return err
	}
	return c.acceptFunds(e.AccountID, e.Amount)
}

func (c *LedgerCore) handleFixedDepositWithdraw(e *event.FixedDepositWithdraw, batch *ledger.Batch) error {
	if err := c.gate(state.FeatureWithdraw); err != nil {
		return err
	}
	c.accrual.AccrueAccount(e.AccountID, e.Timestamp)
	amount, err := c.rewards.WithdrawFixedDeposit(e.AccountID, int(e.Index), e.Timestamp, batch)
	if err != nil {
		return err
	}
	return c.payOut(e.AccountID, amount)
}

func (c *LedgerCore) handleParamUpdate(e *event.ParamUpdate) error {
	if !c.access.IsAuthorized(e.CallerID, state.ActionUpdateParams) {
		return fmt.Errorf("%w: %s cannot update parameters", ErrUnauthorized, e.CallerID)
	}
	if err := c.params.Update(e.Params); err != nil {
		return err
	}
	c.paramsVersion = e.Version
	return nil
}

func (c *LedgerCore) handleAccountFlagUpdate(e *event.AccountFlagUpdate) error {
	if !c.access.IsAuthorized(e.CallerID, state.ActionFlagAccount) {
		return fmt.Errorf("%w: %s cannot flag accounts", ErrUnauthorized, e.CallerID)
	}
	u := c.store.EnsureAccount(e.AccountID)
	u.Blacklisted = e.Blacklisted
	return nil
}

// postCheckInvariants runs after every successful dispatch. A failure
// here means a handler corrupted state; the process halts rather than
// persist a bad ledger.
func (c *LedgerCore) postCheckInvariants(evt event.Event) error {
	for _, id := range c.touchedAccounts(evt) {
		if c.store.Account(id) == nil {
			continue
		}
		if err := c.validator.ValidateAccountNonNegative(id); err != nil {
			return err
		}
		if err := c.validator.ValidateLoanConsistency(id); err != nil {
			return err
		}
	}

	// Periodic full reconciliation of aggregates against sums.
	if c.sequence > 0 && c.sequence%1000 == 0 {
		if err := c.validator.ValidateAggregates(); err != nil {
			return err
		}
	}
	return nil
}

// computeStateDigest builds canonical bytes over every account a batch
// touched, plus the global aggregates. Accounts are sorted by id so the
// digest is replay-stable.
func (c *LedgerCore) computeStateDigest(batch *ledger.Batch) []byte {
	touched := make(map[uuid.UUID]bool)
	if batch != nil {
		for _, m := range batch.Movements {
			if m.From.Scope == ledger.ScopeUser {
				touched[m.From.AccountID] = true
			}
			if m.To.Scope == ledger.ScopeUser {
				touched[m.To.AccountID] = true
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(touched))
	for id := range touched {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})

	digest := make([]byte, 0, len(ids)*64+48)
	for _, id := range ids {
		digest = append(digest, id[:]...)
		u := c.store.Account(id)
		if u == nil {
			u = &ledger.User{}
		}
		digest = appendInt64LE(digest, u.CollateralDeposited)
		digest = appendInt64LE(digest, u.StakedCollateral)
		digest = appendInt64LE(digest, u.DepositedSavings)
		digest = appendInt64LE(digest, u.Borrowed)
		digest = appendInt64LE(digest, u.RewardAccumulated)
		if loan := c.store.ActiveLoan(id); loan != nil {
			digest = appendInt64LE(digest, loan.Principal)
			digest = appendInt64LE(digest, loan.InterestAccrued)
		} else {
			digest = appendInt64LE(digest, 0)
			digest = appendInt64LE(digest, 0)
		}
	}

	agg := c.store.Aggregates()
	digest = appendInt64LE(digest, agg.TotalCollateral)
	digest = appendInt64LE(digest, agg.TotalBorrowed)
	digest = appendInt64LE(digest, agg.TotalDeposits)
	digest = appendInt64LE(digest, agg.ProtocolFees)
	digest = appendInt64LE(digest, c.store.CashBalance())

	return digest
}

func appendInt64LE(buf []byte, v int64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}
