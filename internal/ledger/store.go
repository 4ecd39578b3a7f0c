package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Store is the authoritative in-memory state: account records, loans,
// fixed deposits, global aggregates and the cash balance physically held
// by the system. It is not thread-safe — only the single-threaded core
// touches it.
//
// Fields that roll up into an aggregate are mutated exclusively through
// the paired mutators below so the aggregate can never drift from the
// per-account sum. Fields without an aggregate (reward accumulator,
// checkpoints, flags) are mutated directly by the state managers.
type Store struct {
	accounts map[uuid.UUID]*User
	loans    map[uuid.UUID]*Loan
	fixed    map[uuid.UUID][]*FixedDeposit
	agg      Aggregates
	cash     int64
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*User),
		loans:    make(map[uuid.UUID]*Loan),
		fixed:    make(map[uuid.UUID][]*FixedDeposit),
	}
}

// Account returns the record for id, or nil if the account has never
// interacted.
func (s *Store) Account(id uuid.UUID) *User {
	return s.accounts[id]
}

// EnsureAccount returns the record for id, creating it on first touch.
func (s *Store) EnsureAccount(id uuid.UUID) *User {
	if u, ok := s.accounts[id]; ok {
		return u
	}
	u := &User{AccountID: id}
	s.accounts[id] = u
	return u
}

// Loan returns the loan record for id, or nil.
func (s *Store) Loan(id uuid.UUID) *Loan {
	return s.loans[id]
}

// EnsureLoan returns the loan record for id, creating an inactive one if
// none exists.
func (s *Store) EnsureLoan(id uuid.UUID) *Loan {
	if l, ok := s.loans[id]; ok {
		return l
	}
	l := &Loan{AccountID: id}
	s.loans[id] = l
	return l
}

// ActiveLoan returns the loan for id only when it is active.
func (s *Store) ActiveLoan(id uuid.UUID) *Loan {
	l := s.loans[id]
	if l == nil || !l.Active {
		return nil
	}
	return l
}

// MoveLoan reassigns the loan record from one account to another. The
// borrowed balance moves with it; collateral does not (policy decides
// that separately).
func (s *Store) MoveLoan(from, to uuid.UUID) error {
	loan := s.ActiveLoan(from)
	if loan == nil {
		return fmt.Errorf("no active loan for %s", from)
	}
	if s.ActiveLoan(to) != nil {
		return fmt.Errorf("account %s already has an active loan", to)
	}
	loan.AccountID = to
	s.loans[to] = loan
	delete(s.loans, from)
	return nil
}

// FixedDeposits returns the fixed deposit records for an account.
func (s *Store) FixedDeposits(id uuid.UUID) []*FixedDeposit {
	return s.fixed[id]
}

// AppendFixedDeposit records a new fixed deposit and returns its index.
// Fixed deposits count toward TotalDeposits but are tracked outside
// DepositedSavings to keep the base-reward pool disjoint.
func (s *Store) AppendFixedDeposit(fd *FixedDeposit) int {
	s.fixed[fd.AccountID] = append(s.fixed[fd.AccountID], fd)
	s.agg.TotalDeposits += fd.Amount
	return len(s.fixed[fd.AccountID]) - 1
}

// CloseFixedDeposit zeroes an active fixed deposit and releases its
// amount from TotalDeposits. Returns the released amount.
func (s *Store) CloseFixedDeposit(id uuid.UUID, index int) (int64, error) {
	deposits := s.fixed[id]
	if index < 0 || index >= len(deposits) {
		return 0, fmt.Errorf("fixed deposit index %d out of range", index)
	}
	fd := deposits[index]
	if !fd.Active {
		return 0, fmt.Errorf("fixed deposit %d is not active", index)
	}
	amount := fd.Amount
	fd.Amount = 0
	fd.Active = false
	s.agg.TotalDeposits -= amount
	return amount, nil
}

// Aggregates returns a copy of the global aggregates.
func (s *Store) Aggregates() Aggregates {
	return s.agg
}

// --- Paired mutators (per-account field + aggregate in lockstep) ---

// AddCollateral credits free collateral.
func (s *Store) AddCollateral(u *User, amount int64) {
	u.CollateralDeposited += amount
	s.agg.TotalCollateral += amount
}

// SubCollateral releases free collateral. The caller has already
// validated the balance.
func (s *Store) SubCollateral(u *User, amount int64) {
	u.CollateralDeposited -= amount
	s.agg.TotalCollateral -= amount
}

// StakeCollateral moves free collateral into the staked bucket. Both
// buckets roll up into TotalCollateral, so the aggregate is unchanged.
func (s *Store) StakeCollateral(u *User, amount int64) {
	u.CollateralDeposited -= amount
	u.StakedCollateral += amount
}

// UnstakeCollateral moves staked collateral back to the free bucket.
func (s *Store) UnstakeCollateral(u *User, amount int64) {
	u.StakedCollateral -= amount
	u.CollateralDeposited += amount
}

// AddSavings credits the savings deposit balance.
func (s *Store) AddSavings(u *User, amount int64) {
	u.DepositedSavings += amount
	s.agg.TotalDeposits += amount
}

// SubSavings debits the savings deposit balance.
func (s *Store) SubSavings(u *User, amount int64) {
	u.DepositedSavings -= amount
	s.agg.TotalDeposits -= amount
}

// AddBorrowed books newly borrowed principal.
func (s *Store) AddBorrowed(u *User, amount int64) {
	u.Borrowed += amount
	s.agg.TotalBorrowed += amount
}

// SubBorrowed releases repaid or liquidated principal.
func (s *Store) SubBorrowed(u *User, amount int64) {
	u.Borrowed -= amount
	s.agg.TotalBorrowed -= amount
}

// CreditTreasury adds protocol fee income.
func (s *Store) CreditTreasury(amount int64) {
	s.agg.ProtocolFees += amount
}

// --- Cash ---

// CreditCash books value accepted into the system.
func (s *Store) CreditCash(amount int64) {
	s.cash += amount
}

// DebitCash books value released out of the system.
func (s *Store) DebitCash(amount int64) error {
	if amount > s.cash {
		return fmt.Errorf("cash underflow: have=%d, need=%d", s.cash, amount)
	}
	s.cash -= amount
	return nil
}

// CashBalance returns the value physically held.
func (s *Store) CashBalance() int64 {
	return s.cash
}

// LendableLiquidity is the cash available for borrowing and flash loans:
// deposited funds not currently lent out. Collateral is never lent.
func (s *Store) LendableLiquidity() int64 {
	free := s.agg.TotalDeposits - s.agg.TotalBorrowed
	if free < 0 {
		return 0
	}
	return free
}

// --- Sums over per-account records (invariant checks) ---

// SumCollateral folds CollateralDeposited + StakedCollateral across all
// accounts.
func (s *Store) SumCollateral() int64 {
	var total int64
	for _, u := range s.accounts {
		total += u.CollateralDeposited + u.StakedCollateral
	}
	return total
}

// SumBorrowedPrincipal folds principal across active loans.
func (s *Store) SumBorrowedPrincipal() int64 {
	var total int64
	for _, l := range s.loans {
		if l.Active {
			total += l.Principal
		}
	}
	return total
}

// SumDeposits folds DepositedSavings plus active fixed deposit amounts.
func (s *Store) SumDeposits() int64 {
	var total int64
	for _, u := range s.accounts {
		total += u.DepositedSavings
	}
	for _, deposits := range s.fixed {
		for _, fd := range deposits {
			if fd.Active {
				total += fd.Amount
			}
		}
	}
	return total
}

// --- Operation checkpoints (rollback support) ---

// Checkpoint captures the records an operation may touch plus the global
// aggregates and cash, so a failed operation can be undone without a
// full state copy. Accounts absent at capture time are recorded as nil
// and deleted again on restore.
type Checkpoint struct {
	users      map[uuid.UUID]*User
	loans      map[uuid.UUID]*Loan
	fixed      map[uuid.UUID][]*FixedDeposit
	aggregates Aggregates
	cash       int64
}

// Capture snapshots the given accounts.
func (s *Store) Capture(ids ...uuid.UUID) *Checkpoint {
	cp := &Checkpoint{
		users:      make(map[uuid.UUID]*User, len(ids)),
		loans:      make(map[uuid.UUID]*Loan, len(ids)),
		fixed:      make(map[uuid.UUID][]*FixedDeposit, len(ids)),
		aggregates: s.agg,
		cash:       s.cash,
	}
	for _, id := range ids {
		cp.users[id] = s.accounts[id].Clone()
		cp.loans[id] = s.loans[id].Clone()
		if deposits, ok := s.fixed[id]; ok {
			cloned := make([]*FixedDeposit, len(deposits))
			for i, fd := range deposits {
				cloned[i] = fd.Clone()
			}
			cp.fixed[id] = cloned
		} else {
			cp.fixed[id] = nil
		}
	}
	return cp
}

// Restore rolls the captured accounts, aggregates and cash back to their
// state at capture time.
func (s *Store) Restore(cp *Checkpoint) {
	if cp == nil {
		return
	}
	for id, u := range cp.users {
		if u == nil {
			delete(s.accounts, id)
		} else {
			s.accounts[id] = u
		}
	}
	for id, l := range cp.loans {
		if l == nil {
			delete(s.loans, id)
		} else {
			s.loans[id] = l
		}
	}
	for id, deposits := range cp.fixed {
		if deposits == nil {
			delete(s.fixed, id)
		} else {
			s.fixed[id] = deposits
		}
	}
	s.agg = cp.aggregates
	s.cash = cp.cash
}

// --- Full snapshot (persistence / recovery) ---

// SnapshotState is a deep copy of the whole store.
type SnapshotState struct {
	Accounts      map[uuid.UUID]*User
	Loans         map[uuid.UUID]*Loan
	FixedDeposits map[uuid.UUID][]*FixedDeposit
	Aggregates    Aggregates
	Cash          int64
}

// Snapshot deep-copies the store for persistence.
func (s *Store) Snapshot() *SnapshotState {
	snap := &SnapshotState{
		Accounts:      make(map[uuid.UUID]*User, len(s.accounts)),
		Loans:         make(map[uuid.UUID]*Loan, len(s.loans)),
		FixedDeposits: make(map[uuid.UUID][]*FixedDeposit, len(s.fixed)),
		Aggregates:    s.agg,
		Cash:          s.cash,
	}
	for id, u := range s.accounts {
		snap.Accounts[id] = u.Clone()
	}
	for id, l := range s.loans {
		snap.Loans[id] = l.Clone()
	}
	for id, deposits := range s.fixed {
		cloned := make([]*FixedDeposit, len(deposits))
		for i, fd := range deposits {
			cloned[i] = fd.Clone()
		}
		snap.FixedDeposits[id] = cloned
	}
	return snap
}

// RestoreSnapshot replaces the whole store state. Used at warm restart
// before event replay.
func (s *Store) RestoreSnapshot(snap *SnapshotState) {
	s.accounts = make(map[uuid.UUID]*User, len(snap.Accounts))
	for id, u := range snap.Accounts {
		s.accounts[id] = u.Clone()
	}
	s.loans = make(map[uuid.UUID]*Loan, len(snap.Loans))
	for id, l := range snap.Loans {
		s.loans[id] = l.Clone()
	}
	s.fixed = make(map[uuid.UUID][]*FixedDeposit, len(snap.FixedDeposits))
	for id, deposits := range snap.FixedDeposits {
		cloned := make([]*FixedDeposit, len(deposits))
		for i, fd := range deposits {
			cloned[i] = fd.Clone()
		}
		s.fixed[id] = cloned
	}
	s.agg = snap.Aggregates
	s.cash = snap.Cash
}

// AllAccounts returns every account record (iteration order undefined;
// callers that hash or persist must sort).
func (s *Store) AllAccounts() []*User {
	out := make([]*User, 0, len(s.accounts))
	for _, u := range s.accounts {
		out = append(out, u)
	}
	return out
}
