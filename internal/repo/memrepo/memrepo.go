// Package memrepo keeps every table in process memory. It backs the memory storage mode and the
// service level scenario tests. Transactions are serialized by a single store lock and undone from
// a snapshot when the unit of work fails.
package memrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
)

type state struct {
	users         map[uuid.UUID]domain.User
	accounts      map[uuid.UUID]domain.Account
	ledger        []domain.LedgerEntry
	tasks         map[uuid.UUID]domain.Task
	assignments   map[uuid.UUID]domain.Assignment
	submissions   map[uuid.UUID]domain.Submission
	audit         []domain.AdminAction
	suspensions   []domain.SuspensionRecord
	reactivations []domain.ReactivationRecord
	referrals     map[uuid.UUID]domain.ReferralEdge
}

func newState() *state {
	return &state{
		users:       map[uuid.UUID]domain.User{},
		accounts:    map[uuid.UUID]domain.Account{},
		tasks:       map[uuid.UUID]domain.Task{},
		assignments: map[uuid.UUID]domain.Assignment{},
		submissions: map[uuid.UUID]domain.Submission{},
		referrals:   map[uuid.UUID]domain.ReferralEdge{},
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone is shallow per row. Writers always replace slices held by a row instead of mutating them.
func (s *state) clone() *state {
	return &state{
		users:         copyMap(s.users),
		accounts:      copyMap(s.accounts),
		ledger:        append([]domain.LedgerEntry(nil), s.ledger...),
		tasks:         copyMap(s.tasks),
		assignments:   copyMap(s.assignments),
		submissions:   copyMap(s.submissions),
		audit:         append([]domain.AdminAction(nil), s.audit...),
		suspensions:   append([]domain.SuspensionRecord(nil), s.suspensions...),
		reactivations: append([]domain.ReactivationRecord(nil), s.reactivations...),
		referrals:     copyMap(s.referrals),
	}
}

type Store struct {
	mu   sync.Mutex
	data *state

	Accounts    *Accounts
	Ledger      *Ledger
	Users       *Users
	Tasks       *Tasks
	Assignments *Assignments
	Submissions *Submissions
	Audit       *Audit
	Suspensions *Suspensions
	Referrals   *Referrals
}

func New() *Store {
	s := &Store{data: newState()}
	s.Accounts = &Accounts{s}
	s.Ledger = &Ledger{s}
	s.Users = &Users{s}
	s.Tasks = &Tasks{s}
	s.Assignments = &Assignments{s}
	s.Submissions = &Submissions{s}
	s.Audit = &Audit{s}
	s.Suspensions = &Suspensions{s}
	s.Referrals = &Referrals{s}
	return s
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// lock takes the store lock unless ctx already runs inside a transaction that holds it.
func (s *Store) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// TXManager returns the transaction manager bound to the store.
func (s *Store) TXManager() pg.TXManager {
	return txManager{s}
}

type txManager struct {
	store *Store
}

func (m txManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snapshot := m.store.data.clone()
	err := fn(context.WithValue(ctx, txKey{}, true))
	if err != nil {
		m.store.data = snapshot
	}
	return err
}
