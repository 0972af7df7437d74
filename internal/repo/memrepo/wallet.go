package memrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

type Accounts struct {
	store *Store
}

func (r *Accounts) Create(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	defer r.store.lock(ctx)()
	if _, ok := r.store.data.accounts[userID]; ok {
		return nil, fmt.Errorf("account %s: %w", userID, domain.ErrConflict)
	}
	now := time.Now()
	account := domain.Account{
		UserID:      userID,
		Balance:     decimal.Zero,
		TotalEarned: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.store.data.accounts[userID] = account
	return &account, nil
}

func (r *Accounts) Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	defer r.store.lock(ctx)()
	account, ok := r.store.data.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", userID, domain.ErrNotFound)
	}
	return &account, nil
}

func (r *Accounts) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	return r.Get(ctx, userID)
}

func (r *Accounts) UpdateBalance(ctx context.Context, account *domain.Account) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.data.accounts[account.UserID]
	if !ok {
		return fmt.Errorf("account %s: %w", account.UserID, domain.ErrNotFound)
	}
	if account.Balance.IsNegative() {
		return fmt.Errorf("account %s: negative balance violates check constraint", account.UserID)
	}
	current.Balance = account.Balance
	current.TotalEarned = account.TotalEarned
	current.UpdatedAt = account.UpdatedAt
	r.store.data.accounts[account.UserID] = current
	return nil
}

type Ledger struct {
	store *Store
}

func (r *Ledger) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	defer r.store.lock(ctx)()
	if _, ok := r.store.data.accounts[entry.AccountID]; !ok {
		return nil, fmt.Errorf("account %s: %w", entry.AccountID, domain.ErrNotFound)
	}
	r.store.data.ledger = append(r.store.data.ledger, *entry)
	return entry, nil
}

// ListByAccount returns the newest entries first.
func (r *Ledger) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	defer r.store.lock(ctx)()
	var entries []domain.LedgerEntry
	for i := len(r.store.data.ledger) - 1; i >= 0; i-- {
		e := r.store.data.ledger[i]
		if e.AccountID != accountID {
			continue
		}
		entries = append(entries, e)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *Ledger) SumCredits(ctx context.Context, accountID uuid.UUID, reason domain.EntryReason, since time.Time) (decimal.Decimal, error) {
	defer r.store.lock(ctx)()
	sum := decimal.Zero
	for _, e := range r.store.data.ledger {
		if e.AccountID == accountID && e.Type == domain.EntryCredit && e.Reason == reason && !e.CreatedAt.Before(since) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

// All returns every entry in append order.
func (r *Ledger) All(ctx context.Context) []domain.LedgerEntry {
	defer r.store.lock(ctx)()
	return append([]domain.LedgerEntry(nil), r.store.data.ledger...)
}

type Audit struct {
	store *Store
}

func (r *Audit) Record(ctx context.Context, action *domain.AdminAction) error {
	defer r.store.lock(ctx)()
	r.store.data.audit = append(r.store.data.audit, *action)
	return nil
}

func (r *Audit) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.AdminAction, error) {
	defer r.store.lock(ctx)()
	var actions []domain.AdminAction
	for _, a := range r.store.data.audit {
		if a.TargetID == targetID {
			actions = append(actions, a)
		}
	}
	return actions, nil
}

type Suspensions struct {
	store *Store
}

func (r *Suspensions) AppendSuspension(ctx context.Context, rec *domain.SuspensionRecord) error {
	defer r.store.lock(ctx)()
	r.store.data.suspensions = append(r.store.data.suspensions, *rec)
	return nil
}

func (r *Suspensions) AppendReactivation(ctx context.Context, rec *domain.ReactivationRecord) error {
	defer r.store.lock(ctx)()
	r.store.data.reactivations = append(r.store.data.reactivations, *rec)
	return nil
}

func (r *Suspensions) ListSuspensions(ctx context.Context, userID uuid.UUID) ([]domain.SuspensionRecord, error) {
	defer r.store.lock(ctx)()
	var records []domain.SuspensionRecord
	for _, rec := range r.store.data.suspensions {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}
