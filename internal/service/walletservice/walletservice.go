package walletservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
	"github.com/GlebRadaev/taskearn/pkg/metrics"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type AccountRepo interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, account *domain.Account) error
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
}

type AuditRepo interface {
	Record(ctx context.Context, action *domain.AdminAction) error
}

const (
	DefaultEntriesLimit = 50
	MaxEntriesLimit     = 500
)

// CreditRequest moves money into an account. DebitRequest has the same shape.
type CreditRequest struct {
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Reason      domain.EntryReason
	Actor       domain.Actor
	ReferenceID string
}

type DebitRequest CreditRequest

type Service struct {
	accounts AccountRepo
	ledger   LedgerRepo
	audit    AuditRepo
	tx       pg.TXManager
	now      func() time.Time
}

func New(accounts AccountRepo, ledger LedgerRepo, audit AuditRepo, tx pg.TXManager) *Service {
	return &Service{
		accounts: accounts,
		ledger:   ledger,
		audit:    audit,
		tx:       tx,
		now:      time.Now,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accounts.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create account", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetAccount(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accounts.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = DefaultEntriesLimit
	}
	if limit > MaxEntriesLimit {
		limit = MaxEntriesLimit
	}
	entries, err := s.ledger.ListByAccount(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Credit adds amount to the account and appends the matching entry in one transaction.
// Inside a caller's transaction it joins it, so callers get all-or-nothing semantics with their own writes.
func (s *Service) Credit(ctx context.Context, req CreditRequest) (*domain.LedgerEntry, error) {
	entry, err := s.apply(ctx, domain.EntryCredit, req)
	metrics.RecordWalletOperation(string(domain.EntryCredit), string(req.Reason), err)
	return entry, err
}

// Debit never leaves a partial change: insufficient funds fail before anything is written.
func (s *Service) Debit(ctx context.Context, req DebitRequest) (*domain.LedgerEntry, error) {
	entry, err := s.apply(ctx, domain.EntryDebit, CreditRequest(req))
	metrics.RecordWalletOperation(string(domain.EntryDebit), string(req.Reason), err)
	return entry, err
}

func validate(req CreditRequest) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive: %w", req.Amount, domain.ErrInvalidAmount)
	}
	if !domain.FitsMoneyScale(req.Amount) {
		return fmt.Errorf("amount %s has more than %d decimal places: %w", req.Amount, domain.MoneyScale, domain.ErrInvalidAmount)
	}
	if !req.Reason.Valid() {
		return fmt.Errorf("unknown reason %q: %w", req.Reason, domain.ErrValidation)
	}
	if !req.Actor.Valid() {
		return fmt.Errorf("unknown actor %q: %w", req.Actor, domain.ErrValidation)
	}
	if req.AccountID == uuid.Nil {
		return fmt.Errorf("account id is required: %w", domain.ErrValidation)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, entryType domain.EntryType, req CreditRequest) (*domain.LedgerEntry, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.GetForUpdate(ctx, req.AccountID)
		if err != nil {
			return err
		}

		before := account.Balance
		var after decimal.Decimal
		switch entryType {
		case domain.EntryCredit:
			after = before.Add(req.Amount)
			account.TotalEarned = account.TotalEarned.Add(req.Amount)
		case domain.EntryDebit:
			if before.LessThan(req.Amount) {
				return fmt.Errorf("balance %s, requested %s: %w", before.StringFixed(2), req.Amount.StringFixed(2), domain.ErrInsufficientFunds)
			}
			after = before.Sub(req.Amount)
		}

		now := s.now()
		account.Balance = after
		account.UpdatedAt = now

		entry = &domain.LedgerEntry{
			ID:            uuid.New(),
			AccountID:     account.UserID,
			Type:          entryType,
			Amount:        req.Amount,
			BalanceBefore: before,
			BalanceAfter:  after,
			Reason:        req.Reason,
			Actor:         req.Actor,
			ReferenceID:   req.ReferenceID,
			CreatedAt:     now,
		}
		if _, err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}
		return s.accounts.UpdateBalance(ctx, account)
	})
	if err != nil {
		if !domain.IsDomain(err) {
			zap.L().Error("wallet operation failed",
				zap.String("type", string(entryType)),
				zap.String("account_id", req.AccountID.String()),
				zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("wallet entry recorded",
		zap.String("type", string(entryType)),
		zap.String("account_id", req.AccountID.String()),
		zap.String("amount", req.Amount.String()),
		zap.String("reason", string(req.Reason)))
	return entry, nil
}

// AdminAdjust is the manual correction path. It goes through Credit or Debit like any other money movement.
func (s *Service) AdminAdjust(ctx context.Context, actor domain.Principal, userID uuid.UUID, direction domain.EntryType, amount decimal.Decimal, note string) (*domain.LedgerEntry, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("wallet adjustment requires admin: %w", domain.ErrForbidden)
	}
	if direction != domain.EntryCredit && direction != domain.EntryDebit {
		return nil, fmt.Errorf("unknown direction %q: %w", direction, domain.ErrValidation)
	}

	adjustmentID := uuid.New()
	var entry *domain.LedgerEntry
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		req := CreditRequest{
			AccountID:   userID,
			Amount:      amount,
			Reason:      domain.ReasonAdminAdjustment,
			Actor:       domain.ActorAdmin,
			ReferenceID: adjustmentID.String(),
		}
		var err error
		if direction == domain.EntryCredit {
			entry, err = s.Credit(ctx, req)
		} else {
			entry, err = s.Debit(ctx, DebitRequest(req))
		}
		if err != nil {
			return err
		}

		action, err := domain.NewAdminAction(domain.ActionWalletAdjust, actor, userID, map[string]any{
			"direction": direction,
			"amount":    amount.String(),
			"note":      note,
			"entry_id":  entry.ID,
		}, s.now())
		if err != nil {
			return err
		}
		return s.audit.Record(ctx, action)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
