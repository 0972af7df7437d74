package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/taskearn/internal/domain"
	"github.com/GlebRadaev/taskearn/internal/pg"
)

var fixedNow = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockLedgerRepo, *MockAuditRepo) {
	ctrl := gomock.NewController(t)
	accounts := NewMockAccountRepo(ctrl)
	ledger := NewMockLedgerRepo(ctrl)
	audit := NewMockAuditRepo(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(accounts, ledger, audit, tx)
	service.now = func() time.Time { return fixedNow }
	return service, accounts, ledger, audit
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCredit(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		req         CreditRequest
		prepareMock func(accounts *MockAccountRepo, ledger *MockLedgerRepo)
		wantBalance string
		wantErr     error
	}{
		{
			name: "Successful credit",
			req:  CreditRequest{AccountID: userID, Amount: dec("100"), Reason: domain.ReasonTaskReward, Actor: domain.ActorAdmin, ReferenceID: "sub-1"},
			prepareMock: func(accounts *MockAccountRepo, ledger *MockLedgerRepo) {
				accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("50"), TotalEarned: dec("50")}, nil)
				ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
					return e, nil
				})
				accounts.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
					assert.Equal(t, "150", a.Balance.String())
					assert.Equal(t, "150", a.TotalEarned.String())
					return nil
				})
			},
			wantBalance: "150",
		},
		{
			name:        "Zero amount",
			req:         CreditRequest{AccountID: userID, Amount: decimal.Zero, Reason: domain.ReasonTaskReward, Actor: domain.ActorSystem},
			prepareMock: func(*MockAccountRepo, *MockLedgerRepo) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "Negative amount",
			req:         CreditRequest{AccountID: userID, Amount: dec("-5"), Reason: domain.ReasonTaskReward, Actor: domain.ActorSystem},
			prepareMock: func(*MockAccountRepo, *MockLedgerRepo) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "Unknown reason",
			req:         CreditRequest{AccountID: userID, Amount: dec("1"), Reason: "gift", Actor: domain.ActorSystem},
			prepareMock: func(*MockAccountRepo, *MockLedgerRepo) {},
			wantErr:     domain.ErrValidation,
		},
		{
			name: "Account not found",
			req:  CreditRequest{AccountID: userID, Amount: dec("1"), Reason: domain.ReasonReferralReward, Actor: domain.ActorSystem},
			prepareMock: func(accounts *MockAccountRepo, _ *MockLedgerRepo) {
				accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, domain.ErrNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accounts, ledger, _ := NewMock(t)
			tt.prepareMock(accounts, ledger)

			entry, err := service.Credit(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.EntryCredit, entry.Type)
			assert.Equal(t, "50", entry.BalanceBefore.String())
			assert.Equal(t, tt.wantBalance, entry.BalanceAfter.String())
			assert.Equal(t, tt.req.ReferenceID, entry.ReferenceID)
			assert.Equal(t, fixedNow, entry.CreatedAt)
		})
	}
}

func TestDebit(t *testing.T) {
	userID := uuid.New()

	t.Run("Successful debit keeps total earned", func(t *testing.T) {
		service, accounts, ledger, _ := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("100"), TotalEarned: dec("300")}, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, nil)
		accounts.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Account) error {
			assert.Equal(t, "60", a.Balance.String())
			assert.Equal(t, "300", a.TotalEarned.String())
			return nil
		})

		entry, err := service.Debit(context.Background(), DebitRequest{AccountID: userID, Amount: dec("40"), Reason: domain.ReasonTaskCost, Actor: domain.ActorAdmin})
		require.NoError(t, err)
		assert.Equal(t, domain.EntryDebit, entry.Type)
		assert.Equal(t, "60", entry.BalanceAfter.String())
	})

	t.Run("Debit of the whole balance", func(t *testing.T) {
		service, accounts, ledger, _ := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("40")}, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, nil)
		accounts.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := service.Debit(context.Background(), DebitRequest{AccountID: userID, Amount: dec("40"), Reason: domain.ReasonTaskCost, Actor: domain.ActorAdmin})
		require.NoError(t, err)
		assert.True(t, entry.BalanceAfter.IsZero())
	})

	t.Run("Insufficient funds writes nothing", func(t *testing.T) {
		service, accounts, _, _ := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("39.99")}, nil)

		_, err := service.Debit(context.Background(), DebitRequest{AccountID: userID, Amount: dec("40"), Reason: domain.ReasonTaskCost, Actor: domain.ActorAdmin})
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Ledger failure", func(t *testing.T) {
		service, accounts, ledger, _ := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("100")}, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

		_, err := service.Debit(context.Background(), DebitRequest{AccountID: userID, Amount: dec("1"), Reason: domain.ReasonTaskCost, Actor: domain.ActorAdmin})
		assert.EqualError(t, err, "disk full")
	})
}

func TestAdminAdjust(t *testing.T) {
	userID := uuid.New()
	admin := domain.Principal{UserID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("Non admin is forbidden", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		_, err := service.AdminAdjust(context.Background(), domain.Principal{UserID: uuid.New(), Role: domain.RoleUser}, userID, domain.EntryCredit, dec("1"), "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Unknown direction", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		_, err := service.AdminAdjust(context.Background(), admin, userID, "swap", dec("1"), "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Credit is audited", func(t *testing.T) {
		service, accounts, ledger, audit := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("10")}, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, nil)
		accounts.EXPECT().UpdateBalance(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.AdminAction) error {
			assert.Equal(t, domain.ActionWalletAdjust, a.Action)
			assert.Equal(t, admin.UserID, a.ActorID)
			assert.Equal(t, userID, a.TargetID)
			assert.Contains(t, string(a.Details), `"note":"chargeback"`)
			return nil
		})

		entry, err := service.AdminAdjust(context.Background(), admin, userID, domain.EntryCredit, dec("5"), "chargeback")
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonAdminAdjustment, entry.Reason)
		assert.Equal(t, domain.ActorAdmin, entry.Actor)
	})

	t.Run("Debit over balance is rejected", func(t *testing.T) {
		service, accounts, _, _ := NewMock(t)
		accounts.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("1")}, nil)

		_, err := service.AdminAdjust(context.Background(), admin, userID, domain.EntryDebit, dec("5"), "")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})
}

func TestListEntries(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"Default limit", 0, DefaultEntriesLimit},
		{"Explicit limit", 10, 10},
		{"Capped limit", 10000, MaxEntriesLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, ledger, _ := NewMock(t)
			ledger.EXPECT().ListByAccount(gomock.Any(), userID, tt.wantLimit).Return([]domain.LedgerEntry{}, nil)

			entries, err := service.ListEntries(context.Background(), userID, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestGetAccount(t *testing.T) {
	userID := uuid.New()
	service, accounts, _, _ := NewMock(t)

	accounts.EXPECT().Get(gomock.Any(), userID).Return(&domain.Account{UserID: userID, Balance: dec("7")}, nil)
	account, err := service.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "7", account.Balance.String())

	accounts.EXPECT().Get(gomock.Any(), userID).Return(nil, domain.ErrNotFound)
	_, err = service.GetAccount(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
