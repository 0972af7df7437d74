package assignmentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/taskearn/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var columns = []string{"id", "task_id", "user_id", "status", "payment", "payment_received_status", "created_at"}

func TestRepository_Create(t *testing.T) {
	a := &domain.Assignment{
		ID:                    uuid.New(),
		TaskID:                uuid.New(),
		UserID:                uuid.New(),
		Status:                domain.AssignmentActive,
		Payment:               decimal.Zero,
		PaymentReceivedStatus: domain.PaymentPending,
		CreatedAt:             time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		mockSetup   func(mock pgxmock.PgxPoolIface)
		expectedErr error
	}{
		{
			name: "saved",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO task_assignments")).
					WithArgs(a.ID, a.TaskID, a.UserID, a.Status, pgxmock.AnyArg(), a.PaymentReceivedStatus, a.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "second join of the same task",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO task_assignments")).
					WithArgs(a.ID, a.TaskID, a.UserID, a.Status, pgxmock.AnyArg(), a.PaymentReceivedStatus, a.CreatedAt).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name: "store failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO task_assignments")).
					WithArgs(a.ID, a.TaskID, a.UserID, a.Status, pgxmock.AnyArg(), a.PaymentReceivedStatus, a.CreatedAt).
					WillReturnError(errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			err := repo.Create(context.Background(), a)
			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
			case domain.IsDomain(tt.expectedErr):
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	taskID, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1 AND user_id = $2 FOR UPDATE")).
		WithArgs(taskID, userID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), taskID, userID, domain.AssignmentPending, decimal.Zero, domain.PaymentPending, now))
	a, err := repo.GetForUpdate(context.Background(), taskID, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentPending, a.Status)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1 AND user_id = $2 FOR UPDATE")).
		WithArgs(taskID, userID).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetForUpdate(context.Background(), taskID, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByTask(t *testing.T) {
	repo, mock := NewMock(t)
	taskID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE task_id = $1 ORDER BY created_at")).
		WithArgs(taskID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(uuid.New(), taskID, uuid.New(), domain.AssignmentCompleted, decimal.NewFromInt(20), domain.PaymentCompleted, now).
			AddRow(uuid.New(), taskID, uuid.New(), domain.AssignmentActive, decimal.Zero, domain.PaymentPending, now.Add(time.Minute)))

	list, err := repo.ListByTask(context.Background(), taskID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "20", list[0].Payment.String())
	assert.Equal(t, domain.AssignmentActive, list[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	a := &domain.Assignment{ID: uuid.New(), Status: domain.AssignmentCompleted, Payment: decimal.NewFromInt(20), PaymentReceivedStatus: domain.PaymentCompleted}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE task_assignments")).
		WithArgs(a.Status, pgxmock.AnyArg(), a.PaymentReceivedStatus, a.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CascadeStatus(t *testing.T) {
	taskID := uuid.New()

	tests := []struct {
		name      string
		from      []domain.AssignmentStatus
		to        domain.AssignmentStatus
		statuses  []string
		result    pgconn.CommandTag
		err       error
		wantCount int64
	}{
		{
			name:      "pause moves active assignments",
			from:      []domain.AssignmentStatus{domain.AssignmentActive},
			to:        domain.AssignmentPaused,
			statuses:  []string{"active"},
			result:    pgxmock.NewResult("UPDATE", 4),
			wantCount: 4,
		},
		{
			name:      "close out covers every non-terminal status",
			from:      domain.NonTerminalAssignmentStatuses,
			to:        domain.AssignmentCompleted,
			statuses:  statusStrings(domain.NonTerminalAssignmentStatuses),
			result:    pgxmock.NewResult("UPDATE", 0),
			wantCount: 0,
		},
		{
			name:     "store failure",
			from:     []domain.AssignmentStatus{domain.AssignmentPaused},
			to:       domain.AssignmentActive,
			statuses: []string{"paused"},
			err:      errors.New("deadlock detected"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("WHERE task_id = $2 AND status = ANY($3)")).
				WithArgs(tt.to, taskID, tt.statuses)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			n, err := repo.CascadeStatus(context.Background(), taskID, tt.from, tt.to)
			if tt.err != nil {
				assert.EqualError(t, err, tt.err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCount, n)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func statusStrings(statuses []domain.AssignmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
