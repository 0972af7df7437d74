package taskrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

var columns = []string{"id", "advertiser_id", "title", "description", "rate_to_user", "limit_count", "advertiser_cost",
	"status", "paid", "start_at", "end_at", "require_kyc", "completed_count", "pause_reason", "completion_reason",
	"created_at", "updated_at"}

func taskRow(rows *pgxmock.Rows, id uuid.UUID, status domain.TaskStatus) *pgxmock.Rows {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(id, uuid.New(), "Install app", "", decimal.NewFromInt(25), 10, decimal.NewFromInt(30),
		status, true, now, now.Add(72*time.Hour), false, 3, "", "", now, now)
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(taskRow(pgxmock.NewRows(columns), id, domain.TaskApproved))
	task, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskApproved, task.Status)
	assert.Equal(t, 7, task.RemainingSlots())
	assert.Equal(t, "25", task.RateToUser.String())

	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetForUpdate(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name     string
		status   domain.TaskStatus
		expected int
	}{
		{name: "All tasks", status: "", expected: 2},
		{name: "Filtered by status", status: domain.TaskPaused, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := pgxmock.NewRows(columns)
			for i := 0; i < tt.expected; i++ {
				taskRow(rows, uuid.New(), domain.TaskPaused)
			}
			mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1 = '' OR status = $1)")).
				WithArgs(string(tt.status)).
				WillReturnRows(rows)

			tasks, err := repo.List(context.Background(), tt.status)
			require.NoError(t, err)
			assert.Len(t, tasks, tt.expected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	task := &domain.Task{ID: uuid.New(), Status: domain.TaskPaused, PauseReason: "budget review", UpdatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
		WithArgs(task.Status, task.Paid, task.CompletedCount, task.PauseReason, task.CompletionReason, task.UpdatedAt, task.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), task))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks")).
		WithArgs(task.Status, task.Paid, task.CompletedCount, task.PauseReason, task.CompletionReason, task.UpdatedAt, task.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), task), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
