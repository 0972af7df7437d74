package submissionrepo

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

var columns = []string{"id", "task_id", "user_id", "proof_data", "status", "feedback", "submitted_at", "reviewed_at"}

func TestRepository_Create(t *testing.T) {
	s := &domain.Submission{
		ID:          uuid.New(),
		TaskID:      uuid.New(),
		UserID:      uuid.New(),
		ProofData:   "https://example.com/screenshot.png",
		Status:      domain.SubmissionPending,
		SubmittedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{name: "saved"},
		{name: "duplicate pending submission", err: &pgconn.PgError{Code: "23505"}, expectedErr: domain.ErrConflict},
		{name: "store failure", err: errors.New("connection reset"), expectedErr: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO task_submissions")).
				WithArgs(s.ID, s.TaskID, s.UserID, s.ProofData, s.Status, s.SubmittedAt)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			err := repo.Create(context.Background(), s)
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

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	reviewed := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM task_submissions WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, uuid.New(), uuid.New(), "proof", domain.SubmissionRejected, "blurry", reviewed.Add(-time.Hour), &reviewed))
	s, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, s.Status)
	require.NotNil(t, s.ReviewedAt)
	assert.True(t, reviewed.Equal(*s.ReviewedAt))

	mock.ExpectQuery(regexp.QuoteMeta("FROM task_submissions WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, uuid.New(), uuid.New(), "proof", domain.SubmissionPending, "", reviewed, nil))
	s, err = repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, s.ReviewedAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM task_submissions WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasOpen(t *testing.T) {
	taskID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		rows    *pgxmock.Rows
		err     error
		want    bool
		wantErr bool
	}{
		{name: "open submission", rows: pgxmock.NewRows([]string{"exists"}).AddRow(true), want: true},
		{name: "nothing open", rows: pgxmock.NewRows([]string{"exists"}).AddRow(false)},
		{name: "store failure", err: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			exp := mock.ExpectQuery(regexp.QuoteMeta("status IN ('pending', 'approved')")).
				WithArgs(taskID, userID)
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			open, err := repo.HasOpen(context.Background(), taskID, userID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, open)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	s := &domain.Submission{ID: uuid.New(), Status: domain.SubmissionApproved, Feedback: "ok", ReviewedAt: &now}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE task_submissions")).
		WithArgs(s.Status, s.Feedback, s.ReviewedAt, s.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExpirePending(t *testing.T) {
	repo, mock := NewMock(t)
	taskID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'expired', reviewed_at = now()")).
		WithArgs(taskID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))
	n, err := repo.ExpirePending(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'expired', reviewed_at = now()")).
		WithArgs(taskID).
		WillReturnError(errors.New("lock timeout"))
	_, err = repo.ExpirePending(context.Background(), taskID)
	assert.EqualError(t, err, "lock timeout")

	assert.NoError(t, mock.ExpectationsWereMet())
}
