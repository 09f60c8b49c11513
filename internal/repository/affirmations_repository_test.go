package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var affirmationColumns = []string{"id", "user_id", "text", "category", "duration_days", "current_day", "is_active", "is_completed", "created_at"}

func affirmationRow(rows *pgxmock.Rows, a entity.Affirmation) *pgxmock.Rows {
	return rows.AddRow(a.ID, a.UserID, a.Text, string(a.Category), a.DurationDays, a.CurrentDay, a.IsActive, a.IsCompleted, a.CreatedAt)
}

func TestCreateAffirmation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAffirmationsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO affirmations (user_id, text, category, duration_days, current_day, is_active, is_completed) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`)
	newAffirmation := func() *entity.Affirmation {
		return &entity.Affirmation{
			UserID:       uuid.New(),
			Text:         "I am calm",
			Category:     entity.CategoryHealth,
			DurationDays: 21,
			CurrentDay:   1,
			IsActive:     true,
		}
	}
	t.Run("created", func(t *testing.T) {
		a := newAffirmation()
		id, createdAt := uuid.New(), time.Now()
		mock.ExpectQuery(query).
			WithArgs(a.UserID, a.Text, "Health", 21, 1, true, false).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))
		require.NoError(t, repo.Create(ctx, a))
		assert.Equal(t, id, a.ID)
		assert.Equal(t, createdAt, a.CreatedAt)
	})
	t.Run("unknown owner", func(t *testing.T) {
		a := newAffirmation()
		mock.ExpectQuery(query).
			WithArgs(a.UserID, a.Text, "Health", 21, 1, true, false).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Create(ctx, a), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		a := newAffirmation()
		mock.ExpectQuery(query).
			WithArgs(a.UserID, a.Text, "Health", 21, 1, true, false).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Create(ctx, a), "creating affirmation db error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAffirmationByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAffirmationsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, text, category, duration_days, current_day, is_active, is_completed, created_at FROM affirmations WHERE id = $1;`)
	a := entity.Affirmation{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Text:         "Money flows to me",
		Category:     entity.CategoryFinance,
		DurationDays: 30,
		CurrentDay:   4,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "found",
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(a.ID).WillReturnRows(affirmationRow(pgxmock.NewRows(affirmationColumns), a))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrAffirmationNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(a.ID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting affirmation by id error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(a.ID).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			got, err := repo.GetByID(ctx, a.ID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, a, *got)
		})
	}
}

func TestListAffirmationsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAffirmationsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, text, category, duration_days, current_day, is_active, is_completed, created_at FROM affirmations WHERE user_id = $1 ORDER BY created_at DESC;`)
	uid := uuid.New()
	now := time.Now()
	list := []entity.Affirmation{
		{ID: uuid.New(), UserID: uid, Text: "second", Category: entity.CategoryCareer, DurationDays: 7, CurrentDay: 1, IsActive: true, CreatedAt: now},
		{ID: uuid.New(), UserID: uid, Text: "first", Category: entity.CategoryPersonal, DurationDays: 7, CurrentDay: 7, IsCompleted: true, CreatedAt: now.Add(-time.Hour)},
	}
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows(affirmationColumns)
		for _, a := range list {
			rows = affirmationRow(rows, a)
		}
		mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		got, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, list, got)
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows(affirmationColumns))
		got, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, uid)
		assert.Error(t, err)
	})
}
