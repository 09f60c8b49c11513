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

var userColumns = []string{"id", "name", "email", "password_hash", "onboarding_completed", "paywall_completed", "created_at"}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Name:         "test_user",
		Email:        "test@example.com",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash, onboarding_completed, paywall_completed) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(user.Name, user.Email, user.PasswordHash, false, false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name, user.Email, user.PasswordHash, false, false).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name, user.Email, user.PasswordHash, false, false).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
	t.Run("nil user", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:                  uuid.New(),
		Name:                "test_user",
		Email:               "test@example.com",
		PasswordHash:        "test_password_hash",
		OnboardingCompleted: true,
		CreatedAt:           time.Now().UTC().Truncate(time.Second),
	}
	userRow := func() *pgxmock.Rows {
		return pgxmock.NewRows(userColumns).AddRow(
			user.ID, user.Name, user.Email, user.PasswordHash,
			user.OnboardingCompleted, user.PaywallCompleted, user.CreatedAt,
		)
	}
	byEmail := regexp.QuoteMeta(`SELECT id, name, email, password_hash, onboarding_completed, paywall_completed, created_at FROM users WHERE email = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, email, password_hash, onboarding_completed, paywall_completed, created_at FROM users WHERE id = $1;`)

	testCases := []struct {
		Desc         string
		Find         func() (*entity.User, error)
		Error        error
		Result       *entity.User
		MockPrepFunc func()
	}{
		{
			Desc:   "by email found",
			Find:   func() (*entity.User, error) { return repo.FindByEmail(ctx, user.Email) },
			Result: &user,
			MockPrepFunc: func() {
				conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnRows(userRow())
			},
		},
		{
			Desc:  "by email not found",
			Find:  func() (*entity.User, error) { return repo.FindByEmail(ctx, user.Email) },
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:   "by id found",
			Find:   func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			Result: &user,
			MockPrepFunc: func() {
				conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRow())
			},
		},
		{
			Desc:  "by id not found",
			Find:  func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "by id db error",
			Find:  func() (*entity.User, error) { return repo.FindByID(ctx, user.ID) },
			Error: errors.New("searching user by id error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := tc.Find()
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tc.Result, *result)
		})
	}
}

func TestSetUserFlags(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	onboarding := regexp.QuoteMeta(`UPDATE users SET onboarding_completed = TRUE WHERE id = $1;`)
	paywall := regexp.QuoteMeta(`UPDATE users SET paywall_completed = TRUE WHERE id = $1;`)

	t.Run("onboarding", func(t *testing.T) {
		conn.ExpectExec(onboarding).WithArgs(uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetOnboardingCompleted(ctx, uid))
	})
	t.Run("onboarding unknown user", func(t *testing.T) {
		conn.ExpectExec(onboarding).WithArgs(uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetOnboardingCompleted(ctx, uid), errorvalues.ErrUserNotFound)
	})
	t.Run("paywall", func(t *testing.T) {
		conn.ExpectExec(paywall).WithArgs(uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetPaywallCompleted(ctx, uid))
	})
	t.Run("paywall db error", func(t *testing.T) {
		conn.ExpectExec(paywall).WithArgs(uid).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.SetPaywallCompleted(ctx, uid))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, uid))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, uid), errorvalues.ErrUserNotFound)
	})
}
