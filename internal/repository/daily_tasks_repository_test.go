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
	"github.com/limbo/manifest/internal/tasklist"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	taskColumns = []string{"id", "user_id", "affirmation_id", "position", "method", "is_completed", "created_at", "updated_at"}

	lockUserQuery   = regexp.QuoteMeta(`SELECT id FROM users WHERE id = $1 FOR UPDATE;`)
	listTasksQuery  = regexp.QuoteMeta(`SELECT id, user_id, affirmation_id, position, method, is_completed, created_at, updated_at FROM daily_tasks WHERE user_id = $1 ORDER BY position;`)
	lockTasksQuery  = regexp.QuoteMeta(`SELECT id, user_id, affirmation_id, position, method, is_completed, created_at, updated_at FROM daily_tasks WHERE user_id = $1 ORDER BY position FOR UPDATE;`)
	deleteTaskQuery = regexp.QuoteMeta(`DELETE FROM daily_tasks WHERE id = $1;`)
	updateTaskQuery = regexp.QuoteMeta(`UPDATE daily_tasks SET position = $1, method = $2, is_completed = $3, updated_at = NOW() WHERE id = $4;`)
	insertTaskQuery = regexp.QuoteMeta(`INSERT INTO daily_tasks (id, user_id, affirmation_id, position, method, is_completed) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at;`)
)

func storedTasks(uid uuid.UUID, orders ...int) []entity.DailyTask {
	tasks := make([]entity.DailyTask, 0, len(orders))
	for _, o := range orders {
		tasks = append(tasks, entity.DailyTask{
			ID:            uuid.New(),
			UserID:        uid,
			AffirmationID: uuid.New(),
			Order:         o,
			Method:        entity.MethodTyping,
		})
	}
	return tasks
}

func taskRows(tasks []entity.DailyTask) *pgxmock.Rows {
	rows := pgxmock.NewRows(taskColumns)
	for _, t := range tasks {
		rows.AddRow(t.ID, t.UserID, t.AffirmationID, t.Order, string(t.Method), t.IsCompleted, t.CreatedAt, t.UpdatedAt)
	}
	return rows
}

func TestListDailyTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyTasksRepoWithConn(mock)
	ctx := context.Background()
	uid := uuid.New()
	tasks := storedTasks(uid, 1, 2, 3)
	t.Run("listed", func(t *testing.T) {
		mock.ExpectQuery(listTasksQuery).WithArgs(uid).WillReturnRows(taskRows(tasks))
		got, err := repo.ListByUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, tasks, got)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(listTasksQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, uid)
		assert.EqualError(t, err, "listing daily tasks error: db error")
	})
}

func TestMutateDailyTasks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyTasksRepoWithConn(mock)
	ctx := context.Background()
	uid := uuid.New()

	expectLoad := func(tasks []entity.DailyTask) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockUserQuery).WithArgs(uid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		mock.ExpectQuery(lockTasksQuery).WithArgs(uid).WillReturnRows(taskRows(tasks))
	}

	t.Run("move writes shifted positions", func(t *testing.T) {
		tasks := storedTasks(uid, 1, 2, 3)
		a, b, c := tasks[0], tasks[1], tasks[2]
		expectLoad(tasks)
		mock.ExpectExec(updateTaskQuery).WithArgs(1, "Typing", false, c.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(2, "Typing", false, a.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(3, "Typing", false, b.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		got, err := repo.Mutate(ctx, uid, func(l *tasklist.List) error {
			return l.Move(c.ID, 1)
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("remove deletes and compacts", func(t *testing.T) {
		tasks := storedTasks(uid, 1, 2, 3)
		expectLoad(tasks)
		mock.ExpectExec(deleteTaskQuery).WithArgs(tasks[1].ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(2, "Typing", false, tasks[2].ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		got, err := repo.Mutate(ctx, uid, func(l *tasklist.List) error {
			return l.Remove(tasks[1].ID)
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("add inserts at the end", func(t *testing.T) {
		tasks := storedTasks(uid, 1)
		affID := uuid.New()
		createdAt := time.Now()
		expectLoad(tasks)
		mock.ExpectQuery(insertTaskQuery).
			WithArgs(pgxmock.AnyArg(), uid, affID, 2, "Typing", false).
			WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))
		mock.ExpectCommit()

		got, err := repo.Mutate(ctx, uid, func(l *tasklist.List) error {
			l.Add(affID)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, affID, got[1].AffirmationID)
		assert.Equal(t, 2, got[1].Order)
		assert.Equal(t, createdAt, got[1].CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored gaps are repaired", func(t *testing.T) {
		tasks := storedTasks(uid, 2, 5)
		expectLoad(tasks)
		mock.ExpectExec(updateTaskQuery).WithArgs(1, "Typing", false, tasks[0].ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(2, "Typing", false, tasks[1].ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		_, err := repo.Mutate(ctx, uid, func(*tasklist.List) error { return nil })
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("engine error rolls back", func(t *testing.T) {
		tasks := storedTasks(uid, 1, 2)
		expectLoad(tasks)
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(l *tasklist.List) error {
			return l.Move(tasks[0].ID, 3)
		})
		assert.ErrorIs(t, err, errorvalues.ErrOrderOutOfRange)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockUserQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(*tasklist.List) error { return nil })
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("affirmation vanished", func(t *testing.T) {
		affID := uuid.New()
		expectLoad(nil)
		mock.ExpectQuery(insertTaskQuery).
			WithArgs(pgxmock.AnyArg(), uid, affID, 1, "Typing", false).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(l *tasklist.List) error {
			l.Add(affID)
			return nil
		})
		assert.ErrorIs(t, err, errorvalues.ErrAffirmationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.Mutate(ctx, uid, func(*tasklist.List) error { return nil })
		assert.EqualError(t, err, "starting transaction error: db error")
	})
}

func TestDeleteAffirmationInTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyTasksRepoWithConn(mock)
	ctx := context.Background()
	uid := uuid.New()
	deleteAffirmationQuery := regexp.QuoteMeta(`DELETE FROM affirmations WHERE id = $1 AND user_id = $2;`)

	// the doomed affirmation sits at the head so the rest shifts up
	expectCascade := func() (uuid.UUID, []entity.DailyTask) {
		tasks := storedTasks(uid, 1, 2, 3)
		doomed := tasks[0].AffirmationID
		mock.ExpectBegin()
		mock.ExpectQuery(lockUserQuery).WithArgs(uid).WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		mock.ExpectQuery(lockTasksQuery).WithArgs(uid).WillReturnRows(taskRows(tasks))
		mock.ExpectExec(deleteTaskQuery).WithArgs(tasks[0].ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(1, "Typing", false, tasks[1].ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(updateTaskQuery).WithArgs(2, "Typing", false, tasks[2].ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return doomed, tasks
	}

	t.Run("tasks and row go together", func(t *testing.T) {
		doomed, tasks := expectCascade()
		mock.ExpectExec(deleteAffirmationQuery).WithArgs(doomed, uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		got, err := repo.DeleteAffirmation(ctx, uid, doomed)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []uuid.UUID{tasks[1].ID, tasks[2].ID}, []uuid.UUID{got[0].ID, got[1].ID})
		assert.Equal(t, []int{1, 2}, []int{got[0].Order, got[1].Order})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row delete failure keeps tasks", func(t *testing.T) {
		doomed, _ := expectCascade()
		mock.ExpectExec(deleteAffirmationQuery).WithArgs(doomed, uid).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		got, err := repo.DeleteAffirmation(ctx, uid, doomed)
		assert.EqualError(t, err, "deleting affirmation error: db error")
		assert.Nil(t, got)
		// no ExpectCommit registered: a commit would fail the expectations
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row already gone", func(t *testing.T) {
		doomed, _ := expectCascade()
		mock.ExpectExec(deleteAffirmationQuery).WithArgs(doomed, uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		_, err := repo.DeleteAffirmation(ctx, uid, doomed)
		assert.ErrorIs(t, err, errorvalues.ErrAffirmationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user touches nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockUserQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.DeleteAffirmation(ctx, uid, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
