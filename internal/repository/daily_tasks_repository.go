package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/tasklist"
	"github.com/limbo/manifest/pkg/entity"
)

type DailyTasksRepository struct {
	conn PgConnection
}

func NewDailyTasksRepo(cfg DBConfig) *DailyTasksRepository {
	return NewDailyTasksRepoWithConn(NewPool(cfg))
}

func NewDailyTasksRepoWithConn(conn PgConnection) *DailyTasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyTasksRepo: " + err.Error())
	}
	return &DailyTasksRepository{
		conn: conn,
	}
}

const selectTasks = `SELECT id, user_id, affirmation_id, position, method, is_completed, created_at, updated_at FROM daily_tasks WHERE user_id = $1 ORDER BY position`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (dr *DailyTasksRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyTask, error) {
	return listTasks(ctx, dr.conn, selectTasks+`;`, uid)
}

func listTasks(ctx context.Context, q querier, query string, uid uuid.UUID) ([]entity.DailyTask, error) {
	tasks := make([]entity.DailyTask, 0)
	rows, err := q.Query(ctx, query, uid)
	if err != nil {
		return nil, errors.New("listing daily tasks error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			t      entity.DailyTask
			method string
		)
		err = rows.Scan(&t.ID, &t.UserID, &t.AffirmationID, &t.Order, &method, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling daily task error: " + err.Error())
		}
		t.Method = entity.PracticeMethod(method)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return tasks, nil
}

func (dr *DailyTasksRepository) Mutate(ctx context.Context, uid uuid.UUID, fn func(*tasklist.List) error) ([]entity.DailyTask, error) {
	return dr.inTx(ctx, uid, fn, nil)
}

func (dr *DailyTasksRepository) DeleteAffirmation(ctx context.Context, uid, affirmationID uuid.UUID) ([]entity.DailyTask, error) {
	removeTasks := func(l *tasklist.List) error {
		l.RemoveAffirmation(affirmationID)
		return nil
	}
	deleteRow := func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM affirmations WHERE id = $1 AND user_id = $2;`, affirmationID, uid)
		if err != nil {
			return errors.New("deleting affirmation error: " + err.Error())
		}
		if tag.RowsAffected() == 0 {
			return errorvalues.ErrAffirmationNotFound
		}
		return nil
	}
	return dr.inTx(ctx, uid, removeTasks, deleteRow)
}

// inTx runs the task list mutation and then, when given, extra statements
// in the same transaction. Any error rolls back all of it.
func (dr *DailyTasksRepository) inTx(ctx context.Context, uid uuid.UUID, fn func(*tasklist.List) error, then func(context.Context, pgx.Tx) error) ([]entity.DailyTask, error) {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting transaction error: " + err.Error())
	}
	after, err := mutateInTx(ctx, tx, uid, fn)
	if err == nil && then != nil {
		err = then(ctx, tx)
	}
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		switch pgErrCode(err) {
		// deferred (user_id, position) check fires on commit
		case codeUniqueViolation:
			return nil, fmt.Errorf("daily tasks order conflict: %w", err)
		}
		return nil, errors.New("committing daily tasks error: " + err.Error())
	}
	return after, nil
}

func mutateInTx(ctx context.Context, tx pgx.Tx, uid uuid.UUID, fn func(*tasklist.List) error) ([]entity.DailyTask, error) {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE;`, uid).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("locking user error: " + err.Error())
	}
	before, err := listTasks(ctx, tx, selectTasks+` FOR UPDATE;`, uid)
	if err != nil {
		return nil, err
	}
	list := tasklist.New(uid, before)
	if err := fn(list); err != nil {
		return nil, err
	}
	after := list.Tasks()
	changes := tasklist.Diff(before, after)
	for _, id := range changes.Removed {
		if _, err := tx.Exec(ctx, `DELETE FROM daily_tasks WHERE id = $1;`, id); err != nil {
			return nil, errors.New("deleting daily task error: " + err.Error())
		}
	}
	for _, t := range changes.Updated {
		_, err := tx.Exec(ctx, `UPDATE daily_tasks SET position = $1, method = $2, is_completed = $3, updated_at = NOW() WHERE id = $4;`,
			t.Order, string(t.Method), t.IsCompleted, t.ID)
		if err != nil {
			return nil, errors.New("updating daily task error: " + err.Error())
		}
	}
	created := make(map[uuid.UUID]entity.DailyTask, len(changes.Added))
	for _, t := range changes.Added {
		row := tx.QueryRow(ctx, `INSERT INTO daily_tasks (id, user_id, affirmation_id, position, method, is_completed) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at;`,
			t.ID, t.UserID, t.AffirmationID, t.Order, string(t.Method), t.IsCompleted)
		if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
			switch pgErrCode(err) {
			case codeForeignKeyViolation:
				return nil, errorvalues.ErrAffirmationNotFound
			}
			return nil, errors.New("inserting daily task error: " + err.Error())
		}
		created[t.ID] = t
	}
	for i, t := range after {
		if c, ok := created[t.ID]; ok {
			after[i] = c
		}
	}
	return after, nil
}
