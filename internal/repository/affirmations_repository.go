package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/entity"
)

type AffirmationsRepository struct {
	conn PgConnection
}

func NewAffirmationsRepo(cfg DBConfig) *AffirmationsRepository {
	return NewAffirmationsRepoWithConn(NewPool(cfg))
}

func NewAffirmationsRepoWithConn(conn PgConnection) *AffirmationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for affirmationsRepo: " + err.Error())
	}
	return &AffirmationsRepository{
		conn: conn,
	}
}

func (ar *AffirmationsRepository) Create(ctx context.Context, a *entity.Affirmation) error {
	if a == nil {
		return errors.New("affirmation is nil")
	}
	row := ar.conn.QueryRow(ctx, `INSERT INTO affirmations (user_id, text, category, duration_days, current_day, is_active, is_completed) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		a.UserID,
		a.Text,
		string(a.Category),
		a.DurationDays,
		a.CurrentDay,
		a.IsActive,
		a.IsCompleted,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		switch pgErrCode(err) {
		case codeForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating affirmation db error: " + err.Error())
	}
	return nil
}

const selectAffirmation = `SELECT id, user_id, text, category, duration_days, current_day, is_active, is_completed, created_at FROM affirmations`

func (ar *AffirmationsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Affirmation, error) {
	a, err := scanAffirmation(ar.conn.QueryRow(ctx, selectAffirmation+` WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAffirmationNotFound
		}
		return nil, errors.New("getting affirmation by id error: " + err.Error())
	}
	return a, nil
}

func (ar *AffirmationsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Affirmation, error) {
	affirmations := make([]entity.Affirmation, 0)
	rows, err := ar.conn.Query(ctx, selectAffirmation+` WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing affirmations error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanAffirmation(rows)
		if err != nil {
			return nil, errors.New("unmarshalling affirmation error: " + err.Error())
		}
		affirmations = append(affirmations, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return affirmations, nil
}

func scanAffirmation(row pgx.Row) (*entity.Affirmation, error) {
	var (
		a        entity.Affirmation
		category string
	)
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Text,
		&category,
		&a.DurationDays,
		&a.CurrentDay,
		&a.IsActive,
		&a.IsCompleted,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Category = entity.Category(category)
	return &a, nil
}
