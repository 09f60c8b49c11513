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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	return NewUsersRepoWithConn(NewPool(cfg))
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, email, password_hash, onboarding_completed, paywall_completed) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.OnboardingCompleted,
		user.PaywallCompleted,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrUserExists
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

const selectUser = `SELECT id, name, email, password_hash, onboarding_completed, paywall_completed, created_at FROM users`

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, selectUser+` WHERE email = $1;`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by email error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, selectUser+` WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.OnboardingCompleted,
		&user.PaywallCompleted,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) SetOnboardingCompleted(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET onboarding_completed = TRUE WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("completing onboarding error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) SetPaywallCompleted(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET paywall_completed = TRUE WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("completing paywall error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
