package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/manifest/internal/tasklist"
	"github.com/limbo/manifest/pkg/config"
	"github.com/limbo/manifest/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . UsersRepositoryI,AffirmationsRepositoryI,DailyTasksRepositoryI,PracticeRepositoryI

type UsersRepositoryI interface {
	// Creates new user and returns its id. Email must be unique
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by email. Used for sign in
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Marks onboarding as passed. Repeated calls are harmless
	SetOnboardingCompleted(ctx context.Context, uid uuid.UUID) error
	// Marks paywall as passed. Repeated calls are harmless
	SetPaywallCompleted(ctx context.Context, uid uuid.UUID) error
	// Deletes user together with everything it owns
	Delete(ctx context.Context, uid uuid.UUID) error
}

type AffirmationsRepositoryI interface {
	// Stores affirmation. ID and CreatedAt are filled from the database
	Create(ctx context.Context, affirmation *entity.Affirmation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Affirmation, error)
	// Lists user's affirmations, newest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Affirmation, error)
}

type DailyTasksRepositoryI interface {
	// Lists user's tasks ordered by position
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.DailyTask, error)
	// Loads the user's list under a row lock, applies fn and writes the
	// difference in the same transaction. Returns the list after fn.
	// An error from fn rolls everything back and is returned as is.
	Mutate(ctx context.Context, uid uuid.UUID, fn func(*tasklist.List) error) ([]entity.DailyTask, error)
	// Removes the affirmation's tasks, compacts the rest and deletes the
	// affirmation row in one transaction. Returns the remaining tasks
	DeleteAffirmation(ctx context.Context, uid, affirmationID uuid.UUID) ([]entity.DailyTask, error)
}

type PracticeRepositoryI interface {
	// Stores the next repetition of the session's period and day. Index,
	// ID and CompletedAt are filled in. Fails with ErrPeriodCompleted once
	// target repetitions exist
	Record(ctx context.Context, session *entity.PracticeSession, target int) error
	// Counts repetitions per period of one affirmation on one day
	ProgressByDay(ctx context.Context, uid, affirmationID uuid.UUID, day time.Time) (map[entity.PracticePeriod]int, error)
	// Distinct days with at least one repetition, ascending
	PracticeDays(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Total repetitions and the moment of the last one (nil if none)
	Summary(ctx context.Context, uid uuid.UUID) (int, *time.Time, error)
	// Latest repetitions of all users, newest first
	Feed(ctx context.Context, limit int) ([]entity.FeedItem, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

// NewPGCfg reads the POSTGRES_* keys.
func NewPGCfg(c *config.Config) *PGCfg {
	return &PGCfg{
		Address:  c.GetString("POSTGRES_DB_ADDRESS"),
		Username: c.GetString("POSTGRES_USER"),
		Password: c.GetString("POSTGRES_PASSWORD"),
		DB:       c.GetString("POSTGRES_DB"),
		SSLMode:  c.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
}

func (pgcfg *PGCfg) ConnString() string {
	conn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		conn += "?sslmode=" + pgcfg.SSLMode
	}
	return conn
}
