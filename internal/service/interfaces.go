package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/manifest/internal/gate"
	"github.com/limbo/manifest/pkg/entity"
	jwtservice "github.com/limbo/manifest/pkg/jwt_service"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . UserServiceI,SessionServiceI,AffirmationsServiceI,DailyTasksServiceI,PracticeServiceI,FeedServiceI

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	// Creates the development accounts that don't exist yet
	SeedDevAccounts(ctx context.Context) ([]DevAccount, error)
}

// Session is an issued token together with the state it encodes.
type Session struct {
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *entity.User `json:"user"`
	Flags     gate.Flags   `json:"-"`
}

type SessionServiceI interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// Resolves a raw token into claims and gate flags. Invalid, expired and
	// revoked tokens resolve to zero flags without error; the error is
	// reserved for a failing denylist.
	Resolve(ctx context.Context, token string) (*jwtservice.Claims, gate.Flags, error)
	CompleteOnboarding(ctx context.Context, claims *jwtservice.Claims) (*Session, error)
	CompletePaywall(ctx context.Context, claims *jwtservice.Claims) (*Session, error)
	SignOut(ctx context.Context, claims *jwtservice.Claims) error
}

type AffirmationRequest struct {
	Text         string          `json:"text" validate:"required,notblank,max=500"`
	Category     entity.Category `json:"category" validate:"required,category"`
	DurationDays int             `json:"duration_days" validate:"required,min=1,max=365"`
}

type AffirmationsServiceI interface {
	AddAffirmation(ctx context.Context, uid uuid.UUID, req *AffirmationRequest) (*entity.Affirmation, error)
	ListAffirmations(ctx context.Context, uid uuid.UUID) ([]entity.Affirmation, error)
	// Other users' affirmations are reported as not found
	GetAffirmationByID(ctx context.Context, uid, id uuid.UUID) (*entity.Affirmation, error)
	// Removes the affirmation's tasks first, then the affirmation
	DeleteAffirmation(ctx context.Context, uid, id uuid.UUID) error
}

type AddTaskRequest struct {
	AffirmationID uuid.UUID             `json:"affirmation_id"`
	Method        entity.PracticeMethod `json:"method" validate:"omitempty,practice_method"`
}

type NextTask struct {
	Task        entity.DailyTask   `json:"task"`
	Affirmation entity.Affirmation `json:"affirmation"`
}

type DailyTasksServiceI interface {
	ListTasks(ctx context.Context, uid uuid.UUID) ([]entity.DailyTask, error)
	// Returns the task scheduling the affirmation and whether it was created now
	AddTask(ctx context.Context, uid uuid.UUID, req *AddTaskRequest) (*entity.DailyTask, bool, error)
	RemoveTask(ctx context.Context, uid, taskID uuid.UUID) ([]entity.DailyTask, error)
	MoveTask(ctx context.Context, uid, taskID uuid.UUID, newOrder int) ([]entity.DailyTask, error)
	SetMethod(ctx context.Context, uid, taskID uuid.UUID, method entity.PracticeMethod) (*entity.DailyTask, error)
	CompleteTask(ctx context.Context, uid, taskID uuid.UUID) (*entity.DailyTask, error)
	// Returns nil without error when every task is done
	NextTask(ctx context.Context, uid uuid.UUID) (*NextTask, error)
}

type RepetitionRequest struct {
	AffirmationID uuid.UUID             `json:"affirmation_id"`
	Period        entity.PracticePeriod `json:"period" validate:"required,practice_period"`
}

type PracticeServiceI interface {
	RecordRepetition(ctx context.Context, uid uuid.UUID, req *RepetitionRequest) (*entity.PracticeSession, error)
	Progress(ctx context.Context, uid, affirmationID uuid.UUID, day time.Time) ([]entity.PeriodProgress, error)
	Stats(ctx context.Context, uid uuid.UUID) (*entity.PracticeStats, error)
}

type FeedServiceI interface {
	Recent(ctx context.Context, limit int) ([]entity.FeedItem, error)
}
