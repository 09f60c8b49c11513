package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/entity"
)

type PracticeService struct {
	repo         repository.PracticeRepositoryI
	affirmations repository.AffirmationsRepositoryI
	now          func() time.Time
}

func NewPracticeService(practiceRepo repository.PracticeRepositoryI, affirmationsRepo repository.AffirmationsRepositoryI) *PracticeService {
	if practiceRepo == nil || affirmationsRepo == nil {
		log.Fatal("on practice service provided nil repos")
	}
	return &PracticeService{
		repo:         practiceRepo,
		affirmations: affirmationsRepo,
		now:          time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (ps *PracticeService) WithClock(now func() time.Time) *PracticeService {
	ps.now = now
	return ps
}

func (ps *PracticeService) RecordRepetition(ctx context.Context, uid uuid.UUID, req *RepetitionRequest) (*entity.PracticeSession, error) {
	if req == nil || req.AffirmationID == uuid.Nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidPeriod, err)
	}
	if _, err := ownedAffirmation(ctx, ps.affirmations, uid, req.AffirmationID); err != nil {
		return nil, err
	}
	now := ps.now()
	s := entity.PracticeSession{
		UserID:        uid,
		AffirmationID: req.AffirmationID,
		Period:        req.Period,
		PracticeDay:   dayOf(now),
		CompletedAt:   now,
	}
	if err := ps.repo.Record(ctx, &s, req.Period.Target()); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPeriodCompleted),
			errors.Is(err, errorvalues.ErrRepetitionExists),
			errors.Is(err, errorvalues.ErrAffirmationNotFound):
			return nil, err
		}
		return nil, errors.New("practice repository error: " + err.Error())
	}
	return &s, nil
}

// Progress reports every period, including the untouched ones.
func (ps *PracticeService) Progress(ctx context.Context, uid, affirmationID uuid.UUID, day time.Time) ([]entity.PeriodProgress, error) {
	if _, err := ownedAffirmation(ctx, ps.affirmations, uid, affirmationID); err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = ps.now()
	}
	counts, err := ps.repo.ProgressByDay(ctx, uid, affirmationID, dayOf(day))
	if err != nil {
		return nil, errors.New("practice repository error: " + err.Error())
	}
	progress := make([]entity.PeriodProgress, 0, len(entity.Periods))
	for _, p := range entity.Periods {
		progress = append(progress, entity.PeriodProgress{
			Period:    p,
			Completed: counts[p],
			Total:     p.Target(),
		})
	}
	return progress, nil
}

func (ps *PracticeService) Stats(ctx context.Context, uid uuid.UUID) (*entity.PracticeStats, error) {
	total, last, err := ps.repo.Summary(ctx, uid)
	if err != nil {
		return nil, errors.New("practice repository error: " + err.Error())
	}
	days, err := ps.repo.PracticeDays(ctx, uid)
	if err != nil {
		return nil, errors.New("practice repository error: " + err.Error())
	}
	current, longest := Streaks(days, ps.now())
	return &entity.PracticeStats{
		UserID:           uid,
		TotalRepetitions: total,
		CurrentStreak:    current,
		MaxStreak:        longest,
		LastPractice:     last,
	}, nil
}

// Streaks counts runs of consecutive practice days. The current run only
// counts while its last day is today or yesterday.
func Streaks(days []time.Time, now time.Time) (current, longest int) {
	run := 0
	var prev time.Time
	for i, d := range days {
		d = dayOf(d)
		switch {
		case i == 0:
			run = 1
		case d.Equal(prev):
			continue
		case d.Equal(prev.AddDate(0, 0, 1)):
			run++
		default:
			run = 1
		}
		prev = d
		longest = max(longest, run)
	}
	if len(days) == 0 {
		return 0, 0
	}
	today := dayOf(now)
	if prev.Equal(today) || prev.Equal(today.AddDate(0, 0, -1)) {
		current = run
	}
	return current, longest
}

// dayOf keeps the calendar date of t as a UTC midnight, the way DATE
// columns come back from postgres.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
