package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/entity"
)

type AffirmationsService struct {
	repo  repository.AffirmationsRepositoryI
	tasks repository.DailyTasksRepositoryI
}

func NewAffirmationsService(affirmationsRepo repository.AffirmationsRepositoryI, tasksRepo repository.DailyTasksRepositoryI) *AffirmationsService {
	if affirmationsRepo == nil || tasksRepo == nil {
		log.Fatal("on affirmations service provided nil repos")
	}
	return &AffirmationsService{
		repo:  affirmationsRepo,
		tasks: tasksRepo,
	}
}

func (as *AffirmationsService) AddAffirmation(ctx context.Context, uid uuid.UUID, req *AffirmationRequest) (*entity.Affirmation, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		if req.Category != "" && !req.Category.Valid() {
			return nil, errors.Join(errorvalues.ErrInvalidCategory, err)
		}
		return nil, err
	}
	a := entity.Affirmation{
		UserID:       uid,
		Text:         strings.TrimSpace(req.Text),
		Category:     req.Category,
		DurationDays: req.DurationDays,
		CurrentDay:   1,
		IsActive:     true,
		IsCompleted:  false,
	}
	if err := as.repo.Create(ctx, &a); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrNotLoggedIn
		}
		return nil, errors.New("affirmations repository error: " + err.Error())
	}
	return &a, nil
}

func (as *AffirmationsService) ListAffirmations(ctx context.Context, uid uuid.UUID) ([]entity.Affirmation, error) {
	list, err := as.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("affirmations repository error: " + err.Error())
	}
	return list, nil
}

func (as *AffirmationsService) GetAffirmationByID(ctx context.Context, uid, id uuid.UUID) (*entity.Affirmation, error) {
	return ownedAffirmation(ctx, as.repo, uid, id)
}

func (as *AffirmationsService) DeleteAffirmation(ctx context.Context, uid, id uuid.UUID) error {
	if _, err := ownedAffirmation(ctx, as.repo, uid, id); err != nil {
		return err
	}
	if _, err := as.tasks.DeleteAffirmation(ctx, uid, id); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAffirmationNotFound):
			return err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return errorvalues.ErrNotLoggedIn
		}
		return errors.New("daily tasks repository error: " + err.Error())
	}
	return nil
}

// ownedAffirmation hides other users' affirmations behind ErrAffirmationNotFound.
func ownedAffirmation(ctx context.Context, repo repository.AffirmationsRepositoryI, uid, id uuid.UUID) (*entity.Affirmation, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAffirmationNotFound) {
			return nil, err
		}
		return nil, errors.New("affirmations repository error: " + err.Error())
	}
	if a.UserID != uid {
		return nil, errorvalues.ErrAffirmationNotFound
	}
	return a, nil
}
