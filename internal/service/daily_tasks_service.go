package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/internal/tasklist"
	"github.com/limbo/manifest/pkg/entity"
)

type DailyTasksService struct {
	tasks        repository.DailyTasksRepositoryI
	affirmations repository.AffirmationsRepositoryI
}

func NewDailyTasksService(tasksRepo repository.DailyTasksRepositoryI, affirmationsRepo repository.AffirmationsRepositoryI) *DailyTasksService {
	if tasksRepo == nil || affirmationsRepo == nil {
		log.Fatal("on daily tasks service provided nil repos")
	}
	return &DailyTasksService{
		tasks:        tasksRepo,
		affirmations: affirmationsRepo,
	}
}

func (ds *DailyTasksService) ListTasks(ctx context.Context, uid uuid.UUID) ([]entity.DailyTask, error) {
	stored, err := ds.tasks.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	// reads see the same dense order writers would produce
	return tasklist.New(uid, stored).Tasks(), nil
}

func (ds *DailyTasksService) AddTask(ctx context.Context, uid uuid.UUID, req *AddTaskRequest) (*entity.DailyTask, bool, error) {
	if req == nil || req.AffirmationID == uuid.Nil {
		return nil, false, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return nil, false, errors.Join(errorvalues.ErrInvalidMethod, err)
	}
	if _, err := ownedAffirmation(ctx, ds.affirmations, uid, req.AffirmationID); err != nil {
		return nil, false, err
	}
	var (
		task  entity.DailyTask
		added bool
	)
	after, err := ds.mutate(ctx, uid, func(l *tasklist.List) error {
		task, added = l.Add(req.AffirmationID)
		if added && req.Method != "" {
			return l.SetMethod(task.ID, req.Method)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return find(after, task.ID), added, nil
}

func (ds *DailyTasksService) RemoveTask(ctx context.Context, uid, taskID uuid.UUID) ([]entity.DailyTask, error) {
	return ds.mutate(ctx, uid, func(l *tasklist.List) error {
		return l.Remove(taskID)
	})
}

func (ds *DailyTasksService) MoveTask(ctx context.Context, uid, taskID uuid.UUID, newOrder int) ([]entity.DailyTask, error) {
	return ds.mutate(ctx, uid, func(l *tasklist.List) error {
		return l.Move(taskID, newOrder)
	})
}

func (ds *DailyTasksService) SetMethod(ctx context.Context, uid, taskID uuid.UUID, method entity.PracticeMethod) (*entity.DailyTask, error) {
	after, err := ds.mutate(ctx, uid, func(l *tasklist.List) error {
		return l.SetMethod(taskID, method)
	})
	if err != nil {
		return nil, err
	}
	return find(after, taskID), nil
}

func (ds *DailyTasksService) CompleteTask(ctx context.Context, uid, taskID uuid.UUID) (*entity.DailyTask, error) {
	after, err := ds.mutate(ctx, uid, func(l *tasklist.List) error {
		return l.Complete(taskID)
	})
	if err != nil {
		return nil, err
	}
	return find(after, taskID), nil
}

func (ds *DailyTasksService) NextTask(ctx context.Context, uid uuid.UUID) (*NextTask, error) {
	stored, err := ds.tasks.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("daily tasks repository error: " + err.Error())
	}
	task, ok := tasklist.New(uid, stored).Next()
	if !ok {
		return nil, nil
	}
	a, err := ownedAffirmation(ctx, ds.affirmations, uid, task.AffirmationID)
	if err != nil {
		return nil, err
	}
	return &NextTask{
		Task:        task,
		Affirmation: *a,
	}, nil
}

// mutate passes engine and lookup sentinels through and wraps the rest.
func (ds *DailyTasksService) mutate(ctx context.Context, uid uuid.UUID, fn func(*tasklist.List) error) ([]entity.DailyTask, error) {
	after, err := ds.tasks.Mutate(ctx, uid, fn)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound),
			errors.Is(err, errorvalues.ErrOrderOutOfRange),
			errors.Is(err, errorvalues.ErrInvalidMethod),
			errors.Is(err, errorvalues.ErrAffirmationNotFound):
			return nil, err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, errorvalues.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("daily tasks repository error: %w", err)
	}
	return after, nil
}

func find(tasks []entity.DailyTask, id uuid.UUID) *entity.DailyTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
