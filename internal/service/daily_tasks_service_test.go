package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository/mocks"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/internal/tasklist"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runEngine makes the Mutate mock behave like the repository minus the SQL.
func runEngine(stored []entity.DailyTask) func(context.Context, uuid.UUID, func(*tasklist.List) error) ([]entity.DailyTask, error) {
	return func(_ context.Context, uid uuid.UUID, fn func(*tasklist.List) error) ([]entity.DailyTask, error) {
		l := tasklist.New(uid, stored)
		if err := fn(l); err != nil {
			return nil, err
		}
		return l.Tasks(), nil
	}
}

func scheduled(uid uuid.UUID, affirmationIDs ...uuid.UUID) []entity.DailyTask {
	tasks := make([]entity.DailyTask, 0, len(affirmationIDs))
	for i, id := range affirmationIDs {
		tasks = append(tasks, entity.DailyTask{
			ID:            uuid.New(),
			UserID:        uid,
			AffirmationID: id,
			Order:         i + 1,
			Method:        entity.MethodTyping,
		})
	}
	return tasks
}

func TestAddTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockDailyTasksRepositoryI(ctrl)
	affRepo := mocks.NewMockAffirmationsRepositoryI(ctrl)
	ds := service.NewDailyTasksService(tasksRepo, affRepo)
	ctx := context.Background()
	uid := uuid.New()
	existing := uuid.New()
	fresh := uuid.New()
	stored := scheduled(uid, existing)

	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.AddTaskRequest
		Added        bool
		Order        int
		Method       entity.PracticeMethod
		MockPrepFunc func()
	}{
		{
			Desc:    "appended with default method",
			Request: &service.AddTaskRequest{AffirmationID: fresh},
			Added:   true,
			Order:   2,
			Method:  entity.MethodTyping,
			MockPrepFunc: func() {
				affRepo.EXPECT().GetByID(gomock.Any(), fresh).Return(&entity.Affirmation{ID: fresh, UserID: uid}, nil)
				tasksRepo.EXPECT().Mutate(gomock.Any(), uid, gomock.Any()).DoAndReturn(runEngine(stored))
			},
		},
		{
			Desc:    "appended with chosen method",
			Request: &service.AddTaskRequest{AffirmationID: fresh, Method: entity.MethodVoice},
			Added:   true,
			Order:   2,
			Method:  entity.MethodVoice,
			MockPrepFunc: func() {
				affRepo.EXPECT().GetByID(gomock.Any(), fresh).Return(&entity.Affirmation{ID: fresh, UserID: uid}, nil)
				tasksRepo.EXPECT().Mutate(gomock.Any(), uid, gomock.Any()).DoAndReturn(runEngine(stored))
			},
		},
		{
			Desc:    "already scheduled",
			Request: &service.AddTaskRequest{AffirmationID: existing, Method: entity.MethodVoice},
			Added:   false,
			Order:   1,
			Method:  entity.MethodTyping,
			MockPrepFunc: func() {
				affRepo.EXPECT().GetByID(gomock.Any(), existing).Return(&entity.Affirmation{ID: existing, UserID: uid}, nil)
				tasksRepo.EXPECT().Mutate(gomock.Any(), uid, gomock.Any()).DoAndReturn(runEngine(stored))
			},
		},
		{
			Desc:    "someone else's affirmation",
			Error:   errorvalues.ErrAffirmationNotFound,
			Request: &service.AddTaskRequest{AffirmationID: fresh},
			MockPrepFunc: func() {
				affRepo.EXPECT().GetByID(gomock.Any(), fresh).Return(&entity.Affirmation{ID: fresh, UserID: uuid.New()}, nil)
			},
		},
		{
			Desc:         "unknown method",
			Error:        errorvalues.ErrInvalidMethod,
			Request:      &service.AddTaskRequest{AffirmationID: fresh, Method: "Singing"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing affirmation id",
			Error:        errorvalues.ErrValidation,
			Request:      &service.AddTaskRequest{},
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			task, added, err := ds.AddTask(ctx, uid, tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, tc.Added, added)
			assert.Equal(t, tc.Order, task.Order)
			assert.Equal(t, tc.Method, task.Method)
			assert.Equal(t, tc.Request.AffirmationID, task.AffirmationID)
		})
	}
}

func TestTaskMutations(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockDailyTasksRepositoryI(ctrl)
	affRepo := mocks.NewMockAffirmationsRepositoryI(ctrl)
	ds := service.NewDailyTasksService(tasksRepo, affRepo)
	ctx := context.Background()
	uid := uuid.New()
	stored := scheduled(uid, uuid.New(), uuid.New(), uuid.New())
	tasksRepo.EXPECT().Mutate(gomock.Any(), uid, gomock.Any()).DoAndReturn(runEngine(stored)).AnyTimes()

	t.Run("move", func(t *testing.T) {
		list, err := ds.MoveTask(ctx, uid, stored[2].ID, 1)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{stored[2].ID, stored[0].ID, stored[1].ID}, []uuid.UUID{list[0].ID, list[1].ID, list[2].ID})
	})
	t.Run("move out of range", func(t *testing.T) {
		_, err := ds.MoveTask(ctx, uid, stored[0].ID, 4)
		assert.ErrorIs(t, err, errorvalues.ErrOrderOutOfRange)
	})
	t.Run("remove", func(t *testing.T) {
		list, err := ds.RemoveTask(ctx, uid, stored[0].ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 1, list[0].Order)
		assert.Equal(t, 2, list[1].Order)
	})
	t.Run("remove unknown", func(t *testing.T) {
		_, err := ds.RemoveTask(ctx, uid, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
	t.Run("set method", func(t *testing.T) {
		task, err := ds.SetMethod(ctx, uid, stored[1].ID, entity.MethodHandwriting)
		require.NoError(t, err)
		assert.Equal(t, entity.MethodHandwriting, task.Method)
	})
	t.Run("set unknown method", func(t *testing.T) {
		_, err := ds.SetMethod(ctx, uid, stored[1].ID, "Dancing")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidMethod)
	})
	t.Run("complete", func(t *testing.T) {
		task, err := ds.CompleteTask(ctx, uid, stored[1].ID)
		require.NoError(t, err)
		assert.True(t, task.IsCompleted)
	})
}

func TestMutateForDeletedUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockDailyTasksRepositoryI(ctrl)
	ds := service.NewDailyTasksService(tasksRepo, mocks.NewMockAffirmationsRepositoryI(ctrl))
	tasksRepo.EXPECT().Mutate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
	_, err := ds.CompleteTask(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrNotLoggedIn)
}

func TestListTasksRepairsGaps(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockDailyTasksRepositoryI(ctrl)
	ds := service.NewDailyTasksService(tasksRepo, mocks.NewMockAffirmationsRepositoryI(ctrl))
	uid := uuid.New()
	stored := scheduled(uid, uuid.New(), uuid.New())
	stored[0].Order, stored[1].Order = 7, 3
	tasksRepo.EXPECT().ListByUser(gomock.Any(), uid).Return(stored, nil)

	list, err := ds.ListTasks(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, stored[1].ID, list[0].ID)
	assert.Equal(t, 1, list[0].Order)
	assert.Equal(t, 2, list[1].Order)
}

func TestNextTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockDailyTasksRepositoryI(ctrl)
	affRepo := mocks.NewMockAffirmationsRepositoryI(ctrl)
	ds := service.NewDailyTasksService(tasksRepo, affRepo)
	ctx := context.Background()
	uid := uuid.New()
	first, second := uuid.New(), uuid.New()

	t.Run("first incomplete", func(t *testing.T) {
		stored := scheduled(uid, first, second)
		stored[0].IsCompleted = true
		tasksRepo.EXPECT().ListByUser(gomock.Any(), uid).Return(stored, nil)
		affRepo.EXPECT().GetByID(gomock.Any(), second).Return(&entity.Affirmation{ID: second, UserID: uid, Text: "B"}, nil)
		next, err := ds.NextTask(ctx, uid)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, stored[1].ID, next.Task.ID)
		assert.Equal(t, "B", next.Affirmation.Text)
	})
	t.Run("all done", func(t *testing.T) {
		stored := scheduled(uid, first)
		stored[0].IsCompleted = true
		tasksRepo.EXPECT().ListByUser(gomock.Any(), uid).Return(stored, nil)
		next, err := ds.NextTask(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, next)
	})
	t.Run("empty list", func(t *testing.T) {
		tasksRepo.EXPECT().ListByUser(gomock.Any(), uid).Return([]entity.DailyTask{}, nil)
		next, err := ds.NextTask(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, next)
	})
	t.Run("affirmation gone", func(t *testing.T) {
		tasksRepo.EXPECT().ListByUser(gomock.Any(), uid).Return(scheduled(uid, first), nil)
		affRepo.EXPECT().GetByID(gomock.Any(), first).Return(nil, errorvalues.ErrAffirmationNotFound)
		_, err := ds.NextTask(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrAffirmationNotFound)
	})
}
