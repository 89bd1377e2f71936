package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTaskService(t *testing.T) (TaskService, *MockTaskRepository, *MockTeamRepository, *domain.EventBus) {
	t.Helper()
	bus := domain.NewEventBus()
	mockTaskRepo := new(MockTaskRepository)
	mockTeamRepo := new(MockTeamRepository)
	return NewTaskService(mockTaskRepo, mockTeamRepo, bus), mockTaskRepo, mockTeamRepo, bus
}

func buildTask(bus *domain.EventBus, id, ownerID string, status domain.ProgressStatus) *domain.Task {
	return domain.ReconstructTask(id, "initial title", ownerID, status, bus)
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("успешное создание задачи", func(t *testing.T) {
		service, mockTaskRepo, mockTeamRepo, bus := setupTaskService(t)
		team := buildTeam(t, bus, "team-1", 2)

		mockTeamRepo.On("FindByMemberID", mock.Anything, "team-1-m0").Return(team, nil).Once()
		mockTaskRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

		task, err := service.CreateTask(context.Background(), "implement login", "team-1-m0")

		require.NoError(t, err)
		assert.Equal(t, "implement login", task.Title())
		assert.Equal(t, domain.ProgressNotStarted, task.ProgressStatus())
		assert.Equal(t, "team-1-m0", task.OwnerID())
		mockTaskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: владелец не состоит ни в одной команде", func(t *testing.T) {
		service, mockTaskRepo, mockTeamRepo, _ := setupTaskService(t)

		mockTeamRepo.On("FindByMemberID", mock.Anything, "stranger").
			Return(nil, domain.NewNotFoundError("team")).Once()

		_, err := service.CreateTask(context.Background(), "implement login", "stranger")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "stranger")
		mockTaskRepo.AssertNotCalled(t, "Save")
	})

	t.Run("ошибка: пустое название отклоняется до сохранения", func(t *testing.T) {
		service, mockTaskRepo, mockTeamRepo, bus := setupTaskService(t)
		team := buildTeam(t, bus, "team-1", 1)

		mockTeamRepo.On("FindByMemberID", mock.Anything, "team-1-m0").Return(team, nil).Once()

		_, err := service.CreateTask(context.Background(), "", "team-1-m0")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		mockTaskRepo.AssertNotCalled(t, "Save")
	})
}

func TestTaskService_EditTaskTitle(t *testing.T) {
	t.Run("владелец редактирует название", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()
		mockTaskRepo.On("Save", mock.Anything, task).Return(nil).Once()

		result, err := service.EditTaskTitle(context.Background(), "task-1", "owner-1", "new title")

		require.NoError(t, err)
		assert.Equal(t, "new title", result.Title())
		mockTaskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: редактирует не владелец", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()

		_, err := service.EditTaskTitle(context.Background(), "task-1", "intruder", "new title")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotOwner))
		assert.Equal(t, "initial title", task.Title())
		mockTaskRepo.AssertNotCalled(t, "Save")
	})

	t.Run("ошибка: задача не найдена", func(t *testing.T) {
		service, mockTaskRepo, _, _ := setupTaskService(t)

		mockTaskRepo.On("FindByID", mock.Anything, "missing").
			Return(nil, domain.NewNotFoundError("task")).Once()

		_, err := service.EditTaskTitle(context.Background(), "missing", "owner-1", "new title")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestTaskService_UpdateProgress(t *testing.T) {
	t.Run("успешный переход NOT_STARTED -> IN_PROGRESS", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()
		mockTaskRepo.On("Save", mock.Anything, task).Return(nil).Once()

		result, err := service.UpdateProgress(context.Background(), "task-1", "owner-1", "IN_PROGRESS")

		require.NoError(t, err)
		assert.Equal(t, domain.ProgressInProgress, result.ProgressStatus())
		mockTaskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: неизвестный статус отклоняется до обращения к БД", func(t *testing.T) {
		service, mockTaskRepo, _, _ := setupTaskService(t)

		_, err := service.UpdateProgress(context.Background(), "task-1", "owner-1", "DONE")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		mockTaskRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("ошибка: недопустимый переход не сохраняется", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()

		_, err := service.UpdateProgress(context.Background(), "task-1", "owner-1", "COMPLETED")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
		assert.Equal(t, domain.ProgressNotStarted, task.ProgressStatus())
		mockTaskRepo.AssertNotCalled(t, "Save")
	})

	t.Run("ошибка: проверка владельца выполняется раньше проверки перехода", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()

		// Переход тоже недопустимый, но первым должен сработать отказ по владельцу
		_, err := service.UpdateProgress(context.Background(), "task-1", "intruder", "COMPLETED")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotOwner))
	})
}

func TestTaskService_SetTaskDone(t *testing.T) {
	t.Run("завершение задачи из WAITING_FOR_REVIEW", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressWaitingForReview)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()
		mockTaskRepo.On("Save", mock.Anything, task).Return(nil).Once()

		result, err := service.SetTaskDone(context.Background(), "task-1", "owner-1")

		require.NoError(t, err)
		assert.Equal(t, domain.ProgressCompleted, result.ProgressStatus())
		mockTaskRepo.AssertExpectations(t)
	})

	t.Run("ошибка: завершение возможно только из WAITING_FOR_REVIEW", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		task := buildTask(bus, "task-1", "owner-1", domain.ProgressInProgress)

		mockTaskRepo.On("FindByID", mock.Anything, "task-1").Return(task, nil).Once()

		_, err := service.SetTaskDone(context.Background(), "task-1", "owner-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
		mockTaskRepo.AssertNotCalled(t, "Save")
	})
}

func TestTaskService_GetTasksByOwner(t *testing.T) {
	t.Run("возвращает задачи владельца", func(t *testing.T) {
		service, mockTaskRepo, _, bus := setupTaskService(t)
		tasks := []*domain.Task{
			buildTask(bus, "task-1", "owner-1", domain.ProgressNotStarted),
			buildTask(bus, "task-2", "owner-1", domain.ProgressCompleted),
		}

		mockTaskRepo.On("FindByOwnerID", mock.Anything, "owner-1").Return(tasks, nil).Once()

		result, err := service.GetTasksByOwner(context.Background(), "owner-1")

		require.NoError(t, err)
		assert.Len(t, result, 2)
		mockTaskRepo.AssertExpectations(t)
	})
}
