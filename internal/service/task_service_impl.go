package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
)

type taskService struct {
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
	bus      *domain.EventBus
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(taskRepo repository.TaskRepository, teamRepo repository.TeamRepository, bus *domain.EventBus) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		bus:      bus,
	}
}

// CreateTask создает задачу для участника команды
func (s *taskService) CreateTask(ctx context.Context, title, ownerID string) (*domain.Task, error) {
	// Владелец задачи должен состоять в какой-либо команде
	if _, err := s.teamRepo.FindByMemberID(ctx, ownerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("member with id " + ownerID)
		}
		return nil, err
	}

	task, err := domain.NewTask(title, ownerID, s.bus)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// EditTaskTitle меняет название задачи
// Редактировать задачу может только владелец
func (s *taskService) EditTaskTitle(ctx context.Context, taskID, requesterID, title string) (*domain.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.OwnerID() != requesterID {
		return nil, domain.ErrNotOwner
	}

	if err := task.Edit(title); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateProgress меняет статус прогресса задачи
func (s *taskService) UpdateProgress(ctx context.Context, taskID, requesterID, newStatus string) (*domain.Task, error) {
	status, err := domain.ParseProgressStatus(newStatus)
	if err != nil {
		return nil, err
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.ChangeProgressStatus(status, requesterID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// SetTaskDone переводит задачу в статус COMPLETED
func (s *taskService) SetTaskDone(ctx context.Context, taskID, requesterID string) (*domain.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := task.ChangeProgressStatus(domain.ProgressCompleted, requesterID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTasksByOwner возвращает все задачи владельца
func (s *taskService) GetTasksByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	return s.taskRepo.FindByOwnerID(ctx, ownerID)
}

func (s *taskService) getTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("task with id " + taskID)
		}
		return nil, err
	}
	return task, nil
}
