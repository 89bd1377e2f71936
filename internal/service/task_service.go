package service

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, title, ownerID string) (*domain.Task, error)
	EditTaskTitle(ctx context.Context, taskID, requesterID, title string) (*domain.Task, error)
	UpdateProgress(ctx context.Context, taskID, requesterID, newStatus string) (*domain.Task, error)
	SetTaskDone(ctx context.Context, taskID, requesterID string) (*domain.Task, error)
	GetTasksByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
}
