package repository

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Task, error)
}
