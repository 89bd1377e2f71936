package repository

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type TeamRepository interface {
	Save(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	FindByName(ctx context.Context, name domain.TeamName) (*domain.Team, error)
	FindAll(ctx context.Context) ([]*domain.Team, error)
	FindByMemberID(ctx context.Context, memberID string) (*domain.Team, error)
	Exists(ctx context.Context, name domain.TeamName) (bool, error)
	FindSmallestTeam(ctx context.Context) (*domain.Team, error)
}
