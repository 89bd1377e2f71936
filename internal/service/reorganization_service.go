package service

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

// ReorganizationService - алгоритмы реорганизации команд:
// объединение недоукомплектованной команды и разделение полной
type ReorganizationService interface {
	MergeTeams(ctx context.Context, source, target *domain.Team) error
	SplitTeam(ctx context.Context, team *domain.Team) ([]*domain.Team, error)
}
