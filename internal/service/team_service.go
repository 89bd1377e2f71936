package service

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	GetTeamByID(ctx context.Context, id string) (*domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (*domain.Team, error)
	AddMember(ctx context.Context, teamID, memberName, memberEmail string) (*domain.Team, error)
	RemoveMember(ctx context.Context, teamID, memberID string) (*domain.Team, error)
	ChangeMemberStatus(ctx context.Context, teamID, memberID, newStatus string) (*domain.Team, error)
}
