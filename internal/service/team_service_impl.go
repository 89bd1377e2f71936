package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
	bus      *domain.EventBus
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, bus *domain.EventBus) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		bus:      bus,
	}
}

// CreateTeam создает пустую команду с уникальным именем
func (s *teamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	teamName, err := domain.NewTeamName(name)
	if err != nil {
		return nil, err
	}

	exists, err := s.teamRepo.Exists(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTeamExists
	}

	team := domain.NewTeam(teamName, s.bus)

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamByID получает команду с составом по ID
func (s *teamService) GetTeamByID(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("team with id " + id)
		}
		return nil, err
	}

	return team, nil
}

// GetTeamByName получает команду с составом по имени
func (s *teamService) GetTeamByName(ctx context.Context, name string) (*domain.Team, error) {
	teamName, err := domain.NewTeamName(name)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, err
	}

	return team, nil
}

// AddMember создает нового участника и добавляет его в команду
func (s *teamService) AddMember(ctx context.Context, teamID, memberName, memberEmail string) (*domain.Team, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	member, err := domain.NewTeamMember(memberName, memberEmail)
	if err != nil {
		return nil, err
	}

	if err := team.AddMember(member); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// RemoveMember удаляет участника из команды
// Удаление может синхронно запустить реорганизацию через событие
func (s *teamService) RemoveMember(ctx context.Context, teamID, memberID string) (*domain.Team, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := team.RemoveMember(memberID); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// ChangeMemberStatus меняет статус участия члена команды
func (s *teamService) ChangeMemberStatus(ctx context.Context, teamID, memberID, newStatus string) (*domain.Team, error) {
	status, err := domain.ParseEnrollmentStatus(newStatus)
	if err != nil {
		return nil, err
	}

	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if err := team.ChangeMemberStatus(memberID, status); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}
