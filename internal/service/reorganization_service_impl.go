package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
)

// Число участников, переходящих в новую команду при разделении
const splitMoveCount = domain.MaxTeamSize / 2

type reorganizationService struct {
	teamRepo repository.TeamRepository
	bus      *domain.EventBus
}

// NewReorganizationService создает новый экземпляр ReorganizationService
func NewReorganizationService(teamRepo repository.TeamRepository, bus *domain.EventBus) ReorganizationService {
	return &reorganizationService{
		teamRepo: teamRepo,
		bus:      bus,
	}
}

// MergeTeams переносит всех участников source в target
// source не удаляется и остается пустой командой
// Сохранения не атомарны между собой: ошибка на промежуточном шаге
// оставляет команды в частично перенесенном состоянии
func (s *reorganizationService) MergeTeams(ctx context.Context, source, target *domain.Team) error {
	if source.Equals(target) {
		return domain.ErrSameTeam
	}

	sourceMembers := source.Members()
	if len(sourceMembers) == 0 {
		return domain.ErrEmptySource
	}

	if len(sourceMembers)+target.Size() > domain.MaxTeamSize {
		return &domain.DomainError{
			Code: "MERGE_SIZE",
			Message: fmt.Sprintf("merged team would have %d members, which exceeds the size limit",
				len(sourceMembers)+target.Size()),
		}
	}

	for _, member := range sourceMembers {
		if err := target.AddMember(member); err != nil {
			return fmt.Errorf("failed to move member into target team: %w", err)
		}
	}

	if err := s.teamRepo.Save(ctx, target); err != nil {
		return fmt.Errorf("failed to save target team: %w", err)
	}

	for _, member := range sourceMembers {
		if err := source.RemoveMember(member.ID()); err != nil {
			return fmt.Errorf("failed to remove member from source team: %w", err)
		}
	}

	if err := s.teamRepo.Save(ctx, source); err != nil {
		return fmt.Errorf("failed to save source team: %w", err)
	}

	return nil
}

// SplitTeam разделяет полную команду на две по 2 участника
// Принимаются только команды ровно из 4 участников: агрегат не дает
// размеру превысить 4, поэтому больших команд не существует
// Новая команда получает имя с суффиксом "-2"
func (s *reorganizationService) SplitTeam(ctx context.Context, team *domain.Team) ([]*domain.Team, error) {
	members := team.Members()
	if len(members) != domain.MaxTeamSize {
		return nil, &domain.DomainError{
			Code:    "SPLIT_SIZE",
			Message: fmt.Sprintf("team must have exactly %d members to be split, got %d", domain.MaxTeamSize, len(members)),
		}
	}

	newName, err := domain.NewTeamName(fmt.Sprintf("%s-2", team.Name()))
	if err != nil {
		return nil, fmt.Errorf("failed to derive split team name: %w", err)
	}

	newTeam := domain.NewTeam(newName, s.bus)

	// Первая половина текущего состава переходит в новую команду
	membersToMove := members[:splitMoveCount]

	for _, member := range membersToMove {
		if err := newTeam.AddMember(member); err != nil {
			return nil, fmt.Errorf("failed to add member to the new team: %w", err)
		}
	}

	for _, member := range membersToMove {
		if err := team.RemoveMember(member.ID()); err != nil {
			return nil, fmt.Errorf("failed to remove member from the original team: %w", err)
		}
	}

	if err := s.teamRepo.Save(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save original team: %w", err)
	}
	if err := s.teamRepo.Save(ctx, newTeam); err != nil {
		return nil, fmt.Errorf("failed to save new team: %w", err)
	}

	return []*domain.Team{team, newTeam}, nil
}
