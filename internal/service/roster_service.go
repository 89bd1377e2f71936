package service

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/repository"
)

type RosterService interface {
	GetAllMembers(ctx context.Context) ([]*repository.RosterEntry, error)
}

type rosterService struct {
	rosterRepo repository.RosterRepository
}

// NewRosterService создает новый экземпляр RosterService
func NewRosterService(rosterRepo repository.RosterRepository) RosterService {
	return &rosterService{rosterRepo: rosterRepo}
}

// GetAllMembers возвращает сводный список участников всех команд
func (s *rosterService) GetAllMembers(ctx context.Context) ([]*repository.RosterEntry, error) {
	return s.rosterRepo.GetAllMembers(ctx)
}
