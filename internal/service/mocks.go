package service

import (
	"context"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Save(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByName(ctx context.Context, name domain.TeamName) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindAll(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindByMemberID(ctx context.Context, memberID string) (*domain.Team, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Exists(ctx context.Context, name domain.TeamName) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTeamRepository) FindSmallestTeam(ctx context.Context) (*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) GetAllMembers(ctx context.Context) ([]*repository.RosterEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.RosterEntry), args.Error(1)
}

type MockReorganizationService struct {
	mock.Mock
}

func (m *MockReorganizationService) MergeTeams(ctx context.Context, source, target *domain.Team) error {
	args := m.Called(ctx, source, target)
	return args.Error(0)
}

func (m *MockReorganizationService) SplitTeam(ctx context.Context, team *domain.Team) ([]*domain.Team, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockAdminNotifier struct {
	mock.Mock
}

func (m *MockAdminNotifier) NotifyReorganizationFailed(ctx context.Context, teamID, reason string) {
	m.Called(ctx, teamID, reason)
}

func (m *MockAdminNotifier) NotifyReorganizationCompleted(ctx context.Context, teamID, action string) {
	m.Called(ctx, teamID, action)
}
