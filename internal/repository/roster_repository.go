package repository

import "context"

// RosterEntry - строка сводного списка участников с названием команды
// Используется только для чтения в слое представления
type RosterEntry struct {
	MemberID   string
	MemberName string
	Email      string
	Status     string
	TeamID     string
	TeamName   string
}

type RosterRepository interface {
	GetAllMembers(ctx context.Context) ([]*RosterEntry, error)
}
