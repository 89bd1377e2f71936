package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-task-service/internal/repository"
)

type rosterRepository struct {
	db *sql.DB
}

// NewRosterRepository создает read-only репозиторий сводного списка участников
func NewRosterRepository(db *sql.DB) *rosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) GetAllMembers(ctx context.Context) ([]*repository.RosterEntry, error) {
	query := `
		SELECT m.id, m.name, m.email, m.status, t.id, t.name
		FROM team_members m
		JOIN teams t ON t.id = m.team_id
		ORDER BY t.name, m.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*repository.RosterEntry{}
	for rows.Next() {
		entry := &repository.RosterEntry{}
		err := rows.Scan(&entry.MemberID, &entry.MemberName, &entry.Email,
			&entry.Status, &entry.TeamID, &entry.TeamName)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
