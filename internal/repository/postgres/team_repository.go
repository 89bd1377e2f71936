package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type teamRepository struct {
	db  *sql.DB
	bus *domain.EventBus
}

// NewTeamRepository создает репозиторий команд
// Шина событий нужна для восстановления агрегатов из БД
func NewTeamRepository(db *sql.DB, bus *domain.EventBus) *teamRepository {
	return &teamRepository{db: db, bus: bus}
}

// Save сохраняет команду и ее состав в одной транзакции
func (r *teamRepository) Save(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	teamQuery := `
		INSERT INTO teams (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name
	`
	if _, err := tx.ExecContext(ctx, teamQuery, team.ID(), team.Name().String()); err != nil {
		return err
	}

	// Состав синхронизируется целиком: старые строки команды удаляются,
	// актуальные добавляются upsert-ом (участник мог прийти из другой команды)
	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, team.ID()); err != nil {
		return err
	}

	memberQuery := `
		INSERT INTO team_members (id, team_id, name, email, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET team_id = EXCLUDED.team_id,
		    name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    status = EXCLUDED.status
	`
	for _, member := range team.Members() {
		_, err := tx.ExecContext(ctx, memberQuery,
			member.ID(), team.ID(), member.Name(), member.Email().String(), member.Status().String())
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *teamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT id, name FROM teams WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *teamRepository) FindByName(ctx context.Context, name domain.TeamName) (*domain.Team, error) {
	query := `SELECT id, name FROM teams WHERE name = $1`
	return r.findOne(ctx, query, name.String())
}

func (r *teamRepository) FindAll(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type teamRow struct {
		id   string
		name string
	}

	var teamRows []teamRow
	for rows.Next() {
		var row teamRow
		if err := rows.Scan(&row.id, &row.name); err != nil {
			return nil, err
		}
		teamRows = append(teamRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(teamRows))
	for _, row := range teamRows {
		team, err := r.reconstruct(ctx, row.id, row.name)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, nil
}

func (r *teamRepository) FindByMemberID(ctx context.Context, memberID string) (*domain.Team, error) {
	query := `
		SELECT t.id, t.name
		FROM teams t
		JOIN team_members m ON m.team_id = t.id
		WHERE m.id = $1
	`
	return r.findOne(ctx, query, memberID)
}

func (r *teamRepository) Exists(ctx context.Context, name domain.TeamName) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1)`
	if err := r.db.QueryRowContext(ctx, query, name.String()).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FindSmallestTeam возвращает команду с наименьшим числом участников
// При равенстве выбирается команда с меньшим id (порядок создания)
func (r *teamRepository) FindSmallestTeam(ctx context.Context) (*domain.Team, error) {
	query := `
		SELECT t.id, t.name
		FROM teams t
		LEFT JOIN team_members m ON m.team_id = t.id
		GROUP BY t.id, t.name
		ORDER BY COUNT(m.id) ASC, t.id ASC
		LIMIT 1
	`
	return r.findOne(ctx, query)
}

func (r *teamRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Team, error) {
	var id, name string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	return r.reconstruct(ctx, id, name)
}

// reconstruct загружает состав и восстанавливает агрегат
// Участники сортируются по id: UUID v7 упорядочен по времени создания
func (r *teamRepository) reconstruct(ctx context.Context, id, name string) (*domain.Team, error) {
	memberQuery := `
		SELECT id, name, email, status
		FROM team_members
		WHERE team_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, memberQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var memberID, memberName, email, status string
		if err := rows.Scan(&memberID, &memberName, &email, &status); err != nil {
			return nil, err
		}

		member, err := domain.ReconstructTeamMember(memberID, memberName, email, status)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teamName, err := domain.NewTeamName(name)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructTeam(id, teamName, members, r.bus)
}
