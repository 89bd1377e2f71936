package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

type taskRepository struct {
	db  *sql.DB
	bus *domain.EventBus
}

// NewTaskRepository создает репозиторий задач
func NewTaskRepository(db *sql.DB, bus *domain.EventBus) *taskRepository {
	return &taskRepository{db: db, bus: bus}
}

func (r *taskRepository) Save(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, owner_id, progress_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title,
		    progress_status = EXCLUDED.progress_status
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID(), task.Title(), task.OwnerID(), task.ProgressStatus().String())
	return err
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, title, owner_id, progress_status FROM tasks WHERE id = $1`

	var taskID, title, ownerID, status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&taskID, &title, &ownerID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}

	return r.reconstruct(taskID, title, ownerID, status)
}

func (r *taskRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	query := `SELECT id, title, owner_id, progress_status FROM tasks WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		var taskID, title, owner, status string
		if err := rows.Scan(&taskID, &title, &owner, &status); err != nil {
			return nil, err
		}

		task, err := r.reconstruct(taskID, title, owner, status)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *taskRepository) reconstruct(id, title, ownerID, status string) (*domain.Task, error) {
	progress, err := domain.ParseProgressStatus(status)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructTask(id, title, ownerID, progress, r.bus), nil
}
