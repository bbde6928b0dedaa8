package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/model"
)

type TaskRepository interface {
	Create(ctx context.Context, params model.CreateTaskParams) (*model.Task, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]*model.Task, error)
	ListByClient(ctx context.Context, clientID string) ([]*model.Task, error)
	// UpdateStatus only touches a task owned by developerID; nil means no such task.
	UpdateStatus(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error)
}

type taskRepo struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, params model.CreateTaskParams) (*model.Task, error) {
	var task model.Task
	err := r.db.GetContext(ctx, &task, `
		INSERT INTO tasks (id, title, description, developer_id, client_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, uuid.NewString(), params.Title, params.Description, params.DeveloperID, params.ClientID)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Task, error) {
	tasks := []*model.Task{}
	err := r.db.SelectContext(ctx, &tasks, `
		SELECT * FROM tasks WHERE developer_id = $1 ORDER BY created_at DESC
	`, developerID)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) ListByClient(ctx context.Context, clientID string) ([]*model.Task, error) {
	tasks := []*model.Task{}
	err := r.db.SelectContext(ctx, &tasks, `
		SELECT t.*, d.email AS developer_email
		FROM tasks t
		JOIN developers d ON d.id = t.developer_id
		WHERE t.client_id = $1
		ORDER BY t.created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepo) UpdateStatus(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error) {
	var task model.Task
	err := r.db.GetContext(ctx, &task, `
		UPDATE tasks SET status = $3, updated_at = NOW()
		WHERE id = $1 AND developer_id = $2
		RETURNING *
	`, taskID, developerID, status)
	return HandleNotFound(&task, err)
}
