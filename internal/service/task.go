package service

import (
	"context"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

type TaskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Assign(ctx context.Context, params model.CreateTaskParams) (*model.Task, error) {
	if params.Title == "" {
		return nil, apperrors.MissingRequired("title")
	}
	if params.DeveloperID == "" {
		return nil, apperrors.MissingRequired("developerId")
	}
	if params.ClientID != nil && *params.ClientID == "" {
		params.ClientID = nil
	}

	task, err := s.tasks.Create(ctx, params)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperrors.InvalidInput("developerId", "unknown developer or client")
		}
		return nil, apperrors.Database(err)
	}
	return task, nil
}

func (s *TaskService) ListForDeveloper(ctx context.Context, developerID string) ([]*model.Task, error) {
	tasks, err := s.tasks.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return tasks, nil
}

func (s *TaskService) ListForClient(ctx context.Context, clientID string) ([]*model.Task, error) {
	tasks, err := s.tasks.ListByClient(ctx, clientID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return tasks, nil
}

// UpdateStatus changes a task the developer owns. Tasks of other developers
// are reported as not found.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID, developerID string, status model.TaskStatus) (*model.Task, error) {
	if !util.IsValidUUID(taskID) {
		return nil, apperrors.NotFound("Task")
	}
	task, err := s.tasks.UpdateStatus(ctx, taskID, developerID, status)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task")
	}
	return task, nil
}
