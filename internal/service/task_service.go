package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TaskFields is the complete field set of a task as submitted by a form.
// Replace overwrites the stored record with exactly these values; nothing
// from the previous version survives.
type TaskFields struct {
	CategoryName    string
	TaskName        string
	TaskDescription string
	IsUrgent        bool
	DueDate         string
}

// TaskService exposes task operations. Every mutation takes the acting
// identity explicitly; it is never read from ambient state.
type TaskService interface {
	ListAll(ctx context.Context) ([]model.Task, error)
	Search(ctx context.Context, query string) ([]model.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, fields TaskFields, createdBy string) (*model.Task, error)
	Replace(ctx context.Context, id uuid.UUID, fields TaskFields, createdBy string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService builds a TaskService over the task repository.
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) ListAll(ctx context.Context) ([]model.Task, error) {
	return s.tasks.ListAll(ctx)
}

func (s *taskService) Search(ctx context.Context, query string) ([]model.Task, error) {
	tasks, err := s.tasks.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (s *taskService) Create(ctx context.Context, fields TaskFields, createdBy string) (*model.Task, error) {
	task := &model.Task{
		CategoryName:    fields.CategoryName,
		TaskName:        fields.TaskName,
		TaskDescription: fields.TaskDescription,
		IsUrgent:        fields.IsUrgent,
		DueDate:         fields.DueDate,
		CreatedBy:       createdBy,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Replace applies full-replacement semantics: the record at id becomes
// exactly fields plus createdBy.
func (s *taskService) Replace(ctx context.Context, id uuid.UUID, fields TaskFields, createdBy string) error {
	task := &model.Task{
		ID:              id,
		CategoryName:    fields.CategoryName,
		TaskName:        fields.TaskName,
		TaskDescription: fields.TaskDescription,
		IsUrgent:        fields.IsUrgent,
		DueDate:         fields.DueDate,
		CreatedBy:       createdBy,
	}
	if err := s.tasks.Replace(ctx, task); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrTaskNotFound
		}
		return fmt.Errorf("replace task: %w", err)
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
