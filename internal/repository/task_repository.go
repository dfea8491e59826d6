package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskRepository defines task persistence operations.
type TaskRepository interface {
	ListAll(ctx context.Context) ([]model.Task, error)
	Search(ctx context.Context, query string) ([]model.Task, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Replace(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// ListAll returns every task in store order.
func (r *taskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Search runs a full-text match over the indexed task columns. It requires
// the FULLTEXT index created by db.Migrate.
func (r *taskRepository) Search(ctx context.Context, query string) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("MATCH(task_name, task_description, category_name) AGAINST (?)", query).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create creates a new task.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// Replace overwrites the record at task.ID wholesale with the given field
// set. Returns gorm.ErrRecordNotFound if the id does not resolve.
func (r *taskRepository) Replace(ctx context.Context, task *model.Task) error {
	var existing model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", task.ID).First(&existing).Error; err != nil {
		return err
	}
	task.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes the task at id. Deleting an absent id is a no-op.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{}).Error
}
