package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	ListSorted(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Replace(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListSorted returns all categories ascending by name.
func (r *categoryRepository) ListSorted(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("category_name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Replace overwrites the record at category.ID with the given field set.
// Returns gorm.ErrRecordNotFound if the id does not resolve.
func (r *categoryRepository) Replace(ctx context.Context, category *model.Category) error {
	var existing model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", category.ID).First(&existing).Error; err != nil {
		return err
	}
	category.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category at id. Deleting an absent id is a no-op.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}
