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

// CategoryService exposes category operations.
type CategoryService interface {
	ListSorted(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, name string) (*model.Category, error)
	Replace(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService builds a CategoryService over the category repository.
func NewCategoryService(categories repository.CategoryRepository) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) ListSorted(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListSorted(ctx)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	category := &model.Category{CategoryName: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Replace applies full-replacement semantics to the record at id.
func (s *categoryService) Replace(ctx context.Context, id uuid.UUID, name string) error {
	category := &model.Category{ID: id, CategoryName: name}
	if err := s.categories.Replace(ctx, category); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("replace category: %w", err)
	}
	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
