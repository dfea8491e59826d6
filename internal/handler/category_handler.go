package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/flash"
	"taskboard/internal/service"
)

// CategoryHandler serves the category list and mutation routes.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryForm carries the single category form field.
type CategoryForm struct {
	CategoryName string `form:"category_name" validate:"required"`
}

// ListCategories renders all categories ascending by name.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListSorted(c.Request().Context())
	if err != nil {
		return render(c, "categories.html", map[string]interface{}{
			"Flash": apperrors.Notice(err),
		})
	}
	return render(c, "categories.html", map[string]interface{}{
		"Categories": categories,
	})
}

// AddCategoryPage renders the empty category form.
func (h *CategoryHandler) AddCategoryPage(c echo.Context) error {
	return render(c, "add_category.html", nil)
}

// AddCategory creates a category.
func (h *CategoryHandler) AddCategory(c echo.Context) error {
	var form CategoryForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/add_category")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "Category name is required")
		return redirect(c, "/add_category")
	}

	if _, err := h.categoryService.Create(c.Request().Context(), form.CategoryName); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/add_category")
	}
	flash.Set(c, "New Category Added")
	return redirect(c, "/get_categories")
}

// EditCategoryPage renders the category form pre-filled with the record.
func (h *CategoryHandler) EditCategoryPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrCategoryNotFound))
		return redirect(c, "/get_categories")
	}

	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_categories")
	}
	return render(c, "edit_category.html", map[string]interface{}{
		"Category": category,
	})
}

// EditCategory replaces the stored record with the submitted name.
func (h *CategoryHandler) EditCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrCategoryNotFound))
		return redirect(c, "/get_categories")
	}

	var form CategoryForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/edit_category/"+id.String())
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "Category name is required")
		return redirect(c, "/edit_category/"+id.String())
	}

	if err := h.categoryService.Replace(c.Request().Context(), id, form.CategoryName); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_categories")
	}
	flash.Set(c, "Category Successfully Updated")
	return redirect(c, "/get_categories")
}

// DeleteCategory removes a category; existing tasks keep their denormalized
// category name. Delete is idempotent.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrCategoryNotFound))
		return redirect(c, "/get_categories")
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_categories")
	}
	flash.Set(c, "Category Successfully Deleted")
	return redirect(c, "/get_categories")
}
