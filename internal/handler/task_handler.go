package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "taskboard/internal/errors"
	"taskboard/internal/flash"
	"taskboard/internal/service"
)

// TaskHandler serves the task list, search, and task mutation routes.
type TaskHandler struct {
	taskService     service.TaskService
	categoryService service.CategoryService
}

// NewTaskHandler creates a new task handler. The category service feeds the
// category dropdown on the add and edit forms.
func NewTaskHandler(taskService service.TaskService, categoryService service.CategoryService) *TaskHandler {
	return &TaskHandler{
		taskService:     taskService,
		categoryService: categoryService,
	}
}

// TaskForm carries the task form fields. All fields but the urgency
// checkbox are presence-validated; due_date stays an opaque string.
type TaskForm struct {
	CategoryName    string `form:"category_name" validate:"required"`
	TaskName        string `form:"task_name" validate:"required"`
	TaskDescription string `form:"task_description" validate:"required"`
	IsUrgent        string `form:"is_urgent"`
	DueDate         string `form:"due_date" validate:"required"`
}

// fields normalizes the form into the service field set. The urgency
// checkbox submits "on" or nothing; it becomes a bool here.
func (f *TaskForm) fields() service.TaskFields {
	return service.TaskFields{
		CategoryName:    f.CategoryName,
		TaskName:        f.TaskName,
		TaskDescription: f.TaskDescription,
		IsUrgent:        f.IsUrgent != "",
		DueDate:         f.DueDate,
	}
}

// SearchForm carries the search query field.
type SearchForm struct {
	Query string `form:"query" validate:"required"`
}

// ListTasks renders every task in store order.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListAll(c.Request().Context())
	if err != nil {
		return render(c, "tasks.html", map[string]interface{}{
			"Flash": apperrors.Notice(err),
		})
	}
	return render(c, "tasks.html", map[string]interface{}{
		"Tasks": tasks,
	})
}

// Search renders the tasks matching a full-text query. A query that matches
// nothing renders an empty list, not an error.
func (h *TaskHandler) Search(c echo.Context) error {
	var form SearchForm
	if err := c.Bind(&form); err != nil {
		return redirect(c, "/get_tasks")
	}
	if err := c.Validate(&form); err != nil {
		return redirect(c, "/get_tasks")
	}

	tasks, err := h.taskService.Search(c.Request().Context(), form.Query)
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	return render(c, "tasks.html", map[string]interface{}{
		"Tasks": tasks,
	})
}

// AddTaskPage renders the empty task form with the category dropdown.
func (h *TaskHandler) AddTaskPage(c echo.Context) error {
	categories, err := h.categoryService.ListSorted(c.Request().Context())
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	return render(c, "add_task.html", map[string]interface{}{
		"Categories": categories,
	})
}

// AddTask creates a task attributed to the session identity.
func (h *TaskHandler) AddTask(c echo.Context) error {
	var form TaskForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/add_task")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "All task fields are required")
		return redirect(c, "/add_task")
	}

	if _, err := h.taskService.Create(c.Request().Context(), form.fields(), identity(c)); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/add_task")
	}
	flash.Set(c, "Task Successfully Added")
	return redirect(c, "/get_tasks")
}

// EditTaskPage renders the task form pre-filled with the stored record.
func (h *TaskHandler) EditTaskPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrTaskNotFound))
		return redirect(c, "/get_tasks")
	}

	task, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	categories, err := h.categoryService.ListSorted(c.Request().Context())
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	return render(c, "edit_task.html", map[string]interface{}{
		"Task":       task,
		"Categories": categories,
	})
}

// EditTask replaces the stored record wholesale with the submitted fields,
// then returns the user to the edit page.
func (h *TaskHandler) EditTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrTaskNotFound))
		return redirect(c, "/get_tasks")
	}

	var form TaskForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/edit_task/"+id.String())
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "All task fields are required")
		return redirect(c, "/edit_task/"+id.String())
	}

	if err := h.taskService.Replace(c.Request().Context(), id, form.fields(), identity(c)); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	flash.Set(c, "Task Successfully Updated")
	return redirect(c, "/edit_task/"+id.String())
}

// DeleteTask removes a task. An unknown id still redirects with the success
// notice: delete is idempotent.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrTaskNotFound))
		return redirect(c, "/get_tasks")
	}

	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/get_tasks")
	}
	flash.Set(c, "Task Successfully Deleted")
	return redirect(c, "/get_tasks")
}
