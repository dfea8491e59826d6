package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/service"
)

// MockTaskService is a mock implementation of TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) ListAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Search(ctx context.Context, query string) ([]model.Task, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskService) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, fields service.TaskFields, createdBy string) (*model.Task, error) {
	args := m.Called(ctx, fields, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) Replace(ctx context.Context, id uuid.UUID, fields service.TaskFields, createdBy string) error {
	args := m.Called(ctx, id, fields, createdBy)
	return args.Error(0)
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListSorted(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Replace(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newFormContext(e *echo.Echo, form url.Values, rec *httptest.ResponseRecorder) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, rec)
	c.Set(auth.ContextKeyIdentity, "alice")
	return c
}

func TestTaskHandler_AddTask(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	taskSvc := new(MockTaskService)
	taskSvc.On("Create", mock.Anything, service.TaskFields{
		CategoryName:    "Home",
		TaskName:        "Clean",
		TaskDescription: "Clean the kitchen",
		IsUrgent:        true,
		DueDate:         "2024-01-01",
	}, "alice").Return(&model.Task{}, nil)

	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	form := url.Values{
		"category_name":    {"Home"},
		"task_name":        {"Clean"},
		"task_description": {"Clean the kitchen"},
		"is_urgent":        {"on"},
		"due_date":         {"2024-01-01"},
	}
	rec := httptest.NewRecorder()
	c := newFormContext(e, form, rec)

	assert.NoError(t, h.AddTask(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/get_tasks", rec.Header().Get(echo.HeaderLocation))
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_AddTaskMissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	taskSvc := new(MockTaskService)
	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	form := url.Values{
		"category_name": {"Home"},
		// task_name, task_description, due_date missing
	}
	rec := httptest.NewRecorder()
	c := newFormContext(e, form, rec)

	assert.NoError(t, h.AddTask(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/add_task", rec.Header().Get(echo.HeaderLocation))
	taskSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_AddTaskUnchecked(t *testing.T) {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}

	taskSvc := new(MockTaskService)
	taskSvc.On("Create", mock.Anything, mock.MatchedBy(func(fields service.TaskFields) bool {
		return !fields.IsUrgent
	}), "alice").Return(&model.Task{}, nil)

	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	// Browsers omit the checkbox field entirely when unchecked.
	form := url.Values{
		"category_name":    {"Home"},
		"task_name":        {"Clean"},
		"task_description": {"Clean the kitchen"},
		"due_date":         {"2024-01-01"},
	}
	rec := httptest.NewRecorder()
	c := newFormContext(e, form, rec)

	assert.NoError(t, h.AddTask(c))
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	e := echo.New()
	id := uuid.New()

	taskSvc := new(MockTaskService)
	taskSvc.On("Delete", mock.Anything, id).Return(nil)
	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("task_id")
	c.SetParamValues(id.String())
	c.Set(auth.ContextKeyIdentity, "alice")

	assert.NoError(t, h.DeleteTask(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/get_tasks", rec.Header().Get(echo.HeaderLocation))
	taskSvc.AssertExpectations(t)
}

func TestTaskHandler_DeleteTaskBadID(t *testing.T) {
	e := echo.New()

	taskSvc := new(MockTaskService)
	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("task_id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.DeleteTask(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/get_tasks", rec.Header().Get(echo.HeaderLocation))
	taskSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// captureRenderer writes the notice handed to the template, letting tests
// observe what the page would show.
type captureRenderer struct{}

func (captureRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	fields := data.(map[string]interface{})
	_, err := fmt.Fprintf(w, "%v", fields["Flash"])
	return err
}

func TestTaskHandler_ListTasksErrorConsumesPendingNotice(t *testing.T) {
	e := echo.New()
	e.Renderer = captureRenderer{}

	taskSvc := new(MockTaskService)
	taskSvc.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))
	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	// A notice from an earlier request is still pending in the cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "taskboard_flash", Value: "Stale+notice"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListTasks(c))

	// The in-request notice shows, not the stale one.
	assert.Equal(t, "Something went wrong, please try again", rec.Body.String())

	// The pending cookie is consumed; it must not surface on a later page.
	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "taskboard_flash" && cookie.MaxAge == -1 {
			cleared = true
		}
	}
	assert.True(t, cleared, "pending notice cookie should be cleared")
}

func TestTaskHandler_ListTasksShowsPendingNotice(t *testing.T) {
	e := echo.New()
	e.Renderer = captureRenderer{}

	taskSvc := new(MockTaskService)
	taskSvc.On("ListAll", mock.Anything).Return([]model.Task{}, nil)
	h := NewTaskHandler(taskSvc, new(MockCategoryService))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "taskboard_flash", Value: "Task+Successfully+Added"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.ListTasks(c))
	assert.Equal(t, "Task Successfully Added", rec.Body.String())
}
