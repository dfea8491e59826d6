package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/flash"
	"taskboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.Manager,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	categoryHandler *handler.CategoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(loadIdentity(sessions))

	// Add validator
	e.Validator = &FormValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public routes
	e.GET("/", taskHandler.ListTasks)
	e.GET("/get_tasks", taskHandler.ListTasks)
	e.POST("/search", taskHandler.Search)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/get_categories", categoryHandler.ListCategories)

	// Session-gated routes. Category mutations are gated the same way as
	// task mutations.
	secured := e.Group("", requireSession(sessions))
	secured.GET("/profile/:username", authHandler.Profile)
	secured.GET("/logout", authHandler.Logout)
	secured.GET("/add_task", taskHandler.AddTaskPage)
	secured.POST("/add_task", taskHandler.AddTask)
	secured.GET("/edit_task/:task_id", taskHandler.EditTaskPage)
	secured.POST("/edit_task/:task_id", taskHandler.EditTask)
	secured.GET("/delete_task/:task_id", taskHandler.DeleteTask)
	secured.GET("/add_category", categoryHandler.AddCategoryPage)
	secured.POST("/add_category", categoryHandler.AddCategory)
	secured.GET("/edit_category/:category_id", categoryHandler.EditCategoryPage)
	secured.POST("/edit_category/:category_id", categoryHandler.EditCategory)
	secured.GET("/delete_category/:category_id", categoryHandler.DeleteCategory)
}

// requireSession gates a route on a resolvable session cookie. Failures
// redirect to the login page instead of surfacing an HTTP error status.
func requireSession(sessions *auth.Manager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			// loadIdentity already resolved this request's session; don't
			// hit the store a second time.
			if username, ok := c.Get(auth.ContextKeyIdentity).(string); ok && username != "" {
				return username, nil
			}
			username, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return nil, err
			}
			c.Set(auth.ContextKeyIdentity, username)
			return username, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			flash.Set(c, apperrors.Notice(apperrors.ErrUnauthenticated))
			return c.Redirect(http.StatusSeeOther, "/login")
		},
	})
}

// loadIdentity resolves the session on public pages so views can show the
// signed-in user. Resolution failures leave the request anonymous.
func loadIdentity(sessions *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
				if username, err := sessions.Resolve(c.Request().Context(), cookie.Value); err == nil {
					c.Set(auth.ContextKeyIdentity, username)
				}
			}
			return next(c)
		}
	}
}

// FormValidator wraps validator for Echo.
type FormValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (v *FormValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
