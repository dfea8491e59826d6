package errors

import "errors"

var (
	// ErrDuplicateUser is returned when a username is already registered.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when no session identity can be resolved.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrNoActiveSession is returned when logging out without an active session.
	ErrNoActiveSession = errors.New("no active session")
	// ErrTaskNotFound is returned when a task id does not resolve.
	ErrTaskNotFound = errors.New("task not found")
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
)

// Notice maps an error to the transient message shown to the user. Every
// failure surfaces as a notice plus a redirect, never as an error page.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateUser):
		return "Username already exists"
	case errors.Is(err, ErrInvalidCredentials):
		return "Incorrect Username and/or Password"
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrNoActiveSession):
		return "Please log in to continue"
	case errors.Is(err, ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, ErrCategoryNotFound):
		return "Category not found"
	default:
		return "Something went wrong, please try again"
	}
}
