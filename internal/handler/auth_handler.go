package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/flash"
	"taskboard/internal/service"
)

// AuthHandler serves the register, login, profile, and logout routes.
type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
	}
}

// CredentialsForm carries the register and login form fields. Presence is
// the only validation, matching the store's rules.
type CredentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return render(c, "register.html", nil)
}

// Register creates a credential record and signs the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/register")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, "Username and password are required")
		return redirect(c, "/register")
	}

	username, token, err := h.authService.Register(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/register")
	}

	setSessionCookie(c, token, h.sessionTTL)
	flash.Set(c, "Registration Successful!")
	return redirect(c, "/profile/"+username)
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, "login.html", nil)
}

// Login verifies credentials and signs the user in.
func (h *AuthHandler) Login(c echo.Context) error {
	var form CredentialsForm
	if err := c.Bind(&form); err != nil {
		flash.Set(c, "Invalid form submission")
		return redirect(c, "/login")
	}
	if err := c.Validate(&form); err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrInvalidCredentials))
		return redirect(c, "/login")
	}

	username, token, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		flash.Set(c, apperrors.Notice(err))
		return redirect(c, "/login")
	}

	setSessionCookie(c, token, h.sessionTTL)
	flash.Set(c, "Welcome, "+username)
	return redirect(c, "/profile/"+username)
}

// Profile renders the profile of the signed-in user. The path parameter is
// display-only; the session identity is authoritative.
func (h *AuthHandler) Profile(c echo.Context) error {
	return render(c, "profile.html", map[string]interface{}{
		"Username": identity(c),
	})
}

// Logout ends the active session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil {
		flash.Set(c, apperrors.Notice(apperrors.ErrNoActiveSession))
		return redirect(c, "/login")
	}

	if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
		flash.Set(c, apperrors.Notice(err))
		clearSessionCookie(c)
		return redirect(c, "/login")
	}

	clearSessionCookie(c)
	flash.Set(c, "You have been logged out")
	return redirect(c, "/login")
}
