package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/flash"
)

// identity returns the session username placed in context by the session
// middleware, or "" for an anonymous request.
func identity(c echo.Context) string {
	if v, ok := c.Get(auth.ContextKeyIdentity).(string); ok {
		return v
	}
	return ""
}

// render executes a template with the pending flash notice and the current
// identity merged into data. The notice cookie is always consumed here; a
// notice already present in data wins over it, since it was raised by this
// very request and must show now.
func render(c echo.Context, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	pending := flash.Pop(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = pending
	}
	data["Identity"] = identity(c)
	return c.Render(http.StatusOK, name, data)
}

// redirect issues the POST-redirect-GET hop used after every mutation.
func redirect(c echo.Context, target string) error {
	return c.Redirect(http.StatusSeeOther, target)
}

func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(ttl),
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
