// Package flash implements one-shot user notices carried in a cookie: set
// on the response that redirects, consumed by the next rendered page.
package flash

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const cookieName = "taskboard_flash"

// Set queues a notice for the next rendered page.
func Set(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending notice and clears it so it shows exactly once.
func Pop(c echo.Context) string {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}
