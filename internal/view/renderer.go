package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Renderer adapts html/template to echo's Renderer interface. Templates are
// addressed by their base file name.
type Renderer struct {
	templates *template.Template
}

// New parses every template matching glob.
func New(glob string) (*Renderer, error) {
	t, err := template.ParseGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
