package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	funcs := template.FuncMap{
		"date": func(v any) string {
			var t time.Time
			switch d := v.(type) {
			case time.Time:
				t = d
			case *time.Time:
				if d != nil {
					t = *d
				}
			}
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02")
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
	return &renderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
