package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/graviti/shiptracker/internal/api/handler"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{
	handler.TemplateLogin,
	handler.TemplateUpload,
	handler.TemplateRoute,
	handler.TemplateSpeed,
	handler.TemplateCodes,
	handler.TemplateReport,
	handler.TemplateAdvisory,
	handler.TemplateError,
}

// Templates renders the dashboard pages. Each page is its own template set
// of layout.html plus the page file, so pages can redefine the layout blocks
// independently.
type Templates struct {
	sets map[string]*template.Template
}

// NewTemplates parses every page. showLogo controls whether the login page
// links the branding logo.
func NewTemplates(showLogo bool) (*Templates, error) {
	funcs := template.FuncMap{
		"hasLogo":  func() bool { return showLogo },
		"viewPath": viewPath,
	}

	t := &Templates{sets: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		set, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		t.sets[name] = set
	}
	return t, nil
}

// Render satisfies echo.Renderer.
func (t *Templates) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	set, ok := t.sets[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return set.ExecuteTemplate(w, "layout", data)
}

// viewPath is where the vessel selector returns to after a change.
func viewPath(active string) string {
	for _, item := range handler.Navigation {
		if item.Key == active {
			return item.Path
		}
	}
	return "/upload"
}
