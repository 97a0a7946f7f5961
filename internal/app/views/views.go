// Package views renders the dashboard's server-side HTML pages. Templates and static
// assets are embedded into the binary.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{PageLogin, PageDashboard, PageList, PageForm, PageDetail, PageConfirmDelete, PageError}

var funcs = template.FuncMap{
	"badgeClass": badgeClass,
	"lower":      strings.ToLower,
}

// Renderer implements gin's render.HTMLRender. Each page is the layout cloned and
// combined with the page's "content" block.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Instance returns the render for page name.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates[PageError]
		data = ErrorPage{Status: http.StatusInternalServerError, Message: "Unknown page " + name}
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Static serves the embedded CSS and JavaScript.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// badgeClass maps a status value to its badge colour.
func badgeClass(status string) string {
	switch status {
	case "active", "current":
		return "badge-green"
	case "on_leave", "alumni", "trial":
		return "badge-amber"
	case "inactive", "resigned", "expelled", "suspended", "cancelled":
		return "badge-red"
	default:
		return "badge-grey"
	}
}
