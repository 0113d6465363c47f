// Package view renders the portal's HTML pages. Templates are embedded at
// build time; each page file is parsed together with the shared layout and
// executed through Echo's Renderer interface.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

// Flash is a one-shot notification surfaced at the top of the next page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// Page is the envelope every template receives: the layout reads the
// session-derived fields, the page body reads Data.
type Page struct {
	Title    string
	Authed   bool
	Username string
	Flash    *Flash
	Data     any
}

var funcs = template.FuncMap{
	"money": func(v float64) string {
		if v == 0 {
			return "—"
		}
		out := fmt.Sprintf("%.0f", v)
		for i := len(out) - 3; i > 0; i -= 3 {
			out = out[:i] + " " + out[i:]
		}
		return out
	},
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page template against the shared layout.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: glob templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New("layout.html").
			Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		pages[path.Base(name)] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer. name is the page file name, e.g.
// "catalog.html"; data must be a Page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
