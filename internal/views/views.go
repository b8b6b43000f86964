// Package views renders the authentication screens.
//
// Templates and static assets are embedded into the binary. Every page is
// rendered through the shared "layout" template; form pages additionally use
// the "auth_form" card, which takes an optional header block and the form
// fields from the page template.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// sharedTemplates are parsed before every page template.
var sharedTemplates = []string{
	"templates/layout.html",
	"templates/auth_form.html",
}

// pageTemplates maps a view name to its page template.
var pageTemplates = map[string]string{
	constants.ViewLogin:         "templates/login.html",
	constants.ViewResetPassword: "templates/reset_password.html",
}

// Renderer executes the page templates.
type Renderer struct {
	appName string
	pages   map[string]*template.Template
}

// NewRenderer parses all page templates.
func NewRenderer(appName string) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageTemplates))
	for name, file := range pageTemplates {
		patterns := append(append([]string{}, sharedTemplates...), file)
		tmpl, err := template.New(name).ParseFS(templateFS, patterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s templates: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		appName: appName,
		pages:   pages,
	}, nil
}

// AppName returns the name shown in page titles.
func (r *Renderer) AppName() string {
	return r.appName
}

// Render executes the named page with data and returns the document.
// Nothing is returned on error so callers never send a half-rendered page.
func (r *Renderer) Render(name string, data interface{}) ([]byte, error) {
	tmpl, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// StaticHandler serves the embedded stylesheet and script.
// It expects the static prefix to be stripped already.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at compile time.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
