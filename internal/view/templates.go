package view

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/fornecedores/cadastro/internal/shared"
	"github.com/fornecedores/cadastro/web"
)

// FirstAccess is shown in the banner when the request carries no last-access cookie.
const FirstAccess = "Primeiro acesso"

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	User        string
	LastAccess  string
	CurrentPath string
	Data        any
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		// seq turns a zero-based range index into the 1-based row number.
		"seq": func(i int) int { return i + 1 },
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Page assembles the layout data for a request: the session user and the
// last-access value the client sent with this request.
func Page(r *http.Request, title string, data any) TemplateData {
	lastAccess, ok := shared.LastAccess(r)
	if !ok {
		lastAccess = FirstAccess
	}
	return TemplateData{
		Title:       title,
		User:        shared.SessionFromContext(r.Context()).User(),
		LastAccess:  lastAccess,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}
