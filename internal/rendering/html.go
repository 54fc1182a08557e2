package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html templates/style.css
var templateFS embed.FS

// Renderer executes the embedded HTML templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

var (
	defaultRenderer *Renderer
	defaultErr      error
	defaultOnce     sync.Once
)

// New parses the embedded templates.
func New() (*Renderer, error) {
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, &TemplateError{Template: "style.css", Message: "failed to read", Cause: err}
	}

	funcs := template.FuncMap{
		// The stylesheet is embedded at build time, never user input.
		"css": func() template.CSS { return template.CSS(css) }, //nolint:gosec
	}
	tmpl, err := template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse templates", Cause: err}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Default returns a shared Renderer, parsing the templates on first use.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New()
	})
	return defaultRenderer, defaultErr
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &TemplateError{Template: name, Message: "failed to execute", Cause: err}
	}
	return buf.String(), nil
}

// RenderResume renders r as a standalone HTML document. The resume itself is inside
// the element with id ContentID.
func (r *Renderer) RenderResume(doc *types.Resume) (string, error) {
	return r.execute("resume-page", NewResumeView(doc))
}

// RenderLanding renders the landing view.
func (r *Renderer) RenderLanding() (string, error) {
	return r.execute("landing", nil)
}

// RenderEditor renders the editor view: the form beside a live preview.
func (r *Renderer) RenderEditor(view EditorView) (string, error) {
	return r.execute("editor", view)
}
