// Package views renders the console pages from embedded html/template files.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/ndis-platform/admin-console/internal/domain"
)

//go:embed templates/*.html
var files embed.FS

const layoutName = "layout"

var funcs = template.FuncMap{
	"orNA":        orNA,
	"date":        func(t *domain.Timestamp) string { return t.DateString() },
	"statusClass": statusClass,
}

// Engine implements fiber.Views. Every page is parsed together with the shared layout.
type Engine struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
}

// New returns an engine; templates are parsed on Load.
func New() *Engine {
	return &Engine{}
}

// Load parses every embedded page.
func (e *Engine) Load() error {
	matches, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return err
	}
	pages := make(map[string]*template.Template, len(matches))
	for _, file := range matches {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == layoutName {
			continue
		}
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/"+layoutName+".html", file)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

// Render executes page name inside the layout. Layout arguments are ignored.
func (e *Engine) Render(w io.Writer, name string, bind interface{}, _ ...string) error {
	e.mu.RLock()
	loaded := e.pages != nil
	e.mu.RUnlock()
	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	t, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, layoutName, bind)
}

func orNA(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "N/A"
	}
	return *s
}

func statusClass(status domain.StaffStatus) string {
	switch status {
	case domain.StaffStatusActive:
		return "success"
	case domain.StaffStatusInactive:
		return "error"
	case domain.StaffStatusOnLeave:
		return "warning"
	default:
		return "default"
	}
}
