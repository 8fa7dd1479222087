package view

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const layoutFile = "layout.html"

// Engine renders html/template pages wrapped in a shared layout. It
// implements fiber's Views interface, so fiber calls Load once at
// startup and Render per request.
type Engine struct {
	dir   string
	funcs template.FuncMap

	mu        sync.RWMutex
	templates map[string]*template.Template
}

// New creates an engine reading templates from dir. Every *.html file
// except the layout becomes a page addressable by its base name.
func New(dir string) *Engine {
	return &Engine{
		dir: dir,
		funcs: template.FuncMap{
			"year": func() int { return time.Now().Year() },
			// date accepts both time.Time values and the nullable
			// *time.Time fields on documents.
			"date": func(v interface{}) string {
				switch t := v.(type) {
				case time.Time:
					return t.Format("Jan 02, 2006")
				case *time.Time:
					if t != nil {
						return t.Format("Jan 02, 2006")
					}
				}
				return ""
			},
			// Stored image paths are either absolute placeholder URLs or
			// paths relative to the site root.
			"imageURL": func(p string) string {
				if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
					return p
				}
				return "/" + p
			},
		},
		templates: map[string]*template.Template{},
	}
}

// Load parses the layout together with each page template. Parse errors
// in any page fail the whole load.
func (e *Engine) Load() error {
	pages, err := filepath.Glob(filepath.Join(e.dir, "*.html"))
	if err != nil {
		return fmt.Errorf("glob templates: %w", err)
	}

	layout := filepath.Join(e.dir, layoutFile)
	parsed := map[string]*template.Template{}

	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		if name == strings.TrimSuffix(layoutFile, ".html") {
			continue
		}

		t, err := template.New(layoutFile).Funcs(e.funcs).ParseFiles(layout, page)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		parsed[name] = t
	}

	e.mu.Lock()
	e.templates = parsed
	e.mu.Unlock()

	return nil
}

// Render executes the named page into w. The variadic layout override
// fiber passes is ignored; every page uses the shared layout.
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	e.mu.RLock()
	t, ok := e.templates[name]
	e.mu.RUnlock()

	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.Execute(w, data)
}
