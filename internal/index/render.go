package index

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Page is the data handed to the overview template.
type Page struct {
	Groups  []Group
	Letters []Letter
	Date    string // run date, YYYY-MM-DD
	Args    string // original invocation arguments
}

// Render writes the overview page. Text content and link targets are
// escaped by the template engine.
func Render(w io.Writer, page Page) error {
	if err := indexTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// WriteFile renders the overview page to the given path.
func WriteFile(path string, page Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	if err := Render(f, page); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
