// Package document renders lecture note pages and writes them to disk.
package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/notes.html.tmpl
var templateFS embed.FS

// Columns are the fixed headers of the notes table.
var Columns = []string{"Key Points", "Notes", "Code Snippets", "Questions", "Links"}

// EmptyRows is the number of blank rows in the notes table.
const EmptyRows = 8

var notesTemplate = template.Must(template.ParseFS(templateFS, "templates/notes.html.tmpl"))

type page struct {
	Section string
	Lecture string
	Columns []string
	Rows    []struct{}
}

// Render returns the notes page for one lecture. The lecture label becomes the
// page title and heading; the section label is shown beneath it. Both are
// HTML-escaped.
func Render(sectionLabel, lectureLabel string) ([]byte, error) {
	var buf bytes.Buffer
	err := notesTemplate.Execute(&buf, page{
		Section: sectionLabel,
		Lecture: lectureLabel,
		Columns: Columns,
		Rows:    make([]struct{}, EmptyRows),
	})
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", lectureLabel, err)
	}
	return buf.Bytes(), nil
}
