package views

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"score": formatScore,
	"date":  formatDate,
}

// Templates parses every page and partial. Pages are looked up by file name,
// e.g. "movie.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

func formatScore(avg *float64) string {
	if avg == nil {
		return "No ratings yet"
	}
	return fmt.Sprintf("%.1f / 5", *avg)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
