package views

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"price": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 2, 64)
	},
}

// Templates parses all templates. Each page is available under its file
// name, e.g. "index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
