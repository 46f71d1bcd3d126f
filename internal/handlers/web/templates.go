package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/KirkDiggler/combat-companion/internal/combat"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"statusClass": func(s combat.Status) string {
		return strings.ToLower(string(s))
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
