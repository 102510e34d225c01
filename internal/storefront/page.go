package storefront

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	productsPage = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/products.html"))
	errorPage    = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/error.html"))
)

type pageData struct {
	Title     string
	RequestID string
	Products  []Product
}

// renderPage executes t fully before writing so a template failure never
// leaves a half-written page behind.
func renderPage(w http.ResponseWriter, status int, t *template.Template, data pageData) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}
