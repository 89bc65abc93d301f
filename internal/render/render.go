// Package render writes the HTML newsletter produced from a pipeline
// payload. The template is embedded so the binary is self-contained.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"finbrief/internal/news"
)

//go:embed newsletter.html.tmpl
var newsletterTemplate string

var tmpl = template.Must(template.New("newsletter").Parse(newsletterTemplate))

// Data is everything the newsletter template needs. Date is the
// caller-supplied display date; the renderer does not interpret it.
type Data struct {
	Date     string
	Sections []news.Section
}

// Newsletter renders the payload into w.
func Newsletter(w io.Writer, payload news.Payload, date string) error {
	return tmpl.Execute(w, Data{Date: date, Sections: payload.Sections})
}

// WriteFile renders the newsletter to
// {dir}/financial_newsletter_{date}.html and returns the written path.
func WriteFile(dir string, payload news.Payload, date string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("financial_newsletter_%s.html", date))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create newsletter file: %w", err)
	}
	defer f.Close()

	if err := Newsletter(f, payload, date); err != nil {
		return "", fmt.Errorf("render newsletter: %w", err)
	}
	return path, nil
}
