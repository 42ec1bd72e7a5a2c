// Package render turns profile stats into SVG cards, badge descriptors and markdown.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"text/template"

	humanize "github.com/dustin/go-humanize"
)

//go:embed templates/*.svg.tmpl
var templatesFS embed.FS

var templates = template.Must(
	template.New("cards").ParseFS(templatesFS, "templates/*.svg.tmpl"),
)

const dateLayout = "Jan 2, 2006"

func execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// formatFloat prints shortest representation of v, e.g. 222.5 or 14.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCount(v int) string {
	return humanize.Comma(int64(v))
}
