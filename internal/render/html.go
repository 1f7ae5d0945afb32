package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("page.html").ParseFS(templateFS, "page.html"))

// HistoryItem is one conversation entry shown on the page.
type HistoryItem struct {
	Role    string
	Message string
	Router  *View
}

// PageData feeds the single-page template.
type PageData struct {
	Title      string
	DefaultQty int
	History    []HistoryItem
	HasResult  bool
	Error      string
	Generated  int
}

// WritePage renders the full single-page UI.
func WritePage(w io.Writer, data PageData) error {
	return pageTmpl.ExecuteTemplate(w, "page", data)
}

// RouterHTML renders just the router table fragment for a view.
func RouterHTML(v View) (template.HTML, error) {
	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "router", v); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
