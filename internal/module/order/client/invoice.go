package client

import (
	"html/template"
	"strings"
	"time"
)

// Invoice is the print-ready confirmation document. The total is the one the
// server returned, not the client-side estimate.
type Invoice struct {
	Number     string
	SchoolName string
	Date       time.Time
	Total      float64
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<html>
  <body>
    <h1>Invoice {{.Number}}</h1>
    <p>School: {{.SchoolName}}</p>
    <p>Date: {{.Date.Format "2006-01-02"}}</p>
    <p>Total: CHF {{printf "%.2f" .Total}}</p>
  </body>
</html>
`))

// RenderHTML renders the printable invoice document.
func (i *Invoice) RenderHTML() (string, error) {
	var sb strings.Builder
	if err := invoiceTemplate.Execute(&sb, i); err != nil {
		return "", err
	}
	return sb.String(), nil
}
