// Package renderer turns account reports into markdown, ready to be printed
// through a terminal markdown renderer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/brokerage"
)

//go:embed *.md
var templates embed.FS

// Statement renders an account statement to a markdown string.
func Statement(s *brokerage.Statement) string {
	return renderTemplate("statement", "statement.md", nil, newStatementView(s))
}

// Positions renders the current portfolio to a markdown table.
func Positions(positions []brokerage.SecurityPosition) string {
	return renderTemplate("positions", "positions.md", nil, newPositionsView(positions))
}

// Transactions renders the fill log to a markdown table.
func Transactions(orders []brokerage.Order) string {
	return renderTemplate("transactions", "transactions.md", nil, newTransactionsView(orders))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
