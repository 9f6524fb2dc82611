// Package renderer formats menus, orders and collection reports, as markdown
// for the command line and as single lines for the interactive session.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/restaurant"
)

//go:embed templates/*.md
var templateFS embed.FS

var templates, _ = fs.Sub(templateFS, "templates")

// DatetimeFormat is how order timestamps are displayed.
const DatetimeFormat = "2006-01-02 15:04:05"

var funcs = template.FuncMap{
	"datetime": func(t time.Time) string { return t.Format(DatetimeFormat) },
	"items":    Items,
}

// Items returns the order line names separated by commas, or "-" for an empty order.
func Items(lines []restaurant.OrderLine) string {
	if len(lines) == 0 {
		return "-"
	}
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.Name)
	}
	return strings.Join(names, ", ")
}

// Menu renders the catalog as a markdown table.
func Menu(c *restaurant.Catalog) string {
	return renderTemplate("menu", "menu.md", c.Items())
}

// Orders renders orders as a markdown table.
func Orders(orders []*restaurant.Order) string {
	return renderTemplate("orders", "orders.md", orders)
}

// Report renders a collection report, or the fact that there is none.
func Report(day string, r *restaurant.CollectionReport) string {
	return renderTemplate("report", "report.md", struct {
		Day    string
		Report *restaurant.CollectionReport
	}{day, r})
}

// renderTemplate renders one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
