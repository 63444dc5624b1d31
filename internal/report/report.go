// Package report builds the markdown finance report and styles it for
// the terminal.
package report

import (
	_ "embed"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/model"
)

//go:embed report.md.tmpl
var reportTmpl string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": cli.FormatMoney,
	"pct":   cli.FormatPercent,
	"pct2":  func(f float64) string { return fmt.Sprintf("%.2f%%", f) },
	"points": func(f float64) string {
		return fmt.Sprintf("%.1f", math.Max(0, f))
	},
	"months": func(p *float64) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%.1f months", *p)
	},
	"inc": func(i int) int { return i + 1 },
}).Parse(reportTmpl))

// Data holds everything the report template needs.
type Data struct {
	Period         string
	Stats          model.SummaryStats
	Insight        model.Insight
	Monthly        []model.MonthlyFlow
	InitialBalance float64
	GeneratedAt    time.Time
}

// Build renders the markdown report from the given data.
func Build(d Data) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}

// Render styles a markdown report for the terminal.
func Render(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(md)
}
