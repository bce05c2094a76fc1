// Package renderer renders financial reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/finreport"
)

//go:embed templates/*.md
var templates embed.FS

// NoData is the report of a dataset without any value.
const NoData = "❌ Не удалось извлечь данные по периодам.\n"

// funcs are the formatting helpers available in templates.
var funcs = template.FuncMap{
	"amount": func(v float64) string { return finreport.A(v).String() },
	"signed": func(v float64) string { return finreport.A(v).SignedString() },
	"ratio":  func(r finreport.RatioValue) string { return formatRatio(r.Percent, r.Value) },
	"value":  formatRatio,
	"coef":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

// formatRatio prints percent ratios with one decimal and a % sign, others with two decimals.
func formatRatio(percent bool, v float64) string {
	if percent {
		return finreport.Percent(v).String()
	}
	return fmt.Sprintf("%.2f", v)
}

// partials shared by reports.
var partials = map[string]string{
	"ratio_list": "ratio_list.md",
}

// Analysis renders the full analysis: trends of the headline indicators and
// the ratios of every period.
func Analysis(d *finreport.Dataset, dict *finreport.Dictionary) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("analysis", "analysis.md", partials, newAnalysis(d, dict))
}

// Liquidity renders the current ratio of each period and its tier.
func Liquidity(d *finreport.Dataset) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("liquidity", "liquidity.md", partials, newLiquidity(d))
}

// Profitability renders the return ratios of each period.
func Profitability(d *finreport.Dataset, dict *finreport.Dictionary) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("profitability", "profitability.md", partials,
		newFocus(d, dict, []finreport.LineItem{finreport.Revenue, finreport.NetProfit},
			[]finreport.Ratio{finreport.ROA, finreport.ROE, finreport.ROS}))
}

// Stability renders the financial stability figures and ratios of each period.
func Stability(d *finreport.Dataset, dict *finreport.Dictionary) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("stability", "stability.md", partials,
		newFocus(d, dict, []finreport.LineItem{finreport.Equity, finreport.TotalLiabilities, finreport.TotalAssets},
			[]finreport.Ratio{finreport.Autonomy, finreport.DebtToEquity}))
}

// Benchmark renders the ratios of the latest period against an industry's standards.
func Benchmark(d *finreport.Dataset, ind finreport.Industry) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("benchmark", "benchmark.md", partials, newBenchmark(d, ind))
}

// Group renders the values of a group of line items across periods.
func Group(d *finreport.Dataset, dict *finreport.Dictionary, g finreport.Group) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("group", "group.md", partials, newGroup(d, dict, g))
}

// Forecast renders the projected next value of the headline indicators.
func Forecast(d *finreport.Dataset, dict *finreport.Dictionary) string {
	if d == nil || d.IsEmpty() {
		return NoData
	}
	return renderTemplate("forecast", "forecast.md", partials, newForecast(d, dict))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, "templates/"+file)
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
