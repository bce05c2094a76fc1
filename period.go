package finreport

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/etnz/finreport/date"
)

// Period is a reporting date attributed to a column of the statement.
type Period struct {
	Column int       `json:"column"` // index of the source column in the table
	Header string    `json:"header"` // header of the source column
	Date   date.Date `json:"date"`
	Label  string    `json:"label"` // dd.mm.yyyy
	Year   int       `json:"year"`
}

func newPeriod(column int, header string, d date.Date) Period {
	return Period{Column: column, Header: header, Date: d, Label: d.Label(), Year: d.Year()}
}

// datePattern is an absolute date format searched in column headers.
type datePattern struct {
	re     *regexp.Regexp
	layout string
}

// datePatterns are the absolute date formats, tried in that order.
var datePatterns = []datePattern{
	{regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`), "02.01.2006"},
	{regexp.MustCompile(`\d{4}-\d{2}-\d{2}`), "2006-01-02"},
	{regexp.MustCompile(`\d{2}/\d{2}/\d{4}`), "02/01/2006"},
}

// YearKeywords maps the phrases naming a fiscal year in a header to that year.
// They are only used when the header holds no absolute date.
var YearKeywords = yearKeywords(2018, 2026)

// YearKeyword is a header phrase naming a whole fiscal year.
type YearKeyword struct {
	Phrase string
	Year   int
}

func yearKeywords(from, to int) []YearKeyword {
	var res []YearKeyword
	for y := to; y >= from; y-- {
		res = append(res, YearKeyword{Phrase: fmt.Sprintf("за %d", y), Year: y})
	}
	return res
}

// DetectPeriods returns the reporting periods found in column headers, sorted
// by year. Columns sharing a year are all kept, in their original order.
func DetectPeriods(headers []string) []Period {
	var periods []Period
	for i, h := range headers {
		if p, ok := detectPeriod(i, h); ok {
			periods = append(periods, p)
		}
	}
	slices.SortStableFunc(periods, func(a, b Period) int { return a.Year - b.Year })
	return periods
}

func detectPeriod(column int, header string) (Period, bool) {
	text := strings.ToLower(strings.TrimSpace(header))
	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		d, err := date.ParseLayout(p.layout, match)
		if err != nil {
			continue
		}
		return newPeriod(column, header, d), true
	}
	for _, k := range YearKeywords {
		if strings.Contains(text, k.Phrase) {
			return newPeriod(column, header, date.EndOfYear(k.Year)), true
		}
	}
	return Period{}, false
}
