package finreport

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CellKind tells what a spreadsheet cell holds.
type CellKind int

const (
	Blank CellKind = iota
	Number
	Text
)

// Cell is a single spreadsheet value.
type Cell struct {
	Kind CellKind
	Num  float64
	Str  string
}

// NumberCell returns a cell holding v.
func NumberCell(v float64) Cell { return Cell{Kind: Number, Num: v} }

// TextCell returns a cell holding s, or a blank cell if s is only spaces.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Str: s}
}

// ParseCell interprets a raw spreadsheet value: numbers become Number cells,
// anything else a Text cell.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{}
	}
	if v, ok := parseNumber(s); ok {
		return NumberCell(v)
	}
	return Cell{Kind: Text, Str: raw}
}

// String returns the cell as text. Blank cells are empty.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Text:
		return c.Str
	default:
		return ""
	}
}

// Number coerces the cell to a finite number. It reports false for blank
// cells, text that is not a number and non-finite values.
func (c Cell) Number() (float64, bool) {
	switch c.Kind {
	case Number:
		return c.Num, isFinite(c.Num)
	case Text:
		return parseNumber(strings.TrimSpace(c.Str))
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	v := d.InexactFloat64()
	return v, isFinite(v)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Column is a named column of cells.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is a spreadsheet sheet: ordered named columns whose cells are aligned by row.
type Table struct {
	Columns []Column
}

// NewTable creates a table from a header row and data rows. Rows may be
// shorter or longer than the header: missing cells are blank, extra columns
// get a generated name.
func NewTable(header []string, rows [][]Cell) *Table {
	width := len(header)
	for _, r := range rows {
		width = max(width, len(r))
	}
	t := &Table{Columns: make([]Column, width)}
	for i := range t.Columns {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		cells := make([]Cell, len(rows))
		for j, r := range rows {
			if i < len(r) {
				cells[j] = r[i]
			}
		}
		t.Columns[i] = Column{Name: name, Cells: cells}
	}
	return t
}

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	res := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		res[i] = c.Name
	}
	return res
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Cell returns the cell at column col and row row, blank when out of range.
func (t *Table) Cell(col, row int) Cell {
	if col < 0 || col >= len(t.Columns) {
		return Cell{}
	}
	cells := t.Columns[col].Cells
	if row < 0 || row >= len(cells) {
		return Cell{}
	}
	return cells[row]
}
