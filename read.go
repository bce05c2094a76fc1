package finreport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// decoder turns spreadsheet bytes into a Table.
type decoder func(data []byte) (*Table, error)

// ReadTable decodes the first sheet of a spreadsheet. The filename extension
// selects the decoder (.xls, .csv, anything else is read as .xlsx); if that
// decoder fails, the content is sniffed and decoded once more before giving up
// with a *DecodeError.
func ReadTable(data []byte, filename string) (*Table, error) {
	var primary decoder
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		primary = decodeXLS
	case ".csv":
		primary = decodeCSV
	default:
		primary = decodeXLSX
	}
	t, err := primary(data)
	if err == nil {
		return t, nil
	}
	t, ferr := decodeSniffed(data)
	if ferr != nil {
		return nil, &DecodeError{Filename: filename, Err: err, Fallback: ferr}
	}
	return t, nil
}

var (
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	zipMagic = []byte("PK\x03\x04")
)

// errNotSpreadsheet is returned for content that no decoder recognizes.
var errNotSpreadsheet = errors.New("content is not a spreadsheet")

// decodeSniffed is the default decoder: it picks the format from the content.
// Text is only read as csv when its first line has at least two columns.
func decodeSniffed(data []byte) (*Table, error) {
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return decodeXLS(data)
	case bytes.HasPrefix(data, zipMagic):
		return decodeXLSX(data)
	case isDelimitedText(data):
		return decodeCSV(data)
	default:
		return nil, errNotSpreadsheet
	}
}

// isText reports whether data is UTF-8 without control characters other than
// tabs and line breaks.
func isText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, b := range data {
		if (b < 0x20 && b != '\t' && b != '\n' && b != '\r') || b == 0x7F {
			return false
		}
	}
	return true
}

// isDelimitedText reports whether data is text whose first line holds a
// column separator.
func isDelimitedText(data []byte) bool {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !isText(data) {
		return false
	}
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return bytes.ContainsRune(line, sniffComma(line))
}

func decodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found")
	}
	sheet := sheets[0]
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(raw) == 0 {
		return NewTable(nil, nil), nil
	}
	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	header := make([]string, len(raw[0]))
	for i, v := range raw[0] {
		header[i] = xlsxHeader(v, cellAt(formatted, 0, i))
	}
	rows := make([][]Cell, 0, len(raw)-1)
	for _, r := range raw[1:] {
		cells := make([]Cell, len(r))
		for i, v := range r {
			cells[i] = ParseCell(v)
		}
		rows = append(rows, cells)
	}
	return NewTable(header, rows), nil
}

// xlsxHeader returns the header text of an xlsx cell. A header cell holding a
// date is stored as a serial number and displayed through a number format, it
// is rendered as YYYY-MM-DD instead.
func xlsxHeader(raw, formatted string) string {
	c := ParseCell(raw)
	if c.Kind != Number || formatted == "" || formatted == raw {
		return raw
	}
	if _, ok := parseNumber(strings.ReplaceAll(formatted, ",", "")); ok {
		// a plain number with a number format, not a date
		return formatted
	}
	t, err := excelize.ExcelDateToTime(c.Num, false)
	if err != nil {
		return formatted
	}
	return t.Format("2006-01-02")
}

func cellAt(rows [][]string, row, col int) string {
	if row >= len(rows) || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

func decodeXLS(data []byte) (t *Table, err error) {
	// the xls reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("read xls: %v", r)
		}
	}()
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("no sheets found")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("could not get first sheet")
	}

	var header []string
	var rows [][]Cell
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		var values []string
		if row != nil {
			values = make([]string, row.LastCol())
			for j := range values {
				values[j] = row.Col(j)
			}
		}
		if i == 0 {
			header = values
			continue
		}
		cells := make([]Cell, len(values))
		for j, v := range values {
			cells[j] = ParseCell(v)
		}
		rows = append(rows, cells)
	}
	return NewTable(header, rows), nil
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// decodeCSV reads text separated by ',' or ';'. A header without rows is a
// valid table.
func decodeCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !isText(data) {
		return nil, errNotSpreadsheet
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.Comma = sniffComma(data)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}
	rows := make([][]Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		cells := make([]Cell, len(rec))
		for i, v := range rec {
			cells[i] = ParseCell(v)
		}
		rows = append(rows, cells)
	}
	return NewTable(records[0], rows), nil
}

// sniffComma picks ';' when the first line has more of them than commas, as
// spreadsheets exported with a decimal comma locale do.
func sniffComma(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
