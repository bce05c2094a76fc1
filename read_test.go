package finreport

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// newXLSX builds an xlsx file from rows, the first row being the header.
func newXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseCell(t *testing.T) {
	testCases := []struct {
		raw     string
		kind    CellKind
		num     float64
		wantNum bool
	}{
		{"1000000", Number, 1000000, true},
		{" 12.5 ", Number, 12.5, true},
		{"-300", Number, -300, true},
		{"1 000", Text, 0, false},
		{"Выручка", Text, 0, false},
		{"", Blank, 0, false},
		{"   ", Blank, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			c := ParseCell(tc.raw)
			if c.Kind != tc.kind {
				t.Errorf("ParseCell(%q).Kind = %v, want %v", tc.raw, c.Kind, tc.kind)
			}
			v, ok := c.Number()
			if ok != tc.wantNum || v != tc.num {
				t.Errorf("ParseCell(%q).Number() = %v, %v; want %v, %v", tc.raw, v, ok, tc.num, tc.wantNum)
			}
		})
	}
}

func TestCell_Number(t *testing.T) {
	if v, ok := TextCell(" 42 ").Number(); !ok || v != 42 {
		t.Errorf("TextCell(\" 42 \").Number() = %v, %v; want 42, true", v, ok)
	}
	if _, ok := NumberCell(math.Inf(1)).Number(); ok {
		t.Errorf("NumberCell(+Inf).Number() is ok, want not a number")
	}
	if _, ok := NumberCell(math.NaN()).Number(); ok {
		t.Errorf("NumberCell(NaN).Number() is ok, want not a number")
	}
	if got := NumberCell(1500.5).String(); got != "1500.5" {
		t.Errorf("NumberCell(1500.5).String() = %q, want %q", got, "1500.5")
	}
}

func TestNewTable(t *testing.T) {
	tbl := NewTable([]string{"Наименование", " "}, [][]Cell{
		{TextCell("Выручка"), NumberCell(1)},
		{TextCell("Капитал"), NumberCell(2), NumberCell(3)},
		{},
	})
	if got, want := tbl.Headers(), []string{"Наименование", "Unnamed: 1", "Unnamed: 2"}; !slices.Equal(got, want) {
		t.Errorf("Headers() = %q, want %q", got, want)
	}
	if got := tbl.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := tbl.Cell(2, 0); got.Kind != Blank {
		t.Errorf("padded cell = %+v, want blank", got)
	}
	if got := tbl.Cell(2, 1); got.Num != 3 {
		t.Errorf("Cell(2, 1) = %+v, want 3", got)
	}
	if got := tbl.Cell(9, 9); got.Kind != Blank {
		t.Errorf("out of range cell = %+v, want blank", got)
	}
}

func TestReadTable(t *testing.T) {
	xlsx := newXLSX(t, [][]any{
		{"Наименование показателя", "31.12.2023"},
		{"Выручка", 1000000},
		{"Комментарий", "н/д"},
	})

	testCases := []struct {
		name     string
		data     []byte
		filename string
		headers  []string
	}{
		{"xlsx", xlsx, "report.xlsx", []string{"Наименование показателя", "31.12.2023"}},
		{"xlsx named xls", xlsx, "report.XLS", []string{"Наименование показателя", "31.12.2023"}},
		{"xlsx without extension", xlsx, "report", []string{"Наименование показателя", "31.12.2023"}},
		{"csv semicolon", []byte("\xEF\xBB\xBFНаименование показателя;31.12.2023\nВыручка;1000000\nКомментарий;н/д\n"), "report.csv", []string{"Наименование показателя", "31.12.2023"}},
		{"csv comma", []byte("Наименование показателя,31.12.2023\nВыручка,1000000\nКомментарий,н/д\n"), "report.csv", []string{"Наименование показателя", "31.12.2023"}},
		{"csv named xlsx", []byte("Наименование показателя;31.12.2023\nВыручка;1000000\nКомментарий;н/д\n"), "report.xlsx", []string{"Наименование показателя", "31.12.2023"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := ReadTable(tc.data, tc.filename)
			if err != nil {
				t.Fatalf("ReadTable() error = %v", err)
			}
			if got := tbl.Headers(); !slices.Equal(got, tc.headers) {
				t.Errorf("Headers() = %q, want %q", got, tc.headers)
			}
			if got, ok := tbl.Cell(1, 0).Number(); !ok || got != 1000000 {
				t.Errorf("Cell(1, 0) = %v, %v; want 1000000", got, ok)
			}
			if got := tbl.Cell(1, 1); got.Kind != Text || got.Str != "н/д" {
				t.Errorf("Cell(1, 1) = %+v, want text н/д", got)
			}
		})
	}
}

func TestReadTable_DateHeader(t *testing.T) {
	data := newXLSX(t, [][]any{
		{"Наименование показателя", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"Выручка", 1000000},
	})
	tbl, err := ReadTable(data, "report.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tbl.Headers()[1], "2023-12-31"; got != want {
		t.Errorf("date header = %q, want %q", got, want)
	}
}

func TestReadTable_Garbage(t *testing.T) {
	_, err := ReadTable([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, "report.xlsx")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("ReadTable() error = %v, want a *DecodeError", err)
	}
	if decodeErr.Filename != "report.xlsx" || decodeErr.Err == nil || decodeErr.Fallback == nil {
		t.Errorf("DecodeError = %+v, want both decoder errors", decodeErr)
	}
}

func TestReadTable_NotSpreadsheet(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	pdf := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	testCases := []struct {
		name     string
		data     []byte
		filename string
	}{
		{"png named xlsx", png, "img.xlsx"},
		{"pdf named xls", pdf, "doc.xls"},
		{"png named csv", png, "img.csv"},
		{"text named xlsx", []byte("hello world\nthis is not a table\n"), "text.xlsx"},
		{"text named xls", []byte("hello world\nthis is not a table\n"), "text.xls"},
		{"empty", nil, "report.xlsx"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := ReadTable(tc.data, tc.filename)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("ReadTable() = %v, %v; want a *DecodeError", tbl, err)
			}
			if decodeErr.Filename != tc.filename {
				t.Errorf("DecodeError.Filename = %q, want %q", decodeErr.Filename, tc.filename)
			}
		})
	}
}

func TestReadTable_HeaderOnly(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		filename string
	}{
		{"csv", []byte("Наименование показателя;31.12.2023\n"), "report.csv"},
		{"csv named xlsx", []byte("Наименование показателя;31.12.2023"), "report.xlsx"},
		{"xlsx", newXLSX(t, [][]any{{"Наименование показателя", "31.12.2023"}}), "report.xlsx"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := ReadTable(tc.data, tc.filename)
			if err != nil {
				t.Fatalf("ReadTable() error = %v", err)
			}
			if got, want := tbl.Headers(), []string{"Наименование показателя", "31.12.2023"}; !slices.Equal(got, want) {
				t.Errorf("Headers() = %q, want %q", got, want)
			}
			if tbl.Len() != 0 {
				t.Errorf("Len() = %d, want 0", tbl.Len())
			}
		})
	}
}
