package finreport

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const statementCSV = `Наименование показателя;31.12.2022;31.12.2023
Выручка;800000;1000000
Чистая прибыль;100000;80000
`

func newTestSession(t *testing.T) (*Session, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := NewSession()
	s.Log = log
	return s, hook
}

func TestSession_Ingest(t *testing.T) {
	s, hook := newTestSession(t)
	if s.ID == "" {
		t.Fatal("new session has no id")
	}
	if _, err := s.Data(); !errors.Is(err, ErrNoData) {
		t.Errorf("Data() error = %v, want %v", err, ErrNoData)
	}

	res, err := s.Ingest([]byte(statementCSV), "report.csv")
	if err != nil {
		t.Fatal(err)
	}
	if res != (IngestResult{Periods: 2, Items: 4, LabelColumn: true}) {
		t.Errorf("Ingest() = %+v, want 2 periods, 4 items", res)
	}
	if s.File != "report.csv" || s.Updated.IsZero() {
		t.Errorf("session = %+v, want file and update time set", s)
	}
	if e := hook.LastEntry(); e == nil || e.Message != "statement loaded" || e.Data["items"] != 4 {
		t.Errorf("last log entry = %+v, want the loaded statement", e)
	}

	s.Remember("# report")

	// Files that cannot be used leave the session untouched.
	if _, err := s.Ingest([]byte("Наименование;Сумма\nВыручка;1\n"), "other.csv"); !errors.Is(err, ErrNoPeriods) {
		t.Errorf("Ingest() without periods error = %v, want %v", err, ErrNoPeriods)
	}
	var decodeErr *DecodeError
	if _, err := s.Ingest(append(oleMagic[:len(oleMagic):len(oleMagic)], 0x00), "other.xlsx"); !errors.As(err, &decodeErr) {
		t.Errorf("Ingest() of garbage error = %v, want a *DecodeError", err)
	}
	d, err := s.Data()
	if err != nil {
		t.Fatal(err)
	}
	if s.File != "report.csv" || d.Count() != 4 || s.LastReport != "# report" {
		t.Errorf("session changed by failed ingestion: %+v", s)
	}

	// A new statement replaces the data and the last report.
	if _, err := s.Ingest([]byte("Показатель,за 2024\nВыручка,5\n"), "new.csv"); err != nil {
		t.Fatal(err)
	}
	if got := s.Dataset.Labels(); !slices.Equal(got, []string{"31.12.2024"}) || s.LastReport != "" {
		t.Errorf("session after new ingestion = %v %q, want only 31.12.2024", got, s.LastReport)
	}
}

func TestSession_Ingest_NoLabelColumn(t *testing.T) {
	s, hook := newTestSession(t)
	res, err := s.Ingest([]byte("Статья;31.12.2023\nВыручка;1\n"), "report.csv")
	if err != nil {
		t.Fatal(err)
	}
	if res.LabelColumn || res.Items != 0 || res.Periods != 1 {
		t.Errorf("Ingest() = %+v, want 1 period and no label column", res)
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel {
		t.Errorf("last log entry = %+v, want a warning", e)
	}
}

func TestSession_JSON(t *testing.T) {
	s := NewSession()
	// periods are not in chronological order to check the order is kept as is.
	s.Dataset = NewDataset([]Period{{Label: "31.12.2023"}, {Label: "31.12.2022"}})
	s.Dataset.Set("31.12.2023", Revenue, 1000000)
	s.Dataset.Set("31.12.2022", Revenue, 800000)
	s.Remember("# report")

	var b bytes.Buffer
	if err := EncodeSession(&b, s); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSession(&b)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != s.ID || got.LastReport != s.LastReport || !got.Updated.Equal(s.Updated) {
		t.Errorf("DecodeSession() = %+v, want %+v", got, s)
	}
	if labels := got.Dataset.Labels(); !slices.Equal(labels, []string{"31.12.2023", "31.12.2022"}) {
		t.Errorf("decoded periods = %v, want [31.12.2023 31.12.2022]", labels)
	}
	if v := got.Dataset.Items("31.12.2022").Get(Revenue); v != 800000 {
		t.Errorf("decoded revenue = %v, want 800000", v)
	}
}

func TestDataset_UnmarshalJSON(t *testing.T) {
	var d Dataset
	if err := d.UnmarshalJSON([]byte(`{"periods":["31.12.2023","31.12.2023"],"data":{}}`)); err == nil {
		t.Errorf("UnmarshalJSON() of a duplicated period succeeded")
	}
	if err := d.UnmarshalJSON([]byte(`{"periods":["31.12.2023"]}`)); err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 || !d.IsEmpty() {
		t.Errorf("dataset = %d periods, %d values; want 1 empty period", d.Len(), d.Count())
	}
}

func TestSaveLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frs", "session.json")
	if _, err := LoadSession(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSession() of a missing file error = %v, want %v", err, fs.ErrNotExist)
	}

	s, _ := newTestSession(t)
	if _, err := s.Ingest([]byte(statementCSV), "report.csv"); err != nil {
		t.Fatal(err)
	}
	if err := SaveSession(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSession(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != s.ID || got.File != "report.csv" || got.Dataset.Count() != 4 {
		t.Errorf("LoadSession() = %+v, want the saved session", got)
	}
}

func TestSession_Query(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.Ingest([]byte(statementCSV), "report.csv"); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path string
		want any
	}{
		{`$.file`, "report.csv"},
		{`$.dataset.data["31.12.2023"].revenue`, 1000000.0},
		{`$.dataset.data["31.12.2022"]["net profit"]`, 100000.0},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := s.Query(tc.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Query(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}

	if _, err := s.Query(`$.nothing`); err == nil {
		t.Errorf("Query() of an unknown key succeeded")
	}
}

func TestSession_Ingest_Decode(t *testing.T) {
	s, _ := newTestSession(t)

	var decodeErr *DecodeError
	_, err := s.Ingest([]byte("hello world\nthis is not a table\n"), "notes.xlsx")
	if !errors.As(err, &decodeErr) || errors.Is(err, ErrNoPeriods) {
		t.Errorf("Ingest() of a text file error = %v, want a *DecodeError", err)
	}

	res, err := s.Ingest([]byte("Наименование показателя;31.12.2022;31.12.2023\n"), "empty.csv")
	if err != nil {
		t.Fatal(err)
	}
	if res != (IngestResult{Periods: 2, LabelColumn: true}) {
		t.Errorf("Ingest() of a header only file = %+v, want 2 empty periods", res)
	}
	if s.Dataset.Len() != 2 || !s.Dataset.IsEmpty() {
		t.Errorf("dataset = %d periods, %d values; want 2 empty periods", s.Dataset.Len(), s.Dataset.Count())
	}
}
