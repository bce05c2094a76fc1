package finreport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is the context of one user: the statement last loaded and the last
// report produced from it. A session is not safe for concurrent use, each user
// owns its own.
type Session struct {
	ID         string    `json:"id"`
	File       string    `json:"file,omitempty"`
	Updated    time.Time `json:"updated,omitzero"`
	Dataset    *Dataset  `json:"dataset,omitempty"`
	LastReport string    `json:"last_report,omitempty"`

	// Extractor reads loaded tables, the default dictionary is used when nil.
	Extractor *Extractor `json:"-"`
	// Log receives ingestion events, logrus' standard logger when nil.
	Log logrus.FieldLogger `json:"-"`
}

// NewSession creates an empty session with a fresh id.
func NewSession() *Session { return &Session{ID: uuid.NewString()} }

// IngestResult summarizes a successful ingestion.
type IngestResult struct {
	Periods int // number of periods detected
	Items   int // number of values extracted
	// LabelColumn is false when no column holds row labels: periods were found
	// but nothing could be extracted.
	LabelColumn bool
}

func (s *Session) log() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func (s *Session) extractor() *Extractor {
	if s.Extractor == nil {
		return &Extractor{}
	}
	return s.Extractor
}

// Ingest reads a spreadsheet and replaces the session's dataset with the one
// extracted from it.
//
// It returns a *DecodeError when the file cannot be read and ErrNoPeriods when
// no column names a period; in both cases the session is left untouched.
func (s *Session) Ingest(data []byte, filename string) (IngestResult, error) {
	log := s.log().WithFields(logrus.Fields{"session": s.ID, "file": filename})

	t, err := ReadTable(data, filename)
	if err != nil {
		log.WithError(err).Warn("cannot decode statement")
		return IngestResult{}, err
	}
	log.WithFields(logrus.Fields{"columns": len(t.Columns), "rows": t.Len()}).Debug("table decoded")

	periods := DetectPeriods(t.Headers())
	if len(periods) == 0 {
		log.Warn("no period found in column headers")
		return IngestResult{}, fmt.Errorf("%s: %w", filename, ErrNoPeriods)
	}
	for _, p := range periods {
		log.WithFields(logrus.Fields{"column": p.Header, "period": p.Label}).Debug("period detected")
	}

	d := s.extractor().Extract(t, periods)
	res := IngestResult{Periods: len(periods), Items: d.Count(), LabelColumn: findLabelColumn(t) >= 0}

	s.File = filename
	s.Dataset = d
	s.LastReport = ""
	s.Updated = time.Now()

	log.WithFields(logrus.Fields{"periods": res.Periods, "items": res.Items}).Info("statement loaded")
	if !res.LabelColumn {
		log.Warn("no indicator name column, nothing extracted")
	}
	return res, nil
}

// Data returns the session dataset, ErrNoData if no statement was loaded.
func (s *Session) Data() (*Dataset, error) {
	if s.Dataset == nil {
		return nil, ErrNoData
	}
	return s.Dataset, nil
}

// Remember keeps report as the last report of the session, for export.
func (s *Session) Remember(report string) {
	s.LastReport = report
	s.Updated = time.Now()
}
