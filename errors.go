package finreport

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPeriods is returned when no column header names a reporting period.
	ErrNoPeriods = errors.New("no reporting period found in column headers")
	// ErrNoData is returned when a report is requested on a session without data.
	ErrNoData = errors.New("no statement loaded")
	// ErrUnknownGroup is returned for an indicator group missing from the dictionary.
	ErrUnknownGroup = errors.New("unknown indicator group")
	// ErrUnknownIndustry is returned for an industry missing from the standards.
	ErrUnknownIndustry = errors.New("unknown industry")
)

// DecodeError reports spreadsheet bytes that no decoder could read.
type DecodeError struct {
	Filename string
	Err      error // error of the decoder selected by extension
	Fallback error // error of the fallback decoder
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot read %q: %v (fallback: %v)", e.Filename, e.Err, e.Fallback)
}

func (e *DecodeError) Unwrap() []error { return []error{e.Err, e.Fallback} }
