package domain

import (
	"errors"
	"fmt"
)

// Recoverable query errors. Each condition is signaled distinctly so
// the presentation layer can show a specific message instead of a
// generic failure; none of them should terminate the host process.
var (
	// ErrEmptyInput signals an aggregation or summary over an empty
	// filtered subset. There is no date span to work with.
	ErrEmptyInput = errors.New("no transactions in the filtered subset")

	// ErrInsufficientData signals a forecast requested with zero
	// historical points.
	ErrInsufficientData = errors.New("no historical points to forecast from")

	// ErrNoCoOccurrenceData signals a recommendation anchor that never
	// appears in the filtered subset.
	ErrNoCoOccurrenceData = errors.New("anchor product has no sales in the filtered subset")
)

// MalformedRecordError reports a row that failed schema or invariant
// validation during dataset loading. Loading is fail-fast: a single
// bad row fails the whole load rather than being silently dropped.
type MalformedRecordError struct {
	Line int // 1-based line (or spreadsheet row) number of the bad record
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
