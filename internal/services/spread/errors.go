package spread

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptySeries is returned by Summarize when the spread series has no points.
var ErrEmptySeries = errors.New("spread: empty series")

// AlignmentError means one or both input series carried no observations,
// so no aligned row can be produced. Surfaced to the caller as
// "insufficient data" for that spread; never fatal to the whole view.
type AlignmentError struct {
	SeriesID string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("align: series %s has no observations", e.SeriesID)
}

// DataIntegrityError means a non-finite value reached the calculator.
// The aligner guarantees full rows, so this indicates a contract violation
// upstream and is treated as a programming error: the affected definition
// reports unavailable instead of charting the value.
type DataIntegrityError struct {
	Date  time.Time
	Field string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("spread: non-finite %s value at %s", e.Field, e.Date.Format("2006-01-02"))
}

// ConfigurationError means a spread definition failed validation at
// startup. Fatal to that definition only; the registry skips it.
type ConfigurationError struct {
	DefinitionID string
	Err          error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: definition %s: %v", e.DefinitionID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
