package ourairports

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBool is returned for boolean cells other than yes/no/1/0.
	ErrInvalidBool = errors.New("value must be yes and no or 1 and 0")
	// ErrUnknownCode is returned when a controlled vocabulary does not contain a code.
	ErrUnknownCode = errors.New("unknown code")
	// ErrUnknownDataset is returned by ParseDataset for names outside the six datasets.
	ErrUnknownDataset = errors.New("unknown dataset")
	// ErrNotFinite is returned for numeric cells holding NaN or an infinity.
	ErrNotFinite = errors.New("value must be a finite number")
	// ErrMissingHeader is returned when a dataset body has no CSV header row.
	ErrMissingHeader = errors.New("missing header row")
)

// FieldError reports a single cell that could not be decoded.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid value %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("field %q: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// DecodeError aborts a dataset load. Row is the 1-based data row (the header
// is not counted) and is zero for structural CSV failures.
type DecodeError struct {
	Dataset Dataset
	Row     int
	Field   string
	Value   string
	Err     error
}

func newDecodeError(dataset Dataset, row int, err error) *DecodeError {
	de := &DecodeError{Dataset: dataset, Row: row, Err: err}
	var fe *FieldError
	if errors.As(err, &fe) {
		de.Field = fe.Field
		de.Value = fe.Value
	}
	return de
}

func (e *DecodeError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("failed to decode %s: %v", e.Dataset, e.Err)
	}
	return fmt.Sprintf("failed to decode %s: row %d: %v", e.Dataset, e.Row, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FetchError reports a transport failure, timeout or unexpected HTTP status
// while retrieving a dataset.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
