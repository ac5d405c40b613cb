package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes a dataset load failure
type ErrorKind string

const (
	// KindMissingFile indicates the dataset path does not exist
	KindMissingFile ErrorKind = "missing_file"

	// KindUnreadable indicates the file could not be opened, read, or tokenized
	KindUnreadable ErrorKind = "unreadable"

	// KindMissingColumn indicates a required header column is absent
	KindMissingColumn ErrorKind = "missing_column"

	// KindMalformed indicates a numeric cell could not be parsed
	KindMalformed ErrorKind = "malformed"
)

// DataLoadError is returned when the launch dataset cannot be loaded.
// It is fatal at startup: nothing can be rendered without data.
type DataLoadError struct {
	// Kind categorizes the failure
	Kind ErrorKind `json:"kind"`

	// Path is the file (or source name) being loaded
	Path string `json:"path,omitempty"`

	// Column is the offending column, if any
	Column string `json:"column,omitempty"`

	// Line is the 1-based line of the offending record, if any
	Line int `json:"line,omitempty"`

	// Cause is the underlying error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *DataLoadError) Error() string {
	parts := []string{fmt.Sprintf("dataset load failed: type=%s", e.Kind)}

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column=%q", e.Column))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *DataLoadError) Unwrap() error {
	return e.Cause
}

// Is matches another *DataLoadError of the same kind
func (e *DataLoadError) Is(target error) bool {
	if de, ok := target.(*DataLoadError); ok {
		return e.Kind == de.Kind
	}
	return false
}

// Sentinels usable with errors.Is
var (
	ErrMissingFile   = &DataLoadError{Kind: KindMissingFile}
	ErrUnreadable    = &DataLoadError{Kind: KindUnreadable}
	ErrMissingColumn = &DataLoadError{Kind: KindMissingColumn}
	ErrMalformed     = &DataLoadError{Kind: KindMalformed}
)

func newLoadError(kind ErrorKind, path string, cause error) *DataLoadError {
	return &DataLoadError{Kind: kind, Path: path, Cause: cause}
}

// IsDataLoadError reports whether err is (or wraps) a DataLoadError
func IsDataLoadError(err error) bool {
	_, ok := AsDataLoadError(err)
	return ok
}

// AsDataLoadError extracts the DataLoadError from err, if any
func AsDataLoadError(err error) (*DataLoadError, bool) {
	var de *DataLoadError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
