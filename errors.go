// Package coldb provides an embedded tabular store backed by a single text
// file. Rows are addressed by key and hold an ordered list of text cells;
// the first row is the header and names the columns. Every mutation
// rewrites the whole file, so the file on disk always mirrors memory.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves, and only one Store should
// own a given path at a time.
package coldb

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic handling. Callers use errors.Is to
// tell lookup failures (ErrCoordinatesNotFound) from a missing backing
// file (ErrNoFile) or malformed input (ErrCorruptLine, ErrCorruptSnapshot).
var (
	ErrInvalidHeader         = errors.New("invalid header")
	ErrDuplicateColumn       = errors.New("duplicate column name")
	ErrCoordinatesNotFound   = errors.New("could not find column and/or key in store")
	ErrInvalidSelectionRange = errors.New("invalid selection range")
	ErrNoFile                = errors.New("store file does not exist")
	ErrInvalidKey            = errors.New("key contains invalid characters")
	ErrExists                = errors.New("key already exists")
	ErrInvalidPattern        = errors.New("invalid regex pattern")
	ErrCorruptLine           = errors.New("corrupt line")
	ErrCorruptSnapshot       = errors.New("corrupt snapshot")
)

// SelectionError reports why Select rejected a request. Missing is set
// when one or more column names failed to resolve.
type SelectionError struct {
	Expected string
	Found    string
	Missing  []string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%v (expected %s, found %s)", ErrInvalidSelectionRange, e.Expected, e.Found)
}

// Unwrap lets errors.Is match ErrInvalidSelectionRange.
func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelectionRange
}

// columnError builds the SelectionError for unresolved column names.
func columnError(header, missing []string) *SelectionError {
	return &SelectionError{
		Expected: "valid column names from header: [" + strings.Join(header, ", ") + "]",
		Found:    "missing columns: [" + strings.Join(missing, ", ") + "]",
		Missing:  missing,
	}
}

// rangeError builds the SelectionError for a row range outside the store.
func rangeError(rows int, r Range) *SelectionError {
	return &SelectionError{
		Expected: fmt.Sprintf("row range within 0..%d", rows),
		Found:    fmt.Sprintf("range %d..%d", r.Start, r.End),
	}
}
