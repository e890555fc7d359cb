package traj

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory table loading.
var (
	// ErrMalformedTable indicates a row with too few columns or a
	// field that does not parse as a number.
	ErrMalformedTable = errors.New("traj: malformed trajectory table")

	// ErrEmptyTable indicates a file with no data rows after the header.
	ErrEmptyTable = errors.New("traj: trajectory table has no data rows")
)

// LoadError wraps a table error with the file path and 1-based line number.
type LoadError struct {
	Path    string
	Line    int
	Wrapped error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
