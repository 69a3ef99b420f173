package core

import (
	"errors"
	"fmt"
)

// ErrMissingKey is returned when a row has no value in its schema's key column.
var ErrMissingKey = errors.New("missing key")

// LoadError reports a failure that aborts a whole table load.
// The message always names the source path.
type LoadError struct {
	Table string
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("load %s from %s: %v", e.Table, e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// RowError reports a problem with a single source row.
type RowError struct {
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d: %v (column %q)", e.Line, e.Err, e.Column)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
