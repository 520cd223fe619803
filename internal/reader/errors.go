package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow matches every *MalformedRowError via errors.Is.
	ErrMalformedRow = errors.New("malformed row")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("input has no header row")
)

// MalformedRowError reports a consumed row that lacks a required column or
// carries a value that does not parse as the column's type.
type MalformedRowError struct {
	Line   int
	Column string
	Value  string
	Err    error // underlying parse error, nil for a missing column
}

func (e *MalformedRowError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: missing column %q", e.Line, e.Column)
	}
	return fmt.Sprintf("line %d: column %q: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// Is reports ErrMalformedRow as a match.
func (e *MalformedRowError) Is(target error) bool { return target == ErrMalformedRow }
