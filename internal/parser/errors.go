package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrapped errors carry detail; match with errors.Is.
var (
	// ErrMalformedInput indicates structurally invalid log content: an
	// odd-length world-variant buffer or an event line with fewer than
	// two tab-separated fields.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidEncoding indicates bytes that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// LineError reports a parse failure on a specific line.
type LineError struct {
	// Line is the 1-based line number within the input.
	Line int
	// Err is the underlying failure.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
