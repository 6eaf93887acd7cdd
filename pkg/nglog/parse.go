package nglog

import (
	"fmt"
	"io"
	"os"

	"github.com/nglog/nglog-go/internal/parser"
)

// ParseText builds a Log from already-decoded ngLog text. Lines are
// split on LF or CRLF with the terminator consumed; a trailing
// terminator does not produce an empty final event. Each line is parsed
// in order, and the first malformed line aborts the parse with a
// LineError wrapping ErrMalformedInput.
func ParseText(text string) (Log, error) {
	return parser.ParseLog(text)
}

// ParseLocal interprets data as UTF-8 text in the plain local variant
// and builds a Log. Invalid UTF-8 fails with ErrInvalidEncoding.
func ParseLocal(data []byte) (Log, error) {
	if err := parser.CheckUTF8(data); err != nil {
		return Log{}, err
	}
	return parser.ParseLog(string(data))
}

// ParseWorld decodes data from the obscured world variant, then
// interprets the result as UTF-8 text and builds a Log. An odd-length
// input fails with ErrMalformedInput before any decoding; invalid UTF-8
// after decoding fails with ErrInvalidEncoding.
func ParseWorld(data []byte) (Log, error) {
	decoded, err := parser.Decode(data)
	if err != nil {
		return Log{}, err
	}
	return ParseLocal(decoded)
}

// ParseEventLine parses a single tab-delimited event line.
func ParseEventLine(line string) (Event, error) {
	return parser.ParseEvent(line)
}

// DecodeWorld reverses the world-variant byte obfuscation without
// parsing the result. Consecutive byte pairs (b0, b1) each yield one
// output byte b0^b1; the input length must be even. The serializer
// never re-applies this transform, decoding is one-directional.
func DecodeWorld(data []byte) ([]byte, error) {
	return parser.Decode(data)
}

// ParseLocalReader reads r to completion and parses the bytes as the
// local variant.
func ParseLocalReader(r io.Reader) (Log, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Log{}, fmt.Errorf("reading log: %w", err)
	}
	return ParseLocal(data)
}

// ParseWorldReader reads r to completion and parses the bytes as the
// world variant.
func ParseWorldReader(r io.Reader) (Log, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Log{}, fmt.Errorf("reading log: %w", err)
	}
	return ParseWorld(data)
}

// ParseLocalFile reads path and parses it as the local variant.
func ParseLocalFile(path string) (Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Log{}, err
	}
	return ParseLocal(data)
}

// ParseWorldFile reads path and parses it as the world variant.
func ParseWorldFile(path string) (Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Log{}, err
	}
	return ParseWorld(data)
}
