// Package parser implements the ngLog line grammar and the world-variant
// byte decode.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nglog/nglog-go/pkg/nglog/event"
)

// ParseEvent parses one tab-delimited ngLog line into an Event.
//
// A valid line has at least two fields: a timestamp and an event ID.
// With exactly two fields there is no event class. With three or more,
// the second field is the class, the third the ID, and the rest are
// parameters. Empty fields are preserved. A three-field line always
// yields a present class and zero parameters; the field count is the
// only disambiguation the format provides.
func ParseEvent(line string) (event.Event, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return event.Event{}, fmt.Errorf("%w: bad event string %q", ErrMalformedInput, line)
	}
	if len(fields) == 2 {
		return event.New(fields[0], fields[1]), nil
	}
	return event.NewWithClass(fields[0], fields[1], fields[2], fields[3:]...), nil
}

// ParseLog parses a full ngLog text blob into a Log, one event per line
// in input order. The first malformed line aborts the parse; no partial
// log is returned.
func ParseLog(text string) (event.Log, error) {
	lines := splitLines(text)
	log := event.Log{Events: make([]event.Event, 0, len(lines))}
	for i, line := range lines {
		ev, err := ParseEvent(line)
		if err != nil {
			return event.Log{}, &LineError{Line: i + 1, Err: err}
		}
		log.Events = append(log.Events, ev)
	}
	return log, nil
}

// CheckUTF8 validates that data is well-formed UTF-8, reporting the byte
// offset of the first invalid sequence.
func CheckUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("%w: invalid UTF-8 sequence at byte %d", ErrInvalidEncoding, i)
		}
		i += size
	}
	return fmt.Errorf("%w: invalid UTF-8", ErrInvalidEncoding)
}

// splitLines splits text on newlines with the terminator consumed.
// Both LF and CRLF are accepted, and a trailing terminator does not
// produce an empty final record.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
