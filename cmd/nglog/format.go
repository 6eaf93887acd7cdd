package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nglog/nglog-go/pkg/nglog"
)

// ValidFormats lists the supported output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
	"text":   true,
}

// OutputJSON writes the event as one JSON line.
func OutputJSON(ev nglog.Event, w io.Writer) error {
	return json.NewEncoder(w).Encode(ev)
}

// OutputPretty writes a human-readable one-line rendering of the event.
func OutputPretty(ev nglog.Event, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", ev.Timestamp)
	if ev.HasClass {
		fmt.Fprintf(&b, " %s", ev.Class)
	}
	fmt.Fprintf(&b, " %s", ev.ID)
	if len(ev.Params) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(ev.Params, ", "))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// OutputText writes the canonical tab-separated ngLog line.
func OutputText(ev nglog.Event, w io.Writer) error {
	_, err := io.WriteString(w, ev.String()+"\n")
	return err
}

// OutputEvent writes the event to w in the given format.
func OutputEvent(format string, ev nglog.Event, w io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(ev, w)
	case "pretty":
		return OutputPretty(ev, w)
	case "text":
		return OutputText(ev, w)
	}
	return fmt.Errorf("unknown format %q", format)
}
