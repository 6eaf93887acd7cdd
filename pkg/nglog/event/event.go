// Package event defines the core Event and Log types for ngLog parsing.
//
// This package is separated from the main nglog package to avoid import cycles
// between pkg/nglog and internal/parser.
package event

import (
	"encoding/json"
	"sort"
	"strings"
)

// Commonly seen event classes. The format itself treats the class as an
// opaque string; these are the conventional categories written by games
// that record ngLog files, provided for filtering and completion.
const (
	ClassGame      = "game"
	ClassPlayer    = "player"
	ClassKill      = "kill"
	ClassItem      = "item"
	ClassTeamScore = "teamscore"
)

// knownClasses is the canonical list of conventional event classes.
var knownClasses = []string{ClassGame, ClassPlayer, ClassKill, ClassItem, ClassTeamScore}

// KnownClasses returns a sorted list of the conventional event class names.
// The list is advisory; the parser accepts any class string.
func KnownClasses() []string {
	names := make([]string, len(knownClasses))
	copy(names, knownClasses)
	sort.Strings(names)
	return names
}

// Event represents one ngLog gameplay event.
//
// Timestamp and ID are always present, though either may be the empty
// string. The class is optional: a source line with exactly two fields
// has no class, and HasClass reports its presence. Class and an empty
// Class string are therefore distinct states.
type Event struct {
	// Timestamp is the elapsed-seconds value, kept as opaque text.
	Timestamp string

	// Class is the event category. Only meaningful when HasClass is true.
	Class string

	// HasClass reports whether the event carries a class field.
	HasClass bool

	// ID identifies the event type.
	ID string

	// Params are the remaining data points, in order. May be empty.
	Params []string
}

// New constructs an Event without a class.
func New(timestamp, id string, params ...string) Event {
	return Event{Timestamp: timestamp, ID: id, Params: params}
}

// NewWithClass constructs an Event with a class.
func NewWithClass(timestamp, class, id string, params ...string) Event {
	return Event{Timestamp: timestamp, Class: class, HasClass: true, ID: id, Params: params}
}

// String renders the event in canonical ngLog form: the fields joined
// with tabs, the class included only when present, no trailing tab.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Timestamp)
	if e.HasClass {
		b.WriteByte('\t')
		b.WriteString(e.Class)
	}
	b.WriteByte('\t')
	b.WriteString(e.ID)
	for _, p := range e.Params {
		b.WriteByte('\t')
		b.WriteString(p)
	}
	return b.String()
}

// MarshalJSON emits the event with event_class omitted entirely when the
// event has no class, so that an absent class and an empty class string
// remain distinguishable in JSON output.
func (e Event) MarshalJSON() ([]byte, error) {
	type wire struct {
		Timestamp string   `json:"timestamp"`
		Class     *string  `json:"event_class,omitempty"`
		ID        string   `json:"event_id"`
		Params    []string `json:"event_params,omitempty"`
	}
	w := wire{Timestamp: e.Timestamp, ID: e.ID, Params: e.Params}
	if e.HasClass {
		w.Class = &e.Class
	}
	return json.Marshal(w)
}

// Log is an ordered sequence of events parsed from one ngLog file.
// Event order equals the line order of the source.
type Log struct {
	Events []Event
}

// String renders the log in canonical ngLog form: one line per event,
// every line terminated with a newline, including the last.
func (l Log) String() string {
	var b strings.Builder
	for _, e := range l.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
