package nglog

import "github.com/nglog/nglog-go/pkg/nglog/event"

// Re-export the core types for convenience. Users can import just
// "github.com/nglog/nglog-go/pkg/nglog" and use nglog.Event, nglog.Log,
// nglog.ClassPlayer, etc.

// Event represents one ngLog gameplay event.
type Event = event.Event

// Log is an ordered sequence of events parsed from one ngLog file.
type Log = event.Log

// Commonly seen event classes.
const (
	ClassGame      = event.ClassGame
	ClassPlayer    = event.ClassPlayer
	ClassKill      = event.ClassKill
	ClassItem      = event.ClassItem
	ClassTeamScore = event.ClassTeamScore
)
