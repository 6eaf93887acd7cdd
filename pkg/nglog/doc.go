// Package nglog parses and serializes ngLog gameplay event logs.
//
// ngLog is a line-oriented, tab-delimited text format for recording
// timestamped gameplay events. Each line of an ngLog file is one event,
// made of the following fields separated by ASCII TAB:
//
//   - a timestamp: seconds elapsed since gameplay began, kept here as
//     opaque text;
//   - an optional event class, the category the event belongs to;
//   - an event ID, the type of event that occurred;
//   - zero or more event parameters, arbitrary data points in order.
//
// A line with exactly two fields carries no class. With three or more
// fields the second is the class, so a class with zero parameters and
// three plain fields are syntactically the same thing; the field count
// is the only rule the format provides.
//
// Supported games write two copies of each log when gameplay completes:
// a plain local copy, and a copy intended for upload to a stats world
// server whose bytes are obscured by a two-byte XOR transform. This
// package reads both forms and always serializes back to the plain
// local form.
//
// # Basic Usage
//
// To parse a local log already read into memory:
//
//	log, err := nglog.ParseLocal(data)
//	if err != nil {
//	    return err
//	}
//	for _, ev := range log.Events {
//	    fmt.Println(ev.ID, ev.Params)
//	}
//
// To parse a world-variant file:
//
//	log, err := nglog.ParseWorldFile("netgame_2024-01-15.log")
//
// To follow a local log while the game is writing it:
//
//	events, errs, err := nglog.Watch(ctx, nglog.WithPath("netgame.log"))
//	if err != nil {
//	    return err
//	}
//	for ev := range events {
//	    fmt.Println(ev.String())
//	}
//
// Parsing of a full buffer is fail-fast: the first malformed line aborts
// the parse and no partial Log is returned. Errors wrap the sentinels
// ErrMalformedInput and ErrInvalidEncoding; match them with errors.Is.
package nglog
