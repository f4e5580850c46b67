// Package testutil defines support code for unit tests.
package testutil

import "github.com/creachadair/yamljson"

// Doc returns the events of a complete single-document stream whose content
// is the given events.
func Doc(body ...yamljson.Event) []yamljson.Event {
	evs := []yamljson.Event{
		{Kind: yamljson.StreamStart},
		{Kind: yamljson.DocumentStart},
	}
	evs = append(evs, body...)
	return append(evs,
		yamljson.Event{Kind: yamljson.DocumentEnd},
		yamljson.Event{Kind: yamljson.StreamEnd},
	)
}

// Map returns the events of a mapping with the given anchor ("" for none)
// whose content is the given events.
func Map(anchor string, body ...yamljson.Event) []yamljson.Event {
	evs := []yamljson.Event{{Kind: yamljson.MappingStart, Anchor: anchor}}
	evs = append(evs, body...)
	return append(evs, yamljson.Event{Kind: yamljson.MappingEnd})
}

// Seq returns the events of a sequence with the given anchor ("" for none)
// whose content is the given events.
func Seq(anchor string, body ...yamljson.Event) []yamljson.Event {
	evs := []yamljson.Event{{Kind: yamljson.SequenceStart, Anchor: anchor}}
	evs = append(evs, body...)
	return append(evs, yamljson.Event{Kind: yamljson.SequenceEnd})
}

// Scalar returns a scalar event with the given text.
func Scalar(text string) yamljson.Event {
	return yamljson.Event{Kind: yamljson.Scalar, Value: text}
}

// Anchored returns a scalar event with the given anchor and text.
func Anchored(anchor, text string) yamljson.Event {
	return yamljson.Event{Kind: yamljson.Scalar, Anchor: anchor, Value: text}
}

// Alias returns an alias event referring to the given anchor.
func Alias(anchor string) yamljson.Event {
	return yamljson.Event{Kind: yamljson.Alias, Anchor: anchor}
}

// Cat concatenates groups of events. Each argument must be an Event or a
// slice of events.
func Cat(groups ...any) []yamljson.Event {
	var out []yamljson.Event
	for _, g := range groups {
		switch t := g.(type) {
		case yamljson.Event:
			out = append(out, t)
		case []yamljson.Event:
			out = append(out, t...)
		default:
			panic("testutil.Cat: invalid argument type")
		}
	}
	return out
}
