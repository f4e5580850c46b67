// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"strconv"
	"strings"
)

// EventKind is the type of a YAML parse event.
type EventKind byte

// Constants defining the valid EventKind values.
const (
	NoEvent       EventKind = iota // invalid event
	StreamStart                    // start of the input stream
	StreamEnd                      // end of the input stream
	DocumentStart                  // start of a document
	DocumentEnd                    // end of a document
	Alias                          // reference to an anchored node: *name
	Scalar                         // scalar value
	SequenceStart                  // start of a sequence: - ... or [ ...
	SequenceEnd                    // end of a sequence
	MappingStart                   // start of a mapping: k: v or { ...
	MappingEnd                     // end of a mapping
)

var eventStr = [...]string{
	NoEvent:       "no event",
	StreamStart:   "stream-start",
	StreamEnd:     "stream-end",
	DocumentStart: "document-start",
	DocumentEnd:   "document-end",
	Alias:         "alias",
	Scalar:        "scalar",
	SequenceStart: "sequence-start",
	SequenceEnd:   "sequence-end",
	MappingStart:  "mapping-start",
	MappingEnd:    "mapping-end",
}

func (k EventKind) String() string {
	v := int(k)
	if v >= len(eventStr) {
		return "unknown event"
	}
	return eventStr[v]
}

// An Event is a single structural event reported by a YAML parser.
type Event struct {
	Kind EventKind

	// For Scalar, SequenceStart, and MappingStart, the anchor declared on the
	// node, or "" if there is none. For Alias, the name of the anchor the
	// alias refers to.
	Anchor string

	// The tag of a Scalar, SequenceStart, or MappingStart node, if known.
	// Tags do not affect conversion.
	Tag string

	// The text of a Scalar.
	Value string

	// The location of the node in the source, if known.
	Pos LineCol
}

// String renders a compact description of e, for example:
//
//	mapping-start &base
//	scalar "k1"
//	alias *base
func (e Event) String() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	switch e.Kind {
	case Alias:
		sb.WriteString(" *")
		sb.WriteString(e.Anchor)
	case Scalar, SequenceStart, MappingStart:
		if e.Anchor != "" {
			sb.WriteString(" &")
			sb.WriteString(e.Anchor)
		}
		if e.Kind == Scalar {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Quote(e.Value))
		}
	}
	return sb.String()
}
