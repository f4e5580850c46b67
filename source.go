// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// A Source delivers YAML parse events one at a time.
type Source interface {
	// Next blocks until the next event is available and returns it. After a
	// StreamEnd event has been delivered, Next reports io.EOF. Any other
	// error means the input could not be parsed; once Next has reported an
	// error, it reports the same error on every later call.
	Next() (Event, error)
}

// NewSource constructs a Source that parses YAML text from r.
//
// The stream is read one document at a time. Each document is parsed in full
// before its events are delivered, so a syntax error in a document is
// reported before any of that document's events.
func NewSource(r io.Reader) Source { return &yamlSource{dec: yaml.NewDecoder(r)} }

type yamlSource struct {
	dec     *yaml.Decoder
	pending []Event // undelivered events of the current document
	started bool    // StreamStart has been delivered
	err     error   // sticky error, io.EOF after StreamEnd
}

func (s *yamlSource) Next() (Event, error) {
	if !s.started {
		s.started = true
		return Event{Kind: StreamStart}, nil
	}
	for len(s.pending) == 0 {
		if s.err != nil {
			return Event{}, s.err
		}
		var doc yaml.Node
		if err := s.dec.Decode(&doc); err == io.EOF {
			s.err = io.EOF
			return Event{Kind: StreamEnd}, nil
		} else if err != nil {
			if m := unknownAnchor.FindStringSubmatch(err.Error()); m != nil {
				err = &unresolvedAliasError{name: m[1], err: err}
			}
			s.err = err
			return Event{}, err
		}
		s.pending = appendNodeEvents(s.pending[:0], &doc)
	}
	next := s.pending[0]
	s.pending = s.pending[1:]
	return next, nil
}

// The YAML decoder rejects an alias to an undefined anchor while it parses
// the enclosing document, so no alias event is produced for it.
var unknownAnchor = regexp.MustCompile(`unknown anchor '(.*)' referenced`)

// unresolvedAliasError reports an alias to an undefined anchor that was
// detected by the parser.
type unresolvedAliasError struct {
	name string
	err  error
}

func (e *unresolvedAliasError) Error() string { return e.err.Error() }

func (e *unresolvedAliasError) Unwrap() error { return e.err }

// appendNodeEvents appends to evs the events describing the structure of n,
// in document order, and returns the extended slice.
func appendNodeEvents(evs []Event, n *yaml.Node) []Event {
	pos := LineCol{Line: n.Line, Column: n.Column}
	switch n.Kind {
	case yaml.DocumentNode:
		evs = append(evs, Event{Kind: DocumentStart, Pos: pos})
		for _, c := range n.Content {
			evs = appendNodeEvents(evs, c)
		}
		return append(evs, Event{Kind: DocumentEnd})

	case yaml.SequenceNode:
		evs = append(evs, Event{Kind: SequenceStart, Anchor: n.Anchor, Tag: n.Tag, Pos: pos})
		for _, c := range n.Content {
			evs = appendNodeEvents(evs, c)
		}
		return append(evs, Event{Kind: SequenceEnd})

	case yaml.MappingNode:
		evs = append(evs, Event{Kind: MappingStart, Anchor: n.Anchor, Tag: n.Tag, Pos: pos})
		for _, c := range n.Content {
			evs = appendNodeEvents(evs, c)
		}
		return append(evs, Event{Kind: MappingEnd})

	case yaml.ScalarNode:
		return append(evs, Event{Kind: Scalar, Anchor: n.Anchor, Tag: n.Tag, Value: n.Value, Pos: pos})

	case yaml.AliasNode:
		// The parser records the name of the referenced anchor as the value
		// of an alias node.
		return append(evs, Event{Kind: Alias, Anchor: n.Value, Pos: pos})

	default:
		panic(fmt.Sprintf("unknown YAML node kind %v", n.Kind))
	}
}

// Replay constructs a Source that delivers the given events in order. When
// the events are exhausted, Next reports io.EOF.
func Replay(events ...Event) Source { return &replaySource{events: events} }

type replaySource struct{ events []Event }

func (r *replaySource) Next() (Event, error) {
	if len(r.events) == 0 {
		return Event{}, io.EOF
	}
	next := r.events[0]
	r.events = r.events[1:]
	return next, nil
}
