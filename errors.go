// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"errors"
	"fmt"
)

// ErrMultipleDocuments is reported, wrapped in a *ParseError, when the input
// contains more than one YAML document.
var ErrMultipleDocuments = errors.New("multiple documents are not supported")

// ParseError is the concrete type of errors reported when the input cannot be
// parsed as YAML. When conversion stops with a ParseError, the tree built from
// the events delivered before the failure remains valid and may be rendered.
type ParseError struct {
	Err error // the underlying error
}

func (e *ParseError) Error() string { return "parse failed: " + e.Err.Error() }

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }

// InvariantError is the concrete type of errors reported when an event cannot
// be applied in the current state of the conversion. This indicates a bug or
// an input the converter does not understand, and the partial tree must not be
// trusted.
type InvariantError struct {
	Event   Event  // the event that could not be applied
	State   State  // the state of the converter when it arrived
	Message string // a description of the violation
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("%v in state %v: %s", e.Event.Kind, e.State, e.Message)
	if !e.Event.Pos.IsZero() {
		return fmt.Sprintf("at %s: %s", e.Event.Pos, msg)
	}
	return msg
}
