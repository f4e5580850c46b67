// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/mds/stack"
	"github.com/creachadair/yamljson/tree"
	"github.com/creachadair/yamljson/tree/cursor"
)

// State describes what the converter expects the next event to fill.
type State byte

// Constants defining the valid State values.
const (
	Empty         State = iota // nothing yet; the next value fills the root
	InObject                   // inside a mapping, expecting a key or its end
	InArray                    // inside a sequence, expecting an element or its end
	AwaitingValue              // a key was read, expecting its value
	AwaitingMerge              // a "<<" key was read, expecting the merge source
	InMergeList                // inside a sequence of merge sources
)

var stateStr = [...]string{
	Empty:         "empty",
	InObject:      "in-object",
	InArray:       "in-array",
	AwaitingValue: "awaiting-value",
	AwaitingMerge: "awaiting-merge",
	InMergeList:   "in-merge-list",
}

func (s State) String() string {
	v := int(s)
	if v >= len(stateStr) {
		return fmt.Sprintf("State(%d)", v)
	}
	return stateStr[v]
}

// mergeKey is the mapping key whose value is merged into the enclosing
// mapping rather than stored under it.
const mergeKey = "<<"

// A Transducer consumes YAML parse events and builds the corresponding JSON
// tree. Scalars become strings, sequences become arrays, and mappings become
// objects. Aliases are replaced by deep copies of the values their anchors
// designate, and "<<" keys merge the members of one or more anchored mappings
// into the enclosing object.
//
// A Transducer handles at most one document. After Step or Run reports an
// *InvariantError the Transducer must not be used further.
type Transducer struct {
	root    *tree.Value
	cur     *cursor.Cursor
	state   State
	saved   *stack.Stack[State] // states to restore when the current container ends
	anchors anchorTable
	docs    int

	trace func(ev Event, from, to State)
}

// NewTransducer constructs a new Transducer with an empty root.
func NewTransducer() *Transducer {
	root := tree.New()
	return &Transducer{
		root:    root,
		cur:     cursor.New(root),
		saved:   stack.New[State](),
		anchors: make(anchorTable),
	}
}

// Root returns the root of the tree under construction. The root is null
// until the first value of the document arrives.
func (t *Transducer) Root() *tree.Value { return t.root }

// Current returns the value the next event applies to.
func (t *Transducer) Current() *tree.Value { return t.cur.Value() }

// State reports the current state of t.
func (t *Transducer) State() State { return t.state }

// Depth reports the number of saved states. It is zero before the document
// begins and after it has been completely processed.
func (t *Transducer) Depth() int { return t.saved.Len() }

// SetTrace sets a function that is called after each event is applied, with
// the event and the states before and after it. If f == nil, tracing is
// disabled.
func (t *Transducer) SetTrace(f func(ev Event, from, to State)) { t.trace = f }

// Run reads events from src and applies them to t until the end of the stream.
// If src reports an error, or ends before the stream is complete, Run returns
// a *ParseError; the tree built so far is still available from Root. An alias
// to an undefined anchor is reported as an *InvariantError, whether it is
// found by t or by the parser behind src.
func (t *Transducer) Run(src Source) error {
	for {
		ev, err := src.Next()
		var ua *unresolvedAliasError
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		} else if errors.As(err, &ua) {
			return &InvariantError{
				Event:   Event{Kind: Alias, Anchor: ua.name},
				State:   t.state,
				Message: fmt.Sprintf("unresolved alias %q", ua.name),
			}
		}
		if err != nil {
			return &ParseError{Err: err}
		}
		done, err := t.Step(ev)
		if err != nil {
			return err
		} else if done {
			return nil
		}
	}
}

// Step applies a single event to t. It reports done == true when ev is the end
// of the stream. If ev starts a second document, Step reports a *ParseError
// wrapping ErrMultipleDocuments. If ev cannot be applied in the current state,
// Step reports an *InvariantError.
func (t *Transducer) Step(ev Event) (done bool, err error) {
	defer func() {
		if x := recover(); x != nil {
			if ie, ok := x.(*InvariantError); ok {
				err = ie
				return
			}
			panic(x)
		}
	}()

	from := t.state
	switch ev.Kind {
	case StreamStart, DocumentEnd:
		// nothing to do

	case StreamEnd:
		done = true

	case DocumentStart:
		if t.docs > 0 {
			return false, &ParseError{Err: fmt.Errorf("at %s: %w", ev.Pos, ErrMultipleDocuments)}
		}
		t.docs++

	case MappingStart:
		t.beginContainer(ev, (*tree.Value).SetObject, InObject)

	case MappingEnd:
		t.endContainer(ev, InObject)

	case SequenceStart:
		if t.state == AwaitingMerge {
			t.state = InMergeList
		} else {
			t.beginContainer(ev, (*tree.Value).SetArray, InArray)
		}

	case SequenceEnd:
		if t.state == InMergeList {
			t.state = t.pop(ev)
		} else {
			t.endContainer(ev, InArray)
		}

	case Scalar:
		t.scalar(ev)

	case Alias:
		t.alias(ev)

	default:
		t.failf(ev, "unknown event")
	}
	if t.trace != nil {
		t.trace(ev, from, t.state)
	}
	return done, nil
}

// beginContainer starts a new object or array in the slot designated by the
// current state, and enters state next.
func (t *Transducer) beginContainer(ev Event, set func(*tree.Value) error, next State) {
	switch t.state {
	case Empty, AwaitingValue:
		// The cursor is at the slot to fill.
	case InArray:
		t.appendElement(ev, tree.New())
		t.cur.Down(-1)
	default:
		t.failf(ev, "unexpected container")
	}
	node := t.cur.Value()
	if err := set(node); err != nil {
		t.failf(ev, "%v", err)
	}
	t.record(ev, node)
	t.push(t.state)
	t.state = next
}

// endContainer completes the container under the cursor, which must have
// been opened in state want, and restores the state of its parent.
func (t *Transducer) endContainer(ev Event, want State) {
	if t.state != want {
		t.failf(ev, "unexpected end of container")
	}
	t.cur.Up()

	// A container that was the value of a key completes that key as well.
	for {
		t.state = t.pop(ev)
		if t.state != AwaitingValue {
			break
		}
	}
}

func (t *Transducer) scalar(ev Event) {
	switch t.state {
	case InObject:
		if ev.Value == mergeKey {
			t.push(InObject)
			t.state = AwaitingMerge
			return
		}
		if _, err := t.cur.Value().SetMember(ev.Value, tree.New()); err != nil {
			t.failf(ev, "%v", err)
		}
		t.cur.Down(ev.Value)
		t.push(InObject)
		t.state = AwaitingValue

	case InArray:
		elt := tree.NewString(ev.Value)
		t.appendElement(ev, elt)
		t.record(ev, elt)

	case Empty, AwaitingValue:
		node := t.cur.Value()
		if err := node.SetString(ev.Value); err != nil {
			t.failf(ev, "%v", err)
		}
		t.record(ev, node)
		t.finishValue(ev)

	default:
		t.failf(ev, "unexpected scalar")
	}
}

func (t *Transducer) alias(ev Event) {
	src := t.resolve(ev)
	switch t.state {
	case Empty, AwaitingValue:
		if err := t.cur.Value().Assign(src); err != nil {
			t.failf(ev, "%v", err)
		}
		t.finishValue(ev)

	case InArray:
		cp, err := src.Copy()
		if err != nil {
			t.failf(ev, "%v", err)
		}
		t.appendElement(ev, cp)

	case AwaitingMerge:
		t.merge(ev, src)
		t.state = t.pop(ev)

	case InMergeList:
		t.merge(ev, src)

	default:
		t.failf(ev, "unexpected alias")
	}
}

// finishValue completes a scalar or alias value stored under the cursor, and
// returns to the enclosing object. A value at the root completes the document
// and leaves the state unchanged.
func (t *Transducer) finishValue(ev Event) {
	if t.cur.AtOrigin() {
		return
	}
	t.cur.Up()
	t.state = t.pop(ev)
}

func (t *Transducer) appendElement(ev Event, elt *tree.Value) {
	if err := t.cur.Value().Append(elt); err != nil {
		t.failf(ev, "%v", err)
	}
}

// merge copies the members of src into the object that contains the merge key.
func (t *Transducer) merge(ev Event, src *tree.Value) {
	if src.Kind() != tree.Object {
		t.failf(ev, "merge source %q is %v, not an object", ev.Anchor, src.Kind())
	}
	if err := t.cur.Value().Merge(src); err != nil {
		t.failf(ev, "%v", err)
	}
}

func (t *Transducer) push(s State) { t.saved.Push(s) }

func (t *Transducer) pop(ev Event) State {
	s, ok := t.saved.Pop()
	if !ok {
		t.failf(ev, "no saved state")
	}
	return s
}

func (t *Transducer) record(ev Event, v *tree.Value) {
	if err := t.anchors.record(ev.Anchor, v); err != nil {
		t.failf(ev, "%v", err)
	}
}

func (t *Transducer) resolve(ev Event) *tree.Value {
	v, err := t.anchors.resolve(ev.Anchor)
	if err != nil {
		t.failf(ev, "%v", err)
	}
	return v
}

// failf aborts the current step with an *InvariantError. It is recovered by
// Step.
func (t *Transducer) failf(ev Event, msg string, args ...any) {
	panic(&InvariantError{
		Event:   ev,
		State:   t.state,
		Message: fmt.Sprintf(msg, args...),
	})
}
