// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package tree defines a mutable tree of JSON values, built incrementally by
// a converter and rendered as JSON text.
//
// Every node is a *Value whose Kind is one of Null, String, Object, or Array.
// A freshly allocated node is Null, and it may be set to any other kind
// exactly once. Objects keep their members in insertion order.
//
// A node stored in an Object or Array records that container as its parent.
// The parent pointer is used only to navigate upward (see package cursor);
// containers own their children, and children never own their parents.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creachadair/yamljson/internal/escape"
)

var (
	// ErrNotNull is reported when setting the kind of a node that is not Null.
	ErrNotNull = errors.New("value is already set")

	// ErrUnset is reported when copying a subtree that contains a Null node.
	ErrUnset = errors.New("value is not set")
)

// Kind is the type of a JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // allocated but not yet set
	String             // a string
	Object             // an ordered collection of key-value members
	Array              // an ordered sequence of values
)

var kindStr = [...]string{
	Null:   "null",
	String: "string",
	Object: "object",
	Array:  "array",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// A Value is a single node of a JSON value tree.
type Value struct {
	kind   Kind
	text   string         // for String
	mems   []*Member      // for Object
	index  map[string]int // for Object: key → offset in mems
	elts   []*Value       // for Array
	parent *Value
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value *Value
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// New returns a new Null value with no parent.
func New() *Value { return new(Value) }

// Kind reports the kind of v.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v *Value) IsNull() bool { return v.kind == Null }

// Parent returns the container that holds v, or nil if v is a root.
func (v *Value) Parent() *Value { return v.parent }

// Text returns the contents of a String value, or "" for other kinds.
func (v *Value) Text() string { return v.text }

// Members returns the members of an Object value in order. The caller must
// not modify the slice.
func (v *Value) Members() []*Member { return v.mems }

// Elements returns the elements of an Array value in order. The caller must
// not modify the slice.
func (v *Value) Elements() []*Value { return v.elts }

// Len reports the number of members of an Object or elements of an Array.
// It returns 0 for other kinds.
func (v *Value) Len() int {
	switch v.kind {
	case Object:
		return len(v.mems)
	case Array:
		return len(v.elts)
	}
	return 0
}

// Find returns the value of the member of v with the given key, or nil if v
// is not an Object or has no such member.
func (v *Value) Find(key string) *Value {
	if i, ok := v.index[key]; ok {
		return v.mems[i].Value
	}
	return nil
}

// SetObject sets v, which must be Null, to an empty Object.
func (v *Value) SetObject() error {
	if v.kind != Null {
		return fmt.Errorf("set object: %w (%v)", ErrNotNull, v.kind)
	}
	v.kind = Object
	v.index = make(map[string]int)
	return nil
}

// SetArray sets v, which must be Null, to an empty Array.
func (v *Value) SetArray() error {
	if v.kind != Null {
		return fmt.Errorf("set array: %w (%v)", ErrNotNull, v.kind)
	}
	v.kind = Array
	return nil
}

// SetString sets v, which must be Null, to a String with the given text.
func (v *Value) SetString(text string) error {
	if v.kind != Null {
		return fmt.Errorf("set string: %w (%v)", ErrNotNull, v.kind)
	}
	v.kind = String
	v.text = text
	return nil
}

// SetMember stores child under key in the Object v, and returns child.
// If v already has a member with that key, its value is replaced by child
// and the member keeps its original position; otherwise the member is added
// at the end. The child must not already belong to another container.
func (v *Value) SetMember(key string, child *Value) (*Value, error) {
	if v.kind != Object {
		return nil, fmt.Errorf("set member %q: value is %v, not object", key, v.kind)
	} else if child.parent != nil {
		return nil, fmt.Errorf("set member %q: value already has a parent", key)
	}
	child.parent = v
	if i, ok := v.index[key]; ok {
		v.mems[i].Value.parent = nil
		v.mems[i].Value = child
		return child, nil
	}
	v.index[key] = len(v.mems)
	v.mems = append(v.mems, &Member{Key: key, Value: child})
	return child, nil
}

// Append adds child to the end of the Array v. The child must not already
// belong to another container.
func (v *Value) Append(child *Value) error {
	if v.kind != Array {
		return fmt.Errorf("append: value is %v, not array", v.kind)
	} else if child.parent != nil {
		return errors.New("append: value already has a parent")
	}
	child.parent = v
	v.elts = append(v.elts, child)
	return nil
}

// Copy returns a deep copy of v with no parent. The copy shares no nodes
// with v. Copy reports ErrUnset if v or any value inside it is Null.
func (v *Value) Copy() (*Value, error) {
	switch v.kind {
	case String:
		return NewString(v.text), nil
	case Object:
		out := &Value{kind: Object, index: make(map[string]int, len(v.mems))}
		for _, m := range v.mems {
			cp, err := m.Value.Copy()
			if err != nil {
				return nil, err
			}
			out.SetMember(m.Key, cp)
		}
		return out, nil
	case Array:
		out := &Value{kind: Array, elts: make([]*Value, 0, len(v.elts))}
		for _, elt := range v.elts {
			cp, err := elt.Copy()
			if err != nil {
				return nil, err
			}
			out.Append(cp)
		}
		return out, nil
	default:
		return nil, ErrUnset
	}
}

// Assign sets v, which must be Null, to a deep copy of src. The copy is
// complete before v is modified, so if src contains a Null value (including
// v itself), Assign reports ErrUnset and leaves v unchanged.
func (v *Value) Assign(src *Value) error {
	if v.kind != Null {
		return fmt.Errorf("assign: %w (%v)", ErrNotNull, v.kind)
	}
	cp, err := src.Copy()
	if err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	v.kind, v.text, v.mems, v.index, v.elts = cp.kind, cp.text, cp.mems, cp.index, cp.elts
	for _, m := range v.mems {
		m.Value.parent = v
	}
	for _, elt := range v.elts {
		elt.parent = v
	}
	return nil
}

// Merge copies each member of the Object src into the Object v, in order,
// as if by SetMember: members of v with the same key as a member of src are
// replaced. Values are deep-copied, and src may be v itself or one of its
// ancestors. If any copy fails, v is unchanged.
func (v *Value) Merge(src *Value) error {
	if v.kind != Object {
		return fmt.Errorf("merge: target is %v, not object", v.kind)
	} else if src.kind != Object {
		return fmt.Errorf("merge: source is %v, not object", src.kind)
	}
	cps := make([]*Value, len(src.mems))
	for i, m := range src.mems {
		cp, err := m.Value.Copy()
		if err != nil {
			return fmt.Errorf("merge %q: %w", m.Key, err)
		}
		cps[i] = cp
	}
	for i, cp := range cps {
		v.SetMember(src.mems[i].Key, cp)
	}
	return nil
}

// JSON returns the compact JSON encoding of v. A Null value renders as null.
func (v *Value) JSON() string {
	var sb strings.Builder
	v.writeJSON(&sb)
	return sb.String()
}

func (v *Value) writeJSON(sb *strings.Builder) {
	switch v.kind {
	case String:
		sb.WriteString(escape.Quote(v.text))
	case Object:
		sb.WriteByte('{')
		for i, m := range v.mems {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escape.Quote(m.Key))
			sb.WriteByte(':')
			m.Value.writeJSON(sb)
		}
		sb.WriteByte('}')
	case Array:
		sb.WriteByte('[')
		for i, elt := range v.elts {
			if i > 0 {
				sb.WriteByte(',')
			}
			elt.writeJSON(sb)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("null")
	}
}

func (v *Value) String() string {
	switch v.kind {
	case String:
		return fmt.Sprintf("String(%q)", v.text)
	case Object:
		return fmt.Sprintf("Object(len=%d)", len(v.mems))
	case Array:
		return fmt.Sprintf("Array(len=%d)", len(v.elts))
	default:
		return "Null"
	}
}

// Equal reports whether a and b have the same kind and contents, recursively.
// Parents are not compared. Object members must appear in the same order.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	} else if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case String:
		return a.text == b.text
	case Object:
		if len(a.mems) != len(b.mems) {
			return false
		}
		for i, m := range a.mems {
			if m.Key != b.mems[i].Key || !Equal(m.Value, b.mems[i].Value) {
				return false
			}
		}
	case Array:
		if len(a.elts) != len(b.elts) {
			return false
		}
		for i, elt := range a.elts {
			if !Equal(elt, b.elts[i]) {
				return false
			}
		}
	}
	return true
}
