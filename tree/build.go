// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import "fmt"

// NewString returns a new String value with the given text.
func NewString(text string) *Value { return &Value{kind: String, text: text} }

// NewObject returns a new Object value containing the given members, in
// order. A later member replaces the value of an earlier one with the same
// key. It panics if a member value already belongs to a container.
func NewObject(members ...*Member) *Value {
	o := &Value{kind: Object, index: make(map[string]int, len(members))}
	for _, m := range members {
		if _, err := o.SetMember(m.Key, m.Value); err != nil {
			panic(err)
		}
	}
	return o
}

// NewArray returns a new Array value containing the given values, in order.
// Each value is converted as by ToValue.
func NewArray(values ...any) *Value {
	a := &Value{kind: Array, elts: make([]*Value, 0, len(values))}
	for _, v := range values {
		if err := a.Append(ToValue(v)); err != nil {
			panic(err)
		}
	}
	return a
}

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts v into a *Value. The concrete type of v must be one of:
//
//	nil        a new Null value
//	string     a String value
//	*Value     v itself
//	*Member    an Object with one member
//	[]any      an Array of the converted elements
//
// ToValue panics if v does not have one of these types.
func ToValue(v any) *Value {
	switch t := v.(type) {
	case nil:
		return New()
	case string:
		return NewString(t)
	case *Value:
		return t
	case *Member:
		return NewObject(t)
	case []any:
		return NewArray(t...)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
