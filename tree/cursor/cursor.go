// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a tree of JSON values.
//
// A Cursor moves downward by object keys and array offsets, and upward
// through the parent links recorded in the tree, so it can follow values that
// were added to the tree after the cursor was positioned.
package cursor

import (
	"fmt"
	"slices"

	"github.com/creachadair/yamljson/tree"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path(v *tree.Value, path ...any) (*tree.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a tree.Value.
type Cursor struct {
	org *tree.Value
	cur *tree.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *tree.Value) *Cursor { return &Cursor{org: origin, cur: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() *tree.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return c.cur == c.org }

// Value reports the current value under the cursor.
func (c *Cursor) Value() *tree.Value { return c.cur }

// Depth reports the number of steps from the origin to the current value.
func (c *Cursor) Depth() int { return len(c.Path()) - 1 }

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []*tree.Value {
	var path []*tree.Value
	for v := c.cur; v != nil; v = v.Parent() {
		path = append(path, v)
		if v == c.org {
			break
		}
	}
	slices.Reverse(path)
	return path
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor to the parent of the current value, if possible.
// At the origin, or at a value with no parent, Up does nothing.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if !c.AtOrigin() {
		if p := c.cur.Parent(); p != nil {
			c.cur = p
		}
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.cur = c.org; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), or functions (see
// below).  If the path is valid, the cursor moves to the value reached. If the
// path cannot be completely consumed, traversal stops where it failed and an
// error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the member with that key.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer selects an element or member value by position.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(*tree.Value) (*tree.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
// The value a function returns must belong to the tree below the current
// value for Up to retrace the path.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	for _, elt := range path {
		cur := c.cur
		switch t := elt.(type) {
		case string:
			if cur.Kind() != tree.Object {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			next := cur.Find(t)
			if next == nil {
				return c.setErrorf("key %q not found", t)
			}
			c.cur = next

		case int:
			switch cur.Kind() {
			case tree.Array:
				es := cur.Elements()
				i, ok := fixArrayBound(len(es), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, len(es))
				}
				c.cur = es[i]
			case tree.Object:
				ms := cur.Members()
				i, ok := fixArrayBound(len(ms), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, len(ms))
				}
				c.cur = ms[i].Value
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), t)
			}

		case func(*tree.Value) (*tree.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			c.cur = next

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
