// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"errors"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/yamljson/tree"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input *tree.Value
		want  string
	}{
		{tree.New(), "null"},

		{tree.NewString(""), `""`},
		{tree.NewString("a \t b"), `"a \t b"`},
		{tree.NewString("15"), `"15"`},

		{tree.NewArray(), `[]`},
		{tree.NewArray("free", "your", "mind"), `["free","your","mind"]`},
		{tree.NewArray(nil, []any{"x"}), `[null,["x"]]`},

		{tree.NewObject(), `{}`},
		{tree.NewObject(tree.Field("xs", nil)), `{"xs":null}`},
		{tree.NewObject(
			tree.Field("name", "Dennis"),
			tree.Field("age", "37"),
			tree.Field("isOld", "false"),
		), `{"name":"Dennis","age":"37","isOld":"false"}`},

		{tree.NewObject(
			tree.Field("values", []any{"5", "10", "true"}),
			tree.Field("page", tree.NewObject(
				tree.Field("token", "xyz-pdq-zvm"),
				tree.Field("count", "100"),
			)),
		), `{"values":["5","10","true"],"page":{"token":"xyz-pdq-zvm","count":"100"}}`},

		// A later field with the same key replaces the earlier value in place.
		{tree.NewObject(
			tree.Field("a", "1"),
			tree.Field("b", "2"),
			tree.Field("a", "3"),
		), `{"a":"3","b":"2"}`},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.want {
			t.Errorf("Input: %v\nGot:  %s\nWant: %s", tc.input, got, tc.want)
		}
	}
}

func TestSetKind(t *testing.T) {
	v := tree.New()
	if !v.IsNull() || v.Kind() != tree.Null {
		t.Fatalf("New: got %v, want null", v.Kind())
	}
	if err := v.SetObject(); err != nil {
		t.Fatalf("SetObject: unexpected error: %v", err)
	}
	if v.Kind() != tree.Object || v.Len() != 0 {
		t.Errorf("SetObject: got %v, want empty object", v)
	}

	// Once set, the kind of a value cannot be changed.
	if err := v.SetArray(); !errors.Is(err, tree.ErrNotNull) {
		t.Errorf("SetArray: got %v, want %v", err, tree.ErrNotNull)
	}
	if err := v.SetString("x"); !errors.Is(err, tree.ErrNotNull) {
		t.Errorf("SetString: got %v, want %v", err, tree.ErrNotNull)
	}
	if err := v.SetObject(); !errors.Is(err, tree.ErrNotNull) {
		t.Errorf("SetObject: got %v, want %v", err, tree.ErrNotNull)
	}

	s := tree.New()
	if err := s.SetString("hello"); err != nil {
		t.Fatalf("SetString: unexpected error: %v", err)
	}
	if s.Kind() != tree.String || s.Text() != "hello" {
		t.Errorf("SetString: got %v, want String(hello)", s)
	}
}

func TestSetMember(t *testing.T) {
	obj := tree.New()
	obj.SetObject()

	a, err := obj.SetMember("a", tree.New())
	if err != nil {
		t.Fatalf("SetMember a: %v", err)
	}
	if a.Parent() != obj {
		t.Error("SetMember: child parent is not the object")
	}
	a.SetString("1")
	if _, err := obj.SetMember("b", tree.NewString("2")); err != nil {
		t.Fatalf("SetMember b: %v", err)
	}

	// Replacing a key keeps its position and detaches the old value.
	c, err := obj.SetMember("a", tree.NewString("3"))
	if err != nil {
		t.Fatalf("SetMember a again: %v", err)
	}
	if got, want := obj.JSON(), `{"a":"3","b":"2"}`; got != want {
		t.Errorf("Object: got %s, want %s", got, want)
	}
	if a.Parent() != nil {
		t.Error("Replaced value still has a parent")
	}
	if obj.Find("a") != c {
		t.Error("Find a: did not return the replacement value")
	}
	if obj.Find("nonesuch") != nil {
		t.Error("Find nonesuch: got a value, want nil")
	}

	// A value already stored elsewhere cannot be stored again.
	if _, err := obj.SetMember("d", c); err == nil {
		t.Error("SetMember with attached child: got nil, want error")
	}
	if _, err := tree.NewString("x").SetMember("k", tree.New()); err == nil {
		t.Error("SetMember on string: got nil, want error")
	}
}

func TestAppend(t *testing.T) {
	arr := tree.New()
	arr.SetArray()
	for _, s := range []string{"x", "y", "z"} {
		elt := tree.NewString(s)
		if err := arr.Append(elt); err != nil {
			t.Fatalf("Append %q: %v", s, err)
		}
		if elt.Parent() != arr {
			t.Errorf("Append %q: parent is not the array", s)
		}
	}
	if got, want := arr.JSON(), `["x","y","z"]`; got != want {
		t.Errorf("Array: got %s, want %s", got, want)
	}
	if got := arr.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if err := tree.NewObject().Append(tree.New()); err == nil {
		t.Error("Append to object: got nil, want error")
	}
	if err := arr.Append(arr.Elements()[0]); err == nil {
		t.Error("Append attached element: got nil, want error")
	}
}

func TestCopy(t *testing.T) {
	orig := tree.NewObject(
		tree.Field("k", "v"),
		tree.Field("list", []any{"a", tree.NewObject(tree.Field("deep", "1"))}),
	)
	cp, err := orig.Copy()
	if err != nil {
		t.Fatalf("Copy: unexpected error: %v", err)
	}
	if !tree.Equal(orig, cp) {
		t.Errorf("Copy: got %s, want %s", cp.JSON(), orig.JSON())
	}
	if cp.Parent() != nil {
		t.Error("Copy: result has a parent")
	}

	// The copy is independent of the original.
	cp.Find("list").Append(tree.NewString("more"))
	cp.SetMember("k", tree.NewString("changed"))
	if got, want := orig.JSON(), `{"k":"v","list":["a",{"deep":"1"}]}`; got != want {
		t.Errorf("Original after modifying copy: got %s, want %s", got, want)
	}

	// Copies of subtrees with unset values fail.
	bad := tree.NewArray("ok", nil)
	if _, err := bad.Copy(); !errors.Is(err, tree.ErrUnset) {
		t.Errorf("Copy with null: got %v, want %v", err, tree.ErrUnset)
	}
}

func TestAssign(t *testing.T) {
	src := tree.NewObject(tree.Field("a", []any{"1", "2"}))
	holder := tree.NewObject(tree.Field("slot", nil))
	slot := holder.Find("slot")

	if err := slot.Assign(src); err != nil {
		t.Fatalf("Assign: unexpected error: %v", err)
	}
	if got, want := holder.JSON(), `{"slot":{"a":["1","2"]}}`; got != want {
		t.Errorf("Assign: got %s, want %s", got, want)
	}
	if slot.Parent() != holder {
		t.Error("Assign: slot lost its parent")
	}
	if slot.Find("a").Parent() != slot {
		t.Error("Assign: copied member is not parented to the slot")
	}

	if err := slot.Assign(src); !errors.Is(err, tree.ErrNotNull) {
		t.Errorf("Assign twice: got %v, want %v", err, tree.ErrNotNull)
	}

	// Assigning a value that contains the target itself fails, and leaves the
	// target unchanged.
	self := tree.NewObject(tree.Field("me", nil))
	me := self.Find("me")
	if err := me.Assign(self); !errors.Is(err, tree.ErrUnset) {
		t.Errorf("Assign self: got %v, want %v", err, tree.ErrUnset)
	}
	if !me.IsNull() {
		t.Errorf("Assign self: target is %v, want null", me)
	}
}

func TestMerge(t *testing.T) {
	base := tree.NewObject(tree.Field("k1", "v1"), tree.Field("k2", "v2"))

	m := tree.NewObject(tree.Field("k0", "v0"), tree.Field("k2", "old"))
	if err := m.Merge(base); err != nil {
		t.Fatalf("Merge: unexpected error: %v", err)
	}
	if got, want := m.JSON(), `{"k0":"v0","k2":"v2","k1":"v1"}`; got != want {
		t.Errorf("Merge: got %s, want %s", got, want)
	}
	if m.Find("k1") == base.Find("k1") {
		t.Error("Merge: member value is shared, not copied")
	}

	if err := m.Merge(m); err != nil {
		t.Errorf("Merge self: unexpected error: %v", err)
	} else if got, want := m.JSON(), `{"k0":"v0","k2":"v2","k1":"v1"}`; got != want {
		t.Errorf("Merge self: got %s, want %s", got, want)
	}

	if err := m.Merge(tree.NewString("x")); err == nil {
		t.Error("Merge string source: got nil, want error")
	}
	if err := tree.NewArray().Merge(base); err == nil {
		t.Error("Merge into array: got nil, want error")
	}
	if err := m.Merge(tree.NewObject(tree.Field("u", nil))); !errors.Is(err, tree.ErrUnset) {
		t.Errorf("Merge unset: got %v, want %v", err, tree.ErrUnset)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b *tree.Value
		want bool
	}{
		{nil, nil, true},
		{tree.New(), nil, false},
		{tree.New(), tree.New(), true},
		{tree.NewString("a"), tree.NewString("a"), true},
		{tree.NewString("a"), tree.NewString("b"), false},
		{tree.NewString("a"), tree.NewArray("a"), false},
		{tree.NewArray("a", "b"), tree.NewArray("a", "b"), true},
		{tree.NewArray("a", "b"), tree.NewArray("a"), false},
		{tree.NewObject(tree.Field("x", "1")), tree.NewObject(tree.Field("x", "1")), true},
		{tree.NewObject(tree.Field("x", "1")), tree.NewObject(tree.Field("y", "1")), false},
		{
			tree.NewObject(tree.Field("x", "1"), tree.Field("y", "2")),
			tree.NewObject(tree.Field("y", "2"), tree.Field("x", "1")),
			false,
		},
	}
	for _, tc := range tests {
		if got := tree.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestToValue(t *testing.T) {
	v := tree.NewString("x")
	if got := tree.ToValue(v); got != v {
		t.Errorf("ToValue(*Value): got %p, want %p", got, v)
	}
	if got, want := tree.ToValue(tree.Field("k", "v")).JSON(), `{"k":"v"}`; got != want {
		t.Errorf("ToValue(*Member): got %s, want %s", got, want)
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { tree.ToValue(15) })
		mtest.MustPanic(t, func() { tree.ToValue(true) })
		mtest.MustPanic(t, func() { tree.ToValue([]string{"x"}) })
		mtest.MustPanic(t, func() { tree.ToValue(map[string]any{}) })
	})
	t.Run("Attached", func(t *testing.T) {
		arr := tree.NewArray("a")
		mtest.MustPanic(t, func() { tree.NewArray(arr.Elements()[0]) })
	})
}

func TestKindString(t *testing.T) {
	for k, want := range map[tree.Kind]string{
		tree.Null:     "null",
		tree.String:   "string",
		tree.Object:   "object",
		tree.Array:    "array",
		tree.Kind(99): "Kind(99)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String(): got %q, want %q", k, got, want)
		}
	}
}
