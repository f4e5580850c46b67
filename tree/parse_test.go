// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"testing"

	"github.com/creachadair/yamljson/tree"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *tree.Value
	}{
		{`null`, tree.New()},
		{`"hello"`, tree.NewString("hello")},
		{`"tab\tquote\"A"`, tree.NewString("tab\tquote\"A")},
		{`[]`, tree.NewArray()},
		{`{}`, tree.NewObject()},
		{`["a", null, ["b"]]`, tree.NewArray("a", nil, []any{"b"})},
		{`{"k": "v", "o": {"x": []}}`, tree.NewObject(
			tree.Field("k", "v"),
			tree.Field("o", tree.NewObject(tree.Field("x", []any{}))),
		)},
		{`{"a": "1", "b": "2", "a": "3"}`, tree.NewObject(
			tree.Field("a", "3"),
			tree.Field("b", "2"),
		)},

		// Comments and trailing commas are permitted.
		{`{
  // a comment
  "list": ["x", "y",],
}`, tree.NewObject(tree.Field("list", []any{"x", "y"}))},
	}
	for _, tc := range tests {
		got, err := tree.Parse([]byte(tc.input))
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", tc.input, err)
			continue
		}
		if !tree.Equal(got, tc.want) {
			t.Errorf("Parse %#q: got %s, want %s", tc.input, got.JSON(), tc.want.JSON())
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`["a",`,
		`15`,
		`true`,
		`{"n": 3.5}`,
		`["ok", false]`,
		`"a" "b"`,
	}
	for _, input := range tests {
		if got, err := tree.Parse([]byte(input)); err == nil {
			t.Errorf("Parse %#q: got %s, want error", input, got.JSON())
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	v := tree.NewObject(
		tree.Field("name", "a \"quoted\"\nvalue"),
		tree.Field("list", []any{"1", tree.NewObject(tree.Field("deep", []any{}))}),
		tree.Field("unset", nil),
	)
	got, err := tree.Parse([]byte(tree.FormatToString(v)))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if !tree.Equal(got, v) {
		t.Errorf("Round trip: got %s, want %s", got.JSON(), v.JSON())
	}
}
