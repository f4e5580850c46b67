// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"io"

	"github.com/creachadair/yamljson/tree"
)

// Convert reads a single YAML document from r and returns the equivalent JSON
// tree. The root is returned even when err != nil: if err is a *ParseError,
// the root holds everything converted before the input failed to parse.
func Convert(r io.Reader) (*tree.Value, error) {
	t := NewTransducer()
	err := t.Run(NewSource(r))
	return t.Root(), err
}

// WriteJSON writes root to w as indented JSON text followed by a newline.
func WriteJSON(w io.Writer, root *tree.Value) error {
	if err := tree.Format(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
