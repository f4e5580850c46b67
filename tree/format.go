// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"bufio"
	"bytes"
	"io"

	"github.com/creachadair/yamljson/internal/escape"
	"go4.org/mem"
)

// A Formatter carries the settings for pretty-printing JSON values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the string used for each level of nesting.
	// If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings. No newline is written after the value.
func Format(w io.Writer, v *Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
func FormatToString(v *Value) string {
	var buf bytes.Buffer
	Format(&buf, v) // writing to a buffer does not fail
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f. Each member and element is written on its own line; empty objects
// and arrays are written as {} and []. A nil or Null value renders as null.
func (f Formatter) Format(w io.Writer, v *Value) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	f.formatValue(bw, &buf, v, "")
	return bw.Flush()
}

// formatValue writes a representation of v to w, with nested lines indented
// by indent. The first line is not indented; the caller positions it.
// The scratch buffer is reused for quoting strings.
func (f Formatter) formatValue(w *bufio.Writer, buf *[]byte, v *Value, indent string) {
	if v == nil {
		w.WriteString("null")
		return
	}
	switch v.kind {
	case String:
		f.writeString(w, buf, v.text)

	case Object:
		if len(v.mems) == 0 {
			w.WriteString("{}")
			return
		}
		w.WriteString("{\n")
		mdent := indent + f.indent()
		for i, m := range v.mems {
			w.WriteString(mdent)
			f.writeString(w, buf, m.Key)
			w.WriteString(": ")
			f.formatValue(w, buf, m.Value, mdent)
			if i < len(v.mems)-1 {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		w.WriteString(indent)
		w.WriteByte('}')

	case Array:
		if len(v.elts) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteString("[\n")
		adent := indent + f.indent()
		for i, elt := range v.elts {
			w.WriteString(adent)
			f.formatValue(w, buf, elt, adent)
			if i < len(v.elts)-1 {
				w.WriteByte(',')
			}
			w.WriteByte('\n')
		}
		w.WriteString(indent)
		w.WriteByte(']')

	default:
		w.WriteString("null")
	}
}

func (Formatter) writeString(w *bufio.Writer, buf *[]byte, s string) {
	*buf = escape.Append((*buf)[:0], mem.S(s))
	w.Write(*buf)
}
