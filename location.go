// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package yamljson

import "fmt"

// A LineCol describes the line number and column of a location in source
// text. The zero value means the location is unknown.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column, 1-based
}

// IsZero reports whether lc is the unknown location.
func (lc LineCol) IsZero() bool { return lc.Line == 0 && lc.Column == 0 }

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
