// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote returns the JSON encoding of s, with its contents escaped and double
// quotation marks added.
func Quote(s string) string { return string(Append(nil, mem.S(s))) }

// Append appends the JSON encoding of src to dst, including the enclosing
// double quotation marks, and returns the extended slice.
func Append(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					dst = append(dst, '\\', b)
				} else {
					dst = append(dst, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			case r == '\\' || r == '"':
				dst = append(dst, '\\', byte(r))
			default:
				dst = append(dst, byte(r))
			}
			continue
		}

		switch r {
		case utf8.RuneError:
			dst = append(dst, `\ufffd`...)
		case '\u2028': // line separator
			dst = append(dst, `\u2028`...)
		case '\u2029': // paragraph separator
			dst = append(dst, `\u2029`...)
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return append(dst, '"')
}
