// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes the JSON encoding of a string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// surrogate pair written as two \u escapes is combined into one rune. Invalid
// escapes and unpaired surrogates are replaced by the Unicode replacement
// rune. Unquote reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}

	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return "", errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			u, rest, err := decodeUnicode(src)
			if err != nil {
				return "", err
			}
			dec = utf8.AppendRune(dec, u)
			src = rest
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	return string(mem.Append(dec, src)), nil
}

// decodeUnicode decodes the four hex digits following a \u escape at the
// front of src, and returns the rune and the remaining input. If the escape
// is the high half of a surrogate pair and the low half follows, both are
// consumed.
func decodeUnicode(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	v, err := parseHex(src.SliceTo(4))
	src = src.SliceFrom(4)
	if err != nil {
		return utf8.RuneError, src, nil
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if w, err := parseHex(src.SliceFrom(2).SliceTo(4)); err == nil {
			if p := utf16.DecodeRune(r, rune(w)); p != utf8.RuneError {
				return p, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
