// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"

	"github.com/creachadair/yamljson/internal/escape"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// Parse parses data as a single JSON value and returns the corresponding
// tree. Comments and trailing commas are accepted. Strings, objects, arrays,
// and null are supported; any other literal (a number or Boolean) is an
// error, since the tree has no representation for it.
//
// A null literal parses as a Null value. Duplicate object keys are merged as
// by SetMember, so the last one wins.
func Parse(data []byte) (*Value, error) {
	hv, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromHuJSON(hv)
}

func fromHuJSON(hv hujson.Value) (*Value, error) {
	switch t := hv.Value.(type) {
	case hujson.Literal:
		switch t.Kind() {
		case 'n':
			return New(), nil
		case '"':
			return literalString(t, hv.StartOffset)
		default:
			return nil, fmt.Errorf("offset %d: unsupported literal %s", hv.StartOffset, t)
		}

	case *hujson.Object:
		out := &Value{kind: Object, index: make(map[string]int, len(t.Members))}
		for _, m := range t.Members {
			lit, ok := m.Name.Value.(hujson.Literal)
			if !ok {
				return nil, fmt.Errorf("offset %d: invalid object key", m.Name.StartOffset)
			}
			key, err := literalString(lit, m.Name.StartOffset)
			if err != nil {
				return nil, err
			}
			val, err := fromHuJSON(m.Value)
			if err != nil {
				return nil, err
			}
			out.SetMember(key.text, val)
		}
		return out, nil

	case *hujson.Array:
		out := &Value{kind: Array, elts: make([]*Value, 0, len(t.Elements))}
		for _, elt := range t.Elements {
			val, err := fromHuJSON(elt)
			if err != nil {
				return nil, err
			}
			out.Append(val)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("offset %d: unknown value type %T", hv.StartOffset, hv.Value)
	}
}

func literalString(lit hujson.Literal, pos int) (*Value, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return nil, fmt.Errorf("offset %d: expected string, got %s", pos, lit)
	}
	text, err := escape.Unquote(mem.B(lit[1 : len(lit)-1]))
	if err != nil {
		return nil, fmt.Errorf("offset %d: %w", pos, err)
	}
	return NewString(text), nil
}
