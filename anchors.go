// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package yamljson

import (
	"errors"
	"fmt"

	"github.com/creachadair/yamljson/tree"
)

// anchorTable maps anchor names to the values they designate. Redefining an
// anchor replaces its earlier binding, so an alias refers to the most recent
// definition that precedes it.
type anchorTable map[string]*tree.Value

// record binds name to v. An empty name is ignored.
func (a anchorTable) record(name string, v *tree.Value) error {
	if name == "" {
		return nil
	} else if v == nil {
		return fmt.Errorf("anchor %q has no value", name)
	}
	a[name] = v
	return nil
}

// resolve returns the value bound to name.
func (a anchorTable) resolve(name string) (*tree.Value, error) {
	if name == "" {
		return nil, errors.New("alias has no anchor name")
	}
	v, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("unresolved alias %q", name)
	}
	return v, nil
}
