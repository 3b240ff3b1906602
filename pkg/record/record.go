// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package record models the loosely structured data records that route
// templates resolve against. Values are a tagged union so that an absent
// field (Undefined) is distinguishable from a present-but-falsy one.
package record

import (
	"fmt"
	"strconv"
)

// Kind discriminates the shape a Value holds.
type Kind int

const (
	KindUndefined Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "undefined"
	}
}

// Value is one node of a record tree: a scalar, a mapping from field name to
// Value, a sequence of Values, or Undefined. The zero Value is Undefined.
type Value struct {
	kind     Kind
	scalar   any
	mapping  map[string]Value
	sequence []Value
}

// Undefined returns the explicit not-found value.
func Undefined() Value {
	return Value{}
}

// Scalar wraps a leaf value.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Mapping wraps a field map.
func Mapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: m}
}

// Sequence wraps an ordered list.
func Sequence(items []Value) Value {
	return Value{kind: KindSequence, sequence: items}
}

// FromAny converts a decoded YAML/JSON tree (maps, slices, scalars) into a
// Value. nil becomes Undefined; map keys are stringified.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Undefined()
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[k] = FromAny(item)
		}
		return Mapping(m)
	case map[any]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = FromAny(item)
		}
		return Mapping(m)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Sequence(items)
	default:
		return Scalar(v)
	}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsDefined reports whether the value exists at all. An empty string or a
// zero number is defined; only a missing field is not.
func (v Value) IsDefined() bool {
	return v.kind != KindUndefined
}

// Field returns the named field of a mapping, or Undefined.
func (v Value) Field(name string) Value {
	if v.kind != KindMapping {
		return Undefined()
	}
	child, ok := v.mapping[name]
	if !ok {
		return Undefined()
	}
	return child
}

// Index returns the i-th element of a sequence, or Undefined.
func (v Value) Index(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.sequence) {
		return Undefined()
	}
	return v.sequence[i]
}

// Len returns the element count of a sequence, zero otherwise.
func (v Value) Len() int {
	if v.kind != KindSequence {
		return 0
	}
	return len(v.sequence)
}

// Lookup descends the field path root-to-leaf through nested mappings.
// Any miss along the way yields Undefined.
func (v Value) Lookup(path []string) Value {
	current := v
	for _, name := range path {
		current = current.Field(name)
		if !current.IsDefined() {
			return Undefined()
		}
	}
	return current
}

// Text renders a scalar in its canonical string form. Numbers keep their
// shortest exact representation; non-scalars render empty.
func (v Value) Text() string {
	if v.kind != KindScalar {
		return ""
	}
	switch s := v.scalar.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Interface reconstructs the plain Go tree, for serialization in diagnostics.
// Undefined becomes nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindMapping:
		m := make(map[string]any, len(v.mapping))
		for k, item := range v.mapping {
			m[k] = item.Interface()
		}
		return m
	case KindSequence:
		items := make([]any, 0, len(v.sequence))
		for _, item := range v.sequence {
			items = append(items, item.Interface())
		}
		return items
	default:
		return nil
	}
}
