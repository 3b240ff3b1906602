// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package routing

import (
	"sort"
	"strings"
)

// IdentifierField is always selected so the external query engine can key
// every materialized record.
const IdentifierField = "id"

// Shape is the field-selection tree a caller needs to fetch the values for
// every segment of a pattern. It is a data contract for an external query
// builder; this package never executes queries.
type Shape struct {
	root *shapeNode
}

type shapeNode struct {
	name     string
	narrow   bool // selects into a concrete type rather than a field
	children map[string]*shapeNode
}

func (n *shapeNode) child(name string, narrow bool) *shapeNode {
	if n.children == nil {
		n.children = make(map[string]*shapeNode)
	}
	key := name
	if narrow {
		key = "(" + name + ")"
	}
	c, ok := n.children[key]
	if !ok {
		c = &shapeNode{name: name, narrow: narrow}
		n.children[key] = c
	}
	return c
}

// BuildShape merges the segments' field paths into one selection tree.
// Shared path prefixes collapse into a single branch; a union marker becomes
// a narrowing node at its recorded position; the identifier field is always
// present at the root.
func BuildShape(segments []Segment) Shape {
	root := &shapeNode{}
	root.child(IdentifierField, false)

	for _, seg := range segments {
		cursor := root
		for i, field := range seg.FieldPath {
			if seg.Union != "" && i == seg.UnionAt {
				cursor = cursor.child(seg.Union, true)
			}
			cursor = cursor.child(field, false)
		}
	}

	return Shape{root: root}
}

// Render writes the shape in a compact, deterministic text form, e.g.
// "{ id parent { ... on File { name } } }". Fields are sorted; identical
// inputs always render identically.
func (s Shape) Render() string {
	var b strings.Builder
	renderNode(&b, s.root)
	return b.String()
}

func renderNode(b *strings.Builder, n *shapeNode) {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("{ ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		c := n.children[k]
		if c.narrow {
			b.WriteString("... on ")
		}
		b.WriteString(c.name)
		if len(c.children) > 0 {
			b.WriteString(" ")
			renderNode(b, c)
		}
	}
	b.WriteString(" }")
}
