// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package routing analyzes file-path templates with bracketed field segments
// and resolves them into concrete URL paths for individual data records.
package routing

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrMalformedTemplate marks structural template errors (unbalanced or
// nested braces, empty segments). These surface at analysis time, before any
// record is processed.
var ErrMalformedTemplate = errors.New("malformed template")

// Segment is one bracketed dynamic portion of a template.
type Segment struct {
	// Raw is the matched text including the surrounding braces,
	// e.g. "{Product.name}".
	Raw string

	// Start and End are the byte offsets of Raw within the stripped
	// template. Substitution is position-based, so two segments with
	// identical raw text still resolve independently.
	Start, End int

	// Model is the type name before the first dot, e.g. "Product".
	// Empty when the segment carries a bare field reference.
	Model string

	// FieldPath is the normalized lookup path, root to leaf, with
	// double-underscore separators rewritten to path steps and any
	// union component removed.
	FieldPath []string

	// Union is the type name to narrow into when the field at UnionAt is
	// polymorphic, e.g. "File" for "parent__(File)__name". Empty when the
	// segment has none; it never participates in value lookup.
	Union string

	// UnionAt is the number of FieldPath components preceding the union
	// component, or -1 when Union is empty.
	UnionAt int
}

// DottedPath returns the lookup path in dotted form, e.g. "parent.name".
func (s Segment) DottedPath() string {
	return strings.Join(s.FieldPath, ".")
}

// Pattern is the analyzed form of a template: the original text, the text
// with its file extension stripped, and the ordered dynamic segments.
// A Pattern is immutable and safe to share across concurrent resolutions.
type Pattern struct {
	Template string
	Stripped string
	Segments []Segment
}

// Analyze parses a file-path template. The file extension is stripped first;
// each non-nested "{...}" region becomes one Segment. A template without
// segments is a valid static page and yields an empty segment list.
func Analyze(template string) (Pattern, error) {
	stripped := stripExtension(template)

	p := Pattern{
		Template: template,
		Stripped: stripped,
	}

	depth := 0
	start := 0
	for i, r := range stripped {
		switch r {
		case '{':
			if depth > 0 {
				return Pattern{}, fmt.Errorf("%w: nested '{' at offset %d in %q", ErrMalformedTemplate, i, template)
			}
			depth = 1
			start = i
		case '}':
			if depth == 0 {
				return Pattern{}, fmt.Errorf("%w: unmatched '}' at offset %d in %q", ErrMalformedTemplate, i, template)
			}
			depth = 0
			seg, err := parseSegment(stripped[start:i+1], start)
			if err != nil {
				return Pattern{}, err
			}
			p.Segments = append(p.Segments, seg)
		}
	}
	if depth > 0 {
		return Pattern{}, fmt.Errorf("%w: unclosed '{' at offset %d in %q", ErrMalformedTemplate, start, template)
	}

	return p, nil
}

// parseSegment decomposes one raw "{...}" region into a Segment.
func parseSegment(raw string, offset int) (Segment, error) {
	inner := raw[1 : len(raw)-1]
	if strings.TrimSpace(inner) == "" {
		return Segment{}, fmt.Errorf("%w: empty segment at offset %d", ErrMalformedTemplate, offset)
	}

	seg := Segment{
		Raw:     raw,
		Start:   offset,
		End:     offset + len(raw),
		UnionAt: -1,
	}

	// The component before the first dot names the model; the rest is the
	// field reference. A bare reference without a model is accepted.
	fieldRef := inner
	if dot := strings.Index(inner, "."); dot >= 0 {
		seg.Model = inner[:dot]
		fieldRef = inner[dot+1:]
	}
	if fieldRef == "" {
		return Segment{}, fmt.Errorf("%w: segment %q has no field reference", ErrMalformedTemplate, raw)
	}

	// Double underscores separate nested fields; rewrite to the dotted form
	// and pull out any "(Type)" union component.
	for _, part := range strings.Split(strings.ReplaceAll(fieldRef, "__", "."), ".") {
		if strings.HasPrefix(part, "(") && strings.HasSuffix(part, ")") {
			if seg.Union == "" {
				seg.Union = part[1 : len(part)-1]
				seg.UnionAt = len(seg.FieldPath)
			}
			continue
		}
		seg.FieldPath = append(seg.FieldPath, part)
	}
	if len(seg.FieldPath) == 0 {
		return Segment{}, fmt.Errorf("%w: segment %q has no lookup field", ErrMalformedTemplate, raw)
	}

	return seg, nil
}

// stripExtension trims a trailing ".ext" from the final path component when
// the extension is purely alphanumeric. "products/{Product.name}.js" becomes
// "products/{Product.name}"; a component like "{Product.name}" is untouched
// because "}" is not part of a valid extension.
func stripExtension(template string) string {
	ext := path.Ext(template)
	if len(ext) < 2 {
		return template
	}
	for _, r := range ext[1:] {
		if !isAlphanumeric(r) {
			return template
		}
	}
	return strings.TrimSuffix(template, ext)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
