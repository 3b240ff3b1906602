// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package routing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bartekus/routegen/pkg/record"
	"github.com/bartekus/routegen/pkg/slug"
)

// ErrUnresolved marks a resolution failure: one or more segments had no
// defined value in the record. Retrying cannot help; the template or the
// record data must change.
var ErrUnresolved = errors.New("unresolved field")

// DefaultCollectionKey is the conventional field holding a grouped record's
// sub-items.
const DefaultCollectionKey = "nodes"

var multiSlash = regexp.MustCompile(`//+`)

// Resolver substitutes record values into analyzed patterns. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	// Slug configures value-to-token conversion.
	Slug slug.Options

	// CollectionKey names the aggregate field consulted before the direct
	// lookup; see Resolve for the precedence rule.
	CollectionKey string

	// Reporter receives a diagnostic per unresolved segment. Nil disables
	// reporting; resolution still fails.
	Reporter Reporter
}

// NewResolver returns a Resolver with the conventional collection key.
func NewResolver(opts slug.Options, rep Reporter) *Resolver {
	return &Resolver{
		Slug:          opts,
		CollectionKey: DefaultCollectionKey,
		Reporter:      rep,
	}
}

// Resolve produces the concrete path for one record.
//
// Each segment's value is looked up aggregate-first: when the record carries
// a non-empty sequence under CollectionKey, the field path is tried inside
// its first element, and that value wins even if the same path would also
// resolve directly on the record. Only when the aggregate yields nothing is
// the record itself consulted.
//
// Every unresolved segment is reported and processing continues to the next
// segment for diagnostic completeness, but a single miss fails the whole
// call: the returned error wraps ErrUnresolved and names each failed
// segment. On success the resolved values are slugified per "/"-delimited
// piece, substituted at the offsets captured during analysis, and any run of
// slashes in the result is collapsed.
func (r *Resolver) Resolve(p Pattern, rec record.Value) (string, error) {
	values := make([]string, len(p.Segments))
	var failed []string

	for i, seg := range p.Segments {
		v := r.lookup(rec, seg.FieldPath)
		if !v.IsDefined() {
			r.report(seg, rec)
			failed = append(failed, seg.Raw)
			continue
		}
		values[i] = slug.MakePath(v.Text(), r.Slug)
	}

	if len(failed) > 0 {
		return "", fmt.Errorf("%w: %s in template %q", ErrUnresolved, strings.Join(failed, ", "), p.Template)
	}

	// Substitute right to left so earlier offsets stay valid.
	out := p.Stripped
	for i := len(p.Segments) - 1; i >= 0; i-- {
		seg := p.Segments[i]
		out = out[:seg.Start] + values[i] + out[seg.End:]
	}

	return multiSlash.ReplaceAllString(out, "/"), nil
}

// lookup applies the aggregate-first precedence rule.
func (r *Resolver) lookup(rec record.Value, path []string) record.Value {
	key := r.CollectionKey
	if key == "" {
		key = DefaultCollectionKey
	}
	if nodes := rec.Field(key); nodes.Len() > 0 {
		if v := nodes.Index(0).Lookup(path); v.IsDefined() {
			return v
		}
	}
	return rec.Lookup(path)
}

func (r *Resolver) report(seg Segment, rec record.Value) {
	if r.Reporter == nil {
		return
	}
	msg := fmt.Sprintf("could not resolve segment %s: no value at field path %q", seg.Raw, seg.DottedPath())
	r.Reporter.ReportUnresolved(msg, rec)
}
