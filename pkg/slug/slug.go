// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Routegen - Routegen derives concrete URL paths from file-path templates containing bracketed field segments, plus the data-query shapes needed to materialize them.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package slug converts arbitrary field values into URL-safe path tokens.
// Options are explicit; there is no package-level mutable configuration.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options controls slug generation.
type Options struct {
	// Lowercase folds letters to lower case.
	Lowercase bool

	// Separator replaces runs of whitespace. It is also the rune whose runs
	// get collapsed and trimmed from the ends.
	Separator rune

	// StripDiacritics decomposes accented letters and drops the combining
	// marks, so "café" slugs to "cafe" instead of dropping the rune.
	StripDiacritics bool
}

// Defaults returns the conventional slug options: lowercase, hyphen
// separator, diacritics stripped.
func Defaults() Options {
	return Options{
		Lowercase:       true,
		Separator:       '-',
		StripDiacritics: true,
	}
}

// Make slugifies a single token: whitespace becomes the separator, letters
// and digits are kept (folded per options), everything else is dropped.
// Separator runs are collapsed and trimmed from both ends.
func Make(s string, o Options) string {
	if o.StripDiacritics {
		s = stripDiacritics(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	lastSep := true // suppress a leading separator
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if o.Lowercase {
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
			lastSep = false
		case unicode.IsSpace(r) || r == o.Separator:
			if !lastSep {
				b.WriteRune(o.Separator)
				lastSep = true
			}
		}
		// punctuation and symbols are dropped
	}

	return strings.TrimRight(b.String(), string(o.Separator))
}

// MakePath slugifies a value that may carry intentional path hierarchy: the
// string is split on "/", each piece is slugified independently, and the
// pieces are rejoined. Slugifying the whole value at once would destroy the
// embedded separators.
func MakePath(s string, o Options) string {
	pieces := strings.Split(s, "/")
	for i, piece := range pieces {
		pieces[i] = Make(piece, o)
	}
	return strings.Join(pieces, "/")
}

// stripDiacritics decomposes to NFD, removes combining marks, and recomposes.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
