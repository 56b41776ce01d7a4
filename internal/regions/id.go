// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package regions

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newIDTransformer decomposes to NFD, then drops combining marks (Mn) and
// whitespace. Transformers carry state, so each call builds its own chain.
func newIDTransformer() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(unicode.IsSpace)),
	)
}

// CanonicalID derives the stable identifier for a region display name.
// The result is a fixed point: CanonicalID(CanonicalID(s)) == CanonicalID(s).
func CanonicalID(name string) string {
	if name == "" {
		return ""
	}
	id, _, _ := transform.String(newIDTransformer(), strings.ToLower(name))
	return id
}
