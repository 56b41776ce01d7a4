// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package description

import "unicode/utf8"

// DefaultMaxLength is the truncation threshold used when none is configured.
const DefaultMaxLength = 500

// Truncate shortens text longer than limit runes. The cut falls just after
// the first '.' whose rune index is >= limit; without one, the first limit
// runes are kept. Text of limit runes or fewer is returned unchanged.
func Truncate(text string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	// cut is the byte offset at which rune index limit starts.
	idx := 0
	cut := -1
	for i, r := range text {
		if idx == limit {
			cut = i
		}
		if idx >= limit && r == '.' {
			return text[:i+1]
		}
		idx++
	}
	return text[:cut]
}
