// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package logging

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxLoggedValue caps user-supplied values written to the log.
const maxLoggedValue = 256

// SanitizeValue escapes control characters and caps the length of a
// user-supplied value so it cannot forge log lines.
func SanitizeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if n == maxLoggedValue {
			b.WriteString("...")
			break
		}
		switch {
		case r == utf8.RuneError:
			b.WriteString(`�`)
		case r < 0x20 || r == 0x7F:
			fmt.Fprintf(&b, "\\x%02x", r)
		default:
			b.WriteRune(r)
		}
		n++
	}
	return b.String()
}
