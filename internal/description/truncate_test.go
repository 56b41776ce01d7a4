// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package description

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	withPeriodAt := func(n, pos int) string {
		b := []byte(strings.Repeat("a", n))
		b[pos] = '.'
		return string(b)
	}

	tests := []struct {
		name    string
		text    string
		limit   int
		wantLen int
		wantEnd string
	}{
		{"shorter than limit", strings.Repeat("a", 400), 500, 400, "a"},
		{"exactly limit", strings.Repeat("a", 500), 500, 500, "a"},
		{"period after limit", withPeriodAt(600, 550), 500, 551, "."},
		{"period at limit", withPeriodAt(600, 500), 500, 501, "."},
		{"period only before limit", withPeriodAt(600, 100), 500, 500, "a"},
		{"no period", strings.Repeat("a", 600), 500, 500, "a"},
		{"empty", "", 500, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.text, tt.limit)
			if n := utf8.RuneCountInString(got); n != tt.wantLen {
				t.Errorf("len = %d, want %d", n, tt.wantLen)
			}
			if !strings.HasSuffix(got, tt.wantEnd) {
				t.Errorf("result does not end with %q", tt.wantEnd)
			}
			if !strings.HasPrefix(tt.text, got) {
				t.Error("result is not a prefix of the input")
			}
		})
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	t.Parallel()

	// 600 two-byte runes: byte length would put a naive cut mid-rune.
	text := strings.Repeat("ñ", 600)
	got := Truncate(text, 500)
	if !utf8.ValidString(got) {
		t.Fatal("Truncate produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 500 {
		t.Errorf("rune count = %d, want 500", n)
	}

	short := strings.Repeat("ó", 450)
	if Truncate(short, 500) != short {
		t.Error("450-rune text (900 bytes) was truncated")
	}

	sentence := strings.Repeat("é", 520) + ". Segunda frase."
	got = Truncate(sentence, 500)
	if n := utf8.RuneCountInString(got); n != 521 {
		t.Errorf("rune count = %d, want 521", n)
	}
}
