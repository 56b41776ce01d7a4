// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package description

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/comunidades/internal/wiki"
)

type stubSummaries struct {
	summary *wiki.Summary
	err     error
	gotKey  string
}

func (s *stubSummaries) FetchSummary(_ context.Context, key string) (*wiki.Summary, error) {
	s.gotKey = key
	return s.summary, s.err
}

func TestServiceDescribe(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 520) + ". Resto."

	tests := []struct {
		name      string
		stub      *stubSummaries
		messages  Messages
		wantFound bool
		want      string
		wantErr   bool
	}{
		{
			name:      "found",
			stub:      &stubSummaries{summary: &wiki.Summary{Extract: "Aragón es una comunidad autónoma."}},
			messages:  English,
			wantFound: true,
			want:      "Aragón es una comunidad autónoma.",
		},
		{
			name:      "truncated",
			stub:      &stubSummaries{summary: &wiki.Summary{Extract: long}},
			messages:  English,
			wantFound: true,
			want:      strings.Repeat("x", 520) + ".",
		},
		{
			name:      "missing english",
			stub:      &stubSummaries{summary: &wiki.Summary{Missing: true}},
			messages:  English,
			wantFound: false,
			want:      "no information found for this region",
		},
		{
			name:      "missing spanish",
			stub:      &stubSummaries{summary: &wiki.Summary{Missing: true}},
			messages:  Spanish,
			wantFound: false,
			want:      "No se encontró información para esta región.",
		},
		{
			name:      "empty extract",
			stub:      &stubSummaries{summary: &wiki.Summary{Title: "Ceuta"}},
			messages:  English,
			wantFound: true,
			want:      "no information found for this region",
		},
		{
			name:     "upstream error",
			stub:     &stubSummaries{err: errors.New("dial tcp: connection refused")},
			messages: English,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(tt.stub, 500, tt.messages)
			got, err := svc.Describe(context.Background(), "Aragón")
			if tt.wantErr {
				if !errors.Is(err, ErrUpstream) {
					t.Errorf("Describe() error = %v, want ErrUpstream", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Describe() error = %v", err)
			}
			if got.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", got.Found, tt.wantFound)
			}
			if got.Extract != tt.want {
				t.Errorf("Extract = %q, want %q", got.Extract, tt.want)
			}
			if tt.stub.gotKey != "Aragón" {
				t.Errorf("lookup key = %q, want Aragón", tt.stub.gotKey)
			}
		})
	}
}

func TestNewServiceDefaultLimit(t *testing.T) {
	t.Parallel()
	stub := &stubSummaries{summary: &wiki.Summary{Extract: strings.Repeat("z", 700)}}
	svc := NewService(stub, 0, English)
	got, err := svc.Describe(context.Background(), "Galicia")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if len(got.Extract) != DefaultMaxLength {
		t.Errorf("len = %d, want %d", len(got.Extract), DefaultMaxLength)
	}
}

func TestMessagesFor(t *testing.T) {
	t.Parallel()
	if MessagesFor("es") != Spanish {
		t.Error("MessagesFor(es) did not return Spanish")
	}
	if MessagesFor("en") != English || MessagesFor("fr") != English {
		t.Error("MessagesFor should default to English")
	}
}
