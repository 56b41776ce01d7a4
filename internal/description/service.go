// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package description

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/comunidades/internal/wiki"
)

// ErrUpstream wraps any failure of the encyclopedia lookup.
var ErrUpstream = errors.New("encyclopedia lookup failed")

// Result is the outcome of a description lookup.
type Result struct {
	Found   bool   // False when the article does not exist upstream
	Extract string // Truncated extract, or Messages.NotFound
}

// Service produces region descriptions from a SummaryClient.
type Service struct {
	client   wiki.SummaryClient
	limit    int
	messages Messages
}

// NewService creates a description service. A non-positive limit falls
// back to DefaultMaxLength.
func NewService(client wiki.SummaryClient, limit int, messages Messages) *Service {
	if limit <= 0 {
		limit = DefaultMaxLength
	}
	return &Service{client: client, limit: limit, messages: messages}
}

// Messages returns the localized strings the service answers with.
func (s *Service) Messages() Messages {
	return s.messages
}

// Describe looks key up and returns its truncated introduction.
//
// A missing article yields Found=false with the not-found message. An
// existing article with an empty extract yields Found=true with the same
// message. Lookup failures return an error wrapping ErrUpstream.
func (s *Service) Describe(ctx context.Context, key string) (Result, error) {
	summary, err := s.client.FetchSummary(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if summary == nil || summary.Missing {
		return Result{Found: false, Extract: s.messages.NotFound}, nil
	}
	if summary.Extract == "" {
		return Result{Found: true, Extract: s.messages.NotFound}, nil
	}
	return Result{Found: true, Extract: Truncate(summary.Extract, s.limit)}, nil
}
