// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package wiki

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/comunidades/internal/config"
	"github.com/tomtom215/comunidades/internal/logging"
	"github.com/tomtom215/comunidades/internal/metrics"
)

// ErrMalformedResponse is returned when the upstream body lacks query.pages.
var ErrMalformedResponse = errors.New("malformed encyclopedia response")

// maxErrorBodySize limits how much of a failed response is read for logging
const maxErrorBodySize = 4 * 1024

// Summary is the introduction of one article.
type Summary struct {
	Title   string
	Extract string
	Missing bool // The article does not exist upstream
}

// SummaryClient fetches the summary for an article key.
type SummaryClient interface {
	FetchSummary(ctx context.Context, key string) (*Summary, error)
}

// Client talks to a MediaWiki action API endpoint.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter // nil when outbound limiting is off
}

// NewClient creates a client from configuration. A zero Timeout keeps the
// http.Client default of no overall deadline.
func NewClient(cfg *config.WikiConfig) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return c
}

type queryResponse struct {
	Query *struct {
		Pages map[string]page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title   string          `json:"title"`
	Extract string          `json:"extract"`
	Missing json.RawMessage `json:"missing"`
	Invalid json.RawMessage `json:"invalid"`
}

// buildURL appends the fixed extract query to the base URL.
func (c *Client) buildURL(key string) string {
	return c.baseURL +
		"?format=json&origin=*&action=query&prop=extracts&explaintext=false&exintro&titles=" +
		url.QueryEscape(key)
}

// FetchSummary retrieves the introduction of the article named key.
func (c *Client) FetchSummary(ctx context.Context, key string) (*Summary, error) {
	start := time.Now()
	summary, err := c.fetch(ctx, key)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		metrics.RecordUpstreamLookup(metrics.ResultError, elapsed)
		logging.Ctx(ctx).Warn().Err(err).
			Str("key", logging.SanitizeValue(key)).
			Dur("duration", elapsed).
			Msg("Encyclopedia lookup failed")
		return nil, err
	case summary.Missing:
		metrics.RecordUpstreamLookup(metrics.ResultMissing, elapsed)
	default:
		metrics.RecordUpstreamLookup(metrics.ResultFound, elapsed)
	}

	logging.Ctx(ctx).Debug().
		Str("key", logging.SanitizeValue(key)).
		Bool("missing", summary.Missing).
		Int("extract_len", len(summary.Extract)).
		Dur("duration", elapsed).
		Msg("Encyclopedia lookup completed")
	return summary, nil
}

func (c *Client) fetch(ctx context.Context, key string) (*Summary, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(key), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("encyclopedia returned status %d: %s", resp.StatusCode, string(body))
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return firstPage(qr)
}

// pageKeyLess orders page keys the way JavaScript enumerates object keys:
// non-negative integer keys first in numeric order, then everything else
// ("-1" for a missing page) in string order.
func pageKeyLess(a, b string) int {
	ai, aErr := strconv.ParseUint(a, 10, 32)
	bi, bErr := strconv.ParseUint(b, 10, 32)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(ai, bi)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// firstPage returns the first page in pageKeyLess order, so a multi-title
// answer always resolves to the same entry and real pages win over "-1".
func firstPage(qr queryResponse) (*Summary, error) {
	if qr.Query == nil || len(qr.Query.Pages) == 0 {
		return nil, fmt.Errorf("%w: no query.pages", ErrMalformedResponse)
	}

	keys := make([]string, 0, len(qr.Query.Pages))
	for k := range qr.Query.Pages {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, pageKeyLess)

	p := qr.Query.Pages[keys[0]]
	return &Summary{
		Title:   p.Title,
		Extract: p.Extract,
		Missing: p.Missing != nil || p.Invalid != nil,
	}, nil
}
