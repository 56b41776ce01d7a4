// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// Client fetches region descriptions from the proxy.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the proxy at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type descriptionBody struct {
	Extract string `json:"extract"`
	Error   string `json:"error"`
}

// FetchDescription returns the description text for a reference key.
func (c *Client) FetchDescription(ctx context.Context, key string) (string, error) {
	endpoint := c.baseURL + "/descripcion?region=" + url.QueryEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var body descriptionBody
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		if decodeErr != nil {
			return "", fmt.Errorf("decode response: %w", decodeErr)
		}
		return body.Extract, nil
	default:
		if decodeErr == nil && body.Error != "" {
			return "", fmt.Errorf("proxy returned status %d: %s", resp.StatusCode, body.Error)
		}
		return "", fmt.Errorf("proxy returned status %d", resp.StatusCode)
	}
}
