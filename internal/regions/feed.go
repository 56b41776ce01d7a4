// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package regions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// ErrInvalidFeed is returned when the GeoJSON feed cannot be used.
var ErrInvalidFeed = errors.New("invalid region feed")

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties featureProperties `json:"properties"`
}

type featureProperties struct {
	Name      string `json:"name"`
	Wikipedia string `json:"wikipedia"`
}

// LoadFeed parses a GeoJSON FeatureCollection into regions, in feed order.
// A feature without a wikipedia property uses its display name as the key.
func LoadFeed(r io.Reader) ([]Region, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFeed, err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("%w: expected FeatureCollection, got %q", ErrInvalidFeed, fc.Type)
	}

	out := make([]Region, 0, len(fc.Features))
	for i, f := range fc.Features {
		name := f.Properties.Name
		if name == "" {
			return nil, fmt.Errorf("%w: feature %d has no name", ErrInvalidFeed, i)
		}
		key := f.Properties.Wikipedia
		if key == "" {
			key = name
		}
		out = append(out, NewRegion(name, key))
	}
	return out, nil
}

// LoadFeedFile opens path and parses it with LoadFeed.
func LoadFeedFile(path string) ([]Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open region feed: %w", err)
	}
	defer f.Close()

	regions, err := LoadFeed(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return regions, nil
}
