// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package regions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFeed = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Castilla y León", "wikipedia": "Castilla y León"}, "geometry": null},
    {"type": "Feature", "properties": {"name": "Canarias", "wikipedia": "Canarias"}, "geometry": null},
    {"type": "Feature", "properties": {"name": "Región de Murcia"}, "geometry": null}
  ]
}`

func TestLoadFeed(t *testing.T) {
	t.Parallel()

	regions, err := LoadFeed(strings.NewReader(testFeed))
	if err != nil {
		t.Fatalf("LoadFeed() error = %v", err)
	}
	if len(regions) != 3 {
		t.Fatalf("LoadFeed() returned %d regions, want 3", len(regions))
	}

	cyl := regions[0]
	if cyl.ID != "castillayleon" || cyl.WikiKey != "Castilla y León" {
		t.Errorf("regions[0] = %+v", cyl)
	}
	if cyl.Inset != nil {
		t.Errorf("regions[0].Inset = %+v, want nil", cyl.Inset)
	}
	if cyl.FlagPath() != "/images/castillayleon.png" {
		t.Errorf("FlagPath() = %q", cyl.FlagPath())
	}

	canarias := regions[1]
	if canarias.Inset == nil || canarias.Inset.DX != 230 || canarias.Inset.DY != -260 {
		t.Errorf("Canarias inset = %+v, want {230 -260}", canarias.Inset)
	}

	if regions[2].WikiKey != "Región de Murcia" {
		t.Errorf("regions[2].WikiKey = %q, want name fallback", regions[2].WikiKey)
	}
}

func TestLoadFeedInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<svg/>"},
		{"truncated", `{"type":"FeatureCollection","features":[`},
		{"wrong type", `{"type":"Feature","properties":{"name":"Aragón"}}`},
		{"feature without name", `{"type":"FeatureCollection","features":[{"properties":{"wikipedia":"Aragón"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFeed(strings.NewReader(tt.body))
			if !errors.Is(err, ErrInvalidFeed) {
				t.Errorf("LoadFeed() error = %v, want ErrInvalidFeed", err)
			}
		})
	}
}

func TestLoadFeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "spain-communities.geojson")
	if err := os.WriteFile(path, []byte(testFeed), 0o644); err != nil {
		t.Fatalf("Failed to write feed: %v", err)
	}
	regions, err := LoadFeedFile(path)
	if err != nil {
		t.Fatalf("LoadFeedFile() error = %v", err)
	}
	if len(regions) != 3 {
		t.Errorf("LoadFeedFile() returned %d regions, want 3", len(regions))
	}

	if _, err := LoadFeedFile(filepath.Join(t.TempDir(), "missing.geojson")); err == nil {
		t.Error("LoadFeedFile() on missing file expected error")
	}
}
