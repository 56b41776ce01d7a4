// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package regions

import "strings"

// Offset is a fixed visual translation applied to a region's shape.
type Offset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// canaryInset moves the Canary Islands next to the peninsula.
var canaryInset = Offset{DX: 230, DY: -260}

// Region is one autonomous community on the map.
type Region struct {
	Name    string  // Display name, e.g. "Castilla y León"
	WikiKey string  // Encyclopedia article key
	ID      string  // CanonicalID(Name)
	Inset   *Offset // nil unless the shape is drawn displaced
}

// NewRegion builds a Region, deriving its ID and inset from the name.
func NewRegion(name, wikiKey string) Region {
	r := Region{
		Name:    name,
		WikiKey: wikiKey,
		ID:      CanonicalID(name),
	}
	if strings.Contains(name, "Canarias") {
		inset := canaryInset
		r.Inset = &inset
	}
	return r
}

// FlagPath returns the site-relative path of the region's flag image.
func (r Region) FlagPath() string {
	return FlagPath(r.ID)
}

// FlagPath returns /images/<id>.png.
func FlagPath(id string) string {
	return "/images/" + id + ".png"
}
