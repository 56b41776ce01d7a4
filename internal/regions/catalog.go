// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package regions

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two region names share a canonical id.
var ErrDuplicateID = errors.New("duplicate region id")

// Catalog is an ordered, immutable set of regions indexed by id.
// It is safe for concurrent reads.
type Catalog struct {
	ordered []Region
	byID    map[string]int
}

// NewCatalog indexes regions, rejecting empty or colliding ids.
func NewCatalog(regions []Region) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]Region, 0, len(regions)),
		byID:    make(map[string]int, len(regions)),
	}
	for _, r := range regions {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: region %q has an empty id", ErrInvalidFeed, r.Name)
		}
		if prev, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: %q and %q both resolve to %q",
				ErrDuplicateID, c.ordered[prev].Name, r.Name, r.ID)
		}
		c.byID[r.ID] = len(c.ordered)
		c.ordered = append(c.ordered, r)
	}
	return c, nil
}

// Len returns the number of regions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ordered)
}

// Regions returns a copy of the regions in feed order.
func (c *Catalog) Regions() []Region {
	if c == nil {
		return []Region{}
	}
	out := make([]Region, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup returns the region with the given canonical id.
func (c *Catalog) Lookup(id string) (Region, bool) {
	if c == nil {
		return Region{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Region{}, false
	}
	return c.ordered[i], true
}

// Resolve looks a region up by display name.
func (c *Catalog) Resolve(name string) (Region, bool) {
	return c.Lookup(CanonicalID(name))
}
