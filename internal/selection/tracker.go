// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

// Package selection tracks which map region is selected and which visual
// state every region should be painted in.
//
// At most one region is Selected at a time, and the selected region never
// shows the Hover appearance. Painting is delegated to a Painter so the
// tracker works against an SVG surface, a test double, or nothing at all.
package selection

import "sync"

// Appearance is the visual state of a region.
type Appearance int

const (
	Default Appearance = iota
	Hover
	Selected
)

// String returns the appearance name.
func (a Appearance) String() string {
	switch a {
	case Default:
		return "default"
	case Hover:
		return "hover"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// Fill returns the fill color used for the appearance.
func (a Appearance) Fill() string {
	switch a {
	case Hover:
		return "orange"
	case Selected:
		return "green"
	default:
		return "#ccc"
	}
}

// Painter applies an appearance to the region with the given id.
type Painter interface {
	Paint(regionID string, a Appearance)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(regionID string, a Appearance)

// Paint calls f(regionID, a).
func (f PainterFunc) Paint(regionID string, a Appearance) { f(regionID, a) }

// Tracker holds the current selection. The zero value is not usable;
// create one with NewTracker.
type Tracker struct {
	mu       sync.Mutex
	painter  Painter
	selected string
	has      bool
}

// NewTracker returns a tracker with nothing selected. A nil painter
// discards paint calls.
func NewTracker(p Painter) *Tracker {
	if p == nil {
		p = PainterFunc(func(string, Appearance) {})
	}
	return &Tracker{painter: p}
}

// Select makes id the selected region. A previously selected, different
// region is repainted Default first. Selecting the current selection again
// repaints it Selected and reports no change.
func (t *Tracker) Select(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := !t.has || t.selected != id
	if t.has && t.selected != id {
		t.painter.Paint(t.selected, Default)
	}
	t.painter.Paint(id, Selected)
	t.selected = id
	t.has = true
	return changed
}

// HoverEnter paints id Hover unless it is the selected region.
func (t *Tracker) HoverEnter(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.has && t.selected == id {
		return
	}
	t.painter.Paint(id, Hover)
}

// HoverLeave paints id Default unless it is the selected region.
func (t *Tracker) HoverLeave(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.has && t.selected == id {
		return
	}
	t.painter.Paint(id, Default)
}

// Selected returns the selected region id, if any.
func (t *Tracker) Selected() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected, t.has
}

// Clear deselects the current region, repainting it Default.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.has {
		return
	}
	t.painter.Paint(t.selected, Default)
	t.selected = ""
	t.has = false
}
