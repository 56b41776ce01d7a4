// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package selection

import (
	"sync"
	"testing"
)

// recordingPainter keeps the last appearance painted for each region.
type recordingPainter struct {
	mu    sync.Mutex
	state map[string]Appearance
	calls int
}

func newRecordingPainter() *recordingPainter {
	return &recordingPainter{state: make(map[string]Appearance)}
}

func (p *recordingPainter) Paint(id string, a Appearance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state[id] = a
	p.calls++
}

func (p *recordingPainter) get(id string) Appearance {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state[id]
}

func TestTrackerInitiallyEmpty(t *testing.T) {
	t.Parallel()
	tr := NewTracker(nil)
	if id, ok := tr.Selected(); ok || id != "" {
		t.Errorf("Selected() = %q, %v; want none", id, ok)
	}
}

func TestTrackerSelectSwitches(t *testing.T) {
	t.Parallel()
	p := newRecordingPainter()
	tr := NewTracker(p)

	if !tr.Select("aragon") {
		t.Error("first Select() reported no change")
	}
	if !tr.Select("castillayleon") {
		t.Error("Select() of a different region reported no change")
	}

	if got := p.get("castillayleon"); got != Selected {
		t.Errorf("castillayleon = %v, want selected", got)
	}
	if got := p.get("aragon"); got != Default {
		t.Errorf("aragon = %v, want default", got)
	}
	if id, _ := tr.Selected(); id != "castillayleon" {
		t.Errorf("Selected() = %q, want castillayleon", id)
	}
}

func TestTrackerSelectSameTwice(t *testing.T) {
	t.Parallel()
	p := newRecordingPainter()
	tr := NewTracker(p)

	tr.Select("aragon")
	if tr.Select("aragon") {
		t.Error("re-selecting the same region reported a change")
	}
	if got := p.get("aragon"); got != Selected {
		t.Errorf("aragon = %v, want selected", got)
	}
}

func TestTrackerHover(t *testing.T) {
	t.Parallel()
	p := newRecordingPainter()
	tr := NewTracker(p)

	tr.HoverEnter("galicia")
	if got := p.get("galicia"); got != Hover {
		t.Errorf("galicia after enter = %v, want hover", got)
	}
	tr.HoverLeave("galicia")
	if got := p.get("galicia"); got != Default {
		t.Errorf("galicia after leave = %v, want default", got)
	}

	tr.Select("galicia")
	tr.HoverEnter("galicia")
	if got := p.get("galicia"); got != Selected {
		t.Errorf("selected galicia after enter = %v, want selected", got)
	}
	tr.HoverLeave("galicia")
	if got := p.get("galicia"); got != Selected {
		t.Errorf("selected galicia after leave = %v, want selected", got)
	}
}

func TestTrackerClear(t *testing.T) {
	t.Parallel()
	p := newRecordingPainter()
	tr := NewTracker(p)

	tr.Clear()
	if p.calls != 0 {
		t.Errorf("Clear() on empty tracker painted %d times", p.calls)
	}

	tr.Select("canarias")
	tr.Clear()
	if got := p.get("canarias"); got != Default {
		t.Errorf("canarias after Clear = %v, want default", got)
	}
	if _, ok := tr.Selected(); ok {
		t.Error("Selected() still reports a region after Clear")
	}
}

func TestTrackerAtMostOneSelected(t *testing.T) {
	t.Parallel()
	p := newRecordingPainter()
	tr := NewTracker(p)

	sequence := []string{"aragon", "galicia", "galicia", "canarias", "aragon", "madrid"}
	for _, id := range sequence {
		tr.HoverEnter(id)
		tr.Select(id)
		tr.HoverEnter("galicia")

		selected := 0
		p.mu.Lock()
		for _, a := range p.state {
			if a == Selected {
				selected++
			}
		}
		p.mu.Unlock()
		if selected != 1 {
			t.Fatalf("after selecting %q, %d regions are selected", id, selected)
		}
	}
}

func TestAppearanceFill(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a    Appearance
		fill string
		name string
	}{
		{Default, "#ccc", "default"},
		{Hover, "orange", "hover"},
		{Selected, "green", "selected"},
	}
	for _, tt := range tests {
		if got := tt.a.Fill(); got != tt.fill {
			t.Errorf("%v.Fill() = %q, want %q", tt.a, got, tt.fill)
		}
		if got := tt.a.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}
