// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package mapview

import (
	"context"
	"io"
	"sync"

	"github.com/tomtom215/comunidades/internal/description"
	"github.com/tomtom215/comunidades/internal/logging"
	"github.com/tomtom215/comunidades/internal/metrics"
	"github.com/tomtom215/comunidades/internal/regions"
	"github.com/tomtom215/comunidades/internal/selection"
)

// Panel is the information panel next to the map.
type Panel interface {
	SetFlag(path string)
	SetDescription(text string)
}

// DescriptionSource returns the description text for a reference key.
type DescriptionSource interface {
	FetchDescription(ctx context.Context, key string) (string, error)
}

// Controller reacts to map events.
type Controller struct {
	painter  selection.Painter
	tracker  *selection.Tracker
	panel    Panel
	source   DescriptionSource
	messages description.Messages

	mu      sync.RWMutex
	catalog *regions.Catalog // nil until a feed loads
}

// NewController creates a controller with an empty map.
func NewController(painter selection.Painter, panel Panel, source DescriptionSource, messages description.Messages) *Controller {
	if painter == nil {
		painter = selection.PainterFunc(func(string, selection.Appearance) {})
	}
	return &Controller{
		painter:  painter,
		tracker:  selection.NewTracker(painter),
		panel:    panel,
		source:   source,
		messages: messages,
	}
}

// Load reads the region feed and paints every region Default. A feed that
// cannot be parsed is logged and leaves the map empty.
func (c *Controller) Load(feed io.Reader) {
	list, err := regions.LoadFeed(feed)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load region feed")
		return
	}
	catalog, err := regions.NewCatalog(list)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to index region feed")
		return
	}

	c.mu.Lock()
	c.catalog = catalog
	c.mu.Unlock()

	c.tracker.Clear()
	for _, r := range catalog.Regions() {
		c.painter.Paint(r.ID, selection.Default)
	}
	metrics.SetRegionsLoaded(catalog.Len())

	logging.Info().Int("regions", catalog.Len()).Msg("Region feed loaded")
}

// Catalog returns the loaded regions, or nil before a successful Load.
func (c *Controller) Catalog() *regions.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

// Selected returns the id of the selected region, if any.
func (c *Controller) Selected() (string, bool) {
	return c.tracker.Selected()
}

func (c *Controller) resolve(ctx context.Context, name string) (regions.Region, bool) {
	r, ok := c.Catalog().Resolve(name)
	if !ok {
		logging.Ctx(ctx).Debug().
			Str("name", logging.SanitizeValue(name)).
			Msg("Ignoring event for unknown region")
	}
	return r, ok
}

// OnClick selects the named region, shows its flag and loads its description.
func (c *Controller) OnClick(ctx context.Context, name string) {
	r, ok := c.resolve(ctx, name)
	if !ok {
		return
	}

	if c.tracker.Select(r.ID) {
		metrics.RecordRegionSelection(r.ID)
	}
	if c.panel != nil {
		c.panel.SetFlag(r.FlagPath())
	}
	if c.source == nil {
		return
	}

	text, err := c.source.FetchDescription(ctx, r.WikiKey)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("region", r.ID).
			Msg("Failed to load region description")
		text = c.messages.LoadFailed
	}
	if c.panel != nil {
		c.panel.SetDescription(text)
	}
}

// OnHover highlights the named region unless it is selected.
func (c *Controller) OnHover(name string) {
	if r, ok := c.resolve(context.Background(), name); ok {
		c.tracker.HoverEnter(r.ID)
	}
}

// OnLeave restores the named region unless it is selected.
func (c *Controller) OnLeave(name string) {
	if r, ok := c.resolve(context.Background(), name); ok {
		c.tracker.HoverLeave(r.ID)
	}
}
