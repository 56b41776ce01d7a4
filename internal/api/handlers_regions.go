// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/comunidades/internal/regions"
)

// RegionView is the JSON form of a region.
type RegionView struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	WikiKey string          `json:"wiki_key"`
	Flag    string          `json:"flag"`
	Inset   *regions.Offset `json:"inset,omitempty"`
}

// RegionsResponse is the data payload of GET /api/v1/regions.
type RegionsResponse struct {
	Regions []RegionView `json:"regions"`
}

func newRegionView(r regions.Region) RegionView {
	return RegionView{
		ID:      r.ID,
		Name:    r.Name,
		WikiKey: r.WikiKey,
		Flag:    r.FlagPath(),
		Inset:   r.Inset,
	}
}

// Regions lists the catalog in feed order. An unloaded feed yields an
// empty list.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	list := h.catalog.Regions()
	views := make([]RegionView, 0, len(list))
	for _, reg := range list {
		views = append(views, newRegionView(reg))
	}
	NewResponseWriter(w, r).Success(RegionsResponse{Regions: views})
}

// Region returns one region by canonical id.
func (h *Handler) Region(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	reg, ok := h.catalog.Lookup(regions.CanonicalID(id))
	if !ok {
		NewResponseWriter(w, r).Error(http.StatusNotFound, ErrCodeNotFound, "region not found")
		return
	}
	NewResponseWriter(w, r).Success(newRegionView(reg))
}
