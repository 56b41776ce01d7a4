// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package regions resolves autonomous community names into canonical ids and
loads the region set from the GeoJSON feed that drives the map.

A canonical id is the region name lowercased, with diacritics removed and
all whitespace deleted:

	CanonicalID("Castilla y León")  // "castillayleon"
	CanonicalID("Región de Murcia") // "regiondemurcia"

The id keys flag images (/images/<id>.png) and map selection state, so two
regions whose names collapse to the same id cannot coexist in a Catalog.

Feed features are GeoJSON objects whose properties carry the display name
and the encyclopedia article key:

	{"type":"Feature","properties":{"name":"Canarias","wikipedia":"Canarias"},"geometry":{...}}

Geometry is not interpreted here; projection and drawing belong to the
rendering layer.
*/
package regions
