// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package mapview is the headless controller behind the interactive map.

It owns no rendering. Region shapes are painted through a
selection.Painter, and the side panel (flag image and description text) is
updated through a Panel. Descriptions come from a DescriptionSource,
normally a client.Client pointed at the description proxy.

Event flow for a click:

 1. The region name is resolved to its canonical id.
 2. The tracker marks it Selected, returning the previous selection to Default.
 3. The panel shows the flag at /images/<id>.png.
 4. The description is fetched for the region's reference key and shown.
    If the fetch fails the panel shows the localized load error; the flag
    and highlight stay as they are.

Overlapping fetches are not coordinated. Whichever response arrives last
is displayed.
*/
package mapview
