// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package client calls the description proxy served by this application.

The map front end asks the proxy, never the encyclopedia directly:

	c := client.NewClient("http://localhost:3001", nil)
	text, err := c.FetchDescription(ctx, "Aragón")

Both 200 and 404 responses carry an extract; 404 holds the localized
"no information" message, so callers can display it unchanged. Any
other status, an undecodable body or a transport failure is an error.
*/
package client
