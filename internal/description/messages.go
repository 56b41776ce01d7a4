// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package description

// Messages are the user-facing strings of the description feature.
type Messages struct {
	MissingRegion string // 400 body when no region is given
	NotFound      string // Extract text when the article does not exist
	FetchFailed   string // 500 body when the upstream lookup fails
	LoadFailed    string // Shown in the panel when the proxy cannot be reached
	RateLimited   string // 429 body when a client exceeds the request limit
}

// English messages.
var English = Messages{
	MissingRegion: "missing region parameter",
	NotFound:      "no information found for this region",
	FetchFailed:   "failed to fetch description",
	LoadFailed:    "failed to load description",
	RateLimited:   "too many requests, try again later",
}

// Spanish messages.
var Spanish = Messages{
	MissingRegion: "Falta el parámetro 'region'",
	NotFound:      "No se encontró información para esta región.",
	FetchFailed:   "Error al obtener datos de Wikipedia",
	LoadFailed:    "Error al cargar la descripción.",
	RateLimited:   "Demasiadas solicitudes, inténtalo más tarde.",
}

// MessagesFor returns the messages for a locale, defaulting to English.
func MessagesFor(locale string) Messages {
	if locale == "es" {
		return Spanish
	}
	return English
}
