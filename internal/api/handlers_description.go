// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"

	"github.com/tomtom215/comunidades/internal/description"
	"github.com/tomtom215/comunidades/internal/logging"
)

// descriptionMessages returns the configured messages, or English when no
// description service is wired.
func (h *Handler) descriptionMessages() description.Messages {
	if h.descriptions == nil {
		return description.English
	}
	return h.descriptions.Messages()
}

// DescriptionRateLimited answers a throttled /descripcion request with
// {"error": RateLimited}.
func (h *Handler) DescriptionRateLimited(w http.ResponseWriter, _ *http.Request) {
	respondDescription(w, http.StatusTooManyRequests, DescriptionResponse{Error: h.descriptionMessages().RateLimited})
}

// DescriptionPanicked answers a /descripcion request whose handler panicked.
func (h *Handler) DescriptionPanicked(w http.ResponseWriter, _ *http.Request) {
	respondDescription(w, http.StatusInternalServerError, DescriptionResponse{Error: h.descriptionMessages().FetchFailed})
}

// Description proxies an encyclopedia lookup for the region query parameter.
//
// Responses:
//   - 400 {"error": MissingRegion} when region is absent or empty
//   - 404 {"extract": NotFound} when the article does not exist
//   - 200 {"extract": text} with the truncated introduction
//   - 500 {"error": FetchFailed} when the lookup fails or no service is wired
func (h *Handler) Description(w http.ResponseWriter, r *http.Request) {
	messages := h.descriptionMessages()
	if h.descriptions == nil {
		logging.Ctx(r.Context()).Error().Msg("Description service not configured")
		respondDescription(w, http.StatusInternalServerError, DescriptionResponse{Error: messages.FetchFailed})
		return
	}

	q, verr := parseDescriptionQuery(r)
	if verr != nil {
		logging.Ctx(r.Context()).Debug().Str("validation", verr.Error()).Msg("Rejected description request")
		respondDescription(w, http.StatusBadRequest, DescriptionResponse{Error: messages.MissingRegion})
		return
	}

	result, err := h.descriptions.Describe(r.Context(), q.Region)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("region", logging.SanitizeValue(q.Region)).
			Msg("Failed to fetch description")
		respondDescription(w, http.StatusInternalServerError, DescriptionResponse{Error: messages.FetchFailed})
		return
	}

	if !result.Found {
		respondDescription(w, http.StatusNotFound, DescriptionResponse{Extract: result.Extract})
		return
	}
	respondDescription(w, http.StatusOK, DescriptionResponse{Extract: result.Extract})
}
