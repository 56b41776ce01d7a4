// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"

	"github.com/tomtom215/comunidades/internal/validation"
)

// DescriptionQuery holds the validated query of /descripcion.
type DescriptionQuery struct {
	// Region is the encyclopedia article key, not the canonical id.
	Region string `query:"region" validate:"required"`
}

// parseDescriptionQuery reads and validates the region parameter.
func parseDescriptionQuery(r *http.Request) (DescriptionQuery, *validation.RequestValidationError) {
	q := DescriptionQuery{Region: r.URL.Query().Get("region")}
	if err := validation.ValidateStruct(&q); err != nil {
		return q, err
	}
	return q, nil
}
