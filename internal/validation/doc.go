// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

// Package validation provides struct validation using go-playground/validator v10.
// It holds a thread-safe singleton validator that reports failing fields by
// their query or json tag name.
//
// Example usage:
//
//	type DescriptionQuery struct {
//	    Region string `query:"region" validate:"required"`
//	}
//
//	if err := validation.ValidateStruct(&q); err != nil && err.HasField("region") {
//	    // 400
//	}
package validation
