// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type regionQuery struct {
	Region string `query:"region" validate:"required"`
	Locale string `json:"locale" validate:"omitempty,oneof=en es"`
	Limit  int    `validate:"min=0,max=1000"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		input      regionQuery
		wantFields []string
		wantMsg    string
	}{
		{
			name:  "valid",
			input: regionQuery{Region: "Castilla y León", Locale: "es", Limit: 10},
		},
		{
			name:       "missing region",
			input:      regionQuery{},
			wantFields: []string{"region"},
			wantMsg:    "region is required",
		},
		{
			name:       "bad locale",
			input:      regionQuery{Region: "Aragón", Locale: "fr"},
			wantFields: []string{"locale"},
			wantMsg:    "locale must be one of: en es",
		},
		{
			name:       "several failures",
			input:      regionQuery{Locale: "de", Limit: 5000},
			wantFields: []string{"region", "locale", "Limit"},
			wantMsg:    "Limit must be at most 1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) != len(tt.wantFields) {
				t.Errorf("got %d errors, want %d: %v", len(err.Errors()), len(tt.wantFields), err)
			}
			for _, f := range tt.wantFields {
				if !err.HasField(f) {
					t.Errorf("HasField(%q) = false; errors: %v", f, err)
				}
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want containing %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidationErrorAccessors(t *testing.T) {
	t.Parallel()
	err := ValidateStruct(&regionQuery{Region: "Galicia", Limit: -1})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	fe := err.Errors()[0]
	if fe.Field() != "Limit" || fe.Tag() != "min" || fe.Param() != "0" {
		t.Errorf("field error = (%q, %q, %q), want (Limit, min, 0)", fe.Field(), fe.Tag(), fe.Param())
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()
	var ve RequestValidationError
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
}
