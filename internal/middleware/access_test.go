// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccessLogPassesThrough(t *testing.T) {
	t.Parallel()

	handler := AccessLog(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/descripcion?region=Arag%C3%B3n", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if rec.Body.String() != "upstream down" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestStatusResponseWriterCountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := newStatusResponseWriter(rec)
	_, _ = w.Write([]byte("hola"))
	_, _ = w.Write([]byte(" mundo"))

	if w.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want 200", w.statusCode)
	}
	if w.bytes != 10 {
		t.Errorf("bytes = %d, want 10", w.bytes)
	}
	if w.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
