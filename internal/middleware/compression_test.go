// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompression(t *testing.T) {
	t.Parallel()

	body := strings.Repeat(`{"type":"Feature","properties":{"name":"Aragón"}},`, 200)
	handler := Compression(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(body))
	})

	tests := []struct {
		name        string
		method      string
		headers     map[string]string
		wantGzipped bool
	}{
		{"accepts gzip", http.MethodGet, map[string]string{"Accept-Encoding": "gzip, deflate"}, true},
		{"no accept encoding", http.MethodGet, nil, false},
		{"range request", http.MethodGet, map[string]string{"Accept-Encoding": "gzip", "Range": "bytes=0-99"}, false},
		{"head request", http.MethodHead, map[string]string{"Accept-Encoding": "gzip"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, "/resources/spain-communities.geojson", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			gotGzip := rec.Header().Get("Content-Encoding") == "gzip"
			if gotGzip != tt.wantGzipped {
				t.Fatalf("Content-Encoding gzip = %v, want %v", gotGzip, tt.wantGzipped)
			}
			if !gotGzip {
				if rec.Body.String() != body {
					t.Error("uncompressed body altered")
				}
				return
			}

			zr, err := gzip.NewReader(rec.Body)
			if err != nil {
				t.Fatalf("gzip.NewReader() error = %v", err)
			}
			decoded, err := io.ReadAll(zr)
			if err != nil {
				t.Fatalf("reading gzip body: %v", err)
			}
			if string(decoded) != body {
				t.Error("decompressed body does not match")
			}
		})
	}
}
