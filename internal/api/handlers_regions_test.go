// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/comunidades/internal/description"
	"github.com/tomtom215/comunidades/internal/regions"
)

type regionsEnvelope struct {
	Success bool            `json:"success"`
	Data    RegionsResponse `json:"data"`
}

func testCatalog(t *testing.T) *regions.Catalog {
	t.Helper()
	c, err := regions.NewCatalog([]regions.Region{
		regions.NewRegion("Castilla y León", "Castilla y León"),
		regions.NewRegion("Canarias", "Canarias"),
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func TestRegionsHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(description.NewService(&stubSummaries{}, 500, description.English), testCatalog(t))
	server := httptest.NewServer(NewRouter(h, nil, "").SetupChi())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/v1/regions")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env regionsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if !env.Success {
		t.Error("success = false")
	}
	if len(env.Data.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(env.Data.Regions))
	}
	first := env.Data.Regions[0]
	if first.ID != "castillayleon" || first.Flag != "/images/castillayleon.png" || first.Inset != nil {
		t.Errorf("regions[0] = %+v", first)
	}
	second := env.Data.Regions[1]
	if second.Inset == nil || second.Inset.DX != 230 || second.Inset.DY != -260 {
		t.Errorf("regions[1].Inset = %+v", second.Inset)
	}
}

func TestRegionsHandlerWithoutCatalog(t *testing.T) {
	t.Parallel()

	h := NewHandler(description.NewService(&stubSummaries{}, 500, description.English), nil)
	rec := httptest.NewRecorder()
	h.Regions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil))

	var env regionsEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if env.Data.Regions == nil || len(env.Data.Regions) != 0 {
		t.Errorf("regions = %v, want empty list", env.Data.Regions)
	}
}

func TestRegionHandler(t *testing.T) {
	t.Parallel()

	h := NewHandler(description.NewService(&stubSummaries{}, 500, description.English), testCatalog(t))
	server := httptest.NewServer(NewRouter(h, nil, "").SetupChi())
	t.Cleanup(server.Close)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/v1/regions/canarias", http.StatusOK},
		{"/api/v1/regions/Castilla%20y%20Le%C3%B3n", http.StatusOK},
		{"/api/v1/regions/galicia", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, err := http.Get(server.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s error = %v", tt.path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.path, resp.StatusCode, tt.status)
		}
	}
}
