// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package config

import (
	"strings"
	"testing"
	"time"
)

func TestServerConfigAddr(t *testing.T) {
	t.Parallel()
	s := ServerConfig{Host: "127.0.0.1", Port: 3001}
	if got := s.Addr(); got != "127.0.0.1:3001" {
		t.Errorf("Addr() = %q, want 127.0.0.1:3001", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"empty public dir", func(c *Config) { c.Server.PublicDir = "" }, "PUBLIC_DIR"},
		{"ftp wiki url", func(c *Config) { c.Wiki.BaseURL = "ftp://es.wikipedia.org" }, "scheme must be http or https"},
		{"wiki url without host", func(c *Config) { c.Wiki.BaseURL = "https:///w/api.php" }, "host is required"},
		{"negative wiki timeout", func(c *Config) { c.Wiki.Timeout = -time.Second }, "WIKI_TIMEOUT"},
		{"rate without burst", func(c *Config) { c.Wiki.RatePerSecond = 2; c.Wiki.RateBurst = 0 }, "WIKI_RATE_BURST"},
		{"spanish locale", func(c *Config) { c.Description.Locale = "es" }, ""},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"bad cors origin", func(c *Config) { c.Security.CORSOrigins = []string{"localhost"} }, "CORS_ORIGINS"},
		{"rate limit disabled ignores window", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitWindow = 0
		}, ""},
		{"zero rate limit window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
