// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateWiki(); err != nil {
		return err
	}

	if err := c.validateDescription(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got: %d", c.Server.Port)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got: %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got: %s", c.Server.ShutdownTimeout)
	}
	if c.Server.PublicDir == "" {
		return fmt.Errorf("PUBLIC_DIR is required")
	}
	return nil
}

func (c *Config) validateWiki() error {
	if c.Wiki.BaseURL == "" {
		return fmt.Errorf("WIKI_API_URL is required")
	}
	if err := validateHTTPURL(c.Wiki.BaseURL, "WIKI_API_URL"); err != nil {
		return fmt.Errorf("WIKI_API_URL is invalid: %w", err)
	}
	if c.Wiki.Timeout < 0 {
		return fmt.Errorf("WIKI_TIMEOUT must not be negative, got: %s", c.Wiki.Timeout)
	}
	if c.Wiki.RatePerSecond < 0 {
		return fmt.Errorf("WIKI_RATE_LIMIT must not be negative, got: %g", c.Wiki.RatePerSecond)
	}
	if c.Wiki.RatePerSecond > 0 && c.Wiki.RateBurst < 1 {
		return fmt.Errorf("WIKI_RATE_BURST must be at least 1 when WIKI_RATE_LIMIT is set, got: %d", c.Wiki.RateBurst)
	}
	return nil
}

func (c *Config) validateDescription() error {
	if c.Description.MaxLength < 1 {
		return fmt.Errorf("DESCRIPTION_MAX_LENGTH must be positive, got: %d", c.Description.MaxLength)
	}
	switch c.Description.Locale {
	case "en", "es":
		return nil
	default:
		return fmt.Errorf("DESCRIPTION_LOCALE must be one of: en, es (got: %s)", c.Description.Locale)
	}
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must contain at least one origin")
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return err
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got: %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got: %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got: %s)", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console (got: %s)", c.Logging.Format)
	}
	return nil
}
