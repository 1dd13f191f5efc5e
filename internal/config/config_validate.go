// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateExport(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP listener settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateData validates the data file settings
func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("DATA_PATH is required")
	}
	if c.Data.WatchDebounce < 0 {
		return fmt.Errorf("DATA_WATCH_DEBOUNCE must not be negative")
	}
	if c.Data.ReloadMinInterval < 0 {
		return fmt.Errorf("DATA_RELOAD_MIN_INTERVAL must not be negative")
	}
	return nil
}

// validateRecommend validates neighbourhood sizes
func (c *Config) validateRecommend() error {
	if c.Recommend.Neighbors < 1 {
		return fmt.Errorf("RECOMMEND_NEIGHBORS must be positive, got %d", c.Recommend.Neighbors)
	}
	if c.Recommend.RecommendNeighbors < 1 {
		return fmt.Errorf("RECOMMEND_RECOMMEND_NEIGHBORS must be positive, got %d", c.Recommend.RecommendNeighbors)
	}
	if c.Recommend.MaxNeighbors < c.Recommend.Neighbors {
		return fmt.Errorf("RECOMMEND_MAX_NEIGHBORS (%d) must be >= RECOMMEND_NEIGHBORS (%d)",
			c.Recommend.MaxNeighbors, c.Recommend.Neighbors)
	}
	return nil
}

// validateExport validates export settings
func (c *Config) validateExport() error {
	if strings.TrimSpace(c.Export.DOTPath) == "" {
		return fmt.Errorf("EXPORT_DOT_PATH is required")
	}
	if c.Export.GraphvizURL == "" {
		return nil
	}
	if err := validateHTTPURL(c.Export.GraphvizURL, "GRAPHVIZ_URL"); err != nil {
		return fmt.Errorf("GRAPHVIZ_URL is invalid: %w", err)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("CORS_ORIGINS must not contain empty entries")
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any CORS origin is "*"
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
