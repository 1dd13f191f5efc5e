// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Export    ExportConfig    `koanf:"export"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig describes the purchase data file.
type DataConfig struct {
	// Path is the whitespace-separated purchase file.
	Path string `koanf:"path"`

	// LoadOnStartup loads Path when the server starts.
	LoadOnStartup bool `koanf:"load_on_startup"`

	// Watch reloads Path whenever it is written.
	Watch bool `koanf:"watch"`

	// WatchDebounce coalesces bursts of file events into one reload.
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// ReloadMinInterval is the minimum spacing between two reloads.
	ReloadMinInterval time.Duration `koanf:"reload_min_interval"`
}

// RecommendConfig holds neighbourhood sizes for the recommendation engine.
type RecommendConfig struct {
	Neighbors          int `koanf:"neighbors"`
	MaxNeighbors       int `koanf:"max_neighbors"`
	RecommendNeighbors int `koanf:"recommend_neighbors"`
}

// ExportConfig holds DOT export and visualization settings.
type ExportConfig struct {
	DOTPath     string `koanf:"dot_path"`
	GraphvizURL string `koanf:"graphviz_url"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings, applied through logging.Init.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Address returns host:port for the HTTP listener.
//
//nolint:gocritic // value receiver keeps ServerConfig usable as a plain value
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
