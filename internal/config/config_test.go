// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package config

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "port zero", modify: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", modify: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "zero read timeout", modify: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: true},
		{name: "empty data path", modify: func(c *Config) { c.Data.Path = "  " }, wantErr: true},
		{name: "negative debounce", modify: func(c *Config) { c.Data.WatchDebounce = -time.Second }, wantErr: true},
		{name: "zero neighbors", modify: func(c *Config) { c.Recommend.Neighbors = 0 }, wantErr: true},
		{name: "max below default", modify: func(c *Config) { c.Recommend.MaxNeighbors = 1 }, wantErr: true},
		{name: "zero recommend neighbors", modify: func(c *Config) { c.Recommend.RecommendNeighbors = 0 }, wantErr: true},
		{name: "empty dot path", modify: func(c *Config) { c.Export.DOTPath = "" }, wantErr: true},
		{name: "ftp graphviz url", modify: func(c *Config) { c.Export.GraphvizURL = "ftp://host/#" }, wantErr: true},
		{name: "empty graphviz url uses default", modify: func(c *Config) { c.Export.GraphvizURL = "" }},
		{name: "local graphviz url", modify: func(c *Config) { c.Export.GraphvizURL = "http://localhost:8081/#" }},
		{name: "empty cors origin", modify: func(c *Config) { c.Security.CORSOrigins = []string{""} }, wantErr: true},
		{name: "rate limit zero", modify: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: true},
		{name: "rate limit disabled skips bounds", modify: func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}},
		{name: "window too long", modify: func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, wantErr: true},
		{name: "bad log level", modify: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "bad log format", modify: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"127.0.0.1", 8080, "127.0.0.1:8080"},
		{"", 9000, ":9000"},
		{"::1", 80, "[::1]:80"},
	}
	for _, tt := range tests {
		s := ServerConfig{Host: tt.host, Port: tt.port}
		if got := s.Address(); got != tt.want {
			t.Errorf("Address() = %q, want %q", got, tt.want)
		}
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://shop.example.com"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin reported as wildcard")
	}
}
