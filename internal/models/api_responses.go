// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package models

import (
	"time"
)

// APIResponse is the envelope returned by every JSON endpoint.
// Status is "success" or "error"; Error is set only for failures.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Count       int       `json:"count,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoint.
type HealthStatus struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Uptime      float64   `json:"uptime_seconds"`
	GraphLoaded bool      `json:"graph_loaded"`
	LastIngest  *time.Time `json:"last_ingest,omitempty"`
}
