// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package models defines the JSON shapes exchanged over the HTTP API.

Every endpoint wraps its payload in APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 1}
	}

Failures set status to "error" and carry an APIError with a machine-readable
code such as NOT_FOUND or VALIDATION_ERROR.
*/
package models
