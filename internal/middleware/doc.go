// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package middleware provides chi-compatible HTTP middleware for the API server.

Key Components:

  - RequestID: reuses or generates an X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counters, latency histograms and in-flight gauge
  - AccessLog: one structured log line per request

All middleware has the func(http.Handler) http.Handler shape so it can be
passed straight to chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)

PrometheusMetrics labels requests by chi route pattern ("/api/v1/users/{userID}")
rather than raw path, which keeps label cardinality bounded by the route table.
*/
package middleware
