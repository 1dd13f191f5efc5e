// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed by the API at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

Graph:
  - basketgraph_graph_users, basketgraph_graph_products,
    basketgraph_graph_purchases: current graph size (gauges)

Ingestion:
  - basketgraph_ingest_lines_total: lines seen by the loader (counter)
    Labels: result (imported, blank, rejected)
  - basketgraph_ingest_duration_seconds: duration of one load (histogram)

Recommendation:
  - basketgraph_recommend_queries_total: engine queries (counter)
    Labels: operation (neighbors, recommendations), outcome (hit, empty, unknown_user)
  - basketgraph_recommend_duration_seconds: engine query latency (histogram)
    Labels: operation

HTTP:
  - basketgraph_api_requests_total: requests served (counter)
    Labels: method, route, status_code
  - basketgraph_api_request_duration_seconds: request latency (histogram)
    Labels: method, route
  - basketgraph_api_requests_in_flight: active requests (gauge)

# Usage

	start := time.Now()
	stats := loader.Load(ctx, r)
	metrics.RecordIngest(stats.Imported, stats.Blank, stats.Rejected, time.Since(start))
*/
package metrics
