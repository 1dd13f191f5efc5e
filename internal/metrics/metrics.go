// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recommendation queries.
const (
	OutcomeHit         = "hit"
	OutcomeEmpty       = "empty"
	OutcomeUnknownUser = "unknown_user"
)

var (
	// Graph Metrics
	GraphUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketgraph_graph_users",
			Help: "Current number of users in the purchase graph",
		},
	)

	GraphProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketgraph_graph_products",
			Help: "Current number of products in the purchase graph",
		},
	)

	GraphPurchases = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketgraph_graph_purchases",
			Help: "Current number of purchase edges in the graph",
		},
	)

	// Ingestion Metrics
	IngestLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketgraph_ingest_lines_total",
			Help: "Total number of data file lines processed by result",
		},
		[]string{"result"}, // "imported", "blank", "rejected"
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basketgraph_ingest_duration_seconds",
			Help:    "Duration of a data file load in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Recommendation Metrics
	RecommendQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketgraph_recommend_queries_total",
			Help: "Total number of recommendation engine queries",
		},
		[]string{"operation", "outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basketgraph_recommend_duration_seconds",
			Help:    "Duration of recommendation engine queries in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketgraph_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basketgraph_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketgraph_api_requests_in_flight",
			Help: "Current number of API requests being processed",
		},
	)
)

// UpdateGraphSize sets the graph gauges
func UpdateGraphSize(users, products, purchases int) {
	GraphUsers.Set(float64(users))
	GraphProducts.Set(float64(products))
	GraphPurchases.Set(float64(purchases))
}

// RecordIngest records the outcome of one data file load
func RecordIngest(imported, blank, rejected int, duration time.Duration) {
	IngestLinesTotal.WithLabelValues("imported").Add(float64(imported))
	IngestLinesTotal.WithLabelValues("blank").Add(float64(blank))
	IngestLinesTotal.WithLabelValues("rejected").Add(float64(rejected))
	IngestDuration.Observe(duration.Seconds())
}

// RecordRecommendQuery records a recommendation engine query
func RecordRecommendQuery(operation, outcome string, duration time.Duration) {
	RecommendQueriesTotal.WithLabelValues(operation, outcome).Inc()
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
