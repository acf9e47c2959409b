package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts total requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration measures request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// BackendQueriesTotal counts ClickHouse queries by outcome.
	BackendQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_clickhouse_queries_total",
			Help: "Total number of ClickHouse queries",
		},
		[]string{"status"},
	)

	// BackendQueryDuration measures ClickHouse query duration.
	BackendQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_clickhouse_query_duration_seconds",
			Help:    "ClickHouse query duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
		},
	)
)
