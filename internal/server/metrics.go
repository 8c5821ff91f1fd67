package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idparse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idparse_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Extraction metrics
	extractRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idparse_extract_requests_total",
			Help: "Total number of extraction requests",
		},
		[]string{"document", "status"},
	)

	extractDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idparse_extract_duration_seconds",
			Help:    "Extraction duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"document"},
	)

	fieldsResolved = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idparse_fields_resolved",
			Help:    "Number of fields resolved per extraction",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16},
		},
		[]string{"document"},
	)

	// Request body metrics
	requestBodyBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "idparse_request_body_bytes",
			Help:    "Size of extraction request bodies in bytes",
			Buckets: []float64{256, 1024, 4 * 1024, 16 * 1024, 64 * 1024, 256 * 1024, 1024 * 1024},
		},
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "idparse_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	websocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idparse_websocket_messages_total",
			Help: "Total number of WebSocket messages",
		},
		[]string{"direction"}, // direction: sent, received
	)
)
