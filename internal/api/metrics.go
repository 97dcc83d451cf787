package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequests counts HTTP requests by route pattern and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})

	// MetricDuration tracks request duration by route pattern
	MetricDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swatch_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"route"})

	// MetricGenerations counts palette regenerations by harmony and theme
	MetricGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_palette_generations_total",
		Help: "Total palette regenerations by harmony and theme",
	}, []string{"harmony", "theme"})

	// MetricSaves counts palette saves by result
	MetricSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_palette_saves_total",
		Help: "Total palette saves by result",
	}, []string{"result"})

	// MetricExports counts exports by format
	MetricExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_palette_exports_total",
		Help: "Total palette exports by format",
	}, []string{"format"})

	// MetricWSClients tracks connected websocket clients
	MetricWSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swatch_websocket_clients",
		Help: "Currently connected websocket clients",
	})
)
