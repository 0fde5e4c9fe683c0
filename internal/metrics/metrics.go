// Package metrics exposes Prometheus instrumentation for the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the explorer.
type Metrics struct {
	RecomputeTotal    prometheus.Counter
	RecomputeDuration prometheus.Histogram
	FilteredViewSize  prometheus.Histogram
	HTTPRequests      *prometheus.CounterVec // labels: route, code
}

// New creates and registers all metrics with the default Prometheus registry.
func New() *Metrics {
	m := &Metrics{
		RecomputeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "recompute_total",
			Help:      "Total filter/aggregate recomputations triggered by widget changes.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_explorer",
			Name:      "recompute_duration_seconds",
			Help:      "Duration of one filter plus aggregate pass.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		FilteredViewSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_explorer",
			Name:      "filtered_view_size",
			Help:      "Number of earthquake records in the filtered view.",
			Buckets:   []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_explorer",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}

	prometheus.MustRegister(
		m.RecomputeTotal,
		m.RecomputeDuration,
		m.FilteredViewSize,
		m.HTTPRequests,
	)

	return m
}

// NewForTesting creates Metrics without registering them, so tests can build
// servers repeatedly without "already registered" panics.
func NewForTesting() *Metrics {
	return &Metrics{
		RecomputeTotal:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_explorer", Name: "recompute_total"}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_explorer", Name: "recompute_duration_seconds"}),
		FilteredViewSize:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_explorer", Name: "filtered_view_size"}),
		HTTPRequests:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_explorer", Name: "http_requests_total"}, []string{"route", "code"}),
	}
}
