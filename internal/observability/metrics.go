package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard data service.
type Metrics struct {
	HTTPRequests  *prometheus.CounterVec // labels: route, status
	CSVExports    prometheus.Counter
	ServiceReady  prometheus.Gauge
	BuildDuration prometheus.Histogram

	// Snapshot publishing metrics.
	SnapshotPublishes     prometheus.Counter
	SnapshotPublishErrors prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
		CSVExports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "csv_exports_total",
			Help:      "Total CSV series exports served.",
		}),
		ServiceReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sealevel",
			Name:      "service_ready",
			Help:      "1 once the series has been built successfully.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sealevel",
			Name:      "series_build_duration_seconds",
			Help:      "Duration of a full series build and summarize pass.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		SnapshotPublishes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "snapshot_publishes_total",
			Help:      "Total snapshots published to the sink topic.",
		}),
		SnapshotPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "snapshot_publish_errors_total",
			Help:      "Total snapshot publish failures.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sealevel",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sealevel",
			Name:      "geocode_api_duration_seconds",
			Help:      "Geocoding API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sealevel",
			Name:      "geocode_enabled",
			Help:      "1 when geocoding enrichment is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.CSVExports,
		m.ServiceReady,
		m.BuildDuration,
		m.SnapshotPublishes,
		m.SnapshotPublishErrors,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sealevel", Name: "http_requests_total"}, []string{"route", "status"}),
		CSVExports:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sealevel", Name: "csv_exports_total"}),
		ServiceReady:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "sealevel", Name: "service_ready"}),
		BuildDuration:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sealevel", Name: "series_build_duration_seconds"}),
		SnapshotPublishes:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sealevel", Name: "snapshot_publishes_total"}),
		SnapshotPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sealevel", Name: "snapshot_publish_errors_total"}),
		GeocodeRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sealevel", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sealevel", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sealevel", Name: "geocode_api_duration_seconds"}),
		GeocodeEnabled:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "sealevel", Name: "geocode_enabled"}),
	}
}
