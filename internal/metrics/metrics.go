package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for milmon
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Refresh Cycle Metrics
	CyclesTotal       prometheus.CounterVec
	CycleDuration     prometheus.Histogram
	FetchErrorsTotal  prometheus.Counter
	RecordsFetched    prometheus.Counter
	RecordsDropped    prometheus.Counter
	AircraftTracked   prometheus.Gauge
	AircraftStale     prometheus.Gauge
	AircraftEvicted   prometheus.Counter

	// Alert Metrics
	AlertsTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milmon_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "milmon_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "milmon_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Refresh Cycle Metrics
		CyclesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milmon_refresh_cycles_total",
				Help: "Total refresh cycles by outcome",
			},
			[]string{"outcome"},
		),
		CycleDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "milmon_refresh_cycle_duration_seconds",
				Help:    "Full fetch-process-publish cycle duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
			},
		),
		FetchErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "milmon_fetch_errors_total",
				Help: "Total failed fetches from the ADS-B feed",
			},
		),
		RecordsFetched: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "milmon_records_fetched_total",
				Help: "Total raw aircraft records received from the feed",
			},
		),
		RecordsDropped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "milmon_records_dropped_total",
				Help: "Total raw records dropped during normalization",
			},
		),
		AircraftTracked: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "milmon_aircraft_tracked",
				Help: "Current number of aircraft in the inventory",
			},
		),
		AircraftStale: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "milmon_aircraft_stale",
				Help: "Current number of inventory entries flagged stale",
			},
		),
		AircraftEvicted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "milmon_aircraft_evicted_total",
				Help: "Total aircraft evicted from the inventory",
			},
		),

		// Alert Metrics
		AlertsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milmon_alerts_total",
				Help: "Total offensive-aircraft alerts emitted, by category",
			},
			[]string{"category"},
		),
	}
}
