package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/airdata/ourairports-api/pkg/catalog"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API. It also observes catalog
// loads.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Dataset load metrics
	datasetLoadsTotal    *prometheus.CounterVec
	datasetLoadDuration  *prometheus.HistogramVec
	datasetRecords       *prometheus.GaugeVec
	snapshotLoadsTotal   *prometheus.CounterVec
	snapshotLastLoadTime prometheus.Gauge

	// Health check metrics
	healthChecksTotal *prometheus.CounterVec
}

var _ catalog.Observer = (*Metrics)(nil)

// NewMetrics creates all metrics on reg. A nil reg gets a fresh registry with
// the Go and process collectors.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ourairports_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ourairports_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ourairports_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),

		datasetLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ourairports_dataset_loads_total",
				Help: "Total number of dataset loads",
			},
			[]string{"dataset", "status"},
		),

		datasetLoadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ourairports_dataset_load_duration_seconds",
				Help:    "Time to fetch and decode a dataset",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
			[]string{"dataset"},
		),

		datasetRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ourairports_dataset_records",
				Help: "Number of records in the last successfully loaded dataset",
			},
			[]string{"dataset"},
		),

		snapshotLoadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ourairports_snapshot_loads_total",
				Help: "Total number of full snapshot loads",
			},
			[]string{"status"},
		),

		snapshotLastLoadTime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ourairports_snapshot_last_success_timestamp_seconds",
				Help: "Unix time of the last successful snapshot load",
			},
		),

		healthChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ourairports_health_checks_total",
				Help: "Total number of health checks",
			},
			[]string{"status"},
		),
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	statusCodeStr := strconv.Itoa(statusCode)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusCodeStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// DatasetLoaded records the outcome of one dataset load.
func (m *Metrics) DatasetLoaded(d ourairports.Dataset, records int, took time.Duration, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.datasetLoadsTotal.WithLabelValues(string(d), status).Inc()
	m.datasetLoadDuration.WithLabelValues(string(d)).Observe(took.Seconds())
	if err == nil {
		m.datasetRecords.WithLabelValues(string(d)).Set(float64(records))
	}
}

// SnapshotLoaded records the outcome of a full load.
func (m *Metrics) SnapshotLoaded(s *catalog.Snapshot, _ time.Duration, err error) {
	if err != nil {
		m.snapshotLoadsTotal.WithLabelValues(statusError).Inc()
		return
	}
	m.snapshotLoadsTotal.WithLabelValues(statusSuccess).Inc()
	m.snapshotLastLoadTime.Set(float64(s.LoadedAt.Unix()))
}

// RecordHealthCheck records a health check
func (m *Metrics) RecordHealthCheck(success bool) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.healthChecksTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler instruments an HTTP handler with metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Record request in flight
		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		// Create response writer wrapper to capture status code
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		handler(rw, r)

		m.RecordHTTPRequest(method, endpoint, rw.statusCode, time.Since(start))
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
