// Package metrics provides Prometheus metrics for the soundproof oracle.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the oracle.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Transport metrics
	rpcRequests        *prometheus.CounterVec
	rpcRequestDuration *prometheus.HistogramVec

	// Claim resolution metrics
	claimsResolved *prometheus.CounterVec

	// Token store metrics
	storeOps        *prometheus.CounterVec
	storeOpDuration *prometheus.HistogramVec

	// Claim evaluator metrics
	evaluatorRequests *prometheus.CounterVec
	evaluatorLatency  *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "soundproof",
		subsystem:        "oracle",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.rpcRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rpc_requests_total",
		Help:      "Total JSON-RPC requests by HTTP method and status code",
	}, []string{"method", "status"})

	m.rpcRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rpc_request_duration_milliseconds",
		Help:      "JSON-RPC request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "status"})

	m.claimsResolved = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "claims_resolved_total",
		Help:      "Foreign-call claim resolutions by function and outcome",
	}, []string{"function", "outcome"})

	m.storeOps = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "token_store_operations_total",
		Help:      "Token store operations by kind and outcome",
	}, []string{"op", "outcome"})

	m.storeOpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "token_store_operation_duration_milliseconds",
		Help:      "Token store operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"op"})

	m.evaluatorRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluator_requests_total",
		Help:      "Claim evaluator API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	m.evaluatorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluator_request_duration_milliseconds",
		Help:      "Claim evaluator API latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// outcomeLabel converts a success flag to the label value.
func outcomeLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}

// RecordRPCRequest records one served JSON-RPC HTTP request.
func RecordRPCRequest(method string, statusCode int, durationMs float64) {
	status := httpStatusLabel(statusCode)
	globalManager.rpcRequests.WithLabelValues(method, status).Inc()
	globalManager.rpcRequestDuration.WithLabelValues(method, status).Observe(durationMs)
}

// RecordClaimResolved records a claim resolution outcome by function name.
func RecordClaimResolved(function string, ok bool) {
	globalManager.claimsResolved.WithLabelValues(function, outcomeLabel(ok)).Inc()
}

// RecordStoreOp records a token store operation.
func RecordStoreOp(op string, ok bool, duration time.Duration) {
	globalManager.storeOps.WithLabelValues(op, outcomeLabel(ok)).Inc()
	globalManager.storeOpDuration.WithLabelValues(op).Observe(float64(duration.Milliseconds()))
}

// RecordEvaluatorRequest records one claim evaluator API call.
func RecordEvaluatorRequest(endpoint string, ok bool, duration time.Duration) {
	globalManager.evaluatorRequests.WithLabelValues(endpoint, outcomeLabel(ok)).Inc()
	globalManager.evaluatorLatency.WithLabelValues(endpoint).Observe(float64(duration.Milliseconds()))
}

// UpdateSystemMemoryUsage sets the current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records an observed GC pause in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

func httpStatusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
