package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	HTTPRequestSize   *prometheus.HistogramVec
	HTTPResponseSize  *prometheus.HistogramVec

	// Session Metrics
	SessionsActive  prometheus.Gauge
	SessionsExpired prometheus.Counter

	// Workflow Metrics
	WorkflowsTotal   *prometheus.CounterVec
	WorkflowMessages *prometheus.CounterVec
	RCARunsTotal     prometheus.Counter

	// Dashboard Metrics
	FilterChangesTotal *prometheus.CounterVec
	CartOperations     *prometheus.CounterVec
	ExportsTotal       *prometheus.CounterVec

	// Stream Metrics
	WebSocketClients      prometheus.Gauge
	StreamEventsPublished *prometheus.CounterVec
	RedisOperationErrors  *prometheus.CounterVec

	// Worker Metrics
	WorkerJobsProcessed *prometheus.CounterVec
	WorkerJobDuration   *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg.
// A nil reg uses the Prometheus default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 8),
			},
			[]string{"method", "path", "status"},
		),

		// Session Metrics
		SessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "command_center_sessions_active",
				Help: "Number of live dashboard sessions",
			},
		),
		SessionsExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "command_center_sessions_expired_total",
				Help: "Total number of sessions removed for inactivity",
			},
		),

		// Workflow Metrics
		WorkflowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_workflows_total",
				Help: "Total number of simulated workflows by lifecycle event",
			},
			[]string{"event"},
		),
		WorkflowMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_workflow_messages_total",
				Help: "Total number of follow-up messages sent to completed workflows",
			},
			[]string{"status"},
		),
		RCARunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "command_center_rca_runs_total",
				Help: "Total number of root-cause analysis runs started",
			},
		),

		// Dashboard Metrics
		FilterChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_filter_changes_total",
				Help: "Total number of facet changes",
			},
			[]string{"facet"},
		),
		CartOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_cart_operations_total",
				Help: "Total number of cart mutations",
			},
			[]string{"operation"},
		),
		ExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_exports_total",
				Help: "Total number of Excel workbooks served",
			},
			[]string{"kind"},
		),

		// Stream Metrics
		WebSocketClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "command_center_websocket_clients",
				Help: "Number of connected websocket clients",
			},
		),
		StreamEventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "command_center_stream_events_total",
				Help: "Total number of events published to the live stream",
			},
			[]string{"type"},
		),
		RedisOperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_operations_errors_total",
				Help: "Total number of Redis operation errors",
			},
			[]string{"operation"},
		),

		// Worker Metrics
		WorkerJobsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worker_jobs_processed_total",
				Help: "Total number of jobs processed by workers",
			},
			[]string{"worker_type", "status"},
		),
		WorkerJobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "worker_job_duration_seconds",
				Help:    "Worker job processing duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~1s
			},
			[]string{"worker_type"},
		),
	}

	return m
}

// NewForTesting creates metrics on a private registry
func NewForTesting() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return New(reg), reg
}
