package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_attestation_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_attestation_active_connections",
			Help: "Number of active connections",
		},
	)

	// AttestationsGenerated counts pipeline outcomes per reason
	AttestationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_attestation_generated_total",
			Help: "Number of attestation generation attempts",
		},
		[]string{"reason", "status"},
	)

	// ValidationFailures counts rejected fields
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_attestation_validation_failures_total",
			Help: "Number of rejected submission fields",
		},
		[]string{"field"},
	)

	// RenderDuration tracks PDF rendering time
	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "app_attestation_render_duration_seconds",
			Help:    "Duration of PDF rendering in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	// RendersInFlight tracks renders currently holding a slot
	RendersInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_attestation_renders_in_flight",
			Help: "Number of PDF renders in progress",
		},
	)

	// PipelineStageDuration tracks each stage of attestation generation
	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_attestation_pipeline_stage_duration_seconds",
			Help:    "Duration of attestation pipeline stages in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"operation", "stage"},
	)

	// FilesPurged counts generated files removed by the janitor
	FilesPurged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_attestation_files_purged_total",
			Help: "Number of expired attestation files removed",
		},
		[]string{"status"},
	)
)
