package utils

import (
	"time"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/observability"
	"go.uber.org/zap"
)

// PerformanceMonitor times the consecutive stages of one operation
type PerformanceMonitor struct {
	operation   string
	logger      *logging.SafeLogger
	now         func() time.Time
	startTime   time.Time
	lastMark    time.Time
	checkpoints []Checkpoint
}

// Checkpoint is the time spent in one stage, measured from the previous checkpoint
type Checkpoint struct {
	Name     string
	Duration time.Duration
}

// NewPerformanceMonitor starts timing operation
func NewPerformanceMonitor(operation string, logger *logging.SafeLogger) *PerformanceMonitor {
	return newPerformanceMonitor(operation, logger, time.Now)
}

func newPerformanceMonitor(operation string, logger *logging.SafeLogger, now func() time.Time) *PerformanceMonitor {
	start := now()
	return &PerformanceMonitor{
		operation: operation,
		logger:    logger,
		now:       now,
		startTime: start,
		lastMark:  start,
	}
}

// Checkpoint closes the current stage under name
func (pm *PerformanceMonitor) Checkpoint(name string) {
	at := pm.now()
	cp := Checkpoint{Name: name, Duration: at.Sub(pm.lastMark)}
	pm.lastMark = at
	pm.checkpoints = append(pm.checkpoints, cp)

	observability.PipelineStageDuration.WithLabelValues(pm.operation, name).Observe(cp.Duration.Seconds())
}

// End returns the total duration and logs a warning when it exceeds threshold.
// A zero threshold never warns.
func (pm *PerformanceMonitor) End(threshold time.Duration) time.Duration {
	total := pm.now().Sub(pm.startTime)

	if threshold > 0 && total > threshold {
		fields := []zap.Field{
			zap.String("operation", pm.operation),
			zap.Duration("elapsed", total),
			zap.Duration("threshold", threshold),
		}
		for _, cp := range pm.checkpoints {
			fields = append(fields, zap.Duration("stage_"+cp.Name, cp.Duration))
		}
		pm.logger.Warn("slow operation", fields...)
	}

	return total
}
