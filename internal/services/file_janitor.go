package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-attestation/internal/logging"
	"github.com/prefeitura-rio/app-attestation/internal/observability"
	"go.uber.org/zap"
)

// FileJanitor removes generated attestation files once they exceed the retention period
type FileJanitor struct {
	dir       string
	retention time.Duration
	interval  time.Duration
	logger    *logging.SafeLogger
	now       func() time.Time
}

// NewFileJanitor creates a new janitor. A zero retention disables purging.
func NewFileJanitor(dir string, retention, interval time.Duration, logger *logging.SafeLogger) *FileJanitor {
	return &FileJanitor{
		dir:       dir,
		retention: retention,
		interval:  interval,
		logger:    logger,
		now:       time.Now,
	}
}

// Enabled reports whether the janitor purges anything
func (j *FileJanitor) Enabled() bool {
	return j.retention > 0 && j.interval > 0
}

// Start sweeps on every tick until ctx is cancelled
func (j *FileJanitor) Start(ctx context.Context) {
	if !j.Enabled() {
		j.logger.Info("file janitor disabled")
		return
	}

	j.logger.Info("file janitor started",
		zap.String("dir", j.dir),
		zap.Duration("retention", j.retention),
		zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("file janitor stopped")
			return
		case <-ticker.C:
			if _, err := j.Sweep(); err != nil {
				j.logger.Warn("file janitor sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep deletes expired attestation files and returns how many were removed.
// Files that do not follow the renderer's naming scheme are never touched.
func (j *FileJanitor) Sweep() (int, error) {
	entries, err := os.ReadDir(j.dir)
	if err != nil {
		return 0, err
	}

	cutoff := j.now().Add(-j.retention)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !isAttestationFile(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(j.dir, name)); err != nil && !os.IsNotExist(err) {
			observability.FilesPurged.WithLabelValues("error").Inc()
			j.logger.Warn("failed to remove expired attestation", zap.String("file", name), zap.Error(err))
			continue
		}
		observability.FilesPurged.WithLabelValues("success").Inc()
		removed++
	}

	if removed > 0 {
		j.logger.Debug("expired attestations removed", zap.Int("count", removed))
	}
	return removed, nil
}

func isAttestationFile(name string) bool {
	return strings.HasPrefix(name, FilePrefix) && strings.HasSuffix(name, FileExtension)
}
