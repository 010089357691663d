package engine

import (
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg"
)

// ProgressReporter receives discrete pipeline progress. Implementations must
// be fast and non-blocking; a slow reporter serializes with the pipeline.
type ProgressReporter interface {
	Report(percent int, stageName string)
}

// NoopReporter discards progress.
type NoopReporter struct{}

func (NoopReporter) Report(percent int, stageName string) {}

// ReporterFunc adapts a plain callback to a ProgressReporter.
type ReporterFunc func(percent int, stageName string)

func (f ReporterFunc) Report(percent int, stageName string) {
	f(percent, stageName)
}

// progressTracker drives the 6-stage progress reporting: percent is
// stage/total*100.
type progressTracker struct {
	totalSteps int
	reporter   ProgressReporter
	log        *zap.Logger
}

func newProgressTracker(reporter ProgressReporter, log *zap.Logger) *progressTracker {
	if reporter == nil {
		reporter = NoopReporter{}
	}
	return &progressTracker{
		totalSteps: pkg.PIPELINE_TOTAL_STEPS,
		reporter:   reporter,
		log:        log,
	}
}

func (t *progressTracker) update(step int, stageName string) {
	percent := step * 100 / t.totalSteps
	t.log.Info("progress", zap.Int("percent", percent), zap.String("stage", stageName))
	t.reporter.Report(percent, stageName)
}
