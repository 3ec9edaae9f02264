package jobs

import (
	"context"
	"time"

	"raidcrew/raidtracker/internal/metrics"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	reporter DailyReporter,
	metricsReg *metrics.MetricsRegistry,
	reportInterval time.Duration,
) *DailyReportJob {
	reportJob := NewDailyReportJob(reporter, metricsReg)

	if reportInterval > 0 {
		go reportJob.RunScheduled(ctx, reportInterval)
	}

	return reportJob
}
