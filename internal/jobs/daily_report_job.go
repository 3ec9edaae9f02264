package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/models/dtos"
)

// DailyReporter builds the report for a date; "" means today.
type DailyReporter interface {
	DailyReport(ctx context.Context, date string) (*dtos.DailyReport, error)
}

// DailyReportJob recomputes today's report, logs it and exports it as gauges
type DailyReportJob struct {
	reporter DailyReporter
	metrics  *metrics.MetricsRegistry

	mu     sync.RWMutex
	latest *dtos.DailyReport
}

func NewDailyReportJob(reporter DailyReporter, metricsReg *metrics.MetricsRegistry) *DailyReportJob {
	return &DailyReportJob{reporter: reporter, metrics: metricsReg}
}

// Run executes one report pass
func (j *DailyReportJob) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		if j.metrics != nil {
			j.metrics.ReportJobDuration.Observe(time.Since(start).Seconds())
		}
	}()

	report, err := j.reporter.DailyReport(ctx, "")
	if err != nil {
		return fmt.Errorf("daily report job: %w", err)
	}

	if j.metrics != nil {
		gauges := map[string]float64{
			"total_raiders":     float64(report.TotalRaiders),
			"verified_accounts": float64(report.VerifiedAccounts),
			"connected_raiders": float64(report.ConnectedRaiders),
			"submissions":       float64(report.Submissions),
			"kpi_met":           float64(report.KPIMet),
			"paid_count":        float64(report.PaidCount),
			"paid_total":        float64(report.PaidTotal),
			"success_rate":      report.SuccessRate,
			"verification_rate": report.VerificationRate,
		}
		for field, value := range gauges {
			j.metrics.ReportGauges.WithLabelValues(field).Set(value)
		}
	}

	j.mu.Lock()
	j.latest = report
	j.mu.Unlock()

	logging.Info("Daily report",
		"date", report.Date,
		"total_raiders", report.TotalRaiders,
		"verified_accounts", report.VerifiedAccounts,
		"submissions", report.Submissions,
		"kpi_met", report.KPIMet,
		"paid_total", report.PaidTotal,
		"success_rate", report.SuccessRate,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Latest returns the last report the job produced, or nil before the first run.
func (j *DailyReportJob) Latest() *dtos.DailyReport {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.latest
}

// RunScheduled runs the job immediately and then every interval until ctx is done
func (j *DailyReportJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := j.Run(ctx); err != nil {
		logging.Error("Daily report initial run failed", "error", err.Error())
	}

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("Daily report scheduled run failed", "error", err.Error())
			}
		case <-ctx.Done():
			logging.Info("Shutting down daily report job")
			return
		}
	}
}
