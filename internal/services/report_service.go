package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/dtos"
)

var ErrInvalidReportDate = errors.New("report date must be YYYY-MM-DD")

// ReportService builds the daily activity report.
type ReportService struct {
	stats   DailySummarizer
	entropy common.Entropy
}

func NewReportService(stats DailySummarizer, entropy common.Entropy) *ReportService {
	return &ReportService{stats: stats, entropy: entropy}
}

// DailyReport summarizes date, or today when date is empty.
func (s *ReportService) DailyReport(ctx context.Context, date string) (*dtos.DailyReport, error) {
	if date == "" {
		date = common.Today(s.entropy)
	} else if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, ErrInvalidReportDate
	}

	report, err := s.stats.DailySummary(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}
	FinishReport(report)
	return report, nil
}

// FinishReport fills the derived rates from the raw counts.
func FinishReport(report *dtos.DailyReport) {
	report.SuccessRate = common.Rate(report.KPIMet, report.Submissions)
	report.VerificationRate = common.Rate(report.VerifiedAccounts, report.TotalRaiders)
}
