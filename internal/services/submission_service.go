package services

import (
	"context"
	"strings"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/models/entities"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

// SubmissionService appends raider post submissions.
type SubmissionService struct {
	records RecordStore
	entropy common.Entropy
	metrics *metrics.MetricsRegistry
}

func NewSubmissionService(records RecordStore, entropy common.Entropy, metricsReg *metrics.MetricsRegistry) *SubmissionService {
	return &SubmissionService{records: records, entropy: entropy, metrics: metricsReg}
}

func (s *SubmissionService) count(outcome string) {
	if s.metrics != nil {
		s.metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	}
}

// Submit files a pending record for today under the raider's handle. The impression count
// is the integer the input starts with. An empty field or a count that does not start with
// a digit is ignored: nothing is stored and the result is nil.
// Post URLs are not validated and duplicates are allowed.
func (s *SubmissionService) Submit(ctx context.Context, identity *entities.Identity, postURL, rawImpressions string) (*gormModels.PerformanceRecord, error) {
	postURL = strings.TrimSpace(postURL)
	rawImpressions = strings.TrimSpace(rawImpressions)
	if postURL == "" || rawImpressions == "" {
		s.count("ignored")
		return nil, nil
	}
	impressions, ok := common.ParseLeadingInt(rawImpressions)
	if !ok {
		s.count("ignored")
		logging.Debug("Ignoring non-numeric impressions", "value", rawImpressions)
		return nil, nil
	}

	record := &gormModels.PerformanceRecord{
		Date:         common.Today(s.entropy),
		RaiderHandle: identity.Handle(),
		PostURL:      postURL,
		Impressions:  impressions,
		KPIMet:       common.MeetsKPI(impressions),
		Status:       constants.ReviewPending,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	if record.KPIMet {
		s.count("kpi_met")
	} else {
		s.count("kpi_not_met")
	}
	logging.Info("Record submitted", "raider", record.RaiderHandle, "impressions", impressions, "kpi_met", record.KPIMet)
	return record, nil
}
