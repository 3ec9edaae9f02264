package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/entities"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

// DashboardService builds the read-only admin and raider views.
type DashboardService struct {
	raiders RaiderSource
	records RecordStore
	entropy common.Entropy
}

func NewDashboardService(raiders RaiderSource, records RecordStore, entropy common.Entropy) *DashboardService {
	return &DashboardService{raiders: raiders, records: records, entropy: entropy}
}

// AdminView loads the roster and every record, then filters and summarizes them.
func (s *DashboardService) AdminView(ctx context.Context, search string, showPayments bool) (*dtos.AdminDashboard, error) {
	var (
		raiders []gormModels.RaiderProfile
		records []gormModels.PerformanceRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		raiders, err = s.raiders.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load admin dashboard: %w", err)
	}

	today := common.Today(s.entropy)
	return &dtos.AdminDashboard{
		Today:        today,
		Search:       search,
		ShowPayments: showPayments,
		Stats:        ComputeAdminStats(raiders, records, today),
		Raiders:      ToRaiderRows(FilterRaiders(raiders, search), showPayments),
		Records:      ToRecordRows(records, showPayments),
	}, nil
}

// FilterRaiders keeps raiders whose handle contains search, ignoring case.
func FilterRaiders(raiders []gormModels.RaiderProfile, search string) []gormModels.RaiderProfile {
	needle := strings.ToLower(search)
	if needle == "" {
		return raiders
	}
	filtered := make([]gormModels.RaiderProfile, 0, len(raiders))
	for _, r := range raiders {
		if strings.Contains(strings.ToLower(r.Handle), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ComputeAdminStats summarizes the full roster and the records dated today.
func ComputeAdminStats(raiders []gormModels.RaiderProfile, records []gormModels.PerformanceRecord, today string) dtos.AdminStats {
	stats := dtos.AdminStats{TotalRaiders: len(raiders)}
	for _, r := range raiders {
		if r.ConnectedX {
			stats.ConnectedRaiders++
		}
	}
	for _, rec := range records {
		if rec.Date != today {
			continue
		}
		stats.SubmissionsToday++
		if rec.KPIMet {
			stats.KPIMetToday++
		}
		if rec.IsPaid() {
			stats.PaymentsToday += rec.Earnings
			stats.PaymentsMadeToday++
		}
	}
	stats.SuccessRateToday = common.RoundedPercent(stats.KPIMetToday, stats.SubmissionsToday)
	return stats
}

func ToRaiderRows(raiders []gormModels.RaiderProfile, showPayments bool) []dtos.RaiderRow {
	rows := make([]dtos.RaiderRow, 0, len(raiders))
	for _, r := range raiders {
		row := dtos.RaiderRow{
			ID:         r.ID,
			Handle:     r.Handle,
			Verified:   r.Verified,
			ActiveDays: r.ActiveDays,
			Avatar:     r.Avatar,
			ConnectedX: r.ConnectedX,
			LastActive: r.LastActive,
		}
		if showPayments {
			earned := r.TotalEarned
			row.TotalEarned = &earned
		}
		rows = append(rows, row)
	}
	return rows
}

func ToRecordRows(records []gormModels.PerformanceRecord, showPayments bool) []dtos.RecordRow {
	rows := make([]dtos.RecordRow, 0, len(records))
	for _, r := range records {
		row := dtos.RecordRow{
			ID:           r.ID,
			Date:         r.Date,
			RaiderHandle: r.RaiderHandle,
			PostURL:      r.PostURL,
			Impressions:  r.Impressions,
			Likes:        r.Likes,
			Retweets:     r.Retweets,
			Replies:      r.Replies,
			KPIMet:       r.KPIMet,
			Status:       r.Status,
		}
		if showPayments {
			earnings := r.Earnings
			row.PaymentStatus = r.PaymentStatus
			row.Earnings = &earnings
		}
		rows = append(rows, row)
	}
	return rows
}

// RaiderView lists the raider's own records with their month, success and earnings stats.
// Payment status and earnings stay admin-only.
func (s *DashboardService) RaiderView(ctx context.Context, identity *entities.Identity) (*dtos.RaiderDashboard, error) {
	handle := identity.Handle()
	records, err := s.records.ListByOwner(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to load raider dashboard: %w", err)
	}

	month := s.entropy.Now().UTC().Format(constants.MonthLayout)
	return &dtos.RaiderDashboard{
		Handle:  handle,
		Stats:   ComputeRaiderStats(records, month, identity.ConnectedX),
		Records: ToRecordRows(records, false),
	}, nil
}

// ComputeRaiderStats derives the raider header figures. Earnings count approved records
// that met KPI; stored earnings amounts are not consulted.
func ComputeRaiderStats(records []gormModels.PerformanceRecord, month string, connectedX bool) dtos.RaiderStats {
	stats := dtos.RaiderStats{ConnectedX: connectedX}
	kpiMet := 0
	for _, r := range records {
		if strings.HasPrefix(r.Date, month) {
			stats.ThisMonth++
		}
		if r.KPIMet {
			kpiMet++
			if r.Status == constants.ReviewApproved {
				stats.TotalEarnings += constants.EarningsPerApprovedRecord
			}
		}
	}
	stats.SuccessRate = common.RoundedPercent(kpiMet, len(records))
	return stats
}
