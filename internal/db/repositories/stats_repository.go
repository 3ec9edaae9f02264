package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/dtos"
)

// Aggregates are written by hand; COALESCE keeps SUM from scanning NULL on empty days.
const dailySummaryQuery = `
SELECT
	(SELECT COUNT(*) FROM raider_profiles) AS total_raiders,
	(SELECT COUNT(*) FROM raider_profiles WHERE verified = ?) AS verified_accounts,
	(SELECT COUNT(*) FROM raider_profiles WHERE connected_x = ?) AS connected_raiders,
	(SELECT COUNT(*) FROM performance_records WHERE date = ?) AS submissions,
	(SELECT COUNT(*) FROM performance_records WHERE date = ? AND kpi_met = ?) AS kpi_met,
	(SELECT COUNT(*) FROM performance_records WHERE date = ? AND payment_status = ?) AS paid_count,
	(SELECT COALESCE(SUM(earnings), 0) FROM performance_records WHERE date = ? AND payment_status = ?) AS paid_total
`

// StatsRepository runs the report aggregates through sqlx.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// DailySummary counts the roster and the records dated date.
func (r *StatsRepository) DailySummary(ctx context.Context, date string) (*dtos.DailyReport, error) {
	query := r.db.Rebind(dailySummaryQuery)
	paid := string(constants.PaymentPaid)

	var report dtos.DailyReport
	err := r.db.GetContext(ctx, &report, query,
		true, true,
		date,
		date, true,
		date, paid,
		date, paid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily summary: %w", err)
	}
	report.Date = date
	return &report, nil
}

// Ping checks the connection the aggregates run on.
func (r *StatsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
