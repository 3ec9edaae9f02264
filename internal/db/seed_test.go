package db

import (
	"context"
	"testing"

	gormModels "raidcrew/raidtracker/internal/models/gorm"
)

func TestSeed_Idempotent(t *testing.T) {
	gdb, err := InitORM("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Seed(ctx, gdb); err != nil {
			t.Fatalf("Seed run %d failed: %v", i, err)
		}
	}

	var raiders, records int64
	gdb.Model(&gormModels.RaiderProfile{}).Count(&raiders)
	gdb.Model(&gormModels.PerformanceRecord{}).Count(&records)

	if raiders != 3 {
		t.Errorf("Expected 3 raiders, got %d", raiders)
	}
	if records != 2 {
		t.Errorf("Expected 2 records, got %d", records)
	}
}

func TestInitORM_UnknownDriver(t *testing.T) {
	if _, err := InitORM("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}

func TestSeedRecords_AdminTotals(t *testing.T) {
	records := SeedRecords()
	if len(records) != 2 {
		t.Fatalf("Expected 2 seed records, got %d", len(records))
	}

	kpiMet := 0
	for _, r := range records {
		if r.PaymentStatus == "" {
			t.Errorf("Expected seed record for %s to carry a payment status", r.RaiderHandle)
		}
		if r.KPIMet {
			kpiMet++
		}
	}
	if kpiMet != 1 {
		t.Errorf("Expected 1 KPI-met seed record, got %d", kpiMet)
	}
}

func TestSeedRecords_KPIConsistent(t *testing.T) {
	for _, r := range SeedRecords() {
		if r.KPIMet != (r.Impressions >= 1000) {
			t.Errorf("Record for %s has kpiMet=%v with %d impressions", r.RaiderHandle, r.KPIMet, r.Impressions)
		}
	}
}
