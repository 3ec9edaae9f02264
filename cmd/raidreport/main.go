package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/db"
	"raidcrew/raidtracker/internal/db/repositories"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/services"
)

// raidreport prints the daily report for a Postgres deployment.
func main() {
	dsn := flag.String("dsn", os.Getenv("DB_DSN"), "Postgres DSN (defaults to $DB_DSN)")
	date := flag.String("date", "", "report date YYYY-MM-DD (defaults to today, UTC)")
	attempts := flag.Int("attempts", 5, "connection attempts before giving up")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("❌ -dsn or DB_DSN is required")
	}

	if err := logging.Init(os.Getenv("APP_ENV")); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	conn, err := db.ConnectPostgres(*dsn, *attempts)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reportSvc := services.NewReportService(repositories.NewStatsRepository(conn), common.SystemEntropy{})
	report, err := reportSvc.DailyReport(ctx, *date)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("❌ encode report: %v", err)
	}

	fmt.Println("X Raider Tracker - Daily Report")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println(string(out))
}
