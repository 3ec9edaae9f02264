package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"raidcrew/raidtracker/internal/api"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/config"
	"raidcrew/raidtracker/internal/db"
	"raidcrew/raidtracker/internal/jobs"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/routes"
	"raidcrew/raidtracker/internal/workers"
)

// @title X Raider Tracker API
// @version 1.0
// @description Raid campaign dashboard for admins and raiders.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Raid tracker starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
		"state_store", cfg.StateStore,
		"x_credentials", cfg.X.HasCredentials(),
		"timestamp", time.Now().Format(time.RFC3339),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.InitORM(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logging.Fatal("Failed to open database", "error", err.Error())
	}
	if err := db.Seed(ctx, gdb); err != nil {
		logging.Fatal("Failed to seed database", "error", err.Error())
	}
	sqlDB, err := db.NewSQLX(gdb, cfg.DBDriver)
	if err != nil {
		logging.Fatal("Failed to wrap database for sqlx", "error", err.Error())
	}

	var store common.StateStore
	switch cfg.StateStore {
	case "redis":
		store = common.NewRedisStateStore(common.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	default:
		store = common.NewMemoryStateStore(10 * time.Minute)
	}
	defer store.Close()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	deps := api.InitDependencies(cfg, gdb, sqlDB, store, metricsReg, common.SystemEntropy{})

	workers.InitWorkers(ctx, deps.Roster, cfg.RosterRefresh)
	jobs.InitializeJobs(ctx, deps.Services.Report, metricsReg, cfg.ReportInterval)

	router := routes.RegisterRoutes(deps)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error("Graceful shutdown failed", "error", err.Error())
		}
	}()

	logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Server stopped", "error", err.Error())
	}
	logging.Info("Server stopped")
}
