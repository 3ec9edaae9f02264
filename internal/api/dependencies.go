package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/config"
	"raidcrew/raidtracker/internal/db/repositories"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/providers"
	"raidcrew/raidtracker/internal/services"
	"raidcrew/raidtracker/internal/workers"
)

type Repositories struct {
	Raiders *repositories.RaiderRepository
	Records *repositories.RecordRepository
	Stats   *repositories.StatsRepository
}

type Services struct {
	Sessions   *common.SessionService
	Auth       *services.AuthService
	Dashboard  *services.DashboardService
	Submission *services.SubmissionService
	Report     *services.ReportService
}

type Dependencies struct {
	Config   *config.Config
	Repo     *Repositories
	Services *Services
	Roster   *workers.RosterCache
	Store    common.StateStore
	SQL      *sqlx.DB
	Metrics  *metrics.MetricsRegistry
	Entropy  common.Entropy
	Signer   *common.ClientTokenSigner
	UpSince  time.Time
}

// InitDependencies wires repositories and services over the opened stores.
func InitDependencies(
	cfg *config.Config,
	gdb *gorm.DB,
	sqlDB *sqlx.DB,
	store common.StateStore,
	metricsReg *metrics.MetricsRegistry,
	entropy common.Entropy,
) *Dependencies {

	repos := &Repositories{
		Raiders: repositories.NewRaiderRepository(gdb),
		Records: repositories.NewRecordRepository(gdb),
		Stats:   repositories.NewStatsRepository(sqlDB),
	}

	roster := workers.NewRosterCache(repos.Raiders, cfg.RosterTTL)
	sessions := common.NewSessionService(store)
	provider := providers.NewSimulatedXProvider(cfg.X, entropy)
	delegated := services.NewDelegatedLoginService(sessions, provider, entropy, cfg.X.PendingTTL, metricsReg)

	svcs := &Services{
		Sessions:   sessions,
		Auth:       services.NewAuthService(sessions, services.NewCredentialLoginService(entropy), delegated, metricsReg),
		Dashboard:  services.NewDashboardService(roster, repos.Records, entropy),
		Submission: services.NewSubmissionService(repos.Records, entropy, metricsReg),
		Report:     services.NewReportService(repos.Stats, entropy),
	}

	return &Dependencies{
		Config:   cfg,
		Repo:     repos,
		Services: svcs,
		Roster:   roster,
		Store:    store,
		SQL:      sqlDB,
		Metrics:  metricsReg,
		Entropy:  entropy,
		Signer:   common.NewClientTokenSigner([]byte(cfg.ClientTokenSecret)),
		UpSince:  entropy.Now(),
	}
}
