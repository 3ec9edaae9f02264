package services

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"testing"
	"time"

	"gorm.io/gorm"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/config"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/db"
	"raidcrew/raidtracker/internal/db/repositories"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/entities"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
	"raidcrew/raidtracker/internal/providers"
)

// Deterministic entropy: a fixed clock and a counter for ids
type stubEntropy struct {
	now   time.Time
	float float64
	ids   int
}

func (e *stubEntropy) Now() time.Time   { return e.now }
func (e *stubEntropy) Float64() float64 { return e.float }
func (e *stubEntropy) IntN(n int) int   { return 7 % n }
func (e *stubEntropy) NewID() string {
	e.ids++
	return "id-" + strconv.Itoa(e.ids)
}

var testNow = time.Date(2025, 9, 13, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	db       *gorm.DB
	entropy  *stubEntropy
	sessions *common.SessionService
	store    *common.MemoryStateStore
	auth     *AuthService
	records  *repositories.RecordRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	gdb, err := db.InitORM("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Seed(context.Background(), gdb); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	entropy := &stubEntropy{now: testNow, float: 0.9}
	store := common.NewMemoryStateStore(time.Minute)
	sessions := common.NewSessionService(store)
	provider := providers.NewSimulatedXProvider(config.XConfig{
		AuthorizeURL:  "/auth/x/authorize",
		CallbackURL:   "/",
		RedirectDelay: 2 * time.Second,
	}, entropy)
	delegated := NewDelegatedLoginService(sessions, provider, entropy, 15*time.Minute, nil)

	return &testEnv{
		db:       gdb,
		entropy:  entropy,
		sessions: sessions,
		store:    store,
		auth:     NewAuthService(sessions, NewCredentialLoginService(entropy), delegated, nil),
		records:  repositories.NewRecordRepository(gdb),
	}
}

func TestCredentialLogin_NonEmptySucceedsWithRole(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	for _, role := range []constants.Role{constants.RoleAdmin, constants.RoleRaider} {
		identity, err := env.auth.LoginWithCredentials(ctx, "client-"+role.String(), "alice", "pw", role)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if identity == nil || identity.Role != role {
			t.Fatalf("Expected identity with role %s, got %+v", role, identity)
		}
		if identity.Avatar != "https://api.dicebear.com/7.x/avataaars/svg?seed=alice" {
			t.Errorf("Unexpected avatar %s", identity.Avatar)
		}

		restored, err := env.auth.CurrentIdentity(ctx, "client-"+role.String())
		if err != nil || restored == nil || restored.Username != "alice" {
			t.Errorf("Expected stored identity for alice, got %+v (%v)", restored, err)
		}
	}
}

func TestCredentialLogin_ConnectedX(t *testing.T) {
	e := &stubEntropy{now: testNow, float: 0.4}
	svc := NewCredentialLoginService(e)

	if !svc.Authenticate("a", "b", constants.RoleAdmin).ConnectedX {
		t.Error("Expected admins to be connected to X")
	}
	if svc.Authenticate("a", "b", constants.RoleRaider).ConnectedX {
		t.Error("Expected raider with draw 0.4 to be disconnected")
	}
	e.float = 0.6
	if !svc.Authenticate("a", "b", constants.RoleRaider).ConnectedX {
		t.Error("Expected raider with draw 0.6 to be connected")
	}
}

func TestCredentialLogin_EmptyFieldsIgnored(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	existing := &entities.Identity{ID: "1", Username: "bob", Role: constants.RoleAdmin}
	if err := env.auth.Login(ctx, "c1", existing); err != nil {
		t.Fatalf("Failed to seed identity: %v", err)
	}

	cases := [][2]string{{"", "pw"}, {"alice", ""}, {"", ""}}
	for _, c := range cases {
		identity, err := env.auth.LoginWithCredentials(ctx, "c1", c[0], c[1], constants.RoleRaider)
		if err != nil || identity != nil {
			t.Errorf("Expected (nil, nil) for %q/%q, got %+v, %v", c[0], c[1], identity, err)
		}
	}

	current, _ := env.auth.CurrentIdentity(ctx, "c1")
	if current == nil || current.Username != "bob" {
		t.Errorf("Expected bob to stay signed in, got %+v", current)
	}
}

func TestInitialize_CorruptIdentityIsSignedOut(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	if err := env.store.Set(ctx, "local:c1:user", "{not json", 0); err != nil {
		t.Fatalf("Failed to write corrupt record: %v", err)
	}

	identity, err := env.auth.Initialize(ctx, "c1", url.Values{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if identity != nil {
		t.Errorf("Expected signed out, got %+v", identity)
	}
	if _, found, _ := env.store.Get(ctx, "local:c1:user"); found {
		t.Error("Expected corrupt record to be deleted")
	}
}

func TestInitialize_UnknownRoleIsCorrupt(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.store.Set(ctx, "local:c1:user", `{"id":"1","username":"x","role":"god"}`, 0)

	identity, err := env.auth.Initialize(ctx, "c1", url.Values{})
	if err != nil || identity != nil {
		t.Errorf("Expected signed out, got %+v, %v", identity, err)
	}
}

func TestDelegatedLogin_FullFlow(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	redirect, err := env.auth.LoginWithDelegatedProvider(ctx, "c1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if redirect.DelayMs != 2000 {
		t.Errorf("Expected 2000ms delay, got %d", redirect.DelayMs)
	}

	authURL, _ := url.Parse(redirect.RedirectURL)
	token := authURL.Query().Get("oauth_token")

	callback, err := env.auth.AuthorizeDelegated(ctx, "c1", token)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cbURL, _ := url.Parse(callback)

	identity, err := env.auth.Initialize(ctx, "c1", cbURL.Query())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if identity.Role != constants.RoleRaider || !identity.ConnectedX {
		t.Errorf("Expected connected raider, got %+v", identity)
	}
	if identity.Username != "test_raider_7" || identity.DisplayName != "Test Raider" {
		t.Errorf("Unexpected profile %+v", identity)
	}
	if identity.XAccessToken == "" || identity.XAccessTokenSecret == "" {
		t.Error("Expected access tokens on identity")
	}

	// The attempt is consumed, so replaying the callback fails.
	if _, err := env.auth.Initialize(ctx, "c1", cbURL.Query()); !errors.Is(err, ErrInvalidCallback) {
		t.Errorf("Expected replay to fail, got %v", err)
	}
}

func TestDelegatedLogin_TokenWithoutVerifierRejected(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	redirect, _ := env.auth.LoginWithDelegatedProvider(ctx, "c1")
	authURL, _ := url.Parse(redirect.RedirectURL)
	token := authURL.Query().Get("oauth_token")

	query := url.Values{"oauth_token": {token}, "oauth_verifier": {""}}
	identity, err := env.auth.Initialize(ctx, "c1", query)
	if !errors.Is(err, ErrInvalidCallback) {
		t.Errorf("Expected ErrInvalidCallback, got %v", err)
	}
	if identity != nil {
		t.Errorf("Expected no identity, got %+v", identity)
	}

	attempt, _ := env.sessions.LoadAttempt(ctx, "c1")
	if attempt != nil {
		t.Error("Expected attempt to be consumed on failure")
	}
}

func TestDelegatedLogin_TokenMismatchClearsIdentity(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.auth.Login(ctx, "c1", &entities.Identity{ID: "1", Username: "bob", Role: constants.RoleAdmin})
	env.auth.LoginWithDelegatedProvider(ctx, "c1")

	query := url.Values{"oauth_token": {"forged"}, "oauth_verifier": {"v"}}
	if _, err := env.auth.Initialize(ctx, "c1", query); !errors.Is(err, ErrInvalidCallback) {
		t.Errorf("Expected ErrInvalidCallback, got %v", err)
	}

	current, _ := env.auth.CurrentIdentity(ctx, "c1")
	if current != nil {
		t.Errorf("Expected identity cleared after failed callback, got %+v", current)
	}
}

func TestDelegatedLogin_CallbackWithoutAttempt(t *testing.T) {
	env := setupTestEnv(t)

	query := url.Values{"oauth_token": {"t"}, "oauth_verifier": {"v"}}
	if _, err := env.auth.Initialize(context.Background(), "c1", query); !errors.Is(err, ErrInvalidCallback) {
		t.Errorf("Expected ErrInvalidCallback, got %v", err)
	}
}

func TestDelegatedLogin_RedirectWrongToken(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.auth.LoginWithDelegatedProvider(ctx, "c1")
	if _, err := env.auth.AuthorizeDelegated(ctx, "c1", "nope"); !errors.Is(err, ErrInvalidCallback) {
		t.Errorf("Expected ErrInvalidCallback, got %v", err)
	}
	if attempt, _ := env.sessions.LoadAttempt(ctx, "c1"); attempt != nil {
		t.Error("Expected attempt dropped after failed redirect")
	}
}

func TestLogout_ClearsIdentity(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.auth.LoginWithCredentials(ctx, "c1", "alice", "pw", constants.RoleRaider)
	if err := env.auth.Logout(ctx, "c1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, found, _ := env.store.Get(ctx, "local:c1:user"); found {
		t.Error("Expected stored identity to be absent after logout")
	}
}

func TestSubmission_KPIThreshold(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSubmissionService(env.records, env.entropy, nil)
	raider := &entities.Identity{Username: "alice", Role: constants.RoleRaider}
	ctx := context.Background()

	cases := map[string]bool{"999": false, "1000": true, "1500": true, "500": false}
	for raw, want := range cases {
		record, err := svc.Submit(ctx, raider, "https://x.com/alice/status/1", raw)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if record.KPIMet != want {
			t.Errorf("impressions %s: expected kpiMet=%v, got %v", raw, want, record.KPIMet)
		}
		if record.Status != constants.ReviewPending {
			t.Errorf("Expected pending status, got %s", record.Status)
		}
		if record.Date != "2025-09-13" || record.RaiderHandle != "@alice" {
			t.Errorf("Unexpected record %+v", record)
		}
		if record.Likes != 0 || record.Retweets != 0 || record.Replies != 0 {
			t.Errorf("Expected zero engagement, got %+v", record)
		}
	}
}

func TestSubmission_LeadingIntegerImpressions(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSubmissionService(env.records, env.entropy, nil)
	raider := &entities.Identity{Username: "alice", Role: constants.RoleRaider}
	ctx := context.Background()

	cases := map[string]int{"1500abc": 1500, "12.5": 12, " 1000 ": 1000}
	for raw, want := range cases {
		record, err := svc.Submit(ctx, raider, "https://x.com/alice/status/2", raw)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if record == nil {
			t.Fatalf("Expected record for %q, got nil", raw)
		}
		if record.Impressions != want {
			t.Errorf("impressions %q: expected %d, got %d", raw, want, record.Impressions)
		}
		if record.KPIMet != (want >= 1000) {
			t.Errorf("impressions %q: unexpected kpiMet=%v", raw, record.KPIMet)
		}
	}
}

func TestSubmission_Ignored(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewSubmissionService(env.records, env.entropy, nil)
	raider := &entities.Identity{Username: "alice", Role: constants.RoleRaider}
	ctx := context.Background()

	inputs := [][2]string{{"", "1500"}, {"https://x.com/a", ""}, {"https://x.com/a", "lots"}}
	for _, in := range inputs {
		record, err := svc.Submit(ctx, raider, in[0], in[1])
		if err != nil || record != nil {
			t.Errorf("Expected ignored submission for %q/%q, got %+v, %v", in[0], in[1], record, err)
		}
	}

	own, _ := env.records.ListByOwner(ctx, "@alice")
	if len(own) != 0 {
		t.Errorf("Expected no records stored, got %d", len(own))
	}
}

func TestAdminView_FilterAndPayments(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewDashboardService(repositories.NewRaiderRepository(env.db), env.records, env.entropy)
	ctx := context.Background()

	view, err := svc.AdminView(ctx, "RAIDER2", true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view.Raiders) != 1 || view.Raiders[0].Handle != "@raider2" {
		t.Errorf("Expected only @raider2, got %+v", view.Raiders)
	}
	if view.Raiders[0].TotalEarned == nil || *view.Raiders[0].TotalEarned != 280 {
		t.Error("Expected total earned visible with payments shown")
	}
	if len(view.Records) != 2 {
		t.Errorf("Expected both seed records, got %d", len(view.Records))
	}

	s := view.Stats
	if s.TotalRaiders != 3 || s.ConnectedRaiders != 2 {
		t.Errorf("Unexpected roster stats %+v", s)
	}
	if s.SubmissionsToday != 2 || s.KPIMetToday != 1 || s.SuccessRateToday != 50 {
		t.Errorf("Unexpected today stats %+v", s)
	}
	if s.PaymentsToday != 10 || s.PaymentsMadeToday != 1 {
		t.Errorf("Unexpected payment stats %+v", s)
	}

	hidden, err := svc.AdminView(ctx, "", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(hidden.Raiders) != 3 {
		t.Errorf("Expected 3 raiders with empty search, got %d", len(hidden.Raiders))
	}
	for _, r := range hidden.Raiders {
		if r.TotalEarned != nil {
			t.Errorf("Expected total earned hidden for %s", r.Handle)
		}
	}
	for _, r := range hidden.Records {
		if r.Earnings != nil || r.PaymentStatus != "" {
			t.Errorf("Expected payment columns hidden on record %d", r.ID)
		}
	}
}

func TestComputeAdminStats_Seed(t *testing.T) {
	stats := ComputeAdminStats(db.SeedRaiders(), db.SeedRecords(), "2025-09-13")
	if stats.SubmissionsToday != 2 || stats.KPIMetToday != 1 || stats.SuccessRateToday != 50 {
		t.Errorf("Expected 2 submissions, 1 KPI met, 50%%, got %+v", stats)
	}
	if stats.TotalRaiders != 3 || stats.ConnectedRaiders != 2 {
		t.Errorf("Unexpected roster stats %+v", stats)
	}
}

func TestComputeAdminStats_NoSubmissions(t *testing.T) {
	stats := ComputeAdminStats(nil, nil, "2025-09-13")
	if stats.SuccessRateToday != 0 || stats.SubmissionsToday != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}

func TestRaiderView_Stats(t *testing.T) {
	env := setupTestEnv(t)
	svc := NewDashboardService(repositories.NewRaiderRepository(env.db), env.records, env.entropy)
	sub := NewSubmissionService(env.records, env.entropy, nil)
	ctx := context.Background()

	raider := &entities.Identity{Username: "raider1", Role: constants.RoleRaider, ConnectedX: true}
	sub.Submit(ctx, raider, "https://x.com/raider1/status/9", "500")
	approved := &gormModels.PerformanceRecord{
		Date: "2025-09-12", RaiderHandle: "@raider1", PostURL: "https://x.com/raider1/status/8",
		Impressions: 1500, KPIMet: true, Status: constants.ReviewApproved,
	}
	if err := env.records.Create(ctx, approved); err != nil {
		t.Fatalf("Failed to store approved record: %v", err)
	}

	view, err := svc.RaiderView(ctx, raider)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if view.Handle != "@raider1" || len(view.Records) != 3 {
		t.Fatalf("Expected 3 records for @raider1, got %d", len(view.Records))
	}
	if view.Stats.ThisMonth != 3 {
		t.Errorf("Expected 3 this month, got %d", view.Stats.ThisMonth)
	}
	if view.Stats.SuccessRate != 67 {
		t.Errorf("Expected 67%% success, got %d", view.Stats.SuccessRate)
	}
	// Only the approved record earns; the paid seed record carries no review status.
	if view.Stats.TotalEarnings != 10 {
		t.Errorf("Expected $10 earnings, got %d", view.Stats.TotalEarnings)
	}
	if !view.Stats.ConnectedX {
		t.Error("Expected connected status from identity")
	}
	for _, r := range view.Records {
		if r.PaymentStatus != "" || r.Earnings != nil {
			t.Errorf("Expected no payment columns for raider on record %d, got %+v", r.ID, r)
		}
	}
}

type stubSummarizer struct {
	gotDate string
}

func (s *stubSummarizer) DailySummary(ctx context.Context, date string) (*dtos.DailyReport, error) {
	s.gotDate = date
	return &dtos.DailyReport{Date: date, TotalRaiders: 4, VerifiedAccounts: 1, Submissions: 8, KPIMet: 2}, nil
}

func TestReportService_DefaultsToTodayAndRates(t *testing.T) {
	stub := &stubSummarizer{}
	svc := NewReportService(stub, &stubEntropy{now: testNow})

	report, err := svc.DailyReport(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stub.gotDate != "2025-09-13" {
		t.Errorf("Expected today's date, got %s", stub.gotDate)
	}
	if report.SuccessRate != 25 || report.VerificationRate != 25 {
		t.Errorf("Expected 25%% rates, got %v / %v", report.SuccessRate, report.VerificationRate)
	}

	if _, err := svc.DailyReport(context.Background(), "13/09/2025"); !errors.Is(err, ErrInvalidReportDate) {
		t.Errorf("Expected ErrInvalidReportDate, got %v", err)
	}
}
