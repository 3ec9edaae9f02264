package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"raidcrew/raidtracker/internal/api"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/config"
	"raidcrew/raidtracker/internal/db"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/dtos/responses"
)

type stubEntropy struct {
	mu  sync.Mutex
	ids int
}

func (e *stubEntropy) Now() time.Time   { return time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC) }
func (e *stubEntropy) Float64() float64 { return 0.9 }
func (e *stubEntropy) IntN(n int) int   { return 7 % n }
func (e *stubEntropy) NewID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids++
	return "id-" + strconv.Itoa(e.ids)
}

type testServer struct {
	server *httptest.Server
	client *http.Client
	store  *common.MemoryStateStore
}

func newTestServer(t *testing.T) *testServer {
	gdb, err := db.InitORM("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Seed(context.Background(), gdb); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	sqlDB, err := db.NewSQLX(gdb, "sqlite")
	if err != nil {
		t.Fatalf("Failed to wrap db: %v", err)
	}

	cfg := &config.Config{
		AppEnv:            "test",
		AppName:           "X Raider Tracker",
		ClientTokenSecret: "test-secret",
		RosterTTL:         time.Minute,
		AllowedOrigins:    []string{"http://localhost:5173"},
		X: config.XConfig{
			AuthorizeURL:  "/auth/x/authorize",
			CallbackURL:   "/",
			RedirectDelay: 2 * time.Second,
			PendingTTL:    15 * time.Minute,
		},
	}
	store := common.NewMemoryStateStore(time.Minute)
	metricsReg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	deps := api.InitDependencies(cfg, gdb, sqlDB, store, metricsReg, &stubEntropy{})

	server := httptest.NewServer(RegisterRoutes(deps))
	t.Cleanup(server.Close)

	jar, _ := cookiejar.New(nil)
	return &testServer{
		server: server,
		client: &http.Client{Jar: jar},
		store:  store,
	}
}

func (s *testServer) get(t *testing.T, path string) (int, string) {
	resp, err := s.client.Get(s.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func (s *testServer) post(t *testing.T, path string, form url.Values) (int, string) {
	resp, err := s.client.PostForm(s.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// rowFor returns the table row that links to postURL.
func rowFor(t *testing.T, body, postURL string) string {
	idx := strings.Index(body, `href="`+postURL+`"`)
	if idx < 0 {
		t.Fatalf("No row for %s in page", postURL)
	}
	start := strings.LastIndex(body[:idx], "<tr")
	end := strings.Index(body[idx:], "</tr>")
	return body[start : idx+end]
}

func TestHome_ShowsLoginScreen(t *testing.T) {
	s := newTestServer(t)

	code, body := s.get(t, "/")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if !strings.Contains(body, "Sign In") || !strings.Contains(body, "Login with X") {
		t.Error("Expected login screen")
	}
}

func TestRaiderSubmitFlow(t *testing.T) {
	s := newTestServer(t)

	_, body := s.post(t, "/auth/login", url.Values{"username": {"alice"}, "password": {"pw"}, "role": {"raider"}})
	if !strings.Contains(body, "Raider Dashboard") || !strings.Contains(body, "@alice") {
		t.Fatal("Expected raider dashboard after login")
	}

	_, body = s.post(t, "/dashboard/submissions", url.Values{
		"postUrl":     {"https://x.com/alice/status/1"},
		"impressions": {"1500"},
	})
	row := rowFor(t, body, "https://x.com/alice/status/1")
	if !strings.Contains(row, "✓ Met") || !strings.Contains(row, "Pending") {
		t.Errorf("Expected Met and Pending in row, got %s", row)
	}

	_, body = s.post(t, "/dashboard/submissions", url.Values{
		"postUrl":     {"https://x.com/alice/status/2"},
		"impressions": {"500"},
	})
	row = rowFor(t, body, "https://x.com/alice/status/2")
	if !strings.Contains(row, "Not Met") {
		t.Errorf("Expected Not Met in row, got %s", row)
	}

	// Incomplete submissions leave the table as it was.
	_, body = s.post(t, "/dashboard/submissions", url.Values{"postUrl": {"https://x.com/alice/status/3"}})
	if strings.Contains(body, "https://x.com/alice/status/3") {
		t.Error("Expected submission without impressions to be ignored")
	}
}

func TestRaiderDashboard_HidesPaymentStatus(t *testing.T) {
	s := newTestServer(t)

	_, body := s.post(t, "/auth/login", url.Values{"username": {"raider1"}, "password": {"pw"}, "role": {"raider"}})
	row := rowFor(t, body, "https://x.com/user/status/123")
	if strings.Contains(row, "Paid") {
		t.Errorf("Expected no payment status for raider, got %s", row)
	}
	if !strings.Contains(row, "✓ Met") {
		t.Errorf("Expected KPI label in row, got %s", row)
	}
}

func TestLogout_ReturnsToLogin(t *testing.T) {
	s := newTestServer(t)

	s.post(t, "/auth/login", url.Values{"username": {"root"}, "password": {"pw"}, "role": {"admin"}})
	_, body := s.get(t, "/")
	if !strings.Contains(body, "Admin Dashboard") {
		t.Fatal("Expected admin dashboard")
	}

	_, body = s.post(t, "/auth/logout", nil)
	if !strings.Contains(body, "Sign In") {
		t.Error("Expected login screen after logout")
	}

	code, _ := s.get(t, "/api/v1/session")
	if code != http.StatusUnauthorized {
		t.Errorf("Expected 401 after logout, got %d", code)
	}
}

func TestEmptyCredentials_StaySignedOut(t *testing.T) {
	s := newTestServer(t)

	_, body := s.post(t, "/auth/login", url.Values{"username": {"alice"}, "role": {"admin"}})
	if !strings.Contains(body, "Sign In") {
		t.Error("Expected login screen after empty password")
	}
}

var authorizeLink = regexp.MustCompile(`href="(/auth/x/authorize\?oauth_token=[^"]+)"`)

func TestDelegatedLoginFlow(t *testing.T) {
	s := newTestServer(t)

	_, body := s.post(t, "/auth/x/start", nil)
	if !strings.Contains(body, "Connecting to X...") {
		t.Fatal("Expected connecting page")
	}
	m := authorizeLink.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("No authorize link in page: %s", body)
	}

	// Follows /auth/x/authorize -> /?oauth_token&oauth_verifier -> /
	_, body = s.get(t, m[1])
	if !strings.Contains(body, "Raider Dashboard") || !strings.Contains(body, "@test_raider_7") {
		t.Errorf("Expected raider dashboard for the X profile, got %s", body)
	}

	code, sessionBody := s.get(t, "/api/v1/session")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if !strings.Contains(sessionBody, `"xAccessToken":"test_access_token_`) {
		t.Errorf("Expected access token on session, got %s", sessionBody)
	}
}

func TestDelegatedCallback_FailureShowsAlert(t *testing.T) {
	s := newTestServer(t)

	s.post(t, "/auth/x/start", nil)
	_, body := s.get(t, "/?oauth_token=test_request_token_1&oauth_verifier=")
	if !strings.Contains(body, "X login failed. Please try again.") {
		t.Error("Expected login failure alert")
	}
	if !strings.Contains(body, "Sign In") {
		t.Error("Expected login screen")
	}
}

func TestAPI_RoleGroups(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.get(t, "/api/v1/admin/dashboard")
	if code != http.StatusUnauthorized {
		t.Errorf("Expected 401 when signed out, got %d", code)
	}

	s.post(t, "/auth/login", url.Values{"username": {"root"}, "password": {"pw"}, "role": {"admin"}})

	code, body := s.get(t, "/api/v1/admin/dashboard?payments=1&q=raider1")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var resp responses.APIResponse[dtos.AdminDashboard]
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Data == nil || len(resp.Data.Raiders) != 1 || resp.Data.Stats.TotalRaiders != 3 {
		t.Errorf("Unexpected dashboard %+v", resp.Data)
	}

	code, _ = s.get(t, "/api/v1/raider/dashboard")
	if code != http.StatusForbidden {
		t.Errorf("Expected 403 for admin on raider route, got %d", code)
	}

	code, body = s.get(t, "/api/v1/admin/reports/daily?date=2025-09-13")
	if code != http.StatusOK || !strings.Contains(body, `"kpi_met":1`) {
		t.Errorf("Expected daily report, got %d %s", code, body)
	}

	code, _ = s.get(t, "/api/v1/admin/reports/daily?date=yesterday")
	if code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad date, got %d", code)
	}
}

func TestAPI_RaiderSubmit(t *testing.T) {
	s := newTestServer(t)
	s.post(t, "/auth/login", url.Values{"username": {"bob"}, "password": {"pw"}, "role": {"raider"}})

	submit := func(body string) int {
		resp, err := s.client.Post(s.server.URL+"/api/v1/raider/records", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST failed: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if code := submit(`{"postUrl":"https://x.com/bob/status/1","impressions":1000}`); code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", code)
	}
	if code := submit(`{"postUrl":"https://x.com/bob/status/2"}`); code != http.StatusNoContent {
		t.Errorf("Expected 204 for missing impressions, got %d", code)
	}
	if code := submit(`not json`); code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid body, got %d", code)
	}

	code, body := s.get(t, "/api/v1/raider/dashboard")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	var resp responses.APIResponse[dtos.RaiderDashboard]
	json.Unmarshal([]byte(body), &resp)
	if resp.Data == nil || len(resp.Data.Records) != 1 || !resp.Data.Records[0].KPIMet {
		t.Errorf("Expected one KPI-met record, got %+v", resp.Data)
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	code, body := s.get(t, "/healthCheck")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("Expected ok status, got %s", body)
	}
}
