package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the raid tracker
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Auth Metrics
	LoginsTotal            *prometheus.CounterVec
	DelegatedAttemptsTotal *prometheus.CounterVec
	LogoutsTotal           prometheus.Counter

	// Business Metrics
	SubmissionsTotal  *prometheus.CounterVec
	ReportGauges      *prometheus.GaugeVec
	ReportJobDuration prometheus.Histogram
}

// NewMetricsRegistry registers every metric with reg. Pass prometheus.DefaultRegisterer in
// the server and a fresh prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raidtracker_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "raidtracker_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "raidtracker_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raidtracker_logins_total",
				Help: "Login attempts by method, role and result",
			},
			[]string{"method", "role", "result"},
		),
		DelegatedAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raidtracker_delegated_login_transitions_total",
				Help: "Delegated login state transitions by target state",
			},
			[]string{"state"},
		),
		LogoutsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "raidtracker_logouts_total",
				Help: "Total logouts",
			},
		),

		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raidtracker_submissions_total",
				Help: "Raider submissions by outcome (kpi_met, kpi_not_met, ignored)",
			},
			[]string{"outcome"},
		),
		ReportGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "raidtracker_daily_report",
				Help: "Latest daily report figures by field",
			},
			[]string{"field"},
		),
		ReportJobDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "raidtracker_report_job_duration_seconds",
				Help:    "Daily report job execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}
}
