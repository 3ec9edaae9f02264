package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/dtos/requests"
	gormModels "raidcrew/raidtracker/internal/models/gorm"
	"raidcrew/raidtracker/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// ParseToggle reads a boolean query flag such as ?payments=1.
func ParseToggle(value string) bool {
	switch value {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// GetSessionHandler handles GET /api/v1/session
//
// @Summary      Current identity
// @Tags         Session
// @Produce      json
// @Success      200  {object}  responses.APIResponse[entities.Identity]
// @Failure      401  {object}  responses.APIResponse[any]
// @Router       /api/v1/session [get]
func (h *Handlers) GetSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, nil, constants.StatusUnauthorized, http.StatusUnauthorized)
			return
		}
		common.RespondSuccess(w, claims.Identity())
	}
}

// GetAdminDashboardHandler handles GET /api/v1/admin/dashboard
//
// @Summary      Admin dashboard
// @Description  Roster filtered by handle, every record, and today's totals.
// @Tags         Admin
// @Produce      json
// @Param        q         query  string  false  "Handle filter"
// @Param        payments  query  string  false  "1 to include payment columns"
// @Success      200  {object}  responses.APIResponse[dtos.AdminDashboard]
// @Router       /api/v1/admin/dashboard [get]
func (h *Handlers) GetAdminDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		view, err := h.deps.Services.Dashboard.AdminView(r.Context(), q.Get("q"), ParseToggle(q.Get("payments")))
		if err != nil {
			common.RespondError(w, err, "Failed to load dashboard")
			return
		}
		common.RespondSuccess(w, view)
	}
}

// GetDailyReportHandler handles GET /api/v1/admin/reports/daily
//
// @Summary      Daily report
// @Tags         Admin
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD, defaults to today"
// @Success      200  {object}  responses.APIResponse[dtos.DailyReport]
// @Failure      400  {object}  responses.APIResponse[any]
// @Router       /api/v1/admin/reports/daily [get]
func (h *Handlers) GetDailyReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.deps.Services.Report.DailyReport(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			if errors.Is(err, services.ErrInvalidReportDate) {
				common.RespondError(w, err, constants.StatusInvalidRequest, http.StatusBadRequest)
				return
			}
			common.RespondError(w, err, constants.MsgReportUnavailable)
			return
		}
		common.RespondSuccess(w, report)
	}
}

// GetRaiderDashboardHandler handles GET /api/v1/raider/dashboard
func (h *Handlers) GetRaiderDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := auth.GetUserClaims(r.Context()).Identity()
		view, err := h.deps.Services.Dashboard.RaiderView(r.Context(), identity)
		if err != nil {
			common.RespondError(w, err, "Failed to load dashboard")
			return
		}
		common.RespondSuccess(w, view)
	}
}

// SubmitRecordHandler handles POST /api/v1/raider/records
//
// @Summary      Submit a post
// @Description  Files a pending record for today. Incomplete submissions are ignored with 204.
// @Tags         Raider
// @Accept       json
// @Produce      json
// @Param        input  body  requests.SubmitRecordRequest  true  "Post URL and impressions"
// @Success      201  {object}  responses.APIResponse[dtos.RecordRow]
// @Success      204
// @Failure      400  {object}  responses.APIResponse[any]
// @Router       /api/v1/raider/records [post]
func (h *Handlers) SubmitRecordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SubmitRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, err, constants.StatusInvalidRequest, http.StatusBadRequest)
			return
		}

		identity := auth.GetUserClaims(r.Context()).Identity()
		record, err := h.deps.Services.Submission.Submit(r.Context(), identity, req.PostURL, req.RawImpressions())
		if err != nil {
			common.RespondError(w, err, "Failed to submit record")
			return
		}
		if record == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		row := recordRow(record)
		common.RespondSuccess(w, &row, http.StatusCreated)
	}
}

func recordRow(record *gormModels.PerformanceRecord) dtos.RecordRow {
	return services.ToRecordRows([]gormModels.PerformanceRecord{*record}, true)[0]
}

