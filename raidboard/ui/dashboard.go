package ui

import (
	"net/http"

	"raidcrew/raidtracker/internal/api"
	authctx "raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/models/entities"
	"raidcrew/raidtracker/internal/services"
)

// DashboardHandler serves the role dashboards and the raider submission form
type DashboardHandler struct {
	auth        *services.AuthService
	dashboard   *services.DashboardService
	submissions *services.SubmissionService
	appName     string
}

func NewDashboardHandler(
	auth *services.AuthService,
	dashboard *services.DashboardService,
	submissions *services.SubmissionService,
	appName string,
) *DashboardHandler {
	return &DashboardHandler{
		auth:        auth,
		dashboard:   dashboard,
		submissions: submissions,
		appName:     appName,
	}
}

// HomeHandler initializes the session (including a delegated login callback) and renders
// the login screen or the dashboard for the identity's role.
func (h *DashboardHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := authctx.GetClientID(ctx)
	query := r.URL.Query()
	isCallback := services.IsCallback(query)

	identity, err := h.auth.Initialize(ctx, clientID, query)
	if err != nil {
		if isCallback {
			logging.Warn("X login callback rejected", "client_id", clientID, "error", err.Error())
			renderLogin(w, h.appName, constants.MsgXLoginFailed)
			return
		}
		logging.Error("Session initialization failed", "client_id", clientID, "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}

	// Drop the oauth parameters from the address bar.
	if isCallback {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if identity == nil {
		renderLogin(w, h.appName, "")
		return
	}
	authctx.NoteRole(ctx, identity.Role.String())

	if identity.IsAdmin() {
		h.renderAdmin(w, r, identity)
		return
	}
	h.renderRaider(w, r, identity)
}

func (h *DashboardHandler) renderAdmin(w http.ResponseWriter, r *http.Request, identity *entities.Identity) {
	q := r.URL.Query()
	view, err := h.dashboard.AdminView(r.Context(), q.Get("q"), api.ParseToggle(q.Get("payments")))
	if err != nil {
		logging.Error("Failed to load admin dashboard", "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"PageTitle": "Admin Dashboard",
		"AppName":   h.appName,
		"Identity":  identity,
		"Dashboard": view,
	}
	RenderTemplate(w, "pages/admin.html", data)
}

func (h *DashboardHandler) renderRaider(w http.ResponseWriter, r *http.Request, identity *entities.Identity) {
	view, err := h.dashboard.RaiderView(r.Context(), identity)
	if err != nil {
		logging.Error("Failed to load raider dashboard", "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"PageTitle": "Raider Dashboard",
		"AppName":   h.appName,
		"Identity":  identity,
		"Dashboard": view,
	}
	RenderTemplate(w, "pages/raider.html", data)
}

// SubmitHandler handles the raider submission form. Incomplete submissions are dropped.
func (h *DashboardHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, err := h.auth.CurrentIdentity(ctx, authctx.GetClientID(ctx))
	if err != nil {
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}
	if identity == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !identity.IsRaider() {
		http.Error(w, constants.MsgNeedRaider, http.StatusForbidden)
		return
	}
	authctx.NoteRole(ctx, identity.Role.String())

	if err := r.ParseForm(); err != nil {
		http.Error(w, constants.StatusInvalidRequest, http.StatusBadRequest)
		return
	}
	if _, err := h.submissions.Submit(ctx, identity, r.PostFormValue("postUrl"), r.PostFormValue("impressions")); err != nil {
		logging.Error("Failed to store submission", "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
