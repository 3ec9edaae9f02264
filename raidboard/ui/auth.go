package ui

import (
	"net/http"
	"strconv"

	authctx "raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/services"
)

// AuthHandler manages the login, delegated login and logout routes
type AuthHandler struct {
	auth    *services.AuthService
	appName string
}

func NewAuthHandler(auth *services.AuthService, appName string) *AuthHandler {
	return &AuthHandler{auth: auth, appName: appName}
}

// renderLogin shows the login screen, with a blocking alert when alert is set.
func renderLogin(w http.ResponseWriter, appName, alert string) {
	data := map[string]interface{}{
		"PageTitle": "Login",
		"AppName":   appName,
		"Alert":     alert,
	}
	RenderTemplate(w, "auth/login.html", data)
}

// LoginHandler handles the credential form. Incomplete forms change nothing.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, constants.StatusInvalidRequest, http.StatusBadRequest)
		return
	}

	clientID := authctx.GetClientID(r.Context())
	role := constants.ParseRole(r.PostFormValue("role"))
	_, err := h.auth.LoginWithCredentials(r.Context(), clientID, r.PostFormValue("username"), r.PostFormValue("password"), role)
	if err != nil {
		logging.Error("Credential login failed", "client_id", clientID, "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// XStartHandler begins the delegated login and shows the "Connecting to X..." page,
// which navigates to the authorization step once the delay elapses.
func (h *AuthHandler) XStartHandler(w http.ResponseWriter, r *http.Request) {
	clientID := authctx.GetClientID(r.Context())
	redirect, err := h.auth.LoginWithDelegatedProvider(r.Context(), clientID)
	if err != nil {
		logging.Error("X login failed to start", "client_id", clientID, "error", err.Error())
		renderLogin(w, h.appName, constants.MsgXLoginFailed)
		return
	}

	seconds := (redirect.DelayMs + 999) / 1000
	data := map[string]interface{}{
		"PageTitle":      "Connecting to X",
		"AppName":        h.appName,
		"RedirectURL":    redirect.RedirectURL,
		"DelayMs":        redirect.DelayMs,
		"RefreshContent": strconv.FormatInt(seconds, 10) + ";url=" + redirect.RedirectURL,
	}
	RenderTemplate(w, "auth/connecting.html", data)
}

// XAuthorizeHandler plays the provider's authorization page and sends the browser back
// to the callback URL.
func (h *AuthHandler) XAuthorizeHandler(w http.ResponseWriter, r *http.Request) {
	clientID := authctx.GetClientID(r.Context())
	callbackURL, err := h.auth.AuthorizeDelegated(r.Context(), clientID, r.URL.Query().Get("oauth_token"))
	if err != nil {
		renderLogin(w, h.appName, constants.MsgXLoginFailed)
		return
	}
	http.Redirect(w, r, callbackURL, http.StatusFound)
}

// LogoutHandler handles logout
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	clientID := authctx.GetClientID(r.Context())
	if err := h.auth.Logout(r.Context(), clientID); err != nil {
		logging.Error("Logout failed", "client_id", clientID, "error", err.Error())
		http.Error(w, constants.StatusError, http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
