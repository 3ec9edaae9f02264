package middleware

import (
	"net/http"

	"raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
)

const clientCookieMaxAge = 365 * 24 * 60 * 60

// ClientMiddleware identifies the browser by its signed client cookie, issuing a new one
// when the cookie is missing or does not verify.
func ClientMiddleware(signer *common.ClientTokenSigner, entropy common.Entropy, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var clientID string
			if cookie, err := r.Cookie(constants.ClientCookieName); err == nil && cookie.Value != "" {
				if id, err := signer.Parse(cookie.Value); err == nil {
					clientID = id
				} else {
					logging.Debug("Replacing invalid client cookie", "error", err.Error())
				}
			}

			if clientID == "" {
				clientID = entropy.NewID()
				token, err := signer.Issue(clientID, entropy.Now())
				if err != nil {
					logging.Error("Failed to issue client cookie", "error", err.Error())
					http.Error(w, constants.StatusError, http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     constants.ClientCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   clientCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(auth.SetClientID(r.Context(), clientID)))
		})
	}
}
