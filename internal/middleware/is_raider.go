package middleware

import (
	"net/http"

	"raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
)

func IsRaiderMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			// Check permissions BEFORE calling next handler
			if claims == nil || claims.Role() != constants.RoleRaider.String() {
				common.RespondPermissionDenied(w, constants.MsgNeedRaider)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
