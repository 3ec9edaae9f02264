package middleware

import (
	"net/http"

	"raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
)

func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleAdmin.String() {
				common.RespondPermissionDenied(w, constants.MsgNeedAdmin)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
