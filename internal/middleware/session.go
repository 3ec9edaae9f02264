package middleware

import (
	"context"
	"net/http"

	"raidcrew/raidtracker/internal/auth"
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/entities"
)

// IdentityResolver restores the identity stored for a client.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context, clientID string) (*entities.Identity, error)
}

// SessionMiddleware rejects API calls from clients without a stored identity and puts the
// identity's claims on the context for the rest.
func SessionMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.CurrentIdentity(r.Context(), auth.GetClientID(r.Context()))
			if err != nil {
				common.RespondError(w, err, constants.StatusError)
				return
			}
			if identity == nil {
				common.RespondError(w, nil, constants.StatusUnauthorized, http.StatusUnauthorized)
				return
			}

			auth.NoteRole(r.Context(), identity.Role.String())
			ctx := auth.SetUserClaims(r.Context(), &auth.SessionClaims{Stored: identity})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
