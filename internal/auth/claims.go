package auth

import (
	"raidcrew/raidtracker/internal/models/entities"
)

// UserClaims is what handlers know about the caller once the session is resolved.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
	Handle() string
	Identity() *entities.Identity
}

// SessionClaims are built from the identity stored for the client cookie.
type SessionClaims struct {
	Stored *entities.Identity
}

func (c *SessionClaims) UserID() string               { return c.Stored.ID }
func (c *SessionClaims) Role() string                 { return c.Stored.Role.String() }
func (c *SessionClaims) Handle() string               { return c.Stored.Handle() }
func (c *SessionClaims) Identity() *entities.Identity { return c.Stored }

// Source distinguishes identities created by the X flow from credential logins.
func (c *SessionClaims) Source() string {
	if c.Stored.XAccessToken != "" {
		return "X_OAUTH"
	}
	return "CREDENTIALS"
}
