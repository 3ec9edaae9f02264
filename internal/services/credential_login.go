package services

import (
	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/models/entities"
)

// CredentialLoginService is the mock username/password login. There is no directory:
// any non-empty pair is accepted for the chosen role.
type CredentialLoginService struct {
	entropy common.Entropy
}

func NewCredentialLoginService(entropy common.Entropy) *CredentialLoginService {
	return &CredentialLoginService{entropy: entropy}
}

// Authenticate builds the identity for a credential login, or returns nil when either
// field is empty.
func (s *CredentialLoginService) Authenticate(username, password string, role constants.Role) *entities.Identity {
	if username == "" || password == "" {
		return nil
	}
	if !role.Valid() {
		role = constants.RoleAdmin
	}

	connected := true
	if role == constants.RoleRaider {
		connected = s.entropy.Float64() > 0.5
	}

	return &entities.Identity{
		ID:         s.entropy.NewID(),
		Username:   username,
		Role:       role,
		Avatar:     common.AvatarURL(username),
		ConnectedX: connected,
	}
}
