package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/models/entities"
)

// ErrCorruptIdentity is returned by RestoreIdentity after it discarded an unreadable record.
var ErrCorruptIdentity = errors.New("stored identity is corrupt")

// SessionService persists the signed-in identity and the pending delegated login attempt
// of each client.
type SessionService struct {
	store StateStore
}

func NewSessionService(store StateStore) *SessionService {
	return &SessionService{store: store}
}

func identityKey(clientID string) string {
	return string(constants.StoragePrefixLocal) + clientID + ":" + constants.IdentityStorageKey
}

func attemptKey(clientID string) string {
	return string(constants.StoragePrefixSession) + clientID + ":" + constants.AttemptStorageKey
}

// SaveIdentity stores the identity verbatim, without expiry.
func (s *SessionService) SaveIdentity(ctx context.Context, clientID string, identity *entities.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	if err := s.store.Set(ctx, identityKey(clientID), string(data), 0); err != nil {
		return fmt.Errorf("failed to store identity: %w", err)
	}
	return nil
}

// RestoreIdentity returns the stored identity, or nil when there is none. An unreadable
// record is deleted and reported as ErrCorruptIdentity so the caller can fall back to the
// login screen.
func (s *SessionService) RestoreIdentity(ctx context.Context, clientID string) (*entities.Identity, error) {
	val, found, err := s.store.Get(ctx, identityKey(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to read identity: %w", err)
	}
	if !found {
		return nil, nil
	}

	var identity entities.Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil || !identity.Role.Valid() {
		logging.Warn(constants.MsgSessionRestore, "client_id", clientID)
		if delErr := s.store.Delete(ctx, identityKey(clientID)); delErr != nil {
			return nil, fmt.Errorf("failed to discard corrupt identity: %w", delErr)
		}
		return nil, ErrCorruptIdentity
	}
	return &identity, nil
}

// ClearIdentity erases the stored identity.
func (s *SessionService) ClearIdentity(ctx context.Context, clientID string) error {
	if err := s.store.Delete(ctx, identityKey(clientID)); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}

// SaveAttempt stores the attempt until its ExpiresAt.
func (s *SessionService) SaveAttempt(ctx context.Context, attempt *entities.LoginAttempt, now time.Time) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal login attempt: %w", err)
	}
	ttl := attempt.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return errors.New("login attempt already expired")
	}
	if err := s.store.Set(ctx, attemptKey(attempt.ClientID), string(data), ttl); err != nil {
		return fmt.Errorf("failed to store login attempt: %w", err)
	}
	return nil
}

// LoadAttempt returns the client's pending attempt, or nil if there is none or it cannot
// be read.
func (s *SessionService) LoadAttempt(ctx context.Context, clientID string) (*entities.LoginAttempt, error) {
	val, found, err := s.store.Get(ctx, attemptKey(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to read login attempt: %w", err)
	}
	if !found {
		return nil, nil
	}

	var attempt entities.LoginAttempt
	if err := json.Unmarshal([]byte(val), &attempt); err != nil {
		logging.Warn("Discarding unreadable login attempt", "client_id", clientID, "error", err.Error())
		return nil, nil
	}
	return &attempt, nil
}

// DeleteAttempt drops the client's pending attempt.
func (s *SessionService) DeleteAttempt(ctx context.Context, clientID string) error {
	if err := s.store.Delete(ctx, attemptKey(clientID)); err != nil {
		return fmt.Errorf("failed to delete login attempt: %w", err)
	}
	return nil
}
