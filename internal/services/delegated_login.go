package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/entities"
	"raidcrew/raidtracker/internal/providers"
)

// ErrInvalidCallback is returned when a callback has no pending attempt, a mismatched
// token or an empty verifier.
var ErrInvalidCallback = providers.ErrInvalidCallback

// ErrNoAuthorizer is returned by Redirect when the provider has no local authorization step.
var ErrNoAuthorizer = errors.New("provider does not authorize locally")

// DelegatedLoginService drives one delegated login attempt per client:
// idle -> pending-redirect -> awaiting-callback -> resolved | failed.
// The attempt is kept in session storage and is consumed by the first callback.
type DelegatedLoginService struct {
	sessions   *common.SessionService
	provider   providers.DelegatedProvider
	entropy    common.Entropy
	pendingTTL time.Duration
	metrics    *metrics.MetricsRegistry
}

func NewDelegatedLoginService(
	sessions *common.SessionService,
	provider providers.DelegatedProvider,
	entropy common.Entropy,
	pendingTTL time.Duration,
	metricsReg *metrics.MetricsRegistry,
) *DelegatedLoginService {
	return &DelegatedLoginService{
		sessions:   sessions,
		provider:   provider,
		entropy:    entropy,
		pendingTTL: pendingTTL,
		metrics:    metricsReg,
	}
}

func (s *DelegatedLoginService) transition(state constants.AttemptState) {
	if s.metrics != nil {
		s.metrics.DelegatedAttemptsTotal.WithLabelValues(string(state)).Inc()
	}
}

// Begin starts a fresh attempt, replacing any attempt the client left behind.
func (s *DelegatedLoginService) Begin(ctx context.Context, clientID string) (*dtos.DelegatedRedirect, error) {
	req, err := s.provider.Initiate(ctx)
	if err != nil {
		s.transition(constants.AttemptFailed)
		return nil, fmt.Errorf("failed to initiate delegated login: %w", err)
	}

	now := s.entropy.Now()
	attempt := &entities.LoginAttempt{
		ClientID:           clientID,
		RequestToken:       req.RequestToken,
		RequestTokenSecret: req.RequestTokenSecret,
		State:              constants.AttemptPendingRedirect,
		CreatedAt:          now,
		ExpiresAt:          now.Add(s.pendingTTL),
	}
	if err := s.sessions.SaveAttempt(ctx, attempt, now); err != nil {
		s.transition(constants.AttemptFailed)
		return nil, err
	}
	s.transition(constants.AttemptPendingRedirect)

	logging.Info("Delegated login started", "client_id", clientID)
	return &dtos.DelegatedRedirect{
		RedirectURL: req.AuthorizeURL,
		DelayMs:     req.Delay.Milliseconds(),
	}, nil
}

// Redirect runs the local authorization step and returns the callback URL.
func (s *DelegatedLoginService) Redirect(ctx context.Context, clientID, requestToken string) (string, error) {
	authorizer, ok := s.provider.(providers.Authorizer)
	if !ok {
		return "", ErrNoAuthorizer
	}

	attempt, err := s.sessions.LoadAttempt(ctx, clientID)
	if err != nil {
		return "", err
	}
	if attempt == nil || attempt.State != constants.AttemptPendingRedirect || attempt.RequestToken != requestToken {
		s.fail(ctx, clientID, "no pending attempt for token")
		return "", ErrInvalidCallback
	}

	callbackURL, err := authorizer.Authorize(ctx, requestToken)
	if err != nil {
		s.fail(ctx, clientID, err.Error())
		return "", fmt.Errorf("authorization failed: %w", err)
	}

	attempt.State = constants.AttemptAwaitingCallback
	attempt.CallbackURL = callbackURL
	if err := s.sessions.SaveAttempt(ctx, attempt, s.entropy.Now()); err != nil {
		return "", err
	}
	s.transition(constants.AttemptAwaitingCallback)
	return callbackURL, nil
}

// Complete consumes the client's attempt and, if the callback matches it, exchanges the
// request token for a raider identity.
func (s *DelegatedLoginService) Complete(ctx context.Context, clientID, requestToken, verifier string) (*entities.Identity, error) {
	attempt, err := s.sessions.LoadAttempt(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.DeleteAttempt(ctx, clientID); err != nil {
		return nil, err
	}

	if attempt == nil || requestToken == "" || attempt.RequestToken != requestToken || verifier == "" {
		s.transition(constants.AttemptFailed)
		logging.Warn(constants.MsgInvalidCallback, "client_id", clientID, "has_attempt", attempt != nil)
		return nil, ErrInvalidCallback
	}

	result, err := s.provider.CompleteCallback(ctx, providers.CallbackParams{
		RequestToken:       attempt.RequestToken,
		RequestTokenSecret: attempt.RequestTokenSecret,
		Verifier:           verifier,
	})
	if err != nil {
		s.transition(constants.AttemptFailed)
		return nil, fmt.Errorf("failed to complete delegated login: %w", err)
	}
	s.transition(constants.AttemptResolved)

	return &entities.Identity{
		ID:                 result.Profile.ID,
		Username:           result.Profile.Username,
		Role:               constants.RoleRaider,
		Avatar:             result.Profile.ProfileImageURL,
		ConnectedX:         true,
		XAccessToken:       result.AccessToken,
		XAccessTokenSecret: result.AccessTokenSecret,
		DisplayName:        result.Profile.DisplayName,
		Verified:           result.Profile.Verified,
	}, nil
}

// fail drops the attempt; the client is back to idle.
func (s *DelegatedLoginService) fail(ctx context.Context, clientID, reason string) {
	s.transition(constants.AttemptFailed)
	logging.Warn("Delegated login failed", "client_id", clientID, "reason", reason)
	if err := s.sessions.DeleteAttempt(ctx, clientID); err != nil {
		logging.Error("Failed to drop login attempt", "client_id", clientID, "error", err.Error())
	}
}
