package services

import (
	"context"
	"errors"
	"net/url"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/metrics"
	"raidcrew/raidtracker/internal/models/dtos"
	"raidcrew/raidtracker/internal/models/entities"
)

// AuthService owns the signed-in identity of each client.
type AuthService struct {
	sessions    *common.SessionService
	credentials *CredentialLoginService
	delegated   *DelegatedLoginService
	metrics     *metrics.MetricsRegistry
}

func NewAuthService(
	sessions *common.SessionService,
	credentials *CredentialLoginService,
	delegated *DelegatedLoginService,
	metricsReg *metrics.MetricsRegistry,
) *AuthService {
	return &AuthService{
		sessions:    sessions,
		credentials: credentials,
		delegated:   delegated,
		metrics:     metricsReg,
	}
}

// IsCallback reports whether query is a delegated login callback.
func IsCallback(query url.Values) bool {
	return query.Has("oauth_token") && query.Has("oauth_verifier")
}

func (s *AuthService) countLogin(method constants.LoginMethod, role constants.Role, result string) {
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues(string(method), string(role), result).Inc()
	}
}

// Initialize resolves the client's identity on page load. A callback query completes the
// delegated login; otherwise the stored identity is restored. A nil identity with a nil
// error means the client is signed out.
func (s *AuthService) Initialize(ctx context.Context, clientID string, query url.Values) (*entities.Identity, error) {
	if IsCallback(query) {
		identity, err := s.delegated.Complete(ctx, clientID, query.Get("oauth_token"), query.Get("oauth_verifier"))
		if err != nil {
			s.countLogin(constants.LoginMethodX, constants.RoleRaider, "failed")
			if clearErr := s.sessions.ClearIdentity(ctx, clientID); clearErr != nil {
				logging.Error("Failed to clear identity after callback failure", "client_id", clientID, "error", clearErr.Error())
			}
			return nil, err
		}
		if err := s.Login(ctx, clientID, identity); err != nil {
			return nil, err
		}
		s.countLogin(constants.LoginMethodX, identity.Role, "success")
		return identity, nil
	}

	return s.CurrentIdentity(ctx, clientID)
}

// CurrentIdentity restores the stored identity. A corrupt record reads as signed out.
func (s *AuthService) CurrentIdentity(ctx context.Context, clientID string) (*entities.Identity, error) {
	identity, err := s.sessions.RestoreIdentity(ctx, clientID)
	if errors.Is(err, common.ErrCorruptIdentity) {
		return nil, nil
	}
	return identity, err
}

// Login persists identity as the client's signed-in user.
func (s *AuthService) Login(ctx context.Context, clientID string, identity *entities.Identity) error {
	if err := s.sessions.SaveIdentity(ctx, clientID, identity); err != nil {
		return err
	}
	logging.Info("User signed in", "client_id", clientID, "username", identity.Username, "role", identity.Role.String())
	return nil
}

// LoginWithCredentials signs in with the mock credential check. Empty fields are ignored:
// the result is nil and the stored identity is left as it was.
func (s *AuthService) LoginWithCredentials(ctx context.Context, clientID, username, password string, role constants.Role) (*entities.Identity, error) {
	identity := s.credentials.Authenticate(username, password, role)
	if identity == nil {
		s.countLogin(constants.LoginMethodCredentials, role, "ignored")
		return nil, nil
	}
	if err := s.Login(ctx, clientID, identity); err != nil {
		s.countLogin(constants.LoginMethodCredentials, role, "failed")
		return nil, err
	}
	s.countLogin(constants.LoginMethodCredentials, identity.Role, "success")
	return identity, nil
}

// LoginWithDelegatedProvider starts the delegated flow and returns where the client goes next.
func (s *AuthService) LoginWithDelegatedProvider(ctx context.Context, clientID string) (*dtos.DelegatedRedirect, error) {
	return s.delegated.Begin(ctx, clientID)
}

// AuthorizeDelegated runs the provider's local authorization step.
func (s *AuthService) AuthorizeDelegated(ctx context.Context, clientID, requestToken string) (string, error) {
	return s.delegated.Redirect(ctx, clientID, requestToken)
}

// Logout erases the stored identity and any pending attempt.
func (s *AuthService) Logout(ctx context.Context, clientID string) error {
	if err := s.sessions.ClearIdentity(ctx, clientID); err != nil {
		return err
	}
	if err := s.sessions.DeleteAttempt(ctx, clientID); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.LogoutsTotal.Inc()
	}
	logging.Info("User signed out", "client_id", clientID)
	return nil
}
