package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"raidcrew/raidtracker/internal/common"
	"raidcrew/raidtracker/internal/config"
	"raidcrew/raidtracker/internal/logging"
)

// SimulatedXProvider fakes the X OAuth 1.0a handshake locally. Nothing leaves the process:
// tokens and profiles are fabricated from the entropy source.
type SimulatedXProvider struct {
	authorizeURL string
	callbackURL  string
	delay        time.Duration
	entropy      common.Entropy
}

var (
	_ DelegatedProvider = (*SimulatedXProvider)(nil)
	_ Authorizer        = (*SimulatedXProvider)(nil)
)

func NewSimulatedXProvider(cfg config.XConfig, entropy common.Entropy) *SimulatedXProvider {
	return &SimulatedXProvider{
		authorizeURL: cfg.AuthorizeURL,
		callbackURL:  cfg.CallbackURL,
		delay:        cfg.RedirectDelay,
		entropy:      entropy,
	}
}

func (p *SimulatedXProvider) millis() string {
	return strconv.FormatInt(p.entropy.Now().UnixMilli(), 10)
}

// Initiate fabricates a request token pair.
func (p *SimulatedXProvider) Initiate(ctx context.Context) (*AuthorizationRequest, error) {
	ms := p.millis()
	req := &AuthorizationRequest{
		RequestToken:       "test_request_token_" + ms,
		RequestTokenSecret: "test_secret_" + ms,
		Delay:              p.delay,
	}

	authorizeURL, err := withQuery(p.authorizeURL, url.Values{"oauth_token": {req.RequestToken}})
	if err != nil {
		return nil, fmt.Errorf("failed to build authorize url: %w", err)
	}
	req.AuthorizeURL = authorizeURL

	logging.Debug("Simulated X request token issued", "request_token", req.RequestToken)
	return req, nil
}

// Authorize plays the user clicking "Authorize" on X.
func (p *SimulatedXProvider) Authorize(ctx context.Context, requestToken string) (string, error) {
	if requestToken == "" {
		return "", ErrInvalidCallback
	}

	callback, err := withQuery(p.callbackURL, url.Values{
		"oauth_token":    {requestToken},
		"oauth_verifier": {"test_verifier_" + p.millis()},
	})
	if err != nil {
		return "", fmt.Errorf("failed to build callback url: %w", err)
	}
	return callback, nil
}

// CompleteCallback fabricates access tokens and a test raider profile.
func (p *SimulatedXProvider) CompleteCallback(ctx context.Context, callback CallbackParams) (*DelegatedResult, error) {
	if callback.RequestToken == "" || callback.Verifier == "" {
		return nil, ErrInvalidCallback
	}

	ms := p.millis()
	profile := XProfile{
		ID:              "x_user_" + ms,
		Username:        "test_raider_" + strconv.Itoa(p.entropy.IntN(1000)),
		DisplayName:     "Test Raider",
		ProfileImageURL: common.AvatarURL("raider" + ms),
		Verified:        p.entropy.Float64() > 0.7,
		ConnectedX:      true,
		FollowersCount:  p.entropy.IntN(10000) + 100,
		FollowingCount:  p.entropy.IntN(5000) + 50,
	}

	return &DelegatedResult{
		AccessToken:       "test_access_token_" + ms,
		AccessTokenSecret: "test_access_secret_" + ms,
		Profile:           profile,
	}, nil
}

// withQuery merges values into raw's query string, keeping raw relative if it was.
func withQuery(raw string, values url.Values) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range values {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
