package providers

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCallback is returned when a callback cannot be matched to a pending attempt.
var ErrInvalidCallback = errors.New("invalid oauth callback")

// DelegatedProvider is a third-party login provider using the request-token handshake.
type DelegatedProvider interface {
	// Initiate obtains a request token pair and the URL the user must visit to authorize it.
	Initiate(ctx context.Context) (*AuthorizationRequest, error)

	// CompleteCallback exchanges an authorized request token for access tokens and the
	// user's profile.
	CompleteCallback(ctx context.Context, callback CallbackParams) (*DelegatedResult, error)
}

// Authorizer is implemented by providers that also play the third party's authorization
// page. It returns the callback URL the user is sent back to.
type Authorizer interface {
	Authorize(ctx context.Context, requestToken string) (string, error)
}

// AuthorizationRequest is what Initiate hands back.
type AuthorizationRequest struct {
	RequestToken       string
	RequestTokenSecret string
	AuthorizeURL       string
	// Delay is how long the client waits before navigating to AuthorizeURL.
	Delay time.Duration
}

// CallbackParams carries the callback query together with the stored request secret.
type CallbackParams struct {
	RequestToken       string
	RequestTokenSecret string
	Verifier           string
}

// XProfile is the user profile returned after a successful exchange.
type XProfile struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	DisplayName     string `json:"displayName"`
	ProfileImageURL string `json:"profileImageUrl"`
	Verified        bool   `json:"verified"`
	ConnectedX      bool   `json:"connectedX"`
	FollowersCount  int    `json:"followersCount"`
	FollowingCount  int    `json:"followingCount"`
}

type DelegatedResult struct {
	AccessToken       string
	AccessTokenSecret string
	Profile           XProfile
}
