// authenticationhandler/authenticationhandler.go
package authenticationhandler

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
)

// AuthTokenHandler applies credentials to outgoing requests and owns the bearer
// token lifecycle.
type AuthTokenHandler struct {
	Credentials Credentials
	Store       *TokenStore
	Refresher   *Refresher
	Logger      logger.Logger
	clock       clock.Clock
}

// HandlerConfig carries the collaborators a bearer handler needs for refreshing.
type HandlerConfig struct {
	HTTPClient        *http.Client
	TokenURL          string
	Clock             clock.Clock
	Listener          TokenRefreshListener
	Logger            logger.Logger
	HideSensitiveData bool
}

// NewAuthTokenHandler validates creds and builds a handler for them.
func NewAuthTokenHandler(creds Credentials, cfg HandlerConfig) (*AuthTokenHandler, error) {
	if creds == nil {
		return nil, ErrMissingCredentials
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}

	h := &AuthTokenHandler{
		Credentials: creds,
		Logger:      cfg.Logger,
		clock:       cfg.Clock,
	}

	if bearer, ok := creds.(*BearerCredentials); ok {
		h.Store = NewTokenStore(bearer)
		h.Refresher = &Refresher{
			HTTPClient:        cfg.HTTPClient,
			TokenURL:          cfg.TokenURL,
			Store:             h.Store,
			Clock:             cfg.Clock,
			Listener:          cfg.Listener,
			Logger:            cfg.Logger,
			HideSensitiveData: cfg.HideSensitiveData,
			ClientID:          bearer.ClientID,
			ClientSecret:      bearer.ClientSecret,
		}
	}

	cfg.Logger.Debug("Authentication handler initialised", zap.String("auth_method", string(creds.Method())))
	return h, nil
}

// Method returns the active authentication method.
func (h *AuthTokenHandler) Method() AuthMethod {
	return h.Credentials.Method()
}

// SetAuthorization writes the Authorization header for the active credentials.
// It never fails; an empty bearer token omits the header.
func (h *AuthTokenHandler) SetAuthorization(req *http.Request) {
	switch creds := h.Credentials.(type) {
	case *BasicCredentials:
		req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	case *BearerCredentials:
		h.Store.SetAuthHeader(req)
	}
}

// CanRefresh reports whether token refresh is possible at all: bearer credentials
// with auto refresh enabled and a refresh token on hand.
func (h *AuthTokenHandler) CanRefresh() bool {
	bearer, ok := h.Credentials.(*BearerCredentials)
	if !ok || !bearer.AutoRefresh {
		return false
	}
	return h.Store.RefreshToken() != ""
}

// CheckAndRefreshAuthToken refreshes ahead of expiry when the token issue time is
// known and expiry is within ProactiveRefreshBuffer. Failure is not an error; the
// request proceeds with the current token.
func (h *AuthTokenHandler) CheckAndRefreshAuthToken(ctx context.Context) {
	if !h.CanRefresh() || !h.Store.NearExpiry(h.clock.Now()) {
		return
	}
	h.Refresher.Refresh(ctx, "proactive", h.Store.AccessToken())
}

// RefreshAfterUnauthorized performs a reactive refresh after a 401 that was sent with
// usedAccessToken. It reports whether the request should be retried.
func (h *AuthTokenHandler) RefreshAfterUnauthorized(ctx context.Context, usedAccessToken string) bool {
	if !h.CanRefresh() {
		return false
	}
	return h.Refresher.Refresh(ctx, "reactive", usedAccessToken)
}

// CurrentAccessToken returns the bearer access token, or "" in basic mode.
func (h *AuthTokenHandler) CurrentAccessToken() string {
	if h.Store == nil {
		return ""
	}
	return h.Store.AccessToken()
}
