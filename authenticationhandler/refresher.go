// authenticationhandler/refresher.go
package authenticationhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultTokenURL is the OAuth token endpoint.
const DefaultTokenURL = "https://api.planningcenteronline.com/oauth/token"

type refreshRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// OAuthResponse is the token endpoint's success body.
type OAuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	Scope        string `json:"scope,omitempty"`
}

// Refresher exchanges refresh tokens at the token endpoint.
type Refresher struct {
	HTTPClient        *http.Client
	TokenURL          string
	Store             *TokenStore
	Clock             clock.Clock
	Listener          TokenRefreshListener
	Logger            logger.Logger
	HideSensitiveData bool
	ClientID          string
	ClientSecret      string

	// serialises exchanges so concurrent 401s spend one refresh token
	mu sync.Mutex
}

// Refresh performs one exchange. It never returns an error: failures are logged and
// reported as false, leaving the store untouched. staleAccessToken is the token the
// caller saw; if another goroutine already replaced it, no exchange is made.
// The listener is notified after the exchange lock is released.
func (r *Refresher) Refresh(ctx context.Context, trigger, staleAccessToken string) bool {
	tokens, refreshed, ok := r.refresh(ctx, trigger, staleAccessToken)
	if refreshed && r.Listener != nil {
		if err := r.Listener.OnTokenRefresh(ctx, tokens); err != nil {
			r.Logger.Warn("Token refresh listener failed", zap.Error(err))
		}
	}
	return ok
}

// refresh runs under r.mu. refreshed reports whether this call rotated the store.
func (r *Refresher) refresh(ctx context.Context, trigger, staleAccessToken string) (tokens RefreshedTokens, refreshed, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current := r.Store.AccessToken(); staleAccessToken != "" && current != staleAccessToken {
		r.Logger.Debug("Token already refreshed by a concurrent request", zap.String("trigger", trigger))
		return RefreshedTokens{}, false, true
	}

	refreshToken := r.Store.RefreshToken()
	if refreshToken == "" {
		r.Logger.LogTokenRefresh(trigger, false, fmt.Errorf("no refresh token available"))
		return RefreshedTokens{}, false, false
	}

	result, err := r.exchange(ctx, refreshToken)
	if err != nil {
		r.Logger.LogTokenRefresh(trigger, false, err)
		return RefreshedTokens{}, false, false
	}

	tokens = r.Store.Update(result.AccessToken, result.RefreshToken, r.Clock.Now())
	r.Logger.LogTokenRefresh(trigger, true, nil)
	r.Logger.Debug("Refreshed token pair",
		zap.String("AccessToken", redact.RedactSensitiveHeaderData(r.HideSensitiveData, "AccessToken", tokens.AccessToken)),
		zap.Bool("refresh_token_rotated", result.RefreshToken != ""),
	)
	return tokens, true, true
}

func (r *Refresher) exchange(ctx context.Context, refreshToken string) (*OAuthResponse, error) {
	payload, err := json.Marshal(refreshRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.TokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retrieveErr := &oauth2.RetrieveError{Response: resp, Body: body}
		var oauthErr struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		if json.Unmarshal(body, &oauthErr) == nil {
			retrieveErr.ErrorCode = oauthErr.Error
			retrieveErr.ErrorDescription = oauthErr.ErrorDescription
		}
		return nil, retrieveErr
	}

	var result OAuthResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("refresh response did not contain an access token")
	}
	return &result, nil
}
