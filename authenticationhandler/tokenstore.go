// authenticationhandler/tokenstore.go
package authenticationhandler

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// TokenStore holds the live bearer token pair. It is safe for concurrent use and
// satisfies oauth2.TokenSource.
type TokenStore struct {
	mu          sync.RWMutex
	token       *oauth2.Token
	refreshedAt time.Time
	lifetime    time.Duration
}

// NewTokenStore seeds a store from bearer credentials.
func NewTokenStore(creds *BearerCredentials) *TokenStore {
	s := &TokenStore{
		token: &oauth2.Token{
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
			TokenType:    "Bearer",
		},
		lifetime: creds.expiry(),
	}
	if creds.RefreshedAt != nil {
		s.refreshedAt = *creds.RefreshedAt
		s.token.Expiry = s.refreshedAt.Add(s.lifetime)
	}
	return s
}

// Token returns a copy of the current token.
func (s *TokenStore) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := *s.token
	return &t, nil
}

func (s *TokenStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token.AccessToken
}

func (s *TokenStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token.RefreshToken
}

// RefreshedAt returns when the access token was issued and whether that is known.
func (s *TokenStore) RefreshedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt, !s.refreshedAt.IsZero()
}

// Lifetime is the assumed access token lifetime.
func (s *TokenStore) Lifetime() time.Duration {
	return s.lifetime
}

// Update stores a freshly issued pair. An empty refreshToken keeps the previous one.
func (s *TokenStore) Update(accessToken, refreshToken string, now time.Time) RefreshedTokens {
	s.mu.Lock()
	defer s.mu.Unlock()

	if refreshToken == "" {
		refreshToken = s.token.RefreshToken
	}
	s.token = &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Expiry:       now.Add(s.lifetime),
	}
	s.refreshedAt = now

	return RefreshedTokens{AccessToken: accessToken, RefreshToken: refreshToken, RefreshedAt: now}
}

// NearExpiry reports whether now is within ProactiveRefreshBuffer of the estimated expiry.
// Always false when the issue time is unknown.
func (s *TokenStore) NearExpiry(now time.Time) bool {
	refreshedAt, known := s.RefreshedAt()
	if !known {
		return false
	}
	return now.Sub(refreshedAt) >= s.lifetime-ProactiveRefreshBuffer
}

// SetAuthHeader sets "Authorization: Bearer <token>", or nothing when the store is empty.
func (s *TokenStore) SetAuthHeader(req *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token.AccessToken == "" {
		return
	}
	s.token.SetAuthHeader(req)
}
