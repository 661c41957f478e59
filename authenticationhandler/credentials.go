// authenticationhandler/credentials.go
package authenticationhandler

import (
	"errors"
	"time"
)

type AuthMethod string

const (
	AuthMethodBasic  AuthMethod = "basic"
	AuthMethodBearer AuthMethod = "bearer"
)

// DefaultTokenExpiry is the access token lifetime assumed when none is supplied.
const DefaultTokenExpiry = 2 * time.Hour

// ProactiveRefreshBuffer is how long before estimated expiry a token is refreshed.
const ProactiveRefreshBuffer = 5 * time.Minute

var ErrMissingCredentials = errors.New("missing credentials")

// Credentials is implemented by BasicCredentials and BearerCredentials only.
type Credentials interface {
	Method() AuthMethod
	Validate() error
	isCredentials()
}

// BasicCredentials authenticate with a personal access token pair. They never expire.
type BasicCredentials struct {
	ClientID     string
	ClientSecret string
}

func (*BasicCredentials) Method() AuthMethod { return AuthMethodBasic }
func (*BasicCredentials) isCredentials()     {}

func (c *BasicCredentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return errors.New("basic credentials require both a client id and a client secret")
	}
	return nil
}

// BearerCredentials authenticate with an OAuth access token, optionally refreshed.
type BearerCredentials struct {
	AccessToken  string
	RefreshToken string
	AutoRefresh  bool
	ClientID     string
	ClientSecret string
	// RefreshedAt is when AccessToken was issued, if known. Proactive refresh needs it.
	RefreshedAt *time.Time
	// Expiry is the access token lifetime. Zero means DefaultTokenExpiry.
	Expiry time.Duration
}

func (*BearerCredentials) Method() AuthMethod { return AuthMethodBearer }
func (*BearerCredentials) isCredentials()     {}

func (c *BearerCredentials) Validate() error {
	if c.AccessToken == "" {
		return errors.New("bearer credentials require an access token")
	}
	if c.Expiry < 0 {
		return errors.New("token expiry cannot be negative")
	}
	return nil
}

func (c *BearerCredentials) expiry() time.Duration {
	if c.Expiry == 0 {
		return DefaultTokenExpiry
	}
	return c.Expiry
}
