package authenticationhandler

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvClientID     = "PCO_API_CLIENT_ID"
	EnvClientSecret = "PCO_API_SECRET"
)

// CredentialSource supplies fallback credentials when none are configured explicitly.
type CredentialSource interface {
	Credentials() (Credentials, error)
}

// StaticCredentialSource always yields the same Basic credentials.
type StaticCredentialSource struct {
	ClientID     string
	ClientSecret string
}

func (s StaticCredentialSource) Credentials() (Credentials, error) {
	return basicFromValues(s.ClientID, s.ClientSecret, "static source")
}

// EnvCredentialSource reads PCO_API_CLIENT_ID and PCO_API_SECRET.
// The process environment wins; EnvFiles, when set, are read as a fallback
// without modifying the environment.
type EnvCredentialSource struct {
	EnvFiles []string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

func (s EnvCredentialSource) Credentials() (Credentials, error) {
	lookup := s.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fileValues := map[string]string{}
	if len(s.EnvFiles) > 0 {
		values, err := godotenv.Read(s.EnvFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to read env files: %w", err)
		}
		fileValues = values
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fileValues[key]
	}

	return basicFromValues(get(EnvClientID), get(EnvClientSecret), "environment ("+EnvClientID+", "+EnvClientSecret+")")
}

func basicFromValues(clientID, clientSecret, origin string) (Credentials, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: client id and secret must both be set in %s", ErrMissingCredentials, origin)
	}
	return &BasicCredentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}
