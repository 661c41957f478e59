package httpclient

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/authenticationhandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaultValuesClientConfig(t *testing.T) {
	config := ClientConfig{BaseURL: "https://example.test/"}
	SetDefaultValuesClientConfig(&config)

	assert.Equal(t, DefaultRateLimitDelay, *config.RateLimitDelay)
	assert.Equal(t, DefaultMaxRetries, *config.MaxRetries)
	assert.True(t, *config.AutoPaginate)
	assert.Equal(t, "https://example.test", config.BaseURL)
	assert.Equal(t, DefaultTokenURL, config.TokenURL)
	assert.Equal(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
}

func TestSetDefaultValuesKeepsExplicitZeroes(t *testing.T) {
	config := ClientConfig{
		RateLimitDelay: Ptr(time.Duration(0)),
		MaxRetries:     Ptr(0),
		AutoPaginate:   Ptr(false),
	}
	SetDefaultValuesClientConfig(&config)

	assert.Equal(t, time.Duration(0), *config.RateLimitDelay)
	assert.Equal(t, 0, *config.MaxRetries)
	assert.False(t, *config.AutoPaginate)
}

func TestValidateClientConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		field  string
	}{
		{"negative delay", func(c *ClientConfig) { c.RateLimitDelay = Ptr(-time.Second) }, "RateLimitDelay"},
		{"negative retries", func(c *ClientConfig) { c.MaxRetries = Ptr(-1) }, "MaxRetries"},
		{"relative base url", func(c *ClientConfig) { c.BaseURL = "/people/v2" }, "BaseURL"},
		{"bad token url", func(c *ClientConfig) { c.TokenURL = "token" }, "TokenURL"},
		{"bad log format", func(c *ClientConfig) { c.LogOutputFormat = "pretty" }, "LogOutputFormat"},
		{"unknown log level", func(c *ClientConfig) { c.LogLevel = "verbose" }, "LogLevel"},
		{"negative timeout", func(c *ClientConfig) { c.CustomTimeout = -time.Second }, "CustomTimeout"},
		{"negative concurrency", func(c *ClientConfig) { c.MaxConcurrentRequests = -2 }, "MaxConcurrentRequests"},
		{"redirects without budget", func(c *ClientConfig) { c.FollowRedirects = true; c.MaxRedirects = -1 }, "MaxRedirects"},
		{"relative proxy url", func(c *ClientConfig) { c.ProxyURL = "proxy:3128" }, "ProxyURL"},
		{"proxy password without user", func(c *ClientConfig) { c.ProxyPassword = "pw" }, "ProxyUsername"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := ClientConfig{}
			SetDefaultValuesClientConfig(&config)
			tt.mutate(&config)

			err := validateClientConfig(config)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))
			var configErr *ConfigurationError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.field, configErr.Field)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		config := ClientConfig{}
		SetDefaultValuesClientConfig(&config)
		assert.NoError(t, validateClientConfig(config))
	})
}

func TestBuildClientCredentialSelection(t *testing.T) {
	nop := WithLogger(logger.NewNopLogger())

	t.Run("no credentials", func(t *testing.T) {
		_, err := BuildClient(ClientConfig{}, nop)
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("default source supplies credentials", func(t *testing.T) {
		source := authenticationhandler.StaticCredentialSource{ClientID: "id", ClientSecret: "secret"}
		client, err := BuildClient(ClientConfig{}, nop, WithDefaultCredentials(source))
		require.NoError(t, err)
		assert.Equal(t, authenticationhandler.AuthMethodBasic, client.Config().Auth.Method())
	})

	t.Run("environment source with missing values", func(t *testing.T) {
		source := authenticationhandler.EnvCredentialSource{
			LookupEnv: func(string) (string, bool) { return "", false },
		}
		_, err := BuildClient(ClientConfig{}, nop, WithDefaultCredentials(source))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.ErrorIs(t, err, authenticationhandler.ErrMissingCredentials)
	})

	t.Run("explicit auth wins over the source", func(t *testing.T) {
		source := authenticationhandler.StaticCredentialSource{ClientID: "id", ClientSecret: "secret"}
		client, err := BuildClient(ClientConfig{
			Auth: &authenticationhandler.BearerCredentials{AccessToken: "token"},
		}, nop, WithDefaultCredentials(source))
		require.NoError(t, err)
		assert.Equal(t, authenticationhandler.AuthMethodBearer, client.Config().Auth.Method())
		assert.Equal(t, "token", client.AccessToken())
	})

	t.Run("invalid explicit auth", func(t *testing.T) {
		_, err := BuildClient(ClientConfig{
			Auth: &authenticationhandler.BasicCredentials{ClientID: "id"},
		}, nop)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestBuildClientCopiesConfig(t *testing.T) {
	retries := 2
	config := ClientConfig{
		Auth:       &authenticationhandler.BasicCredentials{ClientID: "id", ClientSecret: "secret"},
		MaxRetries: &retries,
	}
	client, err := BuildClient(config, WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)

	retries = 9
	assert.Equal(t, 2, *client.Config().MaxRetries)
}

func TestBuildClientTransportOptions(t *testing.T) {
	client, err := BuildClient(ClientConfig{
		Auth:            &authenticationhandler.BasicCredentials{ClientID: "id", ClientSecret: "secret"},
		ProxyURL:        "http://proxy.internal:3128",
		EnableCookieJar: true,
	}, WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)
	assert.NotNil(t, client.http.Jar)
	assert.NotNil(t, client.http.Transport)

	injected := &http.Client{}
	client, err = BuildClient(ClientConfig{
		Auth:            &authenticationhandler.BasicCredentials{ClientID: "id", ClientSecret: "secret"},
		ProxyURL:        "http://proxy.internal:3128",
		EnableCookieJar: true,
	}, WithLogger(logger.NewNopLogger()), WithHTTPClient(injected))
	require.NoError(t, err)
	assert.Nil(t, injected.Jar)
	assert.Nil(t, injected.Transport)
}
