// httpclient/client.go
/* Package httpclient is the request engine of the SDK. A Client applies credentials,
keeps bearer tokens fresh, spaces its requests, retries rate limited and failed
attempts, and stitches paginated JSON:API collections back together. */
package httpclient

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/authenticationhandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/concurrency"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/cookiejar"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/proxy"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/ratehandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/redirecthandler"
	"go.uber.org/zap"
)

// Client is safe for concurrent use.
type Client struct {
	// Private
	config   ClientConfig
	http     *http.Client
	auth     *authenticationhandler.AuthTokenHandler
	governor *ratehandler.Governor
	clock    clock.Clock

	// Exported
	Logger      logger.Logger
	Concurrency *concurrency.ConcurrencyHandler
}

// BuildClient merges config over the defaults, validates it and wires a Client.
// Every failure is a *ConfigurationError.
func BuildClient(config ClientConfig, opts ...Option) (*Client, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	SetDefaultValuesClientConfig(&config)
	if err := validateClientConfig(config); err != nil {
		return nil, err
	}
	config.RateLimitDelay = Ptr(*config.RateLimitDelay)
	config.MaxRetries = Ptr(*config.MaxRetries)
	config.AutoPaginate = Ptr(*config.AutoPaginate)

	//region Logging

	log := o.logger
	if log == nil {
		parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
		log = logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator)
	}

	//endregion

	//region Credentials

	creds := config.Auth
	if creds == nil {
		if o.credentialSource == nil {
			return nil, &ConfigurationError{Field: "Auth", Reason: "no credentials supplied and no default credential source"}
		}
		sourced, err := o.credentialSource.Credentials()
		if err != nil {
			return nil, &ConfigurationError{Field: "Auth", Reason: "default credential source failed", Err: err}
		}
		creds = sourced
	}
	config.Auth = creds

	//endregion

	//region HTTP

	clk := o.clock
	if clk == nil {
		clk = clock.New()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.CustomTimeout}
		if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
			return nil, &ConfigurationError{Field: "MaxRedirects", Err: err}
		}
		proxyConfig := proxy.Config{URL: config.ProxyURL, Username: config.ProxyUsername, Password: config.ProxyPassword}
		if err := proxy.InitializeProxy(httpClient, proxyConfig, log); err != nil {
			return nil, &ConfigurationError{Field: "ProxyURL", Err: err}
		}
		if err := cookiejar.SetupCookieJar(httpClient, config.EnableCookieJar, log); err != nil {
			return nil, &ConfigurationError{Field: "EnableCookieJar", Err: err}
		}
	}

	//endregion

	//region Concurrency

	concurrencyHandler := concurrency.NewConcurrencyHandler(
		config.MaxConcurrentRequests,
		log,
		&concurrency.ConcurrencyMetrics{},
	)

	//endregion

	//region Auth

	authHandler, err := authenticationhandler.NewAuthTokenHandler(creds, authenticationhandler.HandlerConfig{
		HTTPClient:        httpClient,
		TokenURL:          config.TokenURL,
		Clock:             clk,
		Listener:          &refreshMetricsListener{metrics: concurrencyHandler.Metrics, next: o.listener},
		Logger:            log,
		HideSensitiveData: config.HideSensitiveData,
	})
	if err != nil {
		return nil, &ConfigurationError{Field: "Auth", Err: err}
	}

	//endregion

	client := &Client{
		config:      config,
		http:        httpClient,
		auth:        authHandler,
		governor:    ratehandler.NewGovernor(*config.RateLimitDelay, clk),
		clock:       clk,
		Logger:      log,
		Concurrency: concurrencyHandler,
	}

	log.Debug("New API client initialized",
		zap.String("Authentication Method", string(creds.Method())),
		zap.String("Base URL", config.BaseURL),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Duration("Rate Limit Delay", *config.RateLimitDelay),
		zap.Int("Max Retries", *config.MaxRetries),
		zap.Bool("Auto Paginate", *config.AutoPaginate),
		zap.Int("Max Concurrent Requests", config.MaxConcurrentRequests),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Custom Timeout", config.CustomTimeout),
		zap.Bool("Cookie Jar", config.EnableCookieJar),
		zap.Bool("Proxy", config.ProxyURL != ""),
	)

	return client, nil
}

// Config returns a copy of the resolved configuration.
func (c *Client) Config() ClientConfig {
	return c.config
}

// AccessToken returns the live bearer access token, or "" for basic credentials.
func (c *Client) AccessToken() string {
	return c.auth.CurrentAccessToken()
}

// Metrics returns the counters collected since construction.
func (c *Client) Metrics() concurrency.MetricsSnapshot {
	return c.Concurrency.Metrics.Snapshot()
}

// refreshMetricsListener counts refreshes before handing the tokens to the caller's listener.
type refreshMetricsListener struct {
	metrics *concurrency.ConcurrencyMetrics
	next    authenticationhandler.TokenRefreshListener
}

func (l *refreshMetricsListener) OnTokenRefresh(ctx context.Context, tokens authenticationhandler.RefreshedTokens) error {
	l.metrics.RecordTokenRefresh()
	if l.next == nil {
		return nil
	}
	return l.next.OnTokenRefresh(ctx, tokens)
}
