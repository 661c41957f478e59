// httpclient/options.go
package httpclient

import (
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/authenticationhandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/clock"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
)

// Option injects a collaborator into BuildClient.
type Option func(*buildOptions)

type buildOptions struct {
	clock            clock.Clock
	httpClient       *http.Client
	logger           logger.Logger
	listener         authenticationhandler.TokenRefreshListener
	credentialSource authenticationhandler.CredentialSource
}

// WithClock replaces the wall clock used for spacing, back-off sleeps and token ages.
func WithClock(clk clock.Clock) Option {
	return func(o *buildOptions) { o.clock = clk }
}

// WithHTTPClient replaces the underlying http.Client. Its redirect policy and timeout
// are left as supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *buildOptions) { o.httpClient = client }
}

// WithLogger replaces the zap logger built from the Log* config fields.
func WithLogger(log logger.Logger) Option {
	return func(o *buildOptions) { o.logger = log }
}

// WithTokenRefreshListener registers the callback that receives rotated bearer tokens.
func WithTokenRefreshListener(listener authenticationhandler.TokenRefreshListener) Option {
	return func(o *buildOptions) { o.listener = listener }
}

// WithDefaultCredentials supplies credentials when ClientConfig.Auth is nil.
func WithDefaultCredentials(source authenticationhandler.CredentialSource) Option {
	return func(o *buildOptions) { o.credentialSource = source }
}
