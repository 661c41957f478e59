// httpclient/config.go
package httpclient

import (
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/authenticationhandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
)

const (
	DefaultBaseURL               = "https://api.planningcenteronline.com"
	DefaultTokenURL              = authenticationhandler.DefaultTokenURL
	DefaultRateLimitDelay        = 100 * time.Millisecond
	DefaultMaxRetries            = 3
	DefaultAutoPaginate          = true
	DefaultLogLevelString        = "LogLevelInfo"
	DefaultLogOutputFormatString = "console"
	DefaultLogConsoleSeparator   = "	"
	DefaultHideSensitiveData     = false
	DefaultMaxConcurrentRequests = 5
	DefaultCustomTimeout         = 30 * time.Second
	DefaultFollowRedirects       = false
	DefaultMaxRedirects          = 5
)

// ClientConfig holds the settings a Client is built from. Pointer fields distinguish
// "unset" from an explicit zero; everything unset takes its Default* value.
type ClientConfig struct {
	// Auth selects basic or bearer credentials. When nil, the WithDefaultCredentials
	// source is consulted.
	Auth authenticationhandler.Credentials

	// Core
	RateLimitDelay *time.Duration // minimum gap between attempts; 0 disables spacing
	MaxRetries     *int
	AutoPaginate   *bool

	// Endpoints
	BaseURL  string
	TokenURL string

	// Log
	LogLevel            string
	LogOutputFormat     string // "json" or "console"
	LogConsoleSeparator string
	HideSensitiveData   bool

	// Misc
	MaxConcurrentRequests int
	CustomTimeout         time.Duration
	FollowRedirects       bool
	MaxRedirects          int
	EnableCookieJar       bool

	// Proxy, applied to the default http.Client only
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string
}

// Ptr returns a pointer to v, for the optional ClientConfig and RequestOptions fields.
func Ptr[T any](v T) *T {
	return &v
}

// SetDefaultValuesClientConfig fills every unset field of config with its default.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.RateLimitDelay == nil {
		config.RateLimitDelay = Ptr(DefaultRateLimitDelay)
	}
	if config.MaxRetries == nil {
		config.MaxRetries = Ptr(DefaultMaxRetries)
	}
	if config.AutoPaginate == nil {
		config.AutoPaginate = Ptr(DefaultAutoPaginate)
	}
	setDefaultString(&config.BaseURL, DefaultBaseURL)
	setDefaultString(&config.TokenURL, DefaultTokenURL)
	setDefaultString(&config.LogLevel, DefaultLogLevelString)
	setDefaultString(&config.LogOutputFormat, DefaultLogOutputFormatString)
	setDefaultString(&config.LogConsoleSeparator, DefaultLogConsoleSeparator)
	setDefaultInt(&config.MaxConcurrentRequests, DefaultMaxConcurrentRequests)
	setDefaultInt(&config.MaxRedirects, DefaultMaxRedirects)
	setDefaultDuration(&config.CustomTimeout, DefaultCustomTimeout)
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
}

// validateClientConfig checks a defaulted config. The first problem found is returned.
func validateClientConfig(config ClientConfig) error {
	if *config.RateLimitDelay < 0 {
		return &ConfigurationError{Field: "RateLimitDelay", Reason: "must not be negative"}
	}
	if *config.MaxRetries < 0 {
		return &ConfigurationError{Field: "MaxRetries", Reason: "must not be negative"}
	}
	if err := validateAbsoluteURL("BaseURL", config.BaseURL); err != nil {
		return err
	}
	if err := validateAbsoluteURL("TokenURL", config.TokenURL); err != nil {
		return err
	}
	if config.MaxConcurrentRequests < 1 {
		return &ConfigurationError{Field: "MaxConcurrentRequests", Reason: "must be at least 1"}
	}
	if config.CustomTimeout < 0 {
		return &ConfigurationError{Field: "CustomTimeout", Reason: "must not be negative"}
	}
	if config.FollowRedirects && config.MaxRedirects < 1 {
		return &ConfigurationError{Field: "MaxRedirects", Reason: "must be at least 1 when following redirects"}
	}
	if config.ProxyURL != "" {
		if err := validateAbsoluteURL("ProxyURL", config.ProxyURL); err != nil {
			return err
		}
	}
	if config.ProxyPassword != "" && config.ProxyUsername == "" {
		return &ConfigurationError{Field: "ProxyUsername", Reason: "required when ProxyPassword is set"}
	}
	switch strings.ToLower(config.LogOutputFormat) {
	case "json", "console":
	default:
		return &ConfigurationError{Field: "LogOutputFormat", Reason: "must be json or console"}
	}
	if logger.ParseLogLevelFromString(config.LogLevel).String() != config.LogLevel {
		return &ConfigurationError{Field: "LogLevel", Reason: "unknown level " + config.LogLevel}
	}
	return nil
}

func validateAbsoluteURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &ConfigurationError{Field: field, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return &ConfigurationError{Field: field, Reason: "must be an absolute URL"}
	}
	return nil
}

func setDefaultString(field *string, defaultValue string) {
	if *field == "" {
		*field = defaultValue
	}
}

func setDefaultInt(field *int, defaultValue int) {
	if *field == 0 {
		*field = defaultValue
	}
}

func setDefaultDuration(field *time.Duration, defaultValue time.Duration) {
	if *field == 0 {
		*field = defaultValue
	}
}
