// proxy/proxy.go

package proxy

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
)

// Config describes an outbound HTTP proxy. Username and Password are optional.
type Config struct {
	URL      string
	Username string
	Password string
}

// InitializeProxy routes client's traffic through the proxy in cfg. An empty URL leaves
// the client untouched. The transport is cloned from http.DefaultTransport so timeouts
// and keep-alives are preserved.
func InitializeProxy(client *http.Client, cfg Config, log logger.Logger) error {
	if cfg.URL == "" {
		return nil
	}

	proxyURL, err := url.Parse(cfg.URL)
	if err != nil {
		log.Error("Failed to parse proxy URL", zap.Error(err))
		return fmt.Errorf("invalid proxy url: %w", err)
	}
	if proxyURL.Scheme == "" || proxyURL.Host == "" {
		return fmt.Errorf("invalid proxy url %q: scheme and host are required", cfg.URL)
	}
	if cfg.Username != "" {
		proxyURL.User = url.UserPassword(cfg.Username, cfg.Password)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(proxyURL)
	client.Transport = transport

	log.Info("Proxy configured",
		zap.String("proxy_host", proxyURL.Host),
		zap.Bool("proxy_auth", proxyURL.User != nil),
	)
	return nil
}
