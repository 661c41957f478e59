// cookiejar/cookiejar.go

/*
Package cookiejar attaches an optional cookie jar to the SDK's http.Client. The API
itself is stateless, but some proxies and load balancers pin sessions with cookies.
*/
package cookiejar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// SetupCookieJar installs a jar on client when enabled. Cookies are scoped with the
// public suffix list so they never leak across registrable domains.
func SetupCookieJar(client *http.Client, enabled bool, log logger.Logger) error {
	if !enabled {
		return nil
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Error("Failed to create cookie jar", zap.Error(err))
		return fmt.Errorf("setupCookieJar failed: %w", err)
	}
	client.Jar = jar
	log.Debug("Cookie jar enabled")
	return nil
}
