package redirecthandler

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
)

// RedirectHandler decides whether the underlying http.Client follows a redirect.
type RedirectHandler struct {
	Logger           logger.Logger
	MaxRedirects     int
	SensitiveHeaders []string // removed when a redirect leaves the original host
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:           log,
		MaxRedirects:     maxRedirects,
		SensitiveHeaders: []string{"Authorization", "Cookie"},
	}
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// checkRedirect is called with the next request and the chain that led to it.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) == 0 {
		return nil
	}
	origin := via[0]

	if origin.Method == http.MethodPost || origin.Method == http.MethodPatch {
		r.Logger.Warn("Redirect attempted on non-idempotent method, not following", zap.String("method", origin.Method))
		return http.ErrUseLastResponse
	}

	if len(via) >= r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached", zap.Int("max_redirects", r.MaxRedirects))
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	target := req.URL.String()
	for _, prev := range via {
		if prev.URL.String() == target {
			return &RedirectLoopError{URL: target}
		}
	}

	if req.URL.Host != origin.URL.Host {
		for _, header := range r.SensitiveHeaders {
			req.Header.Del(header)
		}
	}

	r.Logger.Info("Following redirect",
		zap.String("from", via[len(via)-1].URL.String()),
		zap.String("to", target),
		zap.Int("redirect_count", len(via)),
	)
	return nil
}

type RedirectLoopError struct {
	URL string
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected at %s", e.URL)
}

type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// SetupRedirectHandler installs the redirect policy. With followRedirects false every
// redirect response is returned to the caller as-is.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return nil
	}
	if maxRedirects < 1 {
		return log.Error("Invalid maxRedirects value", zap.Int("max_redirects", maxRedirects))
	}
	NewRedirectHandler(log, maxRedirects).WithRedirectHandling(client)
	log.Debug("Redirect handling enabled", zap.Int("max_redirects", maxRedirects))
	return nil
}
