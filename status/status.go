// status.go
// Package status classifies HTTP responses for the retry controller.
package status

import (
	"net/http"
	"strings"
)

// IsSuccess reports a 2xx status code.
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// IsRateLimited reports a 429 Too Many Requests response.
func IsRateLimited(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests
}

// IsUnauthorized reports a 401 response, the trigger for reactive token refresh.
func IsUnauthorized(statusCode int) bool {
	return statusCode == http.StatusUnauthorized
}

// IsEmptyBody reports whether a successful response carries no document:
// either 204 No Content or an explicit Content-Length of zero.
func IsEmptyBody(resp *http.Response) bool {
	if resp == nil {
		return true
	}
	if resp.StatusCode == http.StatusNoContent {
		return true
	}
	return strings.TrimSpace(resp.Header.Get("Content-Length")) == "0"
}

// IsRedirectStatusCode checks if the provided HTTP status code is one of the redirect codes.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// TranslateStatusCode returns a short human readable description for logs.
func TranslateStatusCode(statusCode int) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "Unknown Status"
}
