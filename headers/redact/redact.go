// headers/redact/redact.go
package redact

import "net/http"

const Redacted = "REDACTED"

var sensitiveKeys = map[string]bool{
	"Authorization": true,
	"AccessToken":   true,
	"RefreshToken":  true,
	"ClientSecret":  true,
	"Cookie":        true,
	"Set-Cookie":    true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if !hideSensitiveData {
		return value
	}
	if sensitiveKeys[key] || sensitiveKeys[http.CanonicalHeaderKey(key)] {
		return Redacted
	}
	return value
}

// Header returns a copy of h with sensitive values replaced.
func Header(hideSensitiveData bool, h http.Header) http.Header {
	out := make(http.Header, len(h))
	for name, values := range h {
		redacted := make([]string, len(values))
		for i, v := range values {
			redacted[i] = RedactSensitiveHeaderData(hideSensitiveData, name, v)
		}
		out[name] = redacted
	}
	return out
}
