// headers/redact/redact_test.go
package redact

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactSensitiveHeaderData(t *testing.T) {
	cases := []struct {
		name              string
		hideSensitiveData bool
		key               string
		value             string
		expected          string
	}{
		{"access token redacted", true, "AccessToken", "some-sensitive-token", Redacted},
		{"access token shown", false, "AccessToken", "some-sensitive-token", "some-sensitive-token"},
		{"authorization lower case", true, "authorization", "Bearer abc", Redacted},
		{"client secret", true, "ClientSecret", "s3cret", Redacted},
		{"user agent untouched", true, "User-Agent", "MyCustomAgent", "MyCustomAgent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RedactSensitiveHeaderData(tc.hideSensitiveData, tc.key, tc.value))
		})
	}
}

func TestHeaderCopiesAndRedacts(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Basic Zm9vOmJhcg==")
	h.Set("Content-Type", "application/json")

	out := Header(true, h)

	assert.Equal(t, Redacted, out.Get("Authorization"))
	assert.Equal(t, "application/json", out.Get("Content-Type"))
	assert.Equal(t, "Basic Zm9vOmJhcg==", h.Get("Authorization"), "original must not be mutated")
}
