// proxy/proxy_test.go
package proxy

import (
	"net/http"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeProxy(t *testing.T) {
	log := logger.NewNopLogger()

	t.Run("no proxy", func(t *testing.T) {
		client := &http.Client{}
		require.NoError(t, InitializeProxy(client, Config{}, log))
		assert.Nil(t, client.Transport)
	})

	t.Run("authenticated proxy", func(t *testing.T) {
		client := &http.Client{}
		require.NoError(t, InitializeProxy(client, Config{URL: "http://proxy.internal:3128", Username: "svc", Password: "pw"}, log))

		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		req, err := http.NewRequest(http.MethodGet, "https://api.planningcenteronline.com/people/v2/people", nil)
		require.NoError(t, err)
		proxyURL, err := transport.Proxy(req)
		require.NoError(t, err)
		assert.Equal(t, "proxy.internal:3128", proxyURL.Host)
		assert.Equal(t, "svc", proxyURL.User.Username())
		password, _ := proxyURL.User.Password()
		assert.Equal(t, "pw", password)
	})

	t.Run("invalid url", func(t *testing.T) {
		client := &http.Client{}
		assert.Error(t, InitializeProxy(client, Config{URL: "proxy.internal"}, log))
		assert.Error(t, InitializeProxy(client, Config{URL: "http://[::1"}, log))
		assert.Nil(t, client.Transport)
	})
}
