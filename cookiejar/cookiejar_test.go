// cookiejar/cookiejar_test.go
package cookiejar

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupCookieJarDisabled(t *testing.T) {
	client := &http.Client{}
	require.NoError(t, SetupCookieJar(client, false, logger.NewNopLogger()))
	assert.Nil(t, client.Jar)
}

func TestSetupCookieJarReplaysCookies(t *testing.T) {
	var replayed string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("lb"); err == nil {
			replayed = c.Value
		}
		http.SetCookie(w, &http.Cookie{Name: "lb", Value: "node-2", Path: "/"})
	}))
	t.Cleanup(server.Close)

	client := server.Client()
	require.NoError(t, SetupCookieJar(client, true, logger.NewNopLogger()))
	require.NotNil(t, client.Jar)

	for i := 0; i < 2; i++ {
		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, "node-2", replayed)
}
