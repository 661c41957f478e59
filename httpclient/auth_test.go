package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/authenticationhandler"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bearerServer accepts only the most recently issued access token and issues a new
// pair on every refresh.
type bearerServer struct {
	*apiServer
	refreshes    atomic.Int32
	refreshFails bool
	alwaysReject bool
}

func newBearerServer(t *testing.T) *bearerServer {
	t.Helper()
	bs := &bearerServer{}
	bs.apiServer = newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh_token", body["grant_type"])
			if bs.refreshFails {
				writeJSON(w, http.StatusBadRequest, `{"error":"invalid_grant"}`)
				return
			}
			n := bs.refreshes.Add(1)
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"access_token":"access-%d","refresh_token":"refresh-%d","token_type":"bearer"}`, n, n))
			return
		}

		expected := fmt.Sprintf("Bearer access-%d", bs.refreshes.Load())
		if bs.alwaysReject || r.Header.Get("Authorization") != expected {
			writeJSON(w, http.StatusUnauthorized, `{"errors":[{"status":"401","title":"Unauthorized"}]}`)
			return
		}
		writeJSON(w, http.StatusOK, personDocument)
	})
	return bs
}

func bearerConfig(server *bearerServer, refreshedAt *time.Time) ClientConfig {
	return ClientConfig{
		TokenURL: server.URL + "/oauth/token",
		Auth: &authenticationhandler.BearerCredentials{
			AccessToken:  "access-0",
			RefreshToken: "refresh-0",
			AutoRefresh:  true,
			RefreshedAt:  refreshedAt,
		},
	}
}

func TestReactiveRefreshRetriesRequest(t *testing.T) {
	server := newBearerServer(t)
	listener := authenticationhandler.NewChannelListener(1)
	config := bearerConfig(server, nil)
	config.Auth.(*authenticationhandler.BearerCredentials).AccessToken = "stale"

	client, fake := newTestClient(t, server.URL, config, WithTokenRefreshListener(listener))

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /people/v2/people/1",
		"POST /oauth/token",
		"GET /people/v2/people/1",
	}, server.Calls())
	assert.Equal(t, "access-1", client.AccessToken())
	assert.Empty(t, fake.Sleeps())

	select {
	case tokens := <-listener.C():
		assert.Equal(t, "access-1", tokens.AccessToken)
		assert.Equal(t, "refresh-1", tokens.RefreshToken)
		assert.Equal(t, epoch, tokens.RefreshedAt)
	default:
		t.Fatal("listener was not notified")
	}
	assert.Equal(t, int64(1), client.Metrics().TotalTokenRefreshes)
}

func TestReactiveRefreshFailureSurfacesUnauthorized(t *testing.T) {
	server := newBearerServer(t)
	server.refreshFails = true
	config := bearerConfig(server, nil)
	config.Auth.(*authenticationhandler.BearerCredentials).AccessToken = "stale"

	var notified atomic.Bool
	client, _ := newTestClient(t, server.URL, config, WithTokenRefreshListener(
		authenticationhandler.TokenRefreshListenerFunc(func(context.Context, authenticationhandler.RefreshedTokens) error {
			notified.Store(true)
			return nil
		}),
	))

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.Error(t, err)

	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.RawResponse, "Unauthorized")
	assert.Equal(t, "stale", client.AccessToken())
	assert.False(t, notified.Load())
}

func TestUnauthorizedWithoutAutoRefresh(t *testing.T) {
	server := newBearerServer(t)
	config := bearerConfig(server, nil)
	bearer := config.Auth.(*authenticationhandler.BearerCredentials)
	bearer.AccessToken = "stale"
	bearer.AutoRefresh = false
	client, _ := newTestClient(t, server.URL, config)

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)

	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, []string{"GET /people/v2/people/1"}, server.Calls())
}

func TestBasicAuthNeverRefreshes(t *testing.T) {
	server := newBearerServer(t)
	server.alwaysReject = true
	client, _ := newTestClient(t, server.URL, ClientConfig{TokenURL: server.URL + "/oauth/token"})

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)

	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(0), server.refreshes.Load())
	assert.Equal(t, []string{"GET /people/v2/people/1"}, server.Calls())
}

func TestRepeatedUnauthorizedExhaustsRetries(t *testing.T) {
	server := newBearerServer(t)
	server.alwaysReject = true
	config := bearerConfig(server, nil)
	config.MaxRetries = Ptr(1)
	client, _ := newTestClient(t, server.URL, config)

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhaustedRetries)

	var exhausted *ExhaustedRetriesError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, 2, exhausted.Attempts)
	assert.Equal(t, int32(2), server.refreshes.Load())
}

func TestProactiveRefreshBeforeFirstAttempt(t *testing.T) {
	server := newBearerServer(t)
	issued := epoch.Add(-(authenticationhandler.DefaultTokenExpiry - authenticationhandler.ProactiveRefreshBuffer + time.Minute))
	client, _ := newTestClient(t, server.URL, bearerConfig(server, &issued))

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /oauth/token",
		"GET /people/v2/people/1",
	}, server.Calls())
	assert.Equal(t, "access-1", client.AccessToken())
}

func TestNoProactiveRefreshForFreshToken(t *testing.T) {
	server := newBearerServer(t)
	issued := epoch.Add(-time.Hour)
	client, _ := newTestClient(t, server.URL, bearerConfig(server, &issued))

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /people/v2/people/1"}, server.Calls())
}

func TestProactiveRefreshFailureIsNotFatal(t *testing.T) {
	server := newBearerServer(t)
	server.refreshFails = true
	issued := epoch.Add(-3 * time.Hour)
	client, _ := newTestClient(t, server.URL, bearerConfig(server, &issued))

	_, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"POST /oauth/token",
		"GET /people/v2/people/1",
	}, server.Calls())
	assert.Equal(t, "access-0", client.AccessToken())
}
