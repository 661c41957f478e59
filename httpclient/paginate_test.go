package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// peoplePage renders a collection page of count people starting after offset.
func peoplePage(t *testing.T, offset, count, total int, next string) string {
	t.Helper()
	data := make([]response.Resource, count)
	for i := range data {
		data[i] = response.Resource{Type: "Person", ID: strconv.Itoa(offset + i + 1)}
	}
	doc := response.Envelope{
		Included: []response.Resource{{Type: "Email", ID: "e" + strconv.Itoa(offset)}},
		Meta:     &response.Meta{TotalCount: total, Count: count},
		Links:    &response.Links{Next: next},
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	doc.Data = raw
	body, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(body)
}

func pagedPeopleServer(t *testing.T) *apiServer {
	t.Helper()
	return newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("offset") {
		case "":
			writeJSON(w, http.StatusOK, peoplePage(t, 0, 100, 237, "https://api.planningcenteronline.com/people/v2/people?offset=100&per_page=100"))
		case "100":
			writeJSON(w, http.StatusOK, peoplePage(t, 100, 100, 237, "https://api.planningcenteronline.com/people/v2/people?offset=200&per_page=100"))
		case "200":
			writeJSON(w, http.StatusOK, peoplePage(t, 200, 37, 237, ""))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestPaginationConcatenatesPages(t *testing.T) {
	server := pagedPeopleServer(t)
	client, _ := newTestClient(t, server.URL, ClientConfig{})

	envelope, err := client.Get(context.Background(), "/people/v2/people?per_page=100", nil)
	require.NoError(t, err)

	var people []response.Resource
	require.NoError(t, envelope.Decode(&people))
	require.Len(t, people, 237)
	assert.Equal(t, "1", people[0].ID)
	assert.Equal(t, "237", people[236].ID)

	assert.Equal(t, 37, envelope.Meta.Count)
	assert.Empty(t, envelope.NextLink())
	assert.Len(t, envelope.Included, 3)

	assert.Equal(t, []string{
		"GET /people/v2/people?per_page=100",
		"GET /people/v2/people?offset=100&per_page=100",
		"GET /people/v2/people?offset=200&per_page=100",
	}, server.Calls())
}

func TestPaginationDisabledPerRequest(t *testing.T) {
	server := pagedPeopleServer(t)
	client, _ := newTestClient(t, server.URL, ClientConfig{})

	envelope, err := client.Get(context.Background(), "/people/v2/people?per_page=100", &RequestOptions{AutoPaginate: Ptr(false)})
	require.NoError(t, err)

	items, err := envelope.Items()
	require.NoError(t, err)
	assert.Len(t, items, 100)
	assert.Contains(t, envelope.NextLink(), "offset=100")
	assert.Len(t, server.Calls(), 1)
}

func TestPaginationDisabledByConfig(t *testing.T) {
	server := pagedPeopleServer(t)
	client, _ := newTestClient(t, server.URL, ClientConfig{AutoPaginate: Ptr(false)})

	_, err := client.Get(context.Background(), "/people/v2/people?per_page=100", nil)
	require.NoError(t, err)
	assert.Len(t, server.Calls(), 1)
}

func TestPaginationSkipsSingleResources(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, personDocument)
	})
	client, _ := newTestClient(t, server.URL, ClientConfig{})

	envelope, err := client.Get(context.Background(), "/people/v2/people/1", nil)
	require.NoError(t, err)
	assert.False(t, envelope.IsCollection())
	assert.JSONEq(t, `{"type":"Person","id":"1","attributes":{"first_name":"Ada"}}`, string(envelope.Data))
}

func TestPaginationStopsOnRepeatedLink(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, peoplePage(t, 0, 2, 2, "https://api.planningcenteronline.com/people/v2/people?offset=2"))
	})
	client, _ := newTestClient(t, server.URL, ClientConfig{})

	envelope, err := client.Get(context.Background(), "/people/v2/people", nil)
	require.NoError(t, err)

	items, err := envelope.Items()
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Len(t, server.Calls(), 2)
}

func TestPaginationErrorDiscardsPartialResults(t *testing.T) {
	server := newAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "" {
			writeJSON(w, http.StatusOK, peoplePage(t, 0, 2, 4, "/people/v2/people?offset=2"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, `{"errors":[{"status":"500","title":"Internal Server Error"}]}`)
	})
	client, _ := newTestClient(t, server.URL, ClientConfig{})

	envelope, err := client.Get(context.Background(), "/people/v2/people", nil)
	assert.Nil(t, envelope)

	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestRelativeLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://api.planningcenteronline.com/people/v2/people?offset=25", "/people/v2/people?offset=25"},
		{"/groups/v2/groups?offset=50&per_page=25", "/groups/v2/groups?offset=50&per_page=25"},
		{"https://api.planningcenteronline.com/calendar/v2/events", "/calendar/v2/events"},
	}
	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			got, err := relativeLink(tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
