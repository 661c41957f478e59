package response

import (
	"net/http"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAPIErrorResponse(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		contentType     string
		body            string
		expectedMessage string
		expectedErrors  int
	}{
		{
			name:            "json api errors",
			status:          http.StatusUnprocessableEntity,
			contentType:     "application/vnd.api+json; charset=utf-8",
			body:            `{"errors":[{"status":"422","title":"Invalid","detail":"first_name can't be blank","source":{"pointer":"/data/attributes/first_name"}}]}`,
			expectedMessage: "Invalid: first_name can't be blank",
			expectedErrors:  1,
		},
		{
			name:            "json message",
			status:          http.StatusForbidden,
			contentType:     "application/json",
			body:            `{"message":"Forbidden for this app"}`,
			expectedMessage: "Forbidden for this app",
		},
		{
			name:            "json error string",
			status:          http.StatusUnauthorized,
			contentType:     "application/json",
			body:            `{"error":"invalid_token"}`,
			expectedMessage: "invalid_token",
		},
		{
			name:            "xml",
			status:          http.StatusBadGateway,
			contentType:     "application/xml",
			body:            `<error><code>502</code><message>Upstream down</message></error>`,
			expectedMessage: "502; Upstream down",
		},
		{
			name:            "html",
			status:          http.StatusServiceUnavailable,
			contentType:     "text/html",
			body:            `<html><head><title>Maintenance</title></head><body><p>Back   soon</p></body></html>`,
			expectedMessage: "Maintenance; Back soon",
		},
		{
			name:            "text",
			status:          http.StatusNotFound,
			contentType:     "text/plain",
			body:            "no such person\n",
			expectedMessage: "no such person",
		},
		{
			name:            "unknown content type keeps status text",
			status:          http.StatusNotFound,
			contentType:     "application/octet-stream",
			body:            "??",
			expectedMessage: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := HandleAPIErrorResponse(newResponse(tt.status, tt.contentType, tt.body), logger.NewNopLogger())

			require.NotNil(t, apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, http.MethodGet, apiErr.Method)
			assert.Equal(t, "https://api.example.com/people/v2/people", apiErr.URL)
			assert.Equal(t, tt.body, apiErr.RawResponse)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Len(t, apiErr.Errors, tt.expectedErrors)
		})
	}
}

func TestAPIErrorMessageFormat(t *testing.T) {
	err := &APIError{StatusCode: 404, RawResponse: `{"errors":[]}`}
	assert.Equal(t, `API Error (404): {"errors":[]}`, err.Error())

	err = &APIError{StatusCode: 500, Message: "Internal Server Error"}
	assert.Equal(t, "API Error (500): Internal Server Error", err.Error())
}

func TestParseContentTypeHeader(t *testing.T) {
	mime, params := ParseContentTypeHeader(`Application/JSON; charset="utf-8"`)
	assert.Equal(t, "application/json", mime)
	assert.Equal(t, "utf-8", params["charset"])
}
