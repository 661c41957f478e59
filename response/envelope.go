// response/envelope.go
/* Package response decodes the API's JSON:API documents and error bodies. A successful
response is unwrapped into an Envelope; anything else becomes an APIError. */
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/status"
	"go.uber.org/zap"
)

// Envelope is a JSON:API top level document. Data is nil when the server returned no body.
type Envelope struct {
	Data     json.RawMessage `json:"data,omitempty"`
	Included []Resource      `json:"included,omitempty"`
	Meta     *Meta           `json:"meta,omitempty"`
	Links    *Links          `json:"links,omitempty"`
}

// Resource is a single JSON:API resource object.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    map[string]any          `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         map[string]string       `json:"links,omitempty"`
}

// Relationship holds linkage data, which is either one identifier or a list of them.
type Relationship struct {
	Data  json.RawMessage   `json:"data,omitempty"`
	Links map[string]string `json:"links,omitempty"`
	Meta  map[string]any    `json:"meta,omitempty"`
}

// Identifier is a resource linkage {type, id}.
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Meta struct {
	TotalCount int         `json:"total_count,omitempty"`
	Count      int         `json:"count,omitempty"`
	Next       *NextMeta   `json:"next,omitempty"`
	Prev       *NextMeta   `json:"prev,omitempty"`
	CanOrderBy []string    `json:"can_order_by,omitempty"`
	CanQueryBy []string    `json:"can_query_by,omitempty"`
	CanInclude []string    `json:"can_include,omitempty"`
	CanFilter  []string    `json:"can_filter,omitempty"`
	Parent     *Identifier `json:"parent,omitempty"`
}

type NextMeta struct {
	Offset int `json:"offset"`
}

type Links struct {
	Self string `json:"self,omitempty"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// IsAbsent reports whether the document carried no primary data.
func (e *Envelope) IsAbsent() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// IsCollection reports whether primary data is a JSON array.
func (e *Envelope) IsCollection() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Items splits collection data into its raw elements.
func (e *Envelope) Items() ([]json.RawMessage, error) {
	if !e.IsCollection() {
		return nil, fmt.Errorf("primary data is not a collection")
	}
	var items []json.RawMessage
	if err := json.Unmarshal(e.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to split collection data: %w", err)
	}
	return items, nil
}

// Decode unmarshals primary data into out. Absent data leaves out untouched.
func (e *Envelope) Decode(out any) error {
	if e.IsAbsent() {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to decode primary data: %w", err)
	}
	return nil
}

// NextLink returns links.next or "" when there is no further page.
func (e *Envelope) NextLink() string {
	if e.Links == nil {
		return ""
	}
	return e.Links.Next
}

// BodyReadError reports a connection failure while a 2xx body was being read.
// The request engine treats it like any other transport error.
type BodyReadError struct {
	Err error
}

func (e *BodyReadError) Error() string {
	return fmt.Sprintf("failed to read response body: %v", e.Err)
}

func (e *BodyReadError) Unwrap() error { return e.Err }

// HandleAPISuccessResponse reads a 2xx response body and unwraps it into an Envelope.
// 204 responses and explicit zero length bodies yield an Envelope with absent data.
func HandleAPISuccessResponse(resp *http.Response, log logger.Logger) (*Envelope, error) {
	defer resp.Body.Close()

	if status.IsEmptyBody(resp) {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Debug("Empty response body", zap.Int("status_code", resp.StatusCode))
		return &Envelope{}, nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Failed to read response body", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		return nil, &BodyReadError{Err: err}
	}

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return &Envelope{}, nil
	}

	envelope := &Envelope{}
	if err := json.Unmarshal(bodyBytes, envelope); err != nil {
		log.Error("Failed to decode response document", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("failed to decode response document: %w", err)
	}

	return envelope, nil
}
