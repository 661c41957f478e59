package resources

import (
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
)

// Document is a decoded JSON:API response whose primary data is T.
type Document[T any] struct {
	Data     T
	Included []response.Resource
	Meta     *response.Meta
	Links    *response.Links
}

// Entity is a JSON:API resource object with typed attributes.
type Entity[A any] struct {
	Type          string                           `json:"type"`
	ID            string                           `json:"id"`
	Attributes    A                                `json:"attributes"`
	Relationships map[string]response.Relationship `json:"relationships,omitempty"`
	Links         map[string]string                `json:"links,omitempty"`
}

// Attributes is the catch-all attribute set for resource types without a dedicated struct.
type Attributes map[string]any

func decodeDocument[T any](envelope *response.Envelope) (*Document[T], error) {
	doc := &Document[T]{
		Included: envelope.Included,
		Meta:     envelope.Meta,
		Links:    envelope.Links,
	}
	if err := envelope.Decode(&doc.Data); err != nil {
		return nil, err
	}
	return doc, nil
}

// resourceObject is the request body's primary data.
type resourceObject struct {
	Type       string `json:"type,omitempty"`
	ID         string `json:"id,omitempty"`
	Attributes any    `json:"attributes"`
}

type requestBody struct {
	Data resourceObject `json:"data"`
}

// NewBody wraps attributes as {"data":{"type","id","attributes"}}. Empty type and id are omitted.
func NewBody(typeTag, id string, attributes any) any {
	return requestBody{Data: resourceObject{Type: typeTag, ID: id, Attributes: attributes}}
}
