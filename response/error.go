// response/error.go
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/status"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// APIError is returned for any non-2xx response the engine does not retry.
// RawResponse always holds the unmodified body text.
type APIError struct {
	StatusCode  int           `json:"status_code"`
	Method      string        `json:"method"`
	URL         string        `json:"url"`
	Message     string        `json:"message"`
	Errors      []ErrorObject `json:"errors,omitempty"`
	RawResponse string        `json:"raw_response"`
}

// ErrorObject is a JSON:API error object.
type ErrorObject struct {
	ID     string         `json:"id,omitempty"`
	Status string         `json:"status,omitempty"`
	Code   string         `json:"code,omitempty"`
	Title  string         `json:"title,omitempty"`
	Detail string         `json:"detail,omitempty"`
	Source *ErrorSource   `json:"source,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
}

func (e *APIError) Error() string {
	body := e.RawResponse
	if body == "" {
		body = e.Message
	}
	return fmt.Sprintf("API Error (%d): %s", e.StatusCode, body)
}

// HandleAPIErrorResponse reads a failed response and builds an APIError from it.
// The body is summarised according to its content type.
func HandleAPIErrorResponse(resp *http.Response, log logger.Logger) *APIError {
	defer resp.Body.Close()

	apiError := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		if resp.Request.URL != nil {
			apiError.URL = resp.Request.URL.String()
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.Message = "failed to read response body"
		log.Warn("Failed to read error response body", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		return apiError
	}
	apiError.RawResponse = string(bodyBytes)

	mimeType, _ := ParseContentTypeHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json", "application/vnd.api+json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	case "text/plain":
		parseTextResponse(bodyBytes, apiError)
	}

	log.Warn("API error response",
		zap.String(logger.FieldEvent, "request_error"),
		zap.String("method", apiError.Method),
		zap.String("url", apiError.URL),
		zap.Int("status_code", apiError.StatusCode),
		zap.String("status", status.TranslateStatusCode(apiError.StatusCode)),
		zap.String("message", apiError.Message),
	)

	return apiError
}

// parseJSONResponse collects JSON:API error objects, falling back to a top level "message"
// or "error" string.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	var doc struct {
		Errors  []ErrorObject `json:"errors"`
		Message string        `json:"message"`
		Error   any           `json:"error"`
	}
	if err := json.Unmarshal(bodyBytes, &doc); err != nil {
		return
	}

	apiError.Errors = doc.Errors
	var messages []string
	for _, e := range doc.Errors {
		switch {
		case e.Title != "" && e.Detail != "":
			messages = append(messages, e.Title+": "+e.Detail)
		case e.Detail != "":
			messages = append(messages, e.Detail)
		case e.Title != "":
			messages = append(messages, e.Title)
		}
	}
	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
		return
	}
	if doc.Message != "" {
		apiError.Message = doc.Message
		return
	}
	if s, ok := doc.Error.(string); ok && s != "" {
		apiError.Message = s
	}
}

// parseXMLResponse joins every non-empty text node of an XML body.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

// parseHTMLResponse uses the page title and paragraph text of an HTML error page,
// typically served by a proxy in front of the API.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "title" || n.Data == "h1" || n.Data == "p") {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				messages = append(messages, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(dedupe(messages), "; ")
	}
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	if text := strings.TrimSpace(string(bodyBytes)); text != "" {
		apiError.Message = text
	}
}
