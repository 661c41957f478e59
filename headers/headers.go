// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"go.uber.org/zap"
)

const (
	ContentTypeJSON = "application/json"
	AcceptJSON      = "application/json"
)

// Authorizer writes the Authorization header for a request.
type Authorizer interface {
	SetAuthorization(req *http.Request)
}

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req  *http.Request
	log  logger.Logger
	auth Authorizer
}

func NewHeaderHandler(req *http.Request, log logger.Logger, auth Authorizer) *HeaderHandler {
	return &HeaderHandler{req: req, log: log, auth: auth}
}

func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.req.Header.Set("Accept", acceptHeader)
}

func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.req.Header.Set("User-Agent", userAgent)
}

// SetRequestHeaders applies the standard header set every API call carries.
func (h *HeaderHandler) SetRequestHeaders(userAgent string) {
	h.SetContentType(ContentTypeJSON)
	h.SetAccept(AcceptJSON)
	h.SetUserAgent(userAgent)
	if h.auth != nil {
		h.auth.SetAuthorization(h.req)
	}
}

// LogHeaders writes the request headers at debug level, redacting credentials when asked.
func (h *HeaderHandler) LogHeaders(hideSensitiveData bool) {
	if h.log.GetLogLevel() > logger.LogLevelDebug {
		return
	}
	h.log.Debug("HTTP request headers",
		zap.String("method", h.req.Method),
		zap.String("url", h.req.URL.String()),
		zap.String("headers", HeadersToString(redact.Header(hideSensitiveData, h.req.Header))),
	)
}

// HeadersToString renders headers as "Name: v1, v2" lines in sorted order.
func HeadersToString(headers http.Header) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", name, strings.Join(headers[name], ", ")))
	}
	return sb.String()
}

// CheckDeprecationHeader warns when the API flags an endpoint or version as deprecated.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	if deprecation := resp.Header.Get("Deprecation"); deprecation != "" {
		fields := []zap.Field{zap.String("deprecation", deprecation)}
		if sunset := resp.Header.Get("Sunset"); sunset != "" {
			fields = append(fields, zap.String("sunset", sunset))
		}
		if resp.Request != nil && resp.Request.URL != nil {
			fields = append(fields, zap.String("url", resp.Request.URL.String()))
		}
		log.Warn("API endpoint is deprecated", fields...)
	}
}
