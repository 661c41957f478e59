// httpclient/request.go
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
	"go.uber.org/zap"
)

// RequestOptions overrides client defaults for a single call. Nil fields inherit.
type RequestOptions struct {
	// AutoPaginate follows links.next on GET collections and concatenates the pages.
	AutoPaginate *bool
	// PerPage and Offset are written to the per_page and offset query parameters.
	PerPage *int
	Offset  *int
}

// resolvedOptions is RequestOptions after merging with the client configuration.
type resolvedOptions struct {
	autoPaginate bool
	perPage      *int
	offset       *int
}

func (c *Client) resolveRequestOptions(opts *RequestOptions) resolvedOptions {
	resolved := resolvedOptions{autoPaginate: *c.config.AutoPaginate}
	if opts == nil {
		return resolved
	}
	if opts.AutoPaginate != nil {
		resolved.autoPaginate = *opts.AutoPaginate
	}
	resolved.perPage = opts.PerPage
	resolved.offset = opts.Offset
	return resolved
}

// Request performs one logical API call. path is relative to the base URL and may carry
// a query string. body, when non-nil, is sent as JSON; []byte and json.RawMessage are
// sent verbatim.
//
// GET requests with auto pagination enabled return every page's data concatenated in a
// single array, with meta and links taken from the last page.
func (c *Client) Request(ctx context.Context, method, path string, body any, opts *RequestOptions) (*response.Envelope, error) {
	ctx, requestID, err := c.Concurrency.AcquireConcurrencyPermit(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Concurrency.ReleaseConcurrencyPermit(requestID)

	log := c.Logger.With(zap.String(logger.FieldRequestID, requestID.String()))

	resolved := c.resolveRequestOptions(opts)
	path, err = applyPageParameters(path, resolved)
	if err != nil {
		return nil, err
	}

	payload, err := marshalRequestBody(body)
	if err != nil {
		log.Error("Failed to marshal request body", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	c.auth.CheckAndRefreshAuthToken(ctx)

	if method == http.MethodGet && resolved.autoPaginate {
		return c.paginate(ctx, path, log)
	}
	return c.executeRequestWithRetries(ctx, method, path, payload, log)
}

// Get is Request with GET and no body.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) (*response.Envelope, error) {
	return c.Request(ctx, http.MethodGet, path, nil, opts)
}

// Post is Request with POST.
func (c *Client) Post(ctx context.Context, path string, body any) (*response.Envelope, error) {
	return c.Request(ctx, http.MethodPost, path, body, nil)
}

// Patch is Request with PATCH.
func (c *Client) Patch(ctx context.Context, path string, body any) (*response.Envelope, error) {
	return c.Request(ctx, http.MethodPatch, path, body, nil)
}

// Delete is Request with DELETE and no body.
func (c *Client) Delete(ctx context.Context, path string) (*response.Envelope, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}

func marshalRequestBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(body)
	}
}

// applyPageParameters writes per_page and offset overrides into path's query string.
// Existing values are replaced in place; every other parameter is kept byte for byte.
func applyPageParameters(path string, resolved resolvedOptions) (string, error) {
	if resolved.perPage == nil && resolved.offset == nil {
		return path, nil
	}
	if _, err := url.Parse(path); err != nil {
		return "", fmt.Errorf("invalid request path %q: %w", path, err)
	}

	overrides := map[string]string{}
	order := []string{}
	if resolved.perPage != nil {
		overrides["per_page"] = strconv.Itoa(*resolved.perPage)
		order = append(order, "per_page")
	}
	if resolved.offset != nil {
		overrides["offset"] = strconv.Itoa(*resolved.offset)
		order = append(order, "offset")
	}

	base, rawQuery, _ := strings.Cut(path, "?")
	var params []string
	if rawQuery != "" {
		params = strings.Split(rawQuery, "&")
	}
	kept := params[:0]
	for _, param := range params {
		key, _, _ := strings.Cut(param, "=")
		value, ok := overrides[key]
		if !ok {
			kept = append(kept, param)
			continue
		}
		if value != "" {
			kept = append(kept, key+"="+value)
			overrides[key] = ""
		}
	}
	for _, key := range order {
		if value := overrides[key]; value != "" {
			kept = append(kept, key+"="+value)
		}
	}
	return base + "?" + strings.Join(kept, "&"), nil
}
